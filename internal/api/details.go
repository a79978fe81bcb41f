package api

import (
	"net/http"

	"github.com/4NDR3-S01/ExposIA/schema"
	"github.com/gin-gonic/gin"
)

// ListDetailScores returns every detail score.
func (h *Handler) ListDetailScores(c *gin.Context) {
	details, err := h.svc.ListDetailScores(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orEmpty(details))
}

// CreateDetailScore adds a detail score to a grading.
func (h *Handler) CreateDetailScore(c *gin.Context) {
	var body schema.DetailScore
	if !bindJSON(c, &body) {
		return
	}
	created, err := h.svc.CreateDetailScore(c.Request.Context(), body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetDetailScore returns one detail score.
func (h *Handler) GetDetailScore(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	detail, err := h.svc.GetDetailScore(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// UpdateDetailScore replaces a detail score.
func (h *Handler) UpdateDetailScore(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body schema.DetailScore
	if !bindJSON(c, &body) {
		return
	}
	updated, err := h.svc.UpdateDetailScore(c.Request.Context(), id, body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteDetailScore removes a detail score.
func (h *Handler) DeleteDetailScore(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteDetailScore(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
