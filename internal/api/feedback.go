package api

import (
	"net/http"

	"github.com/4NDR3-S01/ExposIA/schema"
	"github.com/gin-gonic/gin"
)

// ListFeedback returns every feedback entry.
func (h *Handler) ListFeedback(c *gin.Context) {
	entries, err := h.svc.ListFeedback(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orEmpty(entries))
}

// CreateFeedback appends a feedback entry to a grading.
func (h *Handler) CreateFeedback(c *gin.Context) {
	var body schema.FeedbackEntry
	if !bindJSON(c, &body) {
		return
	}
	created, err := h.svc.AddFeedback(c.Request.Context(), body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetFeedback returns one feedback entry.
func (h *Handler) GetFeedback(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	entry, err := h.svc.GetFeedback(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}
