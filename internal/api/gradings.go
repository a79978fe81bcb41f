package api

import (
	"net/http"

	"github.com/4NDR3-S01/ExposIA/schema"
	"github.com/gin-gonic/gin"
)

// ListGradings returns every grading.
func (h *Handler) ListGradings(c *gin.Context) {
	gradings, err := h.svc.ListGradings(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orEmpty(gradings))
}

// CreateGrading stores a new grading.
func (h *Handler) CreateGrading(c *gin.Context) {
	var g schema.Grading
	if !bindJSON(c, &g) {
		return
	}
	created, err := h.svc.CreateGrading(c.Request.Context(), g)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetGrading returns a grading with its details and feedback.
func (h *Handler) GetGrading(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	agg, err := h.svc.GetGrading(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, agg)
}

// UpdateGrading replaces a grading.
func (h *Handler) UpdateGrading(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var g schema.Grading
	if !bindJSON(c, &g) {
		return
	}
	updated, err := h.svc.UpdateGrading(c.Request.Context(), id, g)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteGrading removes a grading and everything it owns.
func (h *Handler) DeleteGrading(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteGrading(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ApplyAIGrading reconciles the grading with an AI payload.
func (h *Handler) ApplyAIGrading(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload schema.AIGradingPayload
	if !bindJSON(c, &payload) {
		return
	}
	agg, err := h.svc.Reconcile(c.Request.Context(), id, payload)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, agg)
}

// ListGradingDetails returns the detail scores of one grading.
func (h *Handler) ListGradingDetails(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	details, err := h.svc.ListDetailScoresByGrading(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orEmpty(details))
}

// ListGradingFeedback returns the feedback of one grading.
func (h *Handler) ListGradingFeedback(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	entries, err := h.svc.ListFeedbackByGrading(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orEmpty(entries))
}
