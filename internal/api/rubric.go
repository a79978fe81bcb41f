package api

import (
	"net/http"

	"github.com/4NDR3-S01/ExposIA/schema"
	"github.com/gin-gonic/gin"
)

// ListCriteria returns the rubric criteria.
func (h *Handler) ListCriteria(c *gin.Context) {
	criteria, err := h.svc.ListCriteria(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orEmpty(criteria))
}

// CreateCriterion adds a rubric criterion.
func (h *Handler) CreateCriterion(c *gin.Context) {
	var body schema.Criterion
	if !bindJSON(c, &body) {
		return
	}
	created, err := h.svc.CreateCriterion(c.Request.Context(), body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetCriterion returns one criterion.
func (h *Handler) GetCriterion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	criterion, err := h.svc.GetCriterion(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, criterion)
}

// UpdateCriterion replaces a criterion.
func (h *Handler) UpdateCriterion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body schema.Criterion
	if !bindJSON(c, &body) {
		return
	}
	updated, err := h.svc.UpdateCriterion(c.Request.Context(), id, body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteCriterion removes a criterion that no detail score references.
func (h *Handler) DeleteCriterion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteCriterion(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListIdealParameters returns every ideal parameter set.
func (h *Handler) ListIdealParameters(c *gin.Context) {
	sets, err := h.svc.ListIdealParameters(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orEmpty(sets))
}

// CreateIdealParameters adds an ideal parameter set.
func (h *Handler) CreateIdealParameters(c *gin.Context) {
	var body schema.IdealParameterSet
	if !bindJSON(c, &body) {
		return
	}
	created, err := h.svc.CreateIdealParameters(c.Request.Context(), body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetIdealParameters returns one ideal parameter set.
func (h *Handler) GetIdealParameters(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	set, err := h.svc.GetIdealParameters(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, set)
}

// UpdateIdealParameters replaces an ideal parameter set.
func (h *Handler) UpdateIdealParameters(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body schema.IdealParameterSet
	if !bindJSON(c, &body) {
		return
	}
	updated, err := h.svc.UpdateIdealParameters(c.Request.Context(), id, body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteIdealParameters removes an ideal parameter set.
func (h *Handler) DeleteIdealParameters(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteIdealParameters(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
