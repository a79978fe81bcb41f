package api

import (
	"net/http"
	"strconv"

	"github.com/4NDR3-S01/ExposIA/internal/contract"
	"github.com/gin-gonic/gin"
)

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case contract.IsNotFound(err):
		return http.StatusNotFound
	case contract.IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		contract.LogWarn("Request "+c.Request.Method+" "+c.FullPath()+" failed", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// pathID parses the :id path parameter. It writes a 400 and returns false when invalid.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id: " + c.Param("id")})
		return 0, false
	}
	return id, true
}

// bindJSON decodes the request body into dst. It writes a 400 and returns false on malformed input.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return false
	}
	return true
}

// orEmpty keeps list responses as JSON arrays when there is nothing to return.
func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
