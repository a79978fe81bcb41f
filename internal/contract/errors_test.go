package contract

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := fmt.Errorf("load: %w", &NotFoundError{Entity: "grading", ID: 9})

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
	assert.Equal(t, "load: grading 9 not found", err.Error())

	var nf *NotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, int64(9), nf.ID)
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "score", Reason: "must be finite"}
	assert.Equal(t, "invalid score: must be finite", err.Error())
	assert.True(t, IsValidation(fmt.Errorf("wrap: %w", err)))
	assert.False(t, IsNotFound(err))

	assert.Equal(t, "invalid input: empty", (&ValidationError{Reason: "empty"}).Error())
}

func TestPersistenceErrorUnwrap(t *testing.T) {
	base := errors.New("disk full")
	err := &PersistenceError{Op: "save feedback", Err: base}

	assert.ErrorIs(t, err, base)
	assert.Equal(t, "save feedback: disk full", err.Error())
}

func TestNotificationError(t *testing.T) {
	withStatus := &NotificationError{Event: "grading.created", StatusCode: 500}
	assert.Equal(t, "notify grading.created: unexpected status 500", withStatus.Error())

	base := errors.New("connection refused")
	withErr := &NotificationError{Event: "grading.ai.applied", Err: base}
	assert.ErrorIs(t, withErr, base)
	assert.Contains(t, withErr.Error(), "connection refused")
}
