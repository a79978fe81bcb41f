package notify

import (
	"context"

	"github.com/4NDR3-S01/ExposIA/internal/contract"
	"github.com/stretchr/testify/mock"
)

// MockNotifier is a mock implementation of Notifier for testing.
type MockNotifier struct {
	mock.Mock
}

var _ contract.Notifier = &MockNotifier{} // Compile-time check

// Notify implements the Notifier interface.
func (m *MockNotifier) Notify(ctx context.Context, event string, payload map[string]any) {
	m.Called(ctx, event, payload)
}
