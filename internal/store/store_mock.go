package store

import (
	"context"

	"github.com/4NDR3-S01/ExposIA/internal/contract"
	"github.com/4NDR3-S01/ExposIA/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetStore implements the StoreManager interface.
func (m *MockStoreManager) GetStore() contract.Store {
	ret := m.Called()
	s, _ := ret.Get(0).(contract.Store)
	return s
}

// MockStore is a mock implementation of Store for testing.
type MockStore struct {
	mock.Mock
}

var _ contract.Store = &MockStore{} // Compile-time check

// SaveGrading implements the GradingStore interface.
func (m *MockStore) SaveGrading(ctx context.Context, g schema.Grading) (schema.Grading, error) {
	args := m.Called(ctx, g)
	return args.Get(0).(schema.Grading), args.Error(1)
}

// FindGrading implements the GradingStore interface.
func (m *MockStore) FindGrading(ctx context.Context, id int64) (schema.Grading, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(schema.Grading), args.Error(1)
}

// ListGradings implements the GradingStore interface.
func (m *MockStore) ListGradings(ctx context.Context) ([]schema.Grading, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]schema.Grading)
	return out, args.Error(1)
}

// DeleteGrading implements the GradingStore interface.
func (m *MockStore) DeleteGrading(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// SaveDetailScore implements the DetailScoreStore interface.
func (m *MockStore) SaveDetailScore(ctx context.Context, d schema.DetailScore) (schema.DetailScore, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(schema.DetailScore), args.Error(1)
}

// FindDetailScore implements the DetailScoreStore interface.
func (m *MockStore) FindDetailScore(ctx context.Context, id int64) (schema.DetailScore, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(schema.DetailScore), args.Error(1)
}

// ListDetailScores implements the DetailScoreStore interface.
func (m *MockStore) ListDetailScores(ctx context.Context) ([]schema.DetailScore, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]schema.DetailScore)
	return out, args.Error(1)
}

// ListDetailScoresByGrading implements the DetailScoreStore interface.
func (m *MockStore) ListDetailScoresByGrading(ctx context.Context, gradingID int64) ([]schema.DetailScore, error) {
	args := m.Called(ctx, gradingID)
	out, _ := args.Get(0).([]schema.DetailScore)
	return out, args.Error(1)
}

// DeleteDetailScore implements the DetailScoreStore interface.
func (m *MockStore) DeleteDetailScore(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// SaveFeedback implements the FeedbackStore interface.
func (m *MockStore) SaveFeedback(ctx context.Context, f schema.FeedbackEntry) (schema.FeedbackEntry, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(schema.FeedbackEntry), args.Error(1)
}

// FindFeedback implements the FeedbackStore interface.
func (m *MockStore) FindFeedback(ctx context.Context, id int64) (schema.FeedbackEntry, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(schema.FeedbackEntry), args.Error(1)
}

// ListFeedback implements the FeedbackStore interface.
func (m *MockStore) ListFeedback(ctx context.Context) ([]schema.FeedbackEntry, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]schema.FeedbackEntry)
	return out, args.Error(1)
}

// ListFeedbackByGrading implements the FeedbackStore interface.
func (m *MockStore) ListFeedbackByGrading(ctx context.Context, gradingID int64) ([]schema.FeedbackEntry, error) {
	args := m.Called(ctx, gradingID)
	out, _ := args.Get(0).([]schema.FeedbackEntry)
	return out, args.Error(1)
}

// SaveCriterion implements the CriterionStore interface.
func (m *MockStore) SaveCriterion(ctx context.Context, c schema.Criterion) (schema.Criterion, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(schema.Criterion), args.Error(1)
}

// FindCriterion implements the CriterionStore interface.
func (m *MockStore) FindCriterion(ctx context.Context, id int64) (schema.Criterion, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(schema.Criterion), args.Error(1)
}

// ListCriteria implements the CriterionStore interface.
func (m *MockStore) ListCriteria(ctx context.Context) ([]schema.Criterion, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]schema.Criterion)
	return out, args.Error(1)
}

// DeleteCriterion implements the CriterionStore interface.
func (m *MockStore) DeleteCriterion(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// SaveIdealParameters implements the IdealParameterStore interface.
func (m *MockStore) SaveIdealParameters(ctx context.Context, p schema.IdealParameterSet) (schema.IdealParameterSet, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(schema.IdealParameterSet), args.Error(1)
}

// FindIdealParameters implements the IdealParameterStore interface.
func (m *MockStore) FindIdealParameters(ctx context.Context, id int64) (schema.IdealParameterSet, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(schema.IdealParameterSet), args.Error(1)
}

// ListIdealParameters implements the IdealParameterStore interface.
func (m *MockStore) ListIdealParameters(ctx context.Context) ([]schema.IdealParameterSet, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]schema.IdealParameterSet)
	return out, args.Error(1)
}

// DeleteIdealParameters implements the IdealParameterStore interface.
func (m *MockStore) DeleteIdealParameters(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// GetStatus implements the Store interface.
func (m *MockStore) GetStatus(ctx context.Context) (schema.StoreStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).(schema.StoreStatus), args.Error(1)
}

// Close implements the Store interface.
func (m *MockStore) Close() error {
	return m.Called().Error(0)
}
