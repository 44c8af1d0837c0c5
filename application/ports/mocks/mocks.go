// Package mocks holds testify mocks for the application ports.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"trivia-backend/application/ports"
	"trivia-backend/domain/core/entities"
	"trivia-backend/domain/events"
)

var (
	_ ports.CategoryRepository = (*MockCategoryRepository)(nil)
	_ ports.QuestionRepository = (*MockQuestionRepository)(nil)
	_ ports.EventPublisher     = (*MockEventPublisher)(nil)
	_ ports.MetricsRecorder    = (*MockMetricsRecorder)(nil)
)

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]entities.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]entities.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id int) (*entities.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*entities.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *entities.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) List(ctx context.Context) ([]entities.Question, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]entities.Question), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuestionRepository) GetByID(ctx context.Context, id int) (*entities.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*entities.Question), args.Error(1)
	}
	return nil, args.Error(1)
}

// Create assigns the id given as the second return argument when the call succeeds
func (m *MockQuestionRepository) Create(ctx context.Context, question *entities.Question) error {
	args := m.Called(ctx, question)
	if args.Error(0) == nil && len(args) > 1 {
		question.ID = args.Int(1)
	}
	return args.Error(0)
}

func (m *MockQuestionRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuestionRepository) Search(ctx context.Context, term string) ([]entities.Question, error) {
	args := m.Called(ctx, term)
	if args.Get(0) != nil {
		return args.Get(0).([]entities.Question), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuestionRepository) ListByCategory(ctx context.Context, categoryID int) ([]entities.Question, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) != nil {
		return args.Get(0).([]entities.Question), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuestionRepository) FindCandidates(ctx context.Context, categoryID int, excludeIDs []int) ([]entities.Question, error) {
	args := m.Called(ctx, categoryID, excludeIDs)
	if args.Get(0) != nil {
		return args.Get(0).([]entities.Question), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishBatch(ctx context.Context, batch []events.DomainEvent) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

type MockMetricsRecorder struct {
	mock.Mock
}

func (m *MockMetricsRecorder) IncrementCounter(name string, tags map[string]string) {
	m.Called(name, tags)
}
