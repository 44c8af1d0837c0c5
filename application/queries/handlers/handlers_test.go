package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"trivia-backend/application/ports"
	"trivia-backend/application/ports/mocks"
	"trivia-backend/application/queries"
	"trivia-backend/domain/core/entities"
	appErrors "trivia-backend/pkg/errors"
	"trivia-backend/pkg/observability"
)

func makeQuestions(n, category int) []entities.Question {
	out := make([]entities.Question, n)
	for i := range out {
		out[i] = entities.Question{
			ID:         i + 1,
			Question:   "Question",
			Answer:     "Answer",
			Category:   category,
			Difficulty: 1,
		}
	}
	return out
}

func TestListCategoriesHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("Should map every category by id", func(t *testing.T) {
		// Arrange
		categoryRepo := new(mocks.MockCategoryRepository)
		categoryRepo.On("List", ctx).Return([]entities.Category{{ID: 1, Type: "Science"}, {ID: 2, Type: "Art"}}, nil)
		h := NewListCategoriesHandler(categoryRepo)

		// Act
		result, err := h.Handle(ctx, queries.ListCategoriesQuery{})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, map[int]string{1: "Science", 2: "Art"}, result.(*queries.ListCategoriesResult).Categories)
		categoryRepo.AssertExpectations(t)
	})

	t.Run("Should propagate store failures", func(t *testing.T) {
		categoryRepo := new(mocks.MockCategoryRepository)
		categoryRepo.On("List", ctx).Return(nil, appErrors.NewUnprocessable("db", errors.New("down")))

		_, err := NewListCategoriesHandler(categoryRepo).Handle(ctx, queries.ListCategoriesQuery{})

		assert.Equal(t, appErrors.KindUnprocessable, appErrors.KindOf(err))
	})
}

func TestListQuestionsHandler(t *testing.T) {
	ctx := context.Background()
	categories := []entities.Category{{ID: 1, Type: "Science"}}

	tests := []struct {
		name      string
		page      int
		wantCount int
		wantFirst int
	}{
		{"first page", 1, 10, 1},
		{"last partial page", 2, 9, 11},
		{"out of range page", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questionRepo := new(mocks.MockQuestionRepository)
			categoryRepo := new(mocks.MockCategoryRepository)
			questionRepo.On("List", ctx).Return(makeQuestions(19, 1), nil)
			categoryRepo.On("List", ctx).Return(categories, nil)

			result, err := NewListQuestionsHandler(questionRepo, categoryRepo).Handle(ctx, queries.ListQuestionsQuery{Page: tt.page})

			require.NoError(t, err)
			res := result.(*queries.ListQuestionsResult)
			assert.Len(t, res.Questions, tt.wantCount)
			assert.NotNil(t, res.Questions)
			assert.Equal(t, 19, res.TotalQuestions)
			assert.Equal(t, map[int]string{1: "Science"}, res.Categories)
			if tt.wantCount > 0 {
				assert.Equal(t, tt.wantFirst, res.Questions[0].ID)
			}
		})
	}
}

func TestSearchQuestionsHandler(t *testing.T) {
	ctx := context.Background()
	questionRepo := new(mocks.MockQuestionRepository)
	questionRepo.On("Search", ctx, "title").Return([]entities.Question{
		{ID: 4, Question: "What is the Title of the book?", Answer: "X", Category: 4, Difficulty: 2},
	}, nil)

	result, err := NewSearchQuestionsHandler(questionRepo).Handle(ctx, queries.SearchQuestionsQuery{Term: "title"})

	require.NoError(t, err)
	res := result.(*queries.SearchQuestionsResult)
	assert.Equal(t, 1, res.TotalQuestions)
	assert.Equal(t, "title", res.SearchTerm)
	assert.Equal(t, 4, res.Questions[0].ID)

	t.Run("Should echo the trimmed term it matched", func(t *testing.T) {
		result, err := NewSearchQuestionsHandler(questionRepo).Handle(ctx, queries.SearchQuestionsQuery{Term: "  title "})

		require.NoError(t, err)
		assert.Equal(t, "title", result.(*queries.SearchQuestionsResult).SearchTerm)
	})
}

func TestQuestionsByCategoryHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("Should report the pre-pagination total", func(t *testing.T) {
		categoryRepo := new(mocks.MockCategoryRepository)
		questionRepo := new(mocks.MockQuestionRepository)
		categoryRepo.On("GetByID", ctx, 3).Return(&entities.Category{ID: 3, Type: "Geography"}, nil)
		questionRepo.On("ListByCategory", ctx, 3).Return(makeQuestions(12, 3), nil)

		result, err := NewQuestionsByCategoryHandler(categoryRepo, questionRepo, zap.NewNop()).
			Handle(ctx, queries.QuestionsByCategoryQuery{CategoryID: 3, Page: 2})

		require.NoError(t, err)
		res := result.(*queries.QuestionsByCategoryResult)
		assert.Equal(t, 3, res.CategoryID)
		assert.Equal(t, "Geography", res.CurrentCategory)
		assert.Len(t, res.Questions, 2)
		assert.Equal(t, 12, res.TotalQuestions)
	})

	t.Run("Should return not found for an unknown category", func(t *testing.T) {
		categoryRepo := new(mocks.MockCategoryRepository)
		questionRepo := new(mocks.MockQuestionRepository)
		categoryRepo.On("GetByID", ctx, 99).Return(nil, appErrors.NewNotFound("category"))

		_, err := NewQuestionsByCategoryHandler(categoryRepo, questionRepo, zap.NewNop()).
			Handle(ctx, queries.QuestionsByCategoryQuery{CategoryID: 99, Page: 1})

		assert.True(t, appErrors.IsNotFound(err))
		questionRepo.AssertNotCalled(t, "ListByCategory", mock.Anything, mock.Anything)
	})
}

func TestNextQuizQuestionHandler(t *testing.T) {
	ctx := context.Background()
	first := func(n int) int { return 0 }
	last := func(n int) int { return n - 1 }

	t.Run("Should draw from every category when id is zero", func(t *testing.T) {
		// Arrange
		categoryRepo := new(mocks.MockCategoryRepository)
		questionRepo := new(mocks.MockQuestionRepository)
		metrics := new(mocks.MockMetricsRecorder)
		questionRepo.On("FindCandidates", ctx, 0, []int{}).Return(makeQuestions(5, 1), nil)
		metrics.On("IncrementCounter", observability.CounterQuizQuestionsServed, map[string]string(nil)).Return()
		h := NewNextQuizQuestionHandler(categoryRepo, questionRepo, metrics, last, zap.NewNop())

		// Act
		result, err := h.Handle(ctx, queries.NextQuizQuestionQuery{PreviousQuestions: []int{}, CategoryID: 0})

		// Assert
		require.NoError(t, err)
		res := result.(*queries.NextQuizQuestionResult)
		require.NotNil(t, res.Question)
		assert.Equal(t, 5, res.Question.ID)
		assert.Equal(t, 5, res.TotalQuestions)
		categoryRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		metrics.AssertExpectations(t)
	})

	t.Run("Should return a null question once the category is exhausted", func(t *testing.T) {
		categoryRepo := new(mocks.MockCategoryRepository)
		questionRepo := new(mocks.MockQuestionRepository)
		metrics := new(mocks.MockMetricsRecorder)
		categoryRepo.On("GetByID", ctx, 2).Return(&entities.Category{ID: 2, Type: "Art"}, nil)
		questionRepo.On("FindCandidates", ctx, 2, []int{1, 2}).Return([]entities.Question{}, nil)
		metrics.On("IncrementCounter", observability.CounterQuizzesCompleted, map[string]string(nil)).Return()

		result, err := NewNextQuizQuestionHandler(categoryRepo, questionRepo, metrics, first, zap.NewNop()).
			Handle(ctx, queries.NextQuizQuestionQuery{PreviousQuestions: []int{1, 2}, CategoryID: 2})

		require.NoError(t, err)
		res := result.(*queries.NextQuizQuestionResult)
		assert.Nil(t, res.Question)
		assert.Zero(t, res.TotalQuestions)
		metrics.AssertExpectations(t)
	})

	t.Run("Should return not found for an unknown category", func(t *testing.T) {
		categoryRepo := new(mocks.MockCategoryRepository)
		questionRepo := new(mocks.MockQuestionRepository)
		categoryRepo.On("GetByID", ctx, 1000).Return(nil, appErrors.NewNotFound("category"))

		_, err := NewNextQuizQuestionHandler(categoryRepo, questionRepo, ports.NoopMetrics{}, first, zap.NewNop()).
			Handle(ctx, queries.NextQuizQuestionQuery{PreviousQuestions: []int{}, CategoryID: 1000})

		assert.True(t, appErrors.IsNotFound(err))
		questionRepo.AssertNotCalled(t, "FindCandidates", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should pick uniformly with the default picker", func(t *testing.T) {
		categoryRepo := new(mocks.MockCategoryRepository)
		questionRepo := new(mocks.MockQuestionRepository)
		questionRepo.On("FindCandidates", ctx, 0, []int{}).Return(makeQuestions(3, 1), nil)
		h := NewNextQuizQuestionHandler(categoryRepo, questionRepo, ports.NoopMetrics{}, nil, zap.NewNop())

		seen := map[int]bool{}
		for i := 0; i < 200; i++ {
			result, err := h.Handle(ctx, queries.NextQuizQuestionQuery{PreviousQuestions: []int{}})
			require.NoError(t, err)
			seen[result.(*queries.NextQuizQuestionResult).Question.ID] = true
		}

		assert.Len(t, seen, 3)
	})
}

func TestNextQuizQuestionQuery_Validate(t *testing.T) {
	assert.True(t, appErrors.IsBadRequest(queries.NextQuizQuestionQuery{}.Validate()))
	assert.True(t, appErrors.IsBadRequest(queries.NextQuizQuestionQuery{PreviousQuestions: []int{}, CategoryID: -1}.Validate()))
	assert.NoError(t, queries.NextQuizQuestionQuery{PreviousQuestions: []int{}}.Validate())
	assert.NoError(t, queries.NextQuizQuestionQuery{PreviousQuestions: make([]int, queries.MaxPreviousQuestions)}.Validate())
	assert.True(t, appErrors.IsBadRequest(queries.NextQuizQuestionQuery{PreviousQuestions: make([]int, queries.MaxPreviousQuestions+1)}.Validate()))
	assert.True(t, appErrors.IsBadRequest(queries.SearchQuestionsQuery{Term: "  "}.Validate()))
}
