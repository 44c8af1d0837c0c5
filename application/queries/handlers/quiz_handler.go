package handlers

import (
	"context"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"trivia-backend/application/ports"
	"trivia-backend/application/queries"
	"trivia-backend/application/queries/bus"
	appErrors "trivia-backend/pkg/errors"
	"trivia-backend/pkg/observability"
)

// Picker returns an index in [0, n). n is always positive.
type Picker func(n int) int

// NextQuizQuestionHandler answers NextQuizQuestionQuery
type NextQuizQuestionHandler struct {
	categoryRepo ports.CategoryRepository
	questionRepo ports.QuestionRepository
	metrics      ports.MetricsRecorder
	pick         Picker
	logger       *zap.Logger
}

// NewNextQuizQuestionHandler creates a new quiz handler. A nil picker draws
// uniformly at random.
func NewNextQuizQuestionHandler(
	categoryRepo ports.CategoryRepository,
	questionRepo ports.QuestionRepository,
	metrics ports.MetricsRecorder,
	pick Picker,
	logger *zap.Logger,
) *NextQuizQuestionHandler {
	if pick == nil {
		pick = rand.Intn
	}
	return &NextQuizQuestionHandler{
		categoryRepo: categoryRepo,
		questionRepo: questionRepo,
		metrics:      metrics,
		pick:         pick,
		logger:       logger,
	}
}

// Handle executes the query
func (h *NextQuizQuestionHandler) Handle(ctx context.Context, q bus.Query) (interface{}, error) {
	query, ok := q.(queries.NextQuizQuestionQuery)
	if !ok {
		return nil, appErrors.NewInternal(fmt.Sprintf("unexpected query type %T", q), nil)
	}

	if query.CategoryID != queries.AllCategories {
		if _, err := h.categoryRepo.GetByID(ctx, query.CategoryID); err != nil {
			return nil, fmt.Errorf("failed to get quiz category %d: %w", query.CategoryID, err)
		}
	}

	candidates, err := h.questionRepo.FindCandidates(ctx, query.CategoryID, query.PreviousQuestions)
	if err != nil {
		return nil, fmt.Errorf("failed to find quiz candidates: %w", err)
	}

	result := &queries.NextQuizQuestionResult{TotalQuestions: len(candidates)}
	if len(candidates) == 0 {
		h.metrics.IncrementCounter(observability.CounterQuizzesCompleted, nil)
		h.logger.Debug("Quiz exhausted",
			zap.Int("categoryID", query.CategoryID),
			zap.Int("previous", len(query.PreviousQuestions)),
		)
		return result, nil
	}

	view := candidates[h.pick(len(candidates))].Format()
	result.Question = &view
	h.metrics.IncrementCounter(observability.CounterQuizQuestionsServed, nil)

	return result, nil
}
