package handlers

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"trivia-backend/application/commands"
	"trivia-backend/application/commands/bus"
	"trivia-backend/application/ports"
	"trivia-backend/domain/events"
	appErrors "trivia-backend/pkg/errors"
	"trivia-backend/pkg/observability"
)

// DeleteQuestionHandler handles DeleteQuestionCommand
type DeleteQuestionHandler struct {
	questionRepo ports.QuestionRepository
	publisher    ports.EventPublisher
	metrics      ports.MetricsRecorder
	logger       *zap.Logger
}

// NewDeleteQuestionHandler creates a new delete question handler
func NewDeleteQuestionHandler(
	questionRepo ports.QuestionRepository,
	publisher ports.EventPublisher,
	metrics ports.MetricsRecorder,
	logger *zap.Logger,
) *DeleteQuestionHandler {
	return &DeleteQuestionHandler{
		questionRepo: questionRepo,
		publisher:    publisher,
		metrics:      metrics,
		logger:       logger,
	}
}

// Handle executes the command
func (h *DeleteQuestionHandler) Handle(ctx context.Context, c bus.Command) (interface{}, error) {
	cmd, ok := c.(commands.DeleteQuestionCommand)
	if !ok {
		return nil, appErrors.NewInternal(fmt.Sprintf("unexpected command type %T", c), nil)
	}

	question, err := h.questionRepo.GetByID(ctx, cmd.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get question %d: %w", cmd.QuestionID, err)
	}

	if err := h.questionRepo.Delete(ctx, question.ID); err != nil {
		return nil, fmt.Errorf("failed to delete question %d: %w", question.ID, err)
	}

	h.metrics.IncrementCounter(observability.CounterQuestionsDeleted, nil)
	publishBestEffort(ctx, h.publisher, h.metrics, h.logger,
		events.NewQuestionDeleted(question.ID, question.Category, time.Now()))

	return &commands.DeleteQuestionResult{ID: question.ID}, nil
}
