package handlers

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"trivia-backend/application/commands"
	"trivia-backend/application/commands/bus"
	"trivia-backend/application/ports"
	"trivia-backend/domain/core/entities"
	"trivia-backend/domain/events"
	appErrors "trivia-backend/pkg/errors"
	"trivia-backend/pkg/observability"
)

// CreateQuestionHandler handles CreateQuestionCommand
type CreateQuestionHandler struct {
	questionRepo ports.QuestionRepository
	publisher    ports.EventPublisher
	metrics      ports.MetricsRecorder
	logger       *zap.Logger
}

// NewCreateQuestionHandler creates a new create question handler
func NewCreateQuestionHandler(
	questionRepo ports.QuestionRepository,
	publisher ports.EventPublisher,
	metrics ports.MetricsRecorder,
	logger *zap.Logger,
) *CreateQuestionHandler {
	return &CreateQuestionHandler{
		questionRepo: questionRepo,
		publisher:    publisher,
		metrics:      metrics,
		logger:       logger,
	}
}

// Handle executes the command
func (h *CreateQuestionHandler) Handle(ctx context.Context, c bus.Command) (interface{}, error) {
	cmd, ok := c.(commands.CreateQuestionCommand)
	if !ok {
		return nil, appErrors.NewInternal(fmt.Sprintf("unexpected command type %T", c), nil)
	}

	question := entities.NewQuestion(cmd.Question, cmd.Answer, cmd.Category, cmd.Difficulty)
	if err := h.questionRepo.Create(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	h.metrics.IncrementCounter(observability.CounterQuestionsCreated, nil)
	publishBestEffort(ctx, h.publisher, h.metrics, h.logger,
		events.NewQuestionCreated(question.ID, question.Category, question.Difficulty, time.Now()))

	return &commands.CreateQuestionResult{ID: question.ID}, nil
}
