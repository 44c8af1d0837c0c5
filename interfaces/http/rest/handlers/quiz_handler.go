package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"trivia-backend/application/queries"
	querybus "trivia-backend/application/queries/bus"
	"trivia-backend/domain/core/entities"
	appErrors "trivia-backend/pkg/errors"
)

// QuizHandler serves quiz play
type QuizHandler struct {
	responder
	queryBus *querybus.QueryBus
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(
	queryBus *querybus.QueryBus,
	errHandler *appErrors.ErrorHandler,
	logger *zap.Logger,
) *QuizHandler {
	return &QuizHandler{
		responder: responder{errors: errHandler, logger: logger},
		queryBus:  queryBus,
	}
}

// QuizResponse carries the next question, or null when the quiz is over
type QuizResponse struct {
	Success        bool                   `json:"success"`
	Question       *entities.QuestionView `json:"question"`
	TotalQuestions int                    `json:"total_questions"`
}

// NextQuestion handles POST /quizzes
func (h *QuizHandler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	var req QuizRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.NextQuizQuestionQuery{
		PreviousQuestions: req.previousIDs(),
		CategoryID:        req.categoryID(),
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	next, err := resultAs[*queries.NextQuizQuestionResult](result)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, QuizResponse{
		Success:        true,
		Question:       next.Question,
		TotalQuestions: next.TotalQuestions,
	})
}
