package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"trivia-backend/application/commands"
	"trivia-backend/application/commands/bus"
	"trivia-backend/application/queries"
	querybus "trivia-backend/application/queries/bus"
	"trivia-backend/domain/core/entities"
	"trivia-backend/pkg/common"
	appErrors "trivia-backend/pkg/errors"
)

// QuestionHandler handles question-related HTTP requests
type QuestionHandler struct {
	responder
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	errHandler *appErrors.ErrorHandler,
	logger *zap.Logger,
) *QuestionHandler {
	return &QuestionHandler{
		responder:  responder{errors: errHandler, logger: logger},
		commandBus: commandBus,
		queryBus:   queryBus,
	}
}

// ListQuestionsResponse represents one page of all questions
type ListQuestionsResponse struct {
	Success         bool                    `json:"success"`
	Questions       []entities.QuestionView `json:"questions"`
	TotalQuestions  int                     `json:"total_questions"`
	Categories      map[int]string          `json:"categories"`
	CurrentCategory *string                 `json:"current_category"`
}

// CreateQuestionResponse represents the response for creating a question
type CreateQuestionResponse struct {
	Success        bool                    `json:"success"`
	Created        int                     `json:"created"`
	Questions      []entities.QuestionView `json:"questions"`
	TotalQuestions int                     `json:"total_questions"`
}

// DeleteQuestionResponse represents the response for deleting a question
type DeleteQuestionResponse struct {
	Success        bool                    `json:"success"`
	Deleted        int                     `json:"deleted"`
	Questions      []entities.QuestionView `json:"questions"`
	TotalQuestions int                     `json:"total_questions"`
}

// SearchQuestionsResponse represents every question matching a search term
type SearchQuestionsResponse struct {
	Success        bool                    `json:"success"`
	Questions      []entities.QuestionView `json:"questions"`
	TotalQuestions int                     `json:"total_questions"`
	SearchTerm     string                  `json:"search_term"`
}

// ListQuestions handles GET /questions
func (h *QuestionHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	page, err := h.listPage(r, common.ExtractPage(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, ListQuestionsResponse{
		Success:        true,
		Questions:      page.Questions,
		TotalQuestions: page.TotalQuestions,
		Categories:     page.Categories,
	})
}

// CreateQuestion handles POST /questions
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req CreateQuestionRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	result, err := h.commandBus.Send(r.Context(), commands.CreateQuestionCommand{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   int(req.Category),
		Difficulty: int(req.Difficulty),
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	created, err := resultAs[*commands.CreateQuestionResult](result)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	page, err := h.listPage(r, 1)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.logger.Info("Question created",
		zap.Int("questionID", created.ID),
		zap.Int("category", int(req.Category)),
	)

	h.respondJSON(w, http.StatusOK, CreateQuestionResponse{
		Success:        true,
		Created:        created.ID,
		Questions:      page.Questions,
		TotalQuestions: page.TotalQuestions,
	})
}

// DeleteQuestion handles DELETE /questions/{questionID}
func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	questionID, err := pathID(r, "questionID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	result, err := h.commandBus.Send(r.Context(), commands.DeleteQuestionCommand{QuestionID: questionID})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	deleted, err := resultAs[*commands.DeleteQuestionResult](result)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	page, err := h.listPage(r, common.ExtractPage(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, DeleteQuestionResponse{
		Success:        true,
		Deleted:        deleted.ID,
		Questions:      page.Questions,
		TotalQuestions: page.TotalQuestions,
	})
}

// SearchQuestions handles POST and GET /questions/search?search=term
func (h *QuestionHandler) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.SearchQuestionsQuery{
		Term: r.URL.Query().Get("search"),
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	matches, err := resultAs[*queries.SearchQuestionsResult](result)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, SearchQuestionsResponse{
		Success:        true,
		Questions:      matches.Questions,
		TotalQuestions: matches.TotalQuestions,
		SearchTerm:     matches.SearchTerm,
	})
}

func (h *QuestionHandler) listPage(r *http.Request, page int) (*queries.ListQuestionsResult, error) {
	result, err := h.queryBus.Ask(r.Context(), queries.ListQuestionsQuery{Page: page})
	if err != nil {
		return nil, err
	}
	return resultAs[*queries.ListQuestionsResult](result)
}
