package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"trivia-backend/application/queries"
	querybus "trivia-backend/application/queries/bus"
	"trivia-backend/domain/core/entities"
	"trivia-backend/pkg/common"
	appErrors "trivia-backend/pkg/errors"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	responder
	queryBus *querybus.QueryBus
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(
	queryBus *querybus.QueryBus,
	errHandler *appErrors.ErrorHandler,
	logger *zap.Logger,
) *CategoryHandler {
	return &CategoryHandler{
		responder: responder{errors: errHandler, logger: logger},
		queryBus:  queryBus,
	}
}

// ListCategoriesResponse represents the response for listing categories
type ListCategoriesResponse struct {
	Success    bool           `json:"success"`
	Categories map[int]string `json:"categories"`
}

// CategoryQuestionsResponse represents one page of a category's questions
type CategoryQuestionsResponse struct {
	Success         bool                    `json:"success"`
	CategoryID      int                     `json:"category_id"`
	CurrentCategory string                  `json:"current_category"`
	Questions       []entities.QuestionView `json:"questions"`
	TotalQuestions  int                     `json:"total_questions"`
}

// ListCategories handles GET /categories
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.ListCategoriesQuery{})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	categories, err := resultAs[*queries.ListCategoriesResult](result)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, ListCategoriesResponse{
		Success:    true,
		Categories: categories.Categories,
	})
}

// GetCategoryQuestions handles GET /categories/{categoryID}/questions
func (h *CategoryHandler) GetCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "categoryID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.QuestionsByCategoryQuery{
		CategoryID: categoryID,
		Page:       common.ExtractPage(r),
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	page, err := resultAs[*queries.QuestionsByCategoryResult](result)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, CategoryQuestionsResponse{
		Success:         true,
		CategoryID:      page.CategoryID,
		CurrentCategory: page.CurrentCategory,
		Questions:       page.Questions,
		TotalQuestions:  page.TotalQuestions,
	})
}
