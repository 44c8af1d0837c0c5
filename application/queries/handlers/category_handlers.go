package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"trivia-backend/application/ports"
	"trivia-backend/application/queries"
	"trivia-backend/application/queries/bus"
	"trivia-backend/domain/core/entities"
	"trivia-backend/pkg/common"
	appErrors "trivia-backend/pkg/errors"
)

// ListCategoriesHandler answers ListCategoriesQuery
type ListCategoriesHandler struct {
	categoryRepo ports.CategoryRepository
}

// NewListCategoriesHandler creates a new list categories handler
func NewListCategoriesHandler(categoryRepo ports.CategoryRepository) *ListCategoriesHandler {
	return &ListCategoriesHandler{categoryRepo: categoryRepo}
}

// Handle executes the query
func (h *ListCategoriesHandler) Handle(ctx context.Context, q bus.Query) (interface{}, error) {
	if _, ok := q.(queries.ListCategoriesQuery); !ok {
		return nil, appErrors.NewInternal(fmt.Sprintf("unexpected query type %T", q), nil)
	}

	categories, err := h.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return &queries.ListCategoriesResult{
		Categories: entities.CategoryMap(categories),
	}, nil
}

// QuestionsByCategoryHandler answers QuestionsByCategoryQuery
type QuestionsByCategoryHandler struct {
	categoryRepo ports.CategoryRepository
	questionRepo ports.QuestionRepository
	logger       *zap.Logger
}

// NewQuestionsByCategoryHandler creates a new category listing handler
func NewQuestionsByCategoryHandler(
	categoryRepo ports.CategoryRepository,
	questionRepo ports.QuestionRepository,
	logger *zap.Logger,
) *QuestionsByCategoryHandler {
	return &QuestionsByCategoryHandler{
		categoryRepo: categoryRepo,
		questionRepo: questionRepo,
		logger:       logger,
	}
}

// Handle executes the query
func (h *QuestionsByCategoryHandler) Handle(ctx context.Context, q bus.Query) (interface{}, error) {
	query, ok := q.(queries.QuestionsByCategoryQuery)
	if !ok {
		return nil, appErrors.NewInternal(fmt.Sprintf("unexpected query type %T", q), nil)
	}

	category, err := h.categoryRepo.GetByID(ctx, query.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get category %d: %w", query.CategoryID, err)
	}

	questions, err := h.questionRepo.ListByCategory(ctx, category.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions of category %d: %w", category.ID, err)
	}

	h.logger.Debug("Listed category questions",
		zap.Int("categoryID", category.ID),
		zap.Int("matches", len(questions)),
		zap.Int("page", query.Page),
	)

	return &queries.QuestionsByCategoryResult{
		CategoryID:      category.ID,
		CurrentCategory: category.Type,
		Questions:       entities.FormatAll(common.Paginate(questions, query.Page, common.QuestionsPerPage)),
		TotalQuestions:  len(questions),
	}, nil
}
