package handlers

import (
	"context"
	"fmt"
	"strings"

	"trivia-backend/application/ports"
	"trivia-backend/application/queries"
	"trivia-backend/application/queries/bus"
	"trivia-backend/domain/core/entities"
	"trivia-backend/pkg/common"
	appErrors "trivia-backend/pkg/errors"
)

// ListQuestionsHandler answers ListQuestionsQuery
type ListQuestionsHandler struct {
	questionRepo ports.QuestionRepository
	categoryRepo ports.CategoryRepository
}

// NewListQuestionsHandler creates a new list questions handler
func NewListQuestionsHandler(questionRepo ports.QuestionRepository, categoryRepo ports.CategoryRepository) *ListQuestionsHandler {
	return &ListQuestionsHandler{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
	}
}

// Handle executes the query
func (h *ListQuestionsHandler) Handle(ctx context.Context, q bus.Query) (interface{}, error) {
	query, ok := q.(queries.ListQuestionsQuery)
	if !ok {
		return nil, appErrors.NewInternal(fmt.Sprintf("unexpected query type %T", q), nil)
	}

	questions, err := h.questionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	categories, err := h.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return &queries.ListQuestionsResult{
		Questions:      entities.FormatAll(common.Paginate(questions, query.Page, common.QuestionsPerPage)),
		TotalQuestions: len(questions),
		Categories:     entities.CategoryMap(categories),
	}, nil
}

// SearchQuestionsHandler answers SearchQuestionsQuery
type SearchQuestionsHandler struct {
	questionRepo ports.QuestionRepository
}

// NewSearchQuestionsHandler creates a new search handler
func NewSearchQuestionsHandler(questionRepo ports.QuestionRepository) *SearchQuestionsHandler {
	return &SearchQuestionsHandler{questionRepo: questionRepo}
}

// Handle executes the query
func (h *SearchQuestionsHandler) Handle(ctx context.Context, q bus.Query) (interface{}, error) {
	query, ok := q.(queries.SearchQuestionsQuery)
	if !ok {
		return nil, appErrors.NewInternal(fmt.Sprintf("unexpected query type %T", q), nil)
	}

	term := strings.TrimSpace(query.Term)
	matches, err := h.questionRepo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}

	return &queries.SearchQuestionsResult{
		Questions:      entities.FormatAll(matches),
		TotalQuestions: len(matches),
		SearchTerm:     term,
	}, nil
}
