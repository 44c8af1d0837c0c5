package queries

import (
	"strings"

	"trivia-backend/domain/core/entities"
	appErrors "trivia-backend/pkg/errors"
)

// SearchQuestionsQuery looks for questions whose text contains Term
type SearchQuestionsQuery struct {
	Term string
}

// Validate validates the query
func (q SearchQuestionsQuery) Validate() error {
	if strings.TrimSpace(q.Term) == "" {
		return appErrors.NewBadRequest("search term is required")
	}
	return nil
}

// SearchQuestionsResult holds every match, unpaginated
type SearchQuestionsResult struct {
	Questions      []entities.QuestionView
	TotalQuestions int
	SearchTerm     string
}
