package queries

import "trivia-backend/domain/core/entities"

// QuestionsByCategoryQuery asks for one page of a category's questions
type QuestionsByCategoryQuery struct {
	CategoryID int
	Page       int
}

// Validate validates the query
func (q QuestionsByCategoryQuery) Validate() error {
	return nil
}

// QuestionsByCategoryResult is one page of a category. TotalQuestions counts
// every question in the category, not just the page.
type QuestionsByCategoryResult struct {
	CategoryID      int
	CurrentCategory string
	Questions       []entities.QuestionView
	TotalQuestions  int
}
