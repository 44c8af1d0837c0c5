package queries

import "trivia-backend/domain/core/entities"

// ListQuestionsQuery asks for one page of all questions. Pages outside the
// collection are valid and come back empty.
type ListQuestionsQuery struct {
	Page int
}

// Validate validates the query
func (q ListQuestionsQuery) Validate() error {
	return nil
}

// ListQuestionsResult is one page of questions plus collection totals
type ListQuestionsResult struct {
	Questions      []entities.QuestionView
	TotalQuestions int
	Categories     map[int]string
}
