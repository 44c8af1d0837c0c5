package queries

import (
	"fmt"

	"trivia-backend/domain/core/entities"
	appErrors "trivia-backend/pkg/errors"
)

// AllCategories selects questions from every category in a quiz
const AllCategories = 0

// MaxPreviousQuestions bounds the quiz history. Each id becomes one bind
// parameter and PostgreSQL accepts at most 65535 per statement.
const MaxPreviousQuestions = 10000

// NextQuizQuestionQuery asks for a random question the player has not seen
type NextQuizQuestionQuery struct {
	PreviousQuestions []int
	CategoryID        int
}

// Validate validates the query
func (q NextQuizQuestionQuery) Validate() error {
	if q.PreviousQuestions == nil {
		return appErrors.NewBadRequest("previous_questions is required")
	}
	if len(q.PreviousQuestions) > MaxPreviousQuestions {
		return appErrors.NewBadRequest(fmt.Sprintf("previous_questions must hold at most %d ids", MaxPreviousQuestions))
	}
	if q.CategoryID < AllCategories {
		return appErrors.NewBadRequest("quiz_category id must not be negative")
	}
	return nil
}

// NextQuizQuestionResult carries the picked question, or nil once every
// candidate has been seen
type NextQuizQuestionResult struct {
	Question       *entities.QuestionView
	TotalQuestions int
}
