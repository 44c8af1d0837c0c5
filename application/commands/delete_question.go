package commands

import appErrors "trivia-backend/pkg/errors"

// DeleteQuestionCommand removes one question
type DeleteQuestionCommand struct {
	QuestionID int
}

// Validate validates the command. Ids below 1 are never assigned, so they
// cannot name an existing question.
func (c DeleteQuestionCommand) Validate() error {
	if c.QuestionID < 1 {
		return appErrors.NewNotFound("question")
	}
	return nil
}

// DeleteQuestionResult echoes the removed id
type DeleteQuestionResult struct {
	ID int
}
