package commands

import (
	appErrors "trivia-backend/pkg/errors"
	"trivia-backend/pkg/utils"
)

// CreateQuestionCommand represents the command to create a new question
type CreateQuestionCommand struct {
	Question   string `validate:"required,notblank"`
	Answer     string `validate:"required,notblank"`
	Category   int    `validate:"required,min=1"`
	Difficulty int    `validate:"required,min=1,max=5"`
}

// Validate validates the command
func (c CreateQuestionCommand) Validate() error {
	if err := utils.ValidateStruct(c); err != nil {
		return appErrors.NewBadRequest(err.Error())
	}
	return nil
}

// CreateQuestionResult carries the id assigned to the new question
type CreateQuestionResult struct {
	ID int
}
