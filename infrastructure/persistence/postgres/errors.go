package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	appErrors "trivia-backend/pkg/errors"
)

// translateError maps gorm failures onto application error kinds
func translateError(err error, resource, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return appErrors.NewNotFound(resource)
	}
	return appErrors.NewUnprocessable(fmt.Sprintf("failed to %s %s", op, resource), err)
}
