package commands

import (
	"strings"

	appErrors "trivia-backend/pkg/errors"
)

// SeedCategoriesCommand creates the given categories when none exist yet
type SeedCategoriesCommand struct {
	Names []string
}

// Validate validates the command
func (c SeedCategoriesCommand) Validate() error {
	if len(c.Names) == 0 {
		return appErrors.NewBadRequest("at least one category name is required")
	}
	for _, name := range c.Names {
		if strings.TrimSpace(name) == "" {
			return appErrors.NewBadRequest("category names must not be blank")
		}
	}
	return nil
}

// SeedCategoriesResult reports how many categories were inserted
type SeedCategoriesResult struct {
	Created int
}
