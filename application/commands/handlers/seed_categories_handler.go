package handlers

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"trivia-backend/application/commands"
	"trivia-backend/application/commands/bus"
	"trivia-backend/application/ports"
	"trivia-backend/domain/core/entities"
	appErrors "trivia-backend/pkg/errors"
)

// SeedCategoriesHandler handles SeedCategoriesCommand. Seeding is skipped
// entirely once any category exists.
type SeedCategoriesHandler struct {
	categoryRepo ports.CategoryRepository
	logger       *zap.Logger
}

// NewSeedCategoriesHandler creates a new seed handler
func NewSeedCategoriesHandler(categoryRepo ports.CategoryRepository, logger *zap.Logger) *SeedCategoriesHandler {
	return &SeedCategoriesHandler{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Handle executes the command
func (h *SeedCategoriesHandler) Handle(ctx context.Context, c bus.Command) (interface{}, error) {
	cmd, ok := c.(commands.SeedCategoriesCommand)
	if !ok {
		return nil, appErrors.NewInternal(fmt.Sprintf("unexpected command type %T", c), nil)
	}

	existing, err := h.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if len(existing) > 0 {
		h.logger.Info("Categories already present, skipping seed", zap.Int("count", len(existing)))
		return &commands.SeedCategoriesResult{}, nil
	}

	created := 0
	for _, name := range cmd.Names {
		category := &entities.Category{Type: strings.TrimSpace(name)}
		if err := h.categoryRepo.Create(ctx, category); err != nil {
			return nil, fmt.Errorf("failed to create category %q: %w", name, err)
		}
		created++
	}

	h.logger.Info("Seeded categories", zap.Int("count", created))
	return &commands.SeedCategoriesResult{Created: created}, nil
}
