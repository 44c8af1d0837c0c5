package postgres

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"trivia-backend/domain/core/entities"
	"trivia-backend/pkg/observability"
)

// CategoryRepository implements ports.CategoryRepository
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List returns every category ordered by id
func (r *CategoryRepository) List(ctx context.Context) (_ []entities.Category, err error) {
	ctx, span := observability.StartSpan(ctx, "postgres.categories.List")
	defer func() { observability.EndSpan(span, err) }()

	var records []categoryRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, translateError(err, "categories", "list")
	}

	out := make([]entities.Category, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.toEntity())
	}
	return out, nil
}

// GetByID returns one category
func (r *CategoryRepository) GetByID(ctx context.Context, id int) (_ *entities.Category, err error) {
	ctx, span := observability.StartSpan(ctx, "postgres.categories.GetByID", attribute.Int("category.id", id))
	defer func() { observability.EndSpan(span, err) }()

	var record categoryRecord
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		return nil, translateError(err, "category", "get")
	}

	category := record.toEntity()
	return &category, nil
}

// Create inserts a category and assigns its id
func (r *CategoryRepository) Create(ctx context.Context, category *entities.Category) (err error) {
	ctx, span := observability.StartSpan(ctx, "postgres.categories.Create")
	defer func() { observability.EndSpan(span, err) }()

	record := categoryRecord{Type: category.Type}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return translateError(err, "category", "create")
	}

	category.ID = record.ID
	return nil
}
