package postgres

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"trivia-backend/domain/core/entities"
	appErrors "trivia-backend/pkg/errors"
	"trivia-backend/pkg/observability"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// QuestionRepository implements ports.QuestionRepository
type QuestionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// List returns every question ordered by id
func (r *QuestionRepository) List(ctx context.Context) (_ []entities.Question, err error) {
	ctx, span := observability.StartSpan(ctx, "postgres.questions.List")
	defer func() { observability.EndSpan(span, err) }()

	var records []questionRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, translateError(err, "questions", "list")
	}

	span.SetAttributes(attribute.Int("result.count", len(records)))
	return questionsToEntities(records), nil
}

// GetByID returns one question
func (r *QuestionRepository) GetByID(ctx context.Context, id int) (_ *entities.Question, err error) {
	ctx, span := observability.StartSpan(ctx, "postgres.questions.GetByID", attribute.Int("question.id", id))
	defer func() { observability.EndSpan(span, err) }()

	var record questionRecord
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		return nil, translateError(err, "question", "get")
	}

	question := record.toEntity()
	return &question, nil
}

// Create inserts a question and assigns its id
func (r *QuestionRepository) Create(ctx context.Context, question *entities.Question) (err error) {
	ctx, span := observability.StartSpan(ctx, "postgres.questions.Create",
		attribute.Int("question.category", question.Category),
	)
	defer func() { observability.EndSpan(span, err) }()

	record := questionRecord{
		Question:   question.Question,
		Answer:     question.Answer,
		Category:   question.Category,
		Difficulty: question.Difficulty,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return translateError(err, "question", "create")
	}

	question.ID = record.ID
	return nil
}

// Delete removes a question. Zero affected rows means it was already gone.
func (r *QuestionRepository) Delete(ctx context.Context, id int) (err error) {
	ctx, span := observability.StartSpan(ctx, "postgres.questions.Delete", attribute.Int("question.id", id))
	defer func() { observability.EndSpan(span, err) }()

	result := r.db.WithContext(ctx).Delete(&questionRecord{}, id)
	if result.Error != nil {
		return translateError(result.Error, "question", "delete")
	}
	if result.RowsAffected == 0 {
		return appErrors.NewNotFound("question")
	}
	return nil
}

// Search matches term as a literal, case-insensitive substring of the question text
func (r *QuestionRepository) Search(ctx context.Context, term string) (_ []entities.Question, err error) {
	ctx, span := observability.StartSpan(ctx, "postgres.questions.Search")
	defer func() { observability.EndSpan(span, err) }()

	pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"

	var records []questionRecord
	err = r.db.WithContext(ctx).
		Where(`LOWER(question) LIKE ? ESCAPE '\'`, pattern).
		Order("id").
		Find(&records).Error
	if err != nil {
		return nil, translateError(err, "questions", "search")
	}

	span.SetAttributes(attribute.Int("result.count", len(records)))
	return questionsToEntities(records), nil
}

// ListByCategory returns the questions of one category ordered by id
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int) (_ []entities.Question, err error) {
	ctx, span := observability.StartSpan(ctx, "postgres.questions.ListByCategory", attribute.Int("category.id", categoryID))
	defer func() { observability.EndSpan(span, err) }()

	var records []questionRecord
	err = r.db.WithContext(ctx).
		Where("category = ?", categoryID).
		Order("id").
		Find(&records).Error
	if err != nil {
		return nil, translateError(err, "questions", "list")
	}

	return questionsToEntities(records), nil
}

// FindCandidates returns the questions a quiz may still ask
func (r *QuestionRepository) FindCandidates(ctx context.Context, categoryID int, excludeIDs []int) (_ []entities.Question, err error) {
	ctx, span := observability.StartSpan(ctx, "postgres.questions.FindCandidates",
		attribute.Int("category.id", categoryID),
		attribute.Int("excluded.count", len(excludeIDs)),
	)
	defer func() { observability.EndSpan(span, err) }()

	query := r.db.WithContext(ctx).Model(&questionRecord{}).Order("id")
	if categoryID != 0 {
		query = query.Where("category = ?", categoryID)
	}
	// gorm renders an empty list as NOT IN (NULL), which matches nothing.
	// One bind parameter per id; NextQuizQuestionQuery caps the list size.
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	var records []questionRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, translateError(err, "questions", "list")
	}

	span.SetAttributes(attribute.Int("result.count", len(records)))
	return questionsToEntities(records), nil
}
