// Package memory is a process-local store for development and tests
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"trivia-backend/application/ports"
	"trivia-backend/domain/core/entities"
	appErrors "trivia-backend/pkg/errors"
)

// Store keeps categories and questions in maps guarded by one lock.
// Ids are assigned from per-table counters and never reused.
type Store struct {
	mu             sync.RWMutex
	categories     map[int]entities.Category
	questions      map[int]entities.Question
	nextCategoryID int
	nextQuestionID int
}

var (
	_ ports.Store              = (*Store)(nil)
	_ ports.CategoryRepository = (*categoryRepository)(nil)
	_ ports.QuestionRepository = (*questionRepository)(nil)
)

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		categories:     make(map[int]entities.Category),
		questions:      make(map[int]entities.Question),
		nextCategoryID: 1,
		nextQuestionID: 1,
	}
}

// Categories implements ports.Store
func (s *Store) Categories() ports.CategoryRepository {
	return &categoryRepository{s: s}
}

// Questions implements ports.Store
func (s *Store) Questions() ports.QuestionRepository {
	return &questionRepository{s: s}
}

// Ping implements ports.HealthChecker
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Close implements ports.Store
func (s *Store) Close() error {
	return nil
}

type categoryRepository struct {
	s *Store
}

func (r *categoryRepository) List(ctx context.Context) ([]entities.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entities.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int) (*entities.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.categories[id]
	if !ok {
		return nil, appErrors.NewNotFound("category")
	}
	return &c, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *entities.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	category.ID = r.s.nextCategoryID
	r.s.nextCategoryID++
	r.s.categories[category.ID] = *category
	return nil
}

type questionRepository struct {
	s *Store
}

// filter returns matching questions ordered by id. Callers hold the read lock.
func (r *questionRepository) filter(keep func(q entities.Question) bool) []entities.Question {
	out := make([]entities.Question, 0)
	for _, q := range r.s.questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *questionRepository) List(ctx context.Context) ([]entities.Question, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.filter(func(entities.Question) bool { return true }), nil
}

func (r *questionRepository) GetByID(ctx context.Context, id int) (*entities.Question, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	q, ok := r.s.questions[id]
	if !ok {
		return nil, appErrors.NewNotFound("question")
	}
	return &q, nil
}

func (r *questionRepository) Create(ctx context.Context, question *entities.Question) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	question.ID = r.s.nextQuestionID
	r.s.nextQuestionID++
	r.s.questions[question.ID] = *question
	return nil
}

func (r *questionRepository) Delete(ctx context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.questions[id]; !ok {
		return appErrors.NewNotFound("question")
	}
	delete(r.s.questions, id)
	return nil
}

func (r *questionRepository) Search(ctx context.Context, term string) ([]entities.Question, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	needle := strings.ToLower(term)
	return r.filter(func(q entities.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), needle)
	}), nil
}

func (r *questionRepository) ListByCategory(ctx context.Context, categoryID int) ([]entities.Question, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.filter(func(q entities.Question) bool { return q.Category == categoryID }), nil
}

func (r *questionRepository) FindCandidates(ctx context.Context, categoryID int, excludeIDs []int) ([]entities.Question, error) {
	excluded := make(map[int]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.filter(func(q entities.Question) bool {
		if categoryID != 0 && q.Category != categoryID {
			return false
		}
		_, seen := excluded[q.ID]
		return !seen
	}), nil
}
