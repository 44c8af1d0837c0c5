package ports

import (
	"context"

	"trivia-backend/domain/core/entities"
	"trivia-backend/domain/events"
)

// CategoryRepository defines the interface for category persistence.
// This is a port in hexagonal architecture; the application does not know
// which database sits behind it.
type CategoryRepository interface {
	// List returns every category ordered by id
	List(ctx context.Context) ([]entities.Category, error)

	// GetByID returns the category or a NotFound error
	GetByID(ctx context.Context, id int) (*entities.Category, error)

	// Create persists a category and assigns its id
	Create(ctx context.Context, category *entities.Category) error
}

// QuestionRepository defines the interface for question persistence
type QuestionRepository interface {
	// List returns every question ordered by id
	List(ctx context.Context) ([]entities.Question, error)

	// GetByID returns the question or a NotFound error
	GetByID(ctx context.Context, id int) (*entities.Question, error)

	// Create persists a question and assigns its id
	Create(ctx context.Context, question *entities.Question) error

	// Delete removes a question; a missing id is a NotFound error
	Delete(ctx context.Context, id int) error

	// Search returns questions whose text contains term, case-insensitively
	Search(ctx context.Context, term string) ([]entities.Question, error)

	// ListByCategory returns the questions of one category ordered by id
	ListByCategory(ctx context.Context, categoryID int) ([]entities.Question, error)

	// FindCandidates returns questions not in excludeIDs, restricted to
	// categoryID unless it is zero
	FindCandidates(ctx context.Context, categoryID int, excludeIDs []int) ([]entities.Question, error)
}

// Store groups the repositories of one backing database
type Store interface {
	HealthChecker

	Categories() CategoryRepository
	Questions() QuestionRepository

	// Close releases the underlying connections
	Close() error
}

// HealthChecker reports whether a dependency is reachable
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	// Publish sends a single event
	Publish(ctx context.Context, event events.DomainEvent) error

	// PublishBatch sends multiple events
	PublishBatch(ctx context.Context, events []events.DomainEvent) error
}

// MetricsRecorder counts business occurrences by name
type MetricsRecorder interface {
	IncrementCounter(name string, tags map[string]string)
}

// NoopMetrics discards every measurement
type NoopMetrics struct{}

// IncrementCounter implements MetricsRecorder
func (NoopMetrics) IncrementCounter(string, map[string]string) {}
