package events

import (
	"strconv"
	"time"
)

// Event types
const (
	TypeQuestionCreated = "question.created"
	TypeQuestionDeleted = "question.deleted"
)

// DomainEvent is the base interface for all domain events.
// Events represent something that has happened in the past.
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
	GetVersion() int
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
	Version     int       `json:"version"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }
func (e BaseEvent) GetVersion() int         { return e.Version }

// QuestionCreated is raised when a new question is stored
type QuestionCreated struct {
	BaseEvent
	QuestionID int `json:"question_id"`
	CategoryID int `json:"category_id"`
	Difficulty int `json:"difficulty"`
}

// NewQuestionCreated creates a QuestionCreated event
func NewQuestionCreated(questionID, categoryID, difficulty int, timestamp time.Time) QuestionCreated {
	return QuestionCreated{
		BaseEvent:  newBase(questionID, TypeQuestionCreated, timestamp),
		QuestionID: questionID,
		CategoryID: categoryID,
		Difficulty: difficulty,
	}
}

// QuestionDeleted is raised when a question is removed
type QuestionDeleted struct {
	BaseEvent
	QuestionID int `json:"question_id"`
	CategoryID int `json:"category_id"`
}

// NewQuestionDeleted creates a QuestionDeleted event
func NewQuestionDeleted(questionID, categoryID int, timestamp time.Time) QuestionDeleted {
	return QuestionDeleted{
		BaseEvent:  newBase(questionID, TypeQuestionDeleted, timestamp),
		QuestionID: questionID,
		CategoryID: categoryID,
	}
}

func newBase(questionID int, eventType string, timestamp time.Time) BaseEvent {
	return BaseEvent{
		AggregateID: "question#" + strconv.Itoa(questionID),
		EventType:   eventType,
		Timestamp:   timestamp.UTC(),
		Version:     1,
	}
}
