package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuestionCreated(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	event := NewQuestionCreated(42, 3, 2, ts)

	assert.Equal(t, "question#42", event.GetAggregateID())
	assert.Equal(t, TypeQuestionCreated, event.GetEventType())
	assert.Equal(t, ts, event.GetTimestamp())
	assert.Equal(t, 1, event.GetVersion())

	data, err := json.Marshal(event)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"aggregate_id": "question#42",
		"event_type": "question.created",
		"timestamp": "2024-05-01T12:00:00Z",
		"version": 1,
		"question_id": 42,
		"category_id": 3,
		"difficulty": 2
	}`, string(data))
}

func TestNewQuestionDeleted(t *testing.T) {
	var event DomainEvent = NewQuestionDeleted(5, 1, time.Now())

	assert.Equal(t, "question#5", event.GetAggregateID())
	assert.Equal(t, TypeQuestionDeleted, event.GetEventType())
	assert.Equal(t, time.UTC, event.GetTimestamp().Location())
}
