package eventbridge

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"trivia-backend/domain/events"
)

type fakeClient struct {
	inputs []*eventbridge.PutEventsInput
	output *eventbridge.PutEventsOutput
	err    error
}

func (f *fakeClient) PutEvents(ctx context.Context, params *eventbridge.PutEventsInput, optFns ...func(*eventbridge.Options)) (*eventbridge.PutEventsOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	if f.output != nil {
		return f.output, nil
	}
	return &eventbridge.PutEventsOutput{}, nil
}

func TestPublisher_Publish(t *testing.T) {
	client := &fakeClient{}
	p := NewPublisher(client, "trivia-events", "trivia.api", zap.NewNop())
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	err := p.Publish(context.Background(), events.NewQuestionCreated(12, 3, 4, ts))

	require.NoError(t, err)
	require.Len(t, client.inputs, 1)
	entry := client.inputs[0].Entries[0]
	assert.Equal(t, "trivia-events", aws.ToString(entry.EventBusName))
	assert.Equal(t, "trivia.api", aws.ToString(entry.Source))
	assert.Equal(t, events.TypeQuestionCreated, aws.ToString(entry.DetailType))
	assert.Equal(t, ts, aws.ToTime(entry.Time))

	var detail map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(entry.Detail)), &detail))
	assert.Equal(t, float64(12), detail["question_id"])
}

func TestPublisher_PublishBatchChunks(t *testing.T) {
	client := &fakeClient{}
	p := NewPublisher(client, "bus", "src", zap.NewNop())

	batch := make([]events.DomainEvent, 0, 23)
	for i := 1; i <= 23; i++ {
		batch = append(batch, events.NewQuestionDeleted(i, 1, time.Now()))
	}

	require.NoError(t, p.PublishBatch(context.Background(), batch))

	require.Len(t, client.inputs, 3)
	assert.Len(t, client.inputs[0].Entries, 10)
	assert.Len(t, client.inputs[1].Entries, 10)
	assert.Len(t, client.inputs[2].Entries, 3)
}

func TestPublisher_Failures(t *testing.T) {
	event := events.NewQuestionDeleted(1, 1, time.Now())

	t.Run("Should return transport errors", func(t *testing.T) {
		p := NewPublisher(&fakeClient{err: errors.New("no route")}, "bus", "src", zap.NewNop())
		assert.Error(t, p.Publish(context.Background(), event))
	})

	t.Run("Should report failed entries", func(t *testing.T) {
		client := &fakeClient{output: &eventbridge.PutEventsOutput{
			FailedEntryCount: 1,
			Entries:          []types.PutEventsResultEntry{{ErrorCode: aws.String("ThrottlingException")}},
		}}
		p := NewPublisher(client, "bus", "src", zap.NewNop())

		err := p.Publish(context.Background(), event)
		assert.EqualError(t, err, "1 events failed to publish")
	})
}

func TestLogPublisher(t *testing.T) {
	p := NewLogPublisher(zap.NewNop())

	assert.NoError(t, p.Publish(context.Background(), events.NewQuestionCreated(1, 1, 1, time.Now())))
	assert.NoError(t, p.PublishBatch(context.Background(), nil))
}
