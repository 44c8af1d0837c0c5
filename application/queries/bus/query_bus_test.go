package bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "trivia-backend/pkg/errors"
)

type pingQuery struct {
	Name string
}

func (q pingQuery) Validate() error {
	if q.Name == "" {
		return appErrors.NewBadRequest("name is required")
	}
	return nil
}

type otherQuery struct{}

func (otherQuery) Validate() error { return nil }

type fakeMetrics struct {
	counts map[string]int
	timers int
}

func (m *fakeMetrics) StartTimer(metric, label string) Timer {
	m.timers++
	return noopTimer{}
}

func (m *fakeMetrics) Increment(metric, label string) {
	m.counts[metric+":"+label]++
}

type noopTimer struct{}

func (noopTimer) Stop() {}

func TestQueryBus_Ask(t *testing.T) {
	b := NewQueryBus()
	require.NoError(t, b.Register(pingQuery{}, QueryHandlerFunc(func(ctx context.Context, q Query) (interface{}, error) {
		return "pong " + q.(pingQuery).Name, nil
	})))

	result, err := b.Ask(context.Background(), pingQuery{Name: "trivia"})

	require.NoError(t, err)
	assert.Equal(t, "pong trivia", result)
}

func TestQueryBus_DuplicateRegistration(t *testing.T) {
	b := NewQueryBus()
	h := QueryHandlerFunc(func(ctx context.Context, q Query) (interface{}, error) { return nil, nil })

	require.NoError(t, b.Register(pingQuery{}, h))
	assert.Error(t, b.Register(pingQuery{}, h))
}

func TestQueryBus_ValidationKeepsKind(t *testing.T) {
	b := NewQueryBus()
	require.NoError(t, b.Register(pingQuery{}, QueryHandlerFunc(func(ctx context.Context, q Query) (interface{}, error) {
		return nil, nil
	})))

	_, err := b.Ask(context.Background(), pingQuery{})

	assert.True(t, appErrors.IsBadRequest(err))
}

func TestQueryBus_UnregisteredIsInternal(t *testing.T) {
	_, err := NewQueryBus().Ask(context.Background(), otherQuery{})

	assert.True(t, appErrors.IsInternal(err))
}

func TestQueryBus_HandlerErrorKeepsKind(t *testing.T) {
	b := NewQueryBus()
	require.NoError(t, b.Register(pingQuery{}, QueryHandlerFunc(func(ctx context.Context, q Query) (interface{}, error) {
		return nil, appErrors.NewNotFound("category")
	})))

	_, err := b.Ask(context.Background(), pingQuery{Name: "x"})

	assert.True(t, appErrors.IsNotFound(err))
}

func TestMetricsMiddleware(t *testing.T) {
	metrics := &fakeMetrics{counts: map[string]int{}}
	b := NewQueryBus(MetricsMiddleware(metrics), TracingMiddleware())

	calls := 0
	require.NoError(t, b.Register(pingQuery{}, QueryHandlerFunc(func(ctx context.Context, q Query) (interface{}, error) {
		calls++
		if calls == 2 {
			return nil, errors.New("store down")
		}
		return "ok", nil
	})))

	_, err := b.Ask(context.Background(), pingQuery{Name: "a"})
	require.NoError(t, err)
	_, err = b.Ask(context.Background(), pingQuery{Name: "b"})
	require.Error(t, err)

	assert.Equal(t, 2, metrics.timers)
	assert.Equal(t, 2, metrics.counts["query_count:pingQuery"])
	assert.Equal(t, 1, metrics.counts["query_success:pingQuery"])
	assert.Equal(t, 1, metrics.counts["query_errors:pingQuery"])
}
