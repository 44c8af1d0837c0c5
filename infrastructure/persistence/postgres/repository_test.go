package postgres

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"trivia-backend/domain/core/entities"
	appErrors "trivia-backend/pkg/errors"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	// One connection keeps every query on the same in-memory database
	store, err := Open(sqlite.Open(":memory:"), PoolSettings{MaxOpenConns: 1}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))
	t.Cleanup(func() { store.Close() })

	return store
}

func seedQuestions(t *testing.T, store *Store, questions ...entities.Question) []int {
	t.Helper()
	ids := make([]int, 0, len(questions))
	for i := range questions {
		q := questions[i]
		require.NoError(t, store.Questions().Create(context.Background(), &q))
		ids = append(ids, q.ID)
	}
	return ids
}

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := store.Categories()

	science := &entities.Category{Type: "Science"}
	art := &entities.Category{Type: "Art"}
	require.NoError(t, repo.Create(ctx, science))
	require.NoError(t, repo.Create(ctx, art))
	assert.Positive(t, science.ID)
	assert.NotEqual(t, science.ID, art.ID)

	t.Run("Should list in id order", func(t *testing.T) {
		categories, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []entities.Category{*science, *art}, categories)
	})

	t.Run("Should get by id", func(t *testing.T) {
		got, err := repo.GetByID(ctx, art.ID)
		require.NoError(t, err)
		assert.Equal(t, "Art", got.Type)
	})

	t.Run("Should return not found for unknown ids", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		assert.True(t, appErrors.IsNotFound(err))
	})
}

func TestQuestionRepository_CreateListDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := store.Questions()

	ids := seedQuestions(t, store,
		entities.Question{Question: "Q1", Answer: "A1", Category: 1, Difficulty: 1},
		entities.Question{Question: "Q2", Answer: "A2", Category: 2, Difficulty: 2},
		entities.Question{Question: "Q3", Answer: "A3", Category: 1, Difficulty: 3},
	)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, ids[0], all[0].ID)

	require.NoError(t, repo.Delete(ctx, ids[1]))

	all, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	for _, q := range all {
		assert.NotEqual(t, ids[1], q.ID)
	}

	_, err = repo.GetByID(ctx, ids[1])
	assert.True(t, appErrors.IsNotFound(err))

	err = repo.Delete(ctx, ids[1])
	assert.True(t, appErrors.IsNotFound(err))
}

func TestQuestionRepository_Search(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := store.Questions()

	seedQuestions(t, store,
		entities.Question{Question: "What is the Title of the 1990 fantasy film?", Answer: "Edward", Category: 5, Difficulty: 3},
		entities.Question{Question: "Which country won 100% of the games?", Answer: "Brazil", Category: 6, Difficulty: 3},
		entities.Question{Question: "Which planet is red?", Answer: "Mars", Category: 1, Difficulty: 1},
		entities.Question{Question: "Name a snake_case language", Answer: "Python", Category: 1, Difficulty: 2},
	)

	tests := []struct {
		term string
		want int
	}{
		{"title", 1},
		{"TITLE", 1},
		{"which", 2},
		{"100%", 1},
		{"%", 1},
		{"_", 1},
		{"nothing matches this", 0},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			matches, err := repo.Search(ctx, tt.term)
			require.NoError(t, err)
			assert.Len(t, matches, tt.want)
		})
	}
}

func TestQuestionRepository_ListByCategory(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	seedQuestions(t, store,
		entities.Question{Question: "Q1", Answer: "A", Category: 3, Difficulty: 1},
		entities.Question{Question: "Q2", Answer: "A", Category: 4, Difficulty: 1},
		entities.Question{Question: "Q3", Answer: "A", Category: 3, Difficulty: 1},
	)

	matches, err := store.Questions().ListByCategory(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	none, err := store.Questions().ListByCategory(ctx, 42)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestQuestionRepository_FindCandidates(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	ids := seedQuestions(t, store,
		entities.Question{Question: "Q1", Answer: "A", Category: 1, Difficulty: 1},
		entities.Question{Question: "Q2", Answer: "A", Category: 2, Difficulty: 1},
		entities.Question{Question: "Q3", Answer: "A", Category: 1, Difficulty: 1},
	)

	t.Run("Should include every question with no history", func(t *testing.T) {
		got, err := store.Questions().FindCandidates(ctx, 0, []int{})
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("Should exclude previous questions", func(t *testing.T) {
		got, err := store.Questions().FindCandidates(ctx, 0, []int{ids[0], ids[2]})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, ids[1], got[0].ID)
	})

	t.Run("Should restrict to the category", func(t *testing.T) {
		got, err := store.Questions().FindCandidates(ctx, 1, []int{ids[0]})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, ids[2], got[0].ID)
	})

	t.Run("Should be empty once the category is exhausted", func(t *testing.T) {
		got, err := store.Questions().FindCandidates(ctx, 1, []int{ids[0], ids[2]})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestStore_Ping(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.Ping(context.Background()))
}
