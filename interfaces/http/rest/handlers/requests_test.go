package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    flexInt
		wantErr bool
	}{
		{"number", `3`, 3, false},
		{"numeric string", `"4"`, 4, false},
		{"padded string", `" 5 "`, 5, false},
		{"null", `null`, 0, false},
		{"word", `"three"`, 0, true},
		{"fraction", `2.5`, 0, true},
		{"bool", `true`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got flexInt
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuizRequest(t *testing.T) {
	t.Run("Should keep an absent history distinct from an empty one", func(t *testing.T) {
		var absent, empty QuizRequest
		require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
		require.NoError(t, json.Unmarshal([]byte(`{"previous_questions": []}`), &empty))

		assert.Nil(t, absent.previousIDs())
		assert.NotNil(t, empty.previousIDs())
		assert.Empty(t, empty.previousIDs())
	})

	t.Run("Should read mixed id encodings", func(t *testing.T) {
		var req QuizRequest
		require.NoError(t, json.Unmarshal([]byte(`{"previous_questions": [1, "2"], "quiz_category": {"id": "3", "type": "History"}}`), &req))

		assert.Equal(t, []int{1, 2}, req.previousIDs())
		assert.Equal(t, 3, req.categoryID())
	})

	t.Run("Should default to all categories", func(t *testing.T) {
		var req QuizRequest
		require.NoError(t, json.Unmarshal([]byte(`{"previous_questions": []}`), &req))
		assert.Equal(t, 0, req.categoryID())
	})
}
