package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// flexInt accepts a JSON number or a numeric string. The web client posts
// form values as strings, e.g. "difficulty": "3".
type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return err
		}
		raw = strings.TrimSpace(unquoted)
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("expected an integer, got %s", data)
	}
	*n = flexInt(v)
	return nil
}

// CreateQuestionRequest represents the request body for creating a question
type CreateQuestionRequest struct {
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Category   flexInt `json:"category"`
	Difficulty flexInt `json:"difficulty"`
}

// QuizCategory identifies the category a quiz is played in. Id 0 means all.
type QuizCategory struct {
	ID   flexInt `json:"id"`
	Type string  `json:"type"`
}

// QuizRequest represents the request body for the next quiz question
type QuizRequest struct {
	PreviousQuestions *[]flexInt    `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

func (r QuizRequest) previousIDs() []int {
	if r.PreviousQuestions == nil {
		return nil
	}
	ids := make([]int, 0, len(*r.PreviousQuestions))
	for _, id := range *r.PreviousQuestions {
		ids = append(ids, int(id))
	}
	return ids
}

func (r QuizRequest) categoryID() int {
	if r.QuizCategory == nil {
		return 0
	}
	return int(r.QuizCategory.ID)
}

var _ json.Unmarshaler = (*flexInt)(nil)
