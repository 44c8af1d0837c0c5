package entities

import "strings"

// Question is a single trivia item. Category references a Category id but
// the link is not enforced.
type Question struct {
	ID         int
	Question   string
	Answer     string
	Category   int
	Difficulty int
}

// QuestionView is the JSON shape of a question in every response
type QuestionView struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// NewQuestion builds an unsaved question from already validated input
func NewQuestion(question, answer string, category, difficulty int) *Question {
	return &Question{
		Question:   strings.TrimSpace(question),
		Answer:     strings.TrimSpace(answer),
		Category:   category,
		Difficulty: difficulty,
	}
}

// Format returns the response representation of q
func (q Question) Format() QuestionView {
	return QuestionView{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

// FormatAll formats a slice of questions, never returning nil
func FormatAll(questions []Question) []QuestionView {
	out := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.Format())
	}
	return out
}
