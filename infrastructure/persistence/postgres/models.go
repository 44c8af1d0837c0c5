package postgres

import "trivia-backend/domain/core/entities"

type categoryRecord struct {
	ID   int    `gorm:"primaryKey;autoIncrement"`
	Type string `gorm:"not null"`
}

func (categoryRecord) TableName() string { return "categories" }

func (r categoryRecord) toEntity() entities.Category {
	return entities.Category{ID: r.ID, Type: r.Type}
}

type questionRecord struct {
	ID         int    `gorm:"primaryKey;autoIncrement"`
	Question   string `gorm:"not null"`
	Answer     string `gorm:"not null"`
	Category   int    `gorm:"index"`
	Difficulty int
}

func (questionRecord) TableName() string { return "questions" }

func (r questionRecord) toEntity() entities.Question {
	return entities.Question{
		ID:         r.ID,
		Question:   r.Question,
		Answer:     r.Answer,
		Category:   r.Category,
		Difficulty: r.Difficulty,
	}
}

func questionsToEntities(records []questionRecord) []entities.Question {
	out := make([]entities.Question, 0, len(records))
	for _, r := range records {
		out = append(out, r.toEntity())
	}
	return out
}
