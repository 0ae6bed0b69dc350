package models

import (
	"time"
)

// Theme groups quiz questions. Titles are the identifiers players type in
// chat, so they are unique across the catalog.
type Theme struct {
	ID        uint       `gorm:"primaryKey"`
	Title     string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Questions []Question `gorm:"foreignKey:ThemeID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
}

func (Theme) TableName() string {
	return "themes"
}

type Question struct {
	ID        uint      `gorm:"primaryKey"`
	Title     string    `gorm:"type:text;uniqueIndex;not null"`
	ThemeID   uint      `gorm:"not null;index"`
	Answers   []Answer  `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Question) TableName() string {
	return "questions"
}

// CorrectAnswer returns the answer flagged correct. Question creation
// guarantees exactly one; if that invariant is ever broken the lowest id
// wins, since answers load ordered by primary key.
func (q *Question) CorrectAnswer() *Answer {
	for i := range q.Answers {
		if q.Answers[i].IsCorrect {
			return &q.Answers[i]
		}
	}
	return nil
}

type Answer struct {
	ID         uint   `gorm:"primaryKey"`
	QuestionID uint   `gorm:"not null;index"`
	Title      string `gorm:"type:text;not null"`
	IsCorrect  bool   `gorm:"not null;default:false"`
}

func (Answer) TableName() string {
	return "answers"
}
