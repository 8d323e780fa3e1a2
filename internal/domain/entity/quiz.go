package entity

import (
	"time"
)

// Quiz представляет викторину: заголовок и упорядоченный список вопросов.
// Порядок вопросов значим — по нему выравниваются ответы при сдаче.
// Викторина создается один раз и после этого не изменяется и не удаляется.
type Quiz struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Title     string     `gorm:"size:100;not null" json:"title"`
	Questions []Question `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (Quiz) TableName() string {
	return "quizzes"
}

// QuestionCount возвращает количество вопросов викторины
func (q *Quiz) QuestionCount() int {
	return len(q.Questions)
}
