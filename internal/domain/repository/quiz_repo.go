package repository

import (
	"time"

	"github.com/yourusername/quizmaker-api/internal/domain/entity"
)

// QuizSummary — краткое представление викторины для списка (без вопросов)
type QuizSummary struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// QuizRepository определяет методы для работы с викторинами.
// Викторины не редактируются и не удаляются — методов Update/Delete нет намеренно.
type QuizRepository interface {
	// Create сохраняет викторину вместе с вопросами в одной транзакции.
	// Частичное сохранение (викторина без части вопросов) невозможно.
	Create(quiz *entity.Quiz) error
	GetByID(id uint) (*entity.Quiz, error)
	// GetWithQuestions возвращает викторину вместе с вопросами в исходном порядке
	GetWithQuestions(id uint) (*entity.Quiz, error)
	// ListSummaries возвращает краткие описания всех викторин, новые первыми
	ListSummaries() ([]QuizSummary, error)
}
