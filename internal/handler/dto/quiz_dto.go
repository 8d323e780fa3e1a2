package dto

import (
	"time"

	"github.com/yourusername/quizmaker-api/internal/domain/entity"
	"github.com/yourusername/quizmaker-api/internal/domain/repository"
)

// Имена JSON-полей (включая "_id") сохраняют формат исходного API,
// на который завязан SPA-клиент.

// QuestionResponse представляет вопрос в формате для ответа клиенту
type QuestionResponse struct {
	Question     string             `json:"question"`
	Options      entity.StringArray `json:"options"`
	CorrectIndex int                `json:"correctIndex"`
}

// QuizResponse представляет викторину в формате для ответа клиенту
type QuizResponse struct {
	ID        uint               `json:"_id"`
	Title     string             `json:"title"`
	Questions []QuestionResponse `json:"questions"`
	CreatedAt time.Time          `json:"createdAt"`
}

// QuizSummaryResponse представляет элемент списка викторин (без вопросов)
type QuizSummaryResponse struct {
	ID        uint      `json:"_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewQuizResponse создает DTO для викторины
func NewQuizResponse(quiz *entity.Quiz) *QuizResponse {
	if quiz == nil {
		return nil
	}

	questions := make([]QuestionResponse, len(quiz.Questions))
	for i, q := range quiz.Questions {
		questions[i] = QuestionResponse{
			Question:     q.Text,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
		}
	}

	return &QuizResponse{
		ID:        quiz.ID,
		Title:     quiz.Title,
		Questions: questions,
		CreatedAt: quiz.CreatedAt,
	}
}

// NewQuizSummaryList создает слайс DTO для списка викторин
func NewQuizSummaryList(summaries []repository.QuizSummary) []QuizSummaryResponse {
	list := make([]QuizSummaryResponse, len(summaries))
	for i, s := range summaries {
		list[i] = QuizSummaryResponse{
			ID:        s.ID,
			Title:     s.Title,
			CreatedAt: s.CreatedAt,
		}
	}
	return list
}
