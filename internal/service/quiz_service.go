package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/yourusername/quizmaker-api/internal/domain/entity"
	"github.com/yourusername/quizmaker-api/internal/domain/repository"
	apperrors "github.com/yourusername/quizmaker-api/internal/pkg/errors"
)

// AnswerDetail — поквестионная расшифровка результата сдачи
type AnswerDetail struct {
	Question     string             `json:"question"`
	Options      entity.StringArray `json:"options"`
	CorrectIndex int                `json:"correctIndex"`
	YourAnswer   *int               `json:"yourAnswer"`
}

// SubmissionResult — результат сдачи викторины.
// Нигде не сохраняется: вычисляется заново при каждой отправке ответов.
type SubmissionResult struct {
	Total   int            `json:"total"`
	Score   int            `json:"score"`
	Details []AnswerDetail `json:"details"`
}

// QuizService предоставляет методы для работы с викторинами
type QuizService struct {
	quizRepo  repository.QuizRepository
	cacheRepo repository.CacheRepository
	quizTTL   time.Duration
}

// NewQuizService создает новый сервис викторин.
// cacheRepo может быть nil — тогда все чтения идут напрямую в БД.
func NewQuizService(quizRepo repository.QuizRepository, cacheRepo repository.CacheRepository, quizTTL time.Duration) *QuizService {
	if quizTTL <= 0 {
		quizTTL = 5 * time.Minute
	}
	return &QuizService{
		quizRepo:  quizRepo,
		cacheRepo: cacheRepo,
		quizTTL:   quizTTL,
	}
}

// CreateQuiz валидирует и сохраняет новую викторину вместе с вопросами.
// Сохранение атомарно: при любом нарушении в базу не попадает ничего.
func (s *QuizService) CreateQuiz(title string, questions []entity.Question) (*entity.Quiz, error) {
	title, questions = NormalizeQuizInput(title, questions)

	if messages := ValidateQuizInput(title, questions); len(messages) > 0 {
		return nil, apperrors.NewValidationError(messages)
	}

	quiz := &entity.Quiz{
		Title:     title,
		Questions: questions,
	}

	if err := s.quizRepo.Create(quiz); err != nil {
		return nil, fmt.Errorf("failed to create quiz: %w", err)
	}

	return quiz, nil
}

// ListQuizzes возвращает краткие описания всех викторин, новые первыми
func (s *QuizService) ListQuizzes() ([]repository.QuizSummary, error) {
	return s.quizRepo.ListSummaries()
}

// GetQuizByID возвращает викторину с вопросами.
// Чтение идет через кеш: викторины неизменяемы после создания,
// поэтому закешированное значение не может устареть по содержанию.
func (s *QuizService) GetQuizByID(quizID uint) (*entity.Quiz, error) {
	cacheKey := fmt.Sprintf("quiz:%d", quizID)

	if s.cacheRepo != nil {
		var cached entity.Quiz
		err := s.cacheRepo.GetJSON(cacheKey, &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			// Кеш не является хранилищем записей: при его сбое читаем из БД
			log.Printf("[QuizService] Ошибка чтения из кеша для %s: %v", cacheKey, err)
		}
	}

	quiz, err := s.quizRepo.GetWithQuestions(quizID)
	if err != nil {
		return nil, err
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetJSON(cacheKey, quiz, s.quizTTL); err != nil {
			log.Printf("[QuizService] Ошибка записи в кеш для %s: %v", cacheKey, err)
		}
	}

	return quiz, nil
}

// SubmitQuiz подсчитывает результат по присланным ответам.
// Чистая функция от (сохраненная викторина, ответы): ничего не пишет и не изменяет.
//
// Контракт намеренно снисходительный:
//   - ответов может быть меньше, чем вопросов — недостающие считаются неотвеченными;
//   - лишние ответы за пределами количества вопросов игнорируются;
//   - индекс вне диапазона [0,3] никогда не совпадет с correctIndex
//     и засчитывается как неправильный ответ, а не как ошибка запроса.
func (s *QuizService) SubmitQuiz(quizID uint, answers []*int) (*SubmissionResult, error) {
	quiz, err := s.GetQuizByID(quizID)
	if err != nil {
		return nil, err
	}

	result := &SubmissionResult{
		Total:   len(quiz.Questions),
		Details: make([]AnswerDetail, len(quiz.Questions)),
	}

	for i, q := range quiz.Questions {
		var answer *int
		if i < len(answers) {
			answer = answers[i]
		}

		if answer != nil && q.IsCorrect(*answer) {
			result.Score++
		}

		result.Details[i] = AnswerDetail{
			Question:     q.Text,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
			YourAnswer:   answer,
		}
	}

	return result, nil
}
