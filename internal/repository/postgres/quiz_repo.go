package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/quizmaker-api/internal/domain/entity"
	"github.com/yourusername/quizmaker-api/internal/domain/repository"
	apperrors "github.com/yourusername/quizmaker-api/internal/pkg/errors"
)

// QuizRepo реализует repository.QuizRepository
type QuizRepo struct {
	db *gorm.DB
}

// NewQuizRepo создает новый репозиторий викторин
func NewQuizRepo(db *gorm.DB) *QuizRepo {
	return &QuizRepo{db: db}
}

// Create сохраняет викторину вместе с вопросами.
// GORM создает ассоциированные вопросы в той же транзакции, что и викторину,
// поэтому частично сохраненных викторин не бывает.
func (r *QuizRepo) Create(quiz *entity.Quiz) error {
	return r.db.Create(quiz).Error
}

// GetByID возвращает викторину по ID без вопросов
func (r *QuizRepo) GetByID(id uint) (*entity.Quiz, error) {
	var quiz entity.Quiz
	err := r.db.First(&quiz, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

// GetWithQuestions возвращает викторину вместе с вопросами.
// Вопросы сортируются по id — порядок вставки совпадает с порядком в запросе создания.
func (r *QuizRepo) GetWithQuestions(id uint) (*entity.Quiz, error) {
	var quiz entity.Quiz
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.id")
	}).First(&quiz, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

// ListSummaries возвращает краткие описания всех викторин, новые первыми
func (r *QuizRepo) ListSummaries() ([]repository.QuizSummary, error) {
	var summaries []repository.QuizSummary
	err := r.db.Model(&entity.Quiz{}).
		Select("quizzes.id, quizzes.title, quizzes.created_at, (SELECT COUNT(*) FROM questions WHERE questions.quiz_id = quizzes.id) AS question_count").
		Order("quizzes.created_at DESC").
		Find(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}
