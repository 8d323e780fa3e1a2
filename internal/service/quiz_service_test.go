package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/quizmaker-api/internal/domain/entity"
	"github.com/yourusername/quizmaker-api/internal/domain/repository"
	apperrors "github.com/yourusername/quizmaker-api/internal/pkg/errors"
)

// ============================================================================
// Моки репозиториев
// ============================================================================

// intPtr - helper для создания указателя на int в тестах сдачи
func intPtr(v int) *int { return &v }

// MockQuizRepository реализует repository.QuizRepository
type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) Create(quiz *entity.Quiz) error {
	args := m.Called(quiz)
	return args.Error(0)
}

func (m *MockQuizRepository) GetByID(id uint) (*entity.Quiz, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Quiz), args.Error(1)
}

func (m *MockQuizRepository) GetWithQuestions(id uint) (*entity.Quiz, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Quiz), args.Error(1)
}

func (m *MockQuizRepository) ListSummaries() ([]repository.QuizSummary, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.QuizSummary), args.Error(1)
}

// newTestQuiz возвращает викторину с тремя вопросами: correct = [1, 0, 3]
func newTestQuiz() *entity.Quiz {
	return &entity.Quiz{
		ID:    1,
		Title: "Столицы мира",
		Questions: []entity.Question{
			{ID: 10, QuizID: 1, Text: "Столица Франции?", Options: entity.StringArray{"Лондон", "Париж", "Берлин", "Мадрид"}, CorrectIndex: 1},
			{ID: 11, QuizID: 1, Text: "Столица Японии?", Options: entity.StringArray{"Токио", "Киото", "Осака", "Нагоя"}, CorrectIndex: 0},
			{ID: 12, QuizID: 1, Text: "Столица Канады?", Options: entity.StringArray{"Торонто", "Ванкувер", "Монреаль", "Оттава"}, CorrectIndex: 3},
		},
	}
}

// ============================================================================
// CreateQuiz
// ============================================================================

func TestCreateQuiz_Success(t *testing.T) {
	// Arrange
	quizRepo := new(MockQuizRepository)
	service := NewQuizService(quizRepo, nil, time.Minute)

	quizRepo.On("Create", mock.AnythingOfType("*entity.Quiz")).Return(nil)

	questions := []entity.Question{
		{Text: "Столица Франции?", Options: entity.StringArray{"Лондон", "Париж", "Берлин", "Мадрид"}, CorrectIndex: 1},
	}

	// Act
	quiz, err := service.CreateQuiz("  Столицы мира  ", questions)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Столицы мира", quiz.Title, "Заголовок должен сохраняться обрезанным")
	assert.Len(t, quiz.Questions, 1)
	quizRepo.AssertExpectations(t)
}

func TestCreateQuiz_PreservesQuestionOrder(t *testing.T) {
	// Arrange
	quizRepo := new(MockQuizRepository)
	service := NewQuizService(quizRepo, nil, time.Minute)
	quizRepo.On("Create", mock.AnythingOfType("*entity.Quiz")).Return(nil)

	questions := []entity.Question{
		{Text: "Первый вопрос?", Options: entity.StringArray{"A", "B", "C", "D"}, CorrectIndex: 0},
		{Text: "Второй вопрос?", Options: entity.StringArray{"A", "B", "C", "D"}, CorrectIndex: 1},
		{Text: "Третий вопрос?", Options: entity.StringArray{"A", "B", "C", "D"}, CorrectIndex: 2},
	}

	// Act
	quiz, err := service.CreateQuiz("Порядок вопросов", questions)

	// Assert: порядок вопросов совпадает с порядком в запросе
	require.NoError(t, err)
	require.Len(t, quiz.Questions, 3)
	assert.Equal(t, "Первый вопрос?", quiz.Questions[0].Text)
	assert.Equal(t, "Второй вопрос?", quiz.Questions[1].Text)
	assert.Equal(t, "Третий вопрос?", quiz.Questions[2].Text)
}

func TestCreateQuiz_ValidationErrors_NotPersisted(t *testing.T) {
	// Arrange: невалидный ввод — репозиторий не должен вызываться вовсе
	quizRepo := new(MockQuizRepository)
	service := NewQuizService(quizRepo, nil, time.Minute)

	questions := []entity.Question{
		{Text: "Ок?", Options: entity.StringArray{"A", "B"}, CorrectIndex: 7},
	}

	// Act
	quiz, err := service.CreateQuiz("ab", questions)

	// Assert
	require.Error(t, err)
	assert.Nil(t, quiz)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.GreaterOrEqual(t, len(verr.Messages), 3, "Должны вернуться все нарушения, а не только первое")
	quizRepo.AssertNotCalled(t, "Create", mock.Anything)
}

// ============================================================================
// SubmitQuiz — скоринг
// ============================================================================

func TestSubmitQuiz_ScoringCorrectness(t *testing.T) {
	// Arrange: correct = [1, 0, 3], answers = [1, 0, 2]
	quizRepo := new(MockQuizRepository)
	service := NewQuizService(quizRepo, nil, time.Minute)
	quizRepo.On("GetWithQuestions", uint(1)).Return(newTestQuiz(), nil)

	// Act
	result, err := service.SubmitQuiz(1, []*int{intPtr(1), intPtr(0), intPtr(2)})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.Score)
	require.Len(t, result.Details, 3)
	require.NotNil(t, result.Details[2].YourAnswer)
	assert.Equal(t, 2, *result.Details[2].YourAnswer)
	assert.Equal(t, 3, result.Details[2].CorrectIndex)
}

func TestSubmitQuiz_UnderLengthAnswers(t *testing.T) {
	// Arrange: 3 вопроса, один ответ — недостающие считаются неотвеченными
	quizRepo := new(MockQuizRepository)
	service := NewQuizService(quizRepo, nil, time.Minute)
	quizRepo.On("GetWithQuestions", uint(1)).Return(newTestQuiz(), nil)

	// Act
	result, err := service.SubmitQuiz(1, []*int{intPtr(1)})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, result.Score)
	assert.Nil(t, result.Details[1].YourAnswer, "Недостающий ответ должен быть null")
	assert.Nil(t, result.Details[2].YourAnswer, "Недостающий ответ должен быть null")
}

func TestSubmitQuiz_OutOfRangeAnswerCountsAsWrong(t *testing.T) {
	// Arrange: correct = [1, 0, 3], answers = [9, 0, 3]
	quizRepo := new(MockQuizRepository)
	service := NewQuizService(quizRepo, nil, time.Minute)
	quizRepo.On("GetWithQuestions", uint(1)).Return(newTestQuiz(), nil)

	// Act
	result, err := service.SubmitQuiz(1, []*int{intPtr(9), intPtr(0), intPtr(3)})

	// Assert: 9 — неправильный ответ, а не ошибка запроса
	require.NoError(t, err)
	assert.Equal(t, 2, result.Score)
	require.NotNil(t, result.Details[0].YourAnswer)
	assert.Equal(t, 9, *result.Details[0].YourAnswer)
}

func TestSubmitQuiz_NullAnswersCountAsWrong(t *testing.T) {
	// Arrange
	quizRepo := new(MockQuizRepository)
	service := NewQuizService(quizRepo, nil, time.Minute)
	quizRepo.On("GetWithQuestions", uint(1)).Return(newTestQuiz(), nil)

	// Act
	result, err := service.SubmitQuiz(1, []*int{nil, intPtr(0), nil})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, result.Score)
	assert.Nil(t, result.Details[0].YourAnswer)
	assert.Nil(t, result.Details[2].YourAnswer)
}

func TestSubmitQuiz_ExtraAnswersIgnored(t *testing.T) {
	// Arrange: ответов больше, чем вопросов
	quizRepo := new(MockQuizRepository)
	service := NewQuizService(quizRepo, nil, time.Minute)
	quizRepo.On("GetWithQuestions", uint(1)).Return(newTestQuiz(), nil)

	// Act
	result, err := service.SubmitQuiz(1, []*int{intPtr(1), intPtr(0), intPtr(3), intPtr(2), intPtr(0)})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 3, result.Score)
	assert.Len(t, result.Details, 3, "Лишние ответы не должны порождать details")
}

func TestSubmitQuiz_QuizNotFound(t *testing.T) {
	// Arrange
	quizRepo := new(MockQuizRepository)
	service := NewQuizService(quizRepo, nil, time.Minute)
	quizRepo.On("GetWithQuestions", uint(99)).Return(nil, apperrors.ErrNotFound)

	// Act
	result, err := service.SubmitQuiz(99, []*int{intPtr(0)})

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

// ============================================================================
// GetQuizByID — идемпотентность и кеширование
// ============================================================================

func TestGetQuizByID_Idempotent(t *testing.T) {
	// Arrange
	quizRepo := new(MockQuizRepository)
	service := NewQuizService(quizRepo, nil, time.Minute)
	quizRepo.On("GetWithQuestions", uint(1)).Return(newTestQuiz(), nil)

	// Act
	first, err := service.GetQuizByID(1)
	require.NoError(t, err)
	second, err := service.GetQuizByID(1)
	require.NoError(t, err)

	// Assert: два чтения возвращают идентичные данные
	assert.Equal(t, first, second)
}
