package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yourusername/quizmaker-api/internal/domain/entity"
)

// Границы длин полей викторины
const (
	TitleMinLen    = 3
	TitleMaxLen    = 100
	QuestionMinLen = 5
	QuestionMaxLen = 200
)

// NormalizeQuizInput обрезает пробелы у заголовка, текстов вопросов и вариантов.
// Вызывается до валидации: в базу попадают уже нормализованные значения.
func NormalizeQuizInput(title string, questions []entity.Question) (string, []entity.Question) {
	title = strings.TrimSpace(title)
	normalized := make([]entity.Question, len(questions))
	for i, q := range questions {
		q.Text = strings.TrimSpace(q.Text)
		options := make(entity.StringArray, len(q.Options))
		for j, opt := range q.Options {
			options[j] = strings.TrimSpace(opt)
		}
		q.Options = options
		normalized[i] = q
	}
	return title, normalized
}

// ValidateQuizInput проверяет структурные инварианты викторины и возвращает
// ПОЛНЫЙ список нарушений, а не первое. Пустой список означает валидный ввод.
// Ожидает уже нормализованный (обрезанный) ввод.
func ValidateQuizInput(title string, questions []entity.Question) []string {
	var errs []string

	// Длины считаем в рунах, а не байтах: кириллический текст не должен
	// упираться в границы вдвое раньше
	if n := utf8.RuneCountInString(title); n < TitleMinLen || n > TitleMaxLen {
		errs = append(errs, fmt.Sprintf("title must be between %d and %d characters", TitleMinLen, TitleMaxLen))
	}

	if len(questions) == 0 {
		errs = append(errs, "quiz must have at least one question")
	}

	for i, q := range questions {
		if n := utf8.RuneCountInString(q.Text); n < QuestionMinLen || n > QuestionMaxLen {
			errs = append(errs, fmt.Sprintf("questions[%d].question must be between %d and %d characters", i, QuestionMinLen, QuestionMaxLen))
		}

		if len(q.Options) != entity.OptionsPerQuestion {
			errs = append(errs, fmt.Sprintf("questions[%d] must have exactly %d options", i, entity.OptionsPerQuestion))
		} else {
			for j, opt := range q.Options {
				if opt == "" {
					errs = append(errs, fmt.Sprintf("questions[%d].options[%d] must not be empty", i, j))
				}
			}
		}

		if q.CorrectIndex < 0 || q.CorrectIndex >= entity.OptionsPerQuestion {
			errs = append(errs, fmt.Sprintf("questions[%d].correctIndex must be between 0 and %d", i, entity.OptionsPerQuestion-1))
		}
	}

	return errs
}
