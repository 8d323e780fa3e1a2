package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Количество вариантов ответа фиксировано контрактом создания викторины.
const OptionsPerQuestion = 4

// StringArray - пользовательский тип для работы с JSONB
type StringArray []string

// Scan реализует интерфейс sql.Scanner для StringArray
// Используется GORM для чтения JSONB данных из базы
func (o *StringArray) Scan(value interface{}) error {
	// Обработка NULL значений из базы данных
	if value == nil {
		*o = StringArray{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}

	if len(bytes) == 0 {
		*o = StringArray{}
		return nil
	}

	return json.Unmarshal(bytes, o)
}

// Value реализует интерфейс driver.Valuer для StringArray
// Используется GORM для записи StringArray в JSONB в базе
func (o StringArray) Value() (driver.Value, error) {
	if len(o) == 0 {
		return []byte("[]"), nil // Возвращаем пустой JSON массив вместо null
	}
	return json.Marshal(o)
}

// Question представляет вопрос викторины.
// Вопрос принадлежит только своей викторине и не имеет собственного жизненного цикла.
type Question struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	QuizID       uint        `gorm:"not null;index" json:"quiz_id"`
	Text         string      `gorm:"size:200;not null" json:"question"`
	Options      StringArray `gorm:"type:jsonb;not null" json:"options"`
	CorrectIndex int         `gorm:"not null" json:"correctIndex"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// IsCorrect проверяет, является ли выбранный вариант правильным
func (q *Question) IsCorrect(selected int) bool {
	return selected == q.CorrectIndex
}

// IsValidOption проверяет, указывает ли индекс на существующий вариант
func (q *Question) IsValidOption(selected int) bool {
	return selected >= 0 && selected < len(q.Options)
}
