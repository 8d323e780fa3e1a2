package repository

import (
	"github.com/yourusername/quizmaker-api/internal/domain/entity"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	// Create сохраняет нового пользователя.
	// При занятом email возвращает ошибку, оборачивающую apperrors.ErrConflict.
	Create(user *entity.User) error
	GetByID(id uint) (*entity.User, error)
	// GetByEmail ищет пользователя по email (email ожидается нормализованным)
	GetByEmail(email string) (*entity.User, error)
}
