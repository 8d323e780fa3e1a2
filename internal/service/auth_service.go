package service

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/yourusername/quizmaker-api/internal/domain/entity"
	"github.com/yourusername/quizmaker-api/internal/domain/repository"
	apperrors "github.com/yourusername/quizmaker-api/internal/pkg/errors"
	"github.com/yourusername/quizmaker-api/pkg/auth"
)

// AuthService предоставляет методы для регистрации и входа пользователей
type AuthService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService создает новый сервис аутентификации и возвращает ошибку при проблемах
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) (*AuthService, error) {
	if userRepo == nil {
		return nil, fmt.Errorf("UserRepository is required for AuthService")
	}
	if jwtService == nil {
		return nil, fmt.Errorf("JWTService is required for AuthService")
	}

	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}, nil
}

// RegisterUser регистрирует нового пользователя.
// Пароль хешируется хуком BeforeSave на entity.User — в сервис и логи
// открытый пароль не попадает дальше этого вызова.
func (s *AuthService) RegisterUser(name, email, password string) (*entity.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", apperrors.ErrValidation)
	}

	user := &entity.User{
		Name:     name,
		Email:    email,
		Password: password,
	}

	// Уникальность email обеспечивает индекс БД, а не предварительная проверка:
	// так гонка двух одновременных регистраций разрешается корректно.
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	log.Printf("[AuthService] Пользователь ID=%d (%s) успешно зарегистрирован", user.ID, user.Email)
	return user, nil
}

// LoginUser проверяет учетные данные и возвращает подписанный токен доступа.
// Неизвестный email и неверный пароль дают одну и ту же ошибку.
func (s *AuthService) LoginUser(email, password string) (string, error) {
	email = normalizeEmail(email)

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.CheckPassword(password) {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}

// normalizeEmail приводит email к каноничной форме для хранения и поиска
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
