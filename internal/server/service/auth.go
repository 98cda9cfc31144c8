package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/IvanChernomyrdin/go-user-api/internal/server/config"
	"github.com/IvanChernomyrdin/go-user-api/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-user-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-user-api/internal/shared/errors"
)

// AuthService реализует бизнес-логику аутентификации.
//
// Ответственность:
//   - регистрация пользователей (хэширование пароля + создание записи)
//   - аутентификация (логин) и выпуск access-токена
type AuthService struct {
	users UsersRepo

	bcryptCost int
	jwt        crypto.JWTConfig
}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, cfg *config.Config) *AuthService {
	return &AuthService{
		users: users,

		bcryptCost: cfg.Password.Bcrypt.Cost,
		jwt: crypto.JWTConfig{
			Issuer:     cfg.Auth.Issuer,
			Audience:   cfg.Auth.Audience,
			SigningKey: cfg.Auth.JWT.SigningKey,
			AccessTTL:  cfg.Auth.AccessTTL,
		},
	}
}

// Register регистрирует нового пользователя.
//
// Валидация:
//   - email обязателен и должен быть валидным
//   - пароль обязателен и длиной >= 8 символов
//
// Возвращает:
//   - созданного пользователя (без plaintext пароля)
//   - ErrInvalidInput при некорректных данных или ErrAlreadyExists если email уже зарегистрирован
func (s *AuthService) Register(ctx context.Context, email, password string) (models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	password = strings.TrimSpace(password)

	if email == "" || password == "" || !emailRe.MatchString(email) || len(password) < 8 {
		return models.User{}, serr.ErrInvalidInput
	}

	hash, err := crypto.HashPassword(password, s.bcryptCost)
	if err != nil {
		return models.User{}, serr.ErrInternal
	}

	id, err := s.users.Create(ctx, email, hash)
	if err != nil {
		return models.User{}, err
	}

	return models.User{ID: id, Email: email, PasswordHash: hash}, nil
}

// Login аутентифицирует пользователя и выдаёт access-токен.
//
// Поведение:
//   - не раскрывает факт существования email: несуществующий email
//     и неверный пароль дают одну и ту же ErrInvalidCredentials
//
// Ошибки:
//   - ErrInvalidInput
//   - ErrInvalidCredentials
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return "", serr.ErrInvalidInput
	}
	// получаем юзера по email
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// не палим существование email
		if errors.Is(err, serr.ErrNotFound) {
			return "", serr.ErrInvalidCredentials
		}
		return "", err
	}
	// проверяем пароль
	if !crypto.VerifyPassword(password, user.PasswordHash) {
		return "", serr.ErrInvalidCredentials
	}
	// выпускаем access токен (sub = email)
	access, err := crypto.NewAccessToken(user.Email, s.jwt)
	if err != nil {
		return "", serr.ErrInternal
	}

	return access, nil
}
