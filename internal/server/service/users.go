package service

import (
	"context"
	"strings"

	"github.com/IvanChernomyrdin/go-user-api/internal/server/config"
	"github.com/IvanChernomyrdin/go-user-api/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-user-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-user-api/internal/shared/errors"
)

// UsersService реализует CRUD-операции над пользователями.
//
// Ответственность:
//   - чтение списка и одного пользователя
//   - обновление (с повторным хэшированием пароля)
//   - удаление
type UsersService struct {
	users UsersRepo

	bcryptCost int
}

// NewUsersService создаёт UsersService с зависимостями и настройками из конфига.
func NewUsersService(users UsersRepo, cfg *config.Config) *UsersService {
	return &UsersService{
		users:      users,
		bcryptCost: cfg.Password.Bcrypt.Cost,
	}
}

// List возвращает всех пользователей.
func (s *UsersService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// GetByID возвращает пользователя по id.
//
// Ошибки:
//   - ErrNotFound
func (s *UsersService) GetByID(ctx context.Context, id int64) (models.User, error) {
	return s.users.GetByID(ctx, id)
}

// Update полностью заменяет email и пароль пользователя.
//
// Перед обновлением проверяется существование записи, новый пароль
// хэшируется заново. Email проходит ту же валидацию, что при регистрации.
//
// Ошибки:
//   - ErrInvalidInput
//   - ErrNotFound
//   - ErrAlreadyExists (email занят другим пользователем)
func (s *UsersService) Update(ctx context.Context, id int64, email, password string) (models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	password = strings.TrimSpace(password)

	if email == "" || password == "" || !emailRe.MatchString(email) || len(password) < 8 {
		return models.User{}, serr.ErrInvalidInput
	}

	// существование проверяем до хэширования: bcrypt дорогой,
	// незачем жечь CPU ради несуществующего id
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return models.User{}, err
	}

	hash, err := crypto.HashPassword(password, s.bcryptCost)
	if err != nil {
		return models.User{}, serr.ErrInternal
	}

	if err := s.users.Update(ctx, id, email, hash); err != nil {
		return models.User{}, err
	}

	return models.User{ID: id, Email: email, PasswordHash: hash}, nil
}

// Delete удаляет пользователя по id.
//
// Ошибки:
//   - ErrNotFound
func (s *UsersService) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}
