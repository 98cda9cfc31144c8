// Package service содержит бизнес-логику приложения.
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"

	"github.com/IvanChernomyrdin/go-user-api/internal/server/config"
	"github.com/IvanChernomyrdin/go-user-api/internal/server/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users UsersRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth  *AuthService
	Users *UsersService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (параметры хэширования пароля и JWT).
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:  NewAuthService(repos.Users, cfg),
		Users: NewUsersService(repos.Users, cfg),
	}
}

// UsersRepo — репозиторий пользователей.
//
//go:generate mockgen -source=service.go -destination=mocks/mock_repos.go -package=mocks
type UsersRepo interface {
	Create(ctx context.Context, email, passwordHash string) (int64, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id int64, email, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}
