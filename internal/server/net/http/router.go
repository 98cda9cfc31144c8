// Package http реализует маршрутизацию HTTP-слоя сервера.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - логирование выполнения HTTP-запросов;
//   - выполняет проверку JWT access-токенов;
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/go-user-api/internal/server/api"
	"github.com/IvanChernomyrdin/go-user-api/internal/server/middleware"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - публичные эндпоинты: приветствие, регистрация, выдача токена;
//   - middleware логирования и CORS для всех запросов;
//   - группу защищённых JWT эндпоинтов (чтение/обновление/удаление).
//
// corsOrigins — разрешённые origin'ы; пустой список отключает CORS.
func NewRouter(h *api.Handler, corsOrigins []string) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware())
	if len(corsOrigins) > 0 {
		r.Use(middleware.CORSMiddleware(corsOrigins))
	}

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Публичные пути
	r.Get("/", h.Root)
	r.Post("/token", h.Token)
	r.Post("/utilisateur/", h.Register) // регистрация доступна без токена

	// защищённые пути
	r.Group(func(r chi.Router) {
		// проверка access токена
		r.Use(h.Verifier.AuthMiddleware())

		r.Get("/utilisateurs/", h.ListUsers)
		r.Route("/utilisateur/{id}", func(r chi.Router) {
			r.Get("/", h.GetUser)
			r.Put("/", h.UpdateUser)
			r.Delete("/", h.DeleteUser)
		})
	})

	return r
}
