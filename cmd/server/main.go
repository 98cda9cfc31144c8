// @title           API des utilisateurs
// @version         1.0
// @description     Minimal user-account service.
// @description     Provides user CRUD and bearer-token authentication.

// @contact.name   Ivan Chernomyrdin
// @contact.url    https://github.com/IvanChernomyrdin

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
//
// Package main содержит точку входа серверного приложения.
//
// Пакет отвечает за инициализацию и жизненный цикл HTTP-сервера, а именно:
//   - загрузку переменных окружения из файла .env (если он присутствует);
//   - загрузку конфигурации сервера из файла ./configs/server.yaml;
//   - инициализацию подключения к базе данных и управление его жизненным циклом;
//   - создание репозиториев, сервисов, middleware и HTTP-обработчиков;
//   - настройку и запуск HTTP-сервера с заданными таймаутами;
//   - обработку системных сигналов завершения (SIGINT, SIGTERM, SIGQUIT);
//   - корректное (graceful) завершение работы сервера с таймаутом.
//
// Пакет не содержит бизнес-логики и не предназначен для unit-тестирования.
// HTTP API сервера реализовано в пакете internal/server/api и документируется с помощью OpenAPI (Swagger).
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/IvanChernomyrdin/go-user-api/internal/server/api"
	"github.com/IvanChernomyrdin/go-user-api/internal/server/config"
	"github.com/IvanChernomyrdin/go-user-api/internal/server/middleware"
	h "github.com/IvanChernomyrdin/go-user-api/internal/server/net/http"
	"github.com/IvanChernomyrdin/go-user-api/internal/server/repository"
	"github.com/IvanChernomyrdin/go-user-api/internal/server/service"
	"github.com/IvanChernomyrdin/go-user-api/internal/shared/logger"

	_ "github.com/IvanChernomyrdin/go-user-api/swagger/docs"
)

func main() {
	sugar := logger.NewHTTPLogger().Logger.Sugar()
	httpLogger := logger.NewHTTPLogger()

	if err := godotenv.Load(); err != nil {
		sugar.Warnf("no .env file loaded, error: %v", err)
	}

	cfg, err := config.Load("./configs/server.yaml")
	if err != nil {
		sugar.Fatal(err)
	}
	cfg.ApplyEnvOverrides()

	// подключаем базу данных и накатываем миграции
	migrationsPath := ""
	if cfg.Migrations.Enabled {
		migrationsPath = cfg.Migrations.Path
	}
	if err := config.Init(cfg.DB.DSN, migrationsPath); err != nil {
		sugar.Fatal(err)
	}

	// возвращаем указатель на db
	db := config.GetDB()
	// делаем отложенное закрытие бд
	defer func() {
		if db != nil {
			db.Close()
		}
	}()

	// создаём репы
	usersRepo := repository.NewUsersRepository(db)
	repos := service.Repositories{
		Users: usersRepo,
	}
	// создаём сервис
	svc := service.NewServices(repos, cfg)
	// создаём jwt
	verifier := middleware.NewJWTVerifier(
		cfg.Auth.JWT.SigningKey,
		cfg.Auth.Issuer,
		cfg.Auth.Audience,
	)
	// создаём хандлер
	handler := api.NewHandler(svc, httpLogger, verifier)
	// создаём роутер
	var corsOrigins []string
	if cfg.CORS.Enabled {
		corsOrigins = cfg.CORS.AllowedOrigins
	}
	router := h.NewRouter(handler, corsOrigins)
	// создаём сервер
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// создаём контекст и errgroup
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// запускаем сервер
	g.Go(func() error {
		sugar.Infof("server started on %s", addr)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown с таймаутом из конфига
	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			cfg.Server.ShutdownTimeout,
		)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	// ожидание и единая обработка ошибок
	if err := g.Wait(); err != nil {
		sugar.Fatalf("server stopped with error: %v", err)
	}
	sugar.Info("server gracefully stopped")
}
