package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-user-api/internal/server/config"
	"github.com/IvanChernomyrdin/go-user-api/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-user-api/internal/server/models"
	"github.com/IvanChernomyrdin/go-user-api/internal/server/service"
	svcmocks "github.com/IvanChernomyrdin/go-user-api/internal/server/service/mocks"
	serr "github.com/IvanChernomyrdin/go-user-api/internal/shared/errors"
)

// testConfig — минимальная валидная конфигурация для сервисов.
// cost=4, чтобы bcrypt в тестах не тормозил.
func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			Issuer:    "issuer",
			Audience:  "audience",
			AccessTTL: 1 * time.Minute,
			JWT: config.JWTConfig{
				Algorithm:  "HS256",
				SigningKey: "supersecretkeysupersecretkey123456", // >= 32
			},
		},
		Password: config.PasswordConfig{
			Hasher: "bcrypt",
			Bcrypt: config.BcryptConfig{Cost: 4},
		},
	}
}

func newAuthService(t *testing.T) (*service.AuthService, *svcmocks.MockUsersRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	users := svcmocks.NewMockUsersRepo(ctrl)
	return service.NewAuthService(users, testConfig()), users
}

func TestAuthService_Register_OK(t *testing.T) {
	svc, users := newAuthService(t)

	email := "Test@Example.com"
	password := "StrongPass123"

	users.EXPECT().
		Create(gomock.Any(), "test@example.com", gomock.Any()).
		DoAndReturn(func(ctx context.Context, gotEmail, gotHash string) (int64, error) {
			// сервис нормализует email и хэширует пароль
			if gotHash == "" || gotHash == password {
				t.Fatalf("expected hashed password, got %q", gotHash)
			}
			if !crypto.VerifyPassword(password, gotHash) {
				t.Fatal("stored hash does not verify the original password")
			}
			return 1, nil
		})

	user, err := svc.Register(context.Background(), email, password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 1 || user.Email != "test@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Register_InvalidInput(t *testing.T) {
	svc, _ := newAuthService(t)

	cases := []struct {
		name            string
		email, password string
	}{
		{"empty email", "", "StrongPass123"},
		{"empty password", "test@example.com", ""},
		{"bad email", "not-an-email", "StrongPass123"},
		{"short password", "test@example.com", "short"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.email, tc.password)
			if !errors.Is(err, serr.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAuthService_Register_AlreadyExists(t *testing.T) {
	svc, users := newAuthService(t)

	users.EXPECT().
		Create(gomock.Any(), "test@example.com", gomock.Any()).
		Return(int64(0), serr.ErrAlreadyExists)

	_, err := svc.Register(context.Background(), "test@example.com", "StrongPass123")
	if !errors.Is(err, serr.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAuthService_Login_OK(t *testing.T) {
	svc, users := newAuthService(t)

	email := "test@example.com"
	password := "StrongPass123"

	hash, err := crypto.HashPassword(password, 4)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	users.EXPECT().
		GetByEmail(gomock.Any(), email).
		Return(models.User{ID: 1, Email: email, PasswordHash: hash}, nil)

	token, err := svc.Login(context.Background(), email, password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty access token")
	}

	// токен должен парситься тем же конфигом и содержать email
	cfg := testConfig()
	got, err := crypto.ParseAccessToken(token, crypto.JWTConfig{
		Issuer:     cfg.Auth.Issuer,
		Audience:   cfg.Auth.Audience,
		SigningKey: cfg.Auth.JWT.SigningKey,
		AccessTTL:  cfg.Auth.AccessTTL,
	})
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if got != email {
		t.Fatalf("expected subject %q, got %q", email, got)
	}
}

// Несуществующий email и неверный пароль дают одну и ту же ошибку
func TestAuthService_Login_NoEnumeration(t *testing.T) {
	svc, users := newAuthService(t)

	hash, _ := crypto.HashPassword("RealPassword123", 4)

	users.EXPECT().
		GetByEmail(gomock.Any(), "absent@example.com").
		Return(models.User{}, serr.ErrNotFound)

	_, errAbsent := svc.Login(context.Background(), "absent@example.com", "whatever123")

	users.EXPECT().
		GetByEmail(gomock.Any(), "present@example.com").
		Return(models.User{ID: 1, Email: "present@example.com", PasswordHash: hash}, nil)

	_, errWrongPass := svc.Login(context.Background(), "present@example.com", "WrongPassword123")

	if !errors.Is(errAbsent, serr.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for absent email, got %v", errAbsent)
	}
	if !errors.Is(errWrongPass, serr.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", errWrongPass)
	}
	if errAbsent.Error() != errWrongPass.Error() {
		t.Fatal("expected identical error messages for both failure modes")
	}
}

func TestAuthService_Login_InvalidInput(t *testing.T) {
	svc, _ := newAuthService(t)

	if _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, serr.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
