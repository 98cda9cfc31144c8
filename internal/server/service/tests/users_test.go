package tests

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-user-api/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-user-api/internal/server/models"
	"github.com/IvanChernomyrdin/go-user-api/internal/server/service"
	svcmocks "github.com/IvanChernomyrdin/go-user-api/internal/server/service/mocks"
	serr "github.com/IvanChernomyrdin/go-user-api/internal/shared/errors"
)

func newUsersService(t *testing.T) (*service.UsersService, *svcmocks.MockUsersRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	users := svcmocks.NewMockUsersRepo(ctrl)
	return service.NewUsersService(users, testConfig()), users
}

func TestUsersService_List_OK(t *testing.T) {
	svc, users := newUsersService(t)

	users.EXPECT().
		List(gomock.Any()).
		Return([]models.User{
			{ID: 1, Email: "a@mail.com"},
			{ID: 2, Email: "b@mail.com"},
		}, nil)

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 users, got %d", len(got))
	}
}

func TestUsersService_GetByID_NotFound(t *testing.T) {
	svc, users := newUsersService(t)

	users.EXPECT().
		GetByID(gomock.Any(), int64(404)).
		Return(models.User{}, serr.ErrNotFound)

	_, err := svc.GetByID(context.Background(), 404)
	if !errors.Is(err, serr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUsersService_Update_OK(t *testing.T) {
	svc, users := newUsersService(t)

	password := "NewStrongPass123"

	users.EXPECT().
		GetByID(gomock.Any(), int64(1)).
		Return(models.User{ID: 1, Email: "old@mail.com", PasswordHash: "oldhash"}, nil)

	users.EXPECT().
		Update(gomock.Any(), int64(1), "new@mail.com", gomock.Any()).
		DoAndReturn(func(ctx context.Context, id int64, email, hash string) error {
			// пароль перехэшируется при обновлении
			if !crypto.VerifyPassword(password, hash) {
				t.Fatal("stored hash does not verify the new password")
			}
			return nil
		})

	user, err := svc.Update(context.Background(), 1, "New@Mail.com", password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "new@mail.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestUsersService_Update_NotFound(t *testing.T) {
	svc, users := newUsersService(t)

	users.EXPECT().
		GetByID(gomock.Any(), int64(404)).
		Return(models.User{}, serr.ErrNotFound)

	_, err := svc.Update(context.Background(), 404, "new@mail.com", "NewStrongPass123")
	if !errors.Is(err, serr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUsersService_Update_InvalidInput(t *testing.T) {
	svc, _ := newUsersService(t)

	_, err := svc.Update(context.Background(), 1, "not-an-email", "NewStrongPass123")
	if !errors.Is(err, serr.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

// Email занят другим пользователем
func TestUsersService_Update_EmailTaken(t *testing.T) {
	svc, users := newUsersService(t)

	users.EXPECT().
		GetByID(gomock.Any(), int64(1)).
		Return(models.User{ID: 1, Email: "old@mail.com"}, nil)

	users.EXPECT().
		Update(gomock.Any(), int64(1), "taken@mail.com", gomock.Any()).
		Return(serr.ErrAlreadyExists)

	_, err := svc.Update(context.Background(), 1, "taken@mail.com", "NewStrongPass123")
	if !errors.Is(err, serr.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestUsersService_Delete_OK(t *testing.T) {
	svc, users := newUsersService(t)

	users.EXPECT().
		Delete(gomock.Any(), int64(1)).
		Return(nil)

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUsersService_Delete_NotFound(t *testing.T) {
	svc, users := newUsersService(t)

	users.EXPECT().
		Delete(gomock.Any(), int64(404)).
		Return(serr.ErrNotFound)

	if err := svc.Delete(context.Background(), 404); !errors.Is(err, serr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
