package tests

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"

	"github.com/IvanChernomyrdin/go-user-api/internal/server/repository"
	serr "github.com/IvanChernomyrdin/go-user-api/internal/shared/errors"
)

func userColumns() []string {
	return []string{"id", "email", "password_hash", "created_at"}
}

// Успех
func TestUsersRepository_Create_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("test@mail.com", "hash").
		WillReturnRows(
			sqlmock.NewRows([]string{"id"}).AddRow(int64(1)),
		)

	got, err := repo.Create(context.Background(), "test@mail.com", "hash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1 {
		t.Fatalf("expected id 1, got %v", got)
	}
}

// Такой пользователь уже есть
func TestUsersRepository_Create_AlreadyExists(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	pgErr := &pgconn.PgError{
		Code: "23505", // unique_violation
	}

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(pgErr)

	_, err := repo.Create(context.Background(), "test@mail.com", "hash")

	if err != serr.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

// Ошибка сервера
func TestUsersRepository_Create_InternalError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.Create(context.Background(), "test@mail.com", "hash")

	if err != serr.ErrInternal {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

// Поиск по id
func TestUsersRepository_GetByID_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT id, email, password_hash, created_at FROM users WHERE id`).
		WithArgs(int64(7)).
		WillReturnRows(
			sqlmock.NewRows(userColumns()).
				AddRow(int64(7), "test@mail.com", "hash", time.Now()),
		)

	u, err := repo.GetByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != 7 || u.Email != "test@mail.com" || u.PasswordHash != "hash" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestUsersRepository_GetByID_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT id, email, password_hash, created_at FROM users WHERE id`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 404)

	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// Поиск по email
func TestUsersRepository_GetByEmail_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT id, email, password_hash, created_at FROM users WHERE email`).
		WithArgs("test@mail.com").
		WillReturnRows(
			sqlmock.NewRows(userColumns()).
				AddRow(int64(1), "test@mail.com", "hash", time.Now()),
		)

	u, err := repo.GetByEmail(context.Background(), "test@mail.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Email != "test@mail.com" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestUsersRepository_GetByEmail_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT id, email, password_hash, created_at FROM users WHERE email`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "absent@mail.com")

	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// Список: порядок по id
func TestUsersRepository_List_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT id, email, password_hash, created_at FROM users ORDER BY id`).
		WillReturnRows(
			sqlmock.NewRows(userColumns()).
				AddRow(int64(1), "a@mail.com", "h1", time.Now()).
				AddRow(int64(2), "b@mail.com", "h2", time.Now()),
		)

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].ID != 1 || users[1].ID != 2 {
		t.Fatalf("unexpected order: %+v", users)
	}
}

func TestUsersRepository_List_Empty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT id, email, password_hash, created_at FROM users ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected empty list, got %d", len(users))
	}
}

// Обновление
func TestUsersRepository_Update_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectExec(`UPDATE users`).
		WithArgs(int64(1), "new@mail.com", "newhash").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Update(context.Background(), 1, "new@mail.com", "newhash"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUsersRepository_Update_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectExec(`UPDATE users`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), 404, "new@mail.com", "newhash")

	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// Email занят другим пользователем
func TestUsersRepository_Update_EmailTaken(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	pgErr := &pgconn.PgError{Code: "23505"}

	mock.ExpectExec(`UPDATE users`).
		WillReturnError(pgErr)

	err := repo.Update(context.Background(), 1, "taken@mail.com", "hash")

	if err != serr.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

// Удаление
func TestUsersRepository_Delete_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectExec(`DELETE FROM users`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUsersRepository_Delete_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectExec(`DELETE FROM users`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 404)

	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
