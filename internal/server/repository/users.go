// Package repository содержит реализации слоя доступа к данным (Repository layer).
//
// Репозитории инкапсулируют работу с БД и не содержат бизнес-логики.
// Все ошибки приводятся к доменным ошибкам из internal/shared/errors.
package repository

import (
	"context"
	"database/sql"

	"github.com/jackc/pgconn"

	"github.com/IvanChernomyrdin/go-user-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-user-api/internal/shared/errors"
)

type UsersRepository struct {
	db *sql.DB
}

func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// Create вставляет нового пользователя и возвращает присвоенный id.
//
// Уникальность email гарантирует constraint в БД: при гонке двух
// одинаковых регистраций ровно одна получит 23505 -> ErrAlreadyExists.
func (r *UsersRepository) Create(ctx context.Context, email, passwordHash string) (int64, error) {
	var id int64

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (email, password_hash)
		 VALUES ($1,$2)
		 RETURNING id`,
		email, passwordHash,
	).Scan(&id)

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23505" { // unique_violation
				return 0, serr.ErrAlreadyExists
			}
		}
		return 0, serr.ErrInternal
	}

	return id, nil
}

func (r *UsersRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, created_at FROM users WHERE id=$1`,
		id,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, created_at FROM users WHERE email=$1`,
		email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

// List возвращает всех пользователей, отсортированных по id.
// Сортировка фиксирует порядок в пределах одного чтения.
func (r *UsersRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, email, password_hash, created_at FROM users ORDER BY id`,
	)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, serr.ErrInternal
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}

	return users, nil
}

// Update заменяет email и password_hash пользователя.
//
// Уникальность email проверяется и при обновлении — тем же
// constraint'ом, что и при создании.
func (r *UsersRepository) Update(ctx context.Context, id int64, email, passwordHash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users
		    SET email = $2,
		        password_hash = $3
		  WHERE id = $1`,
		id, email, passwordHash,
	)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return serr.ErrAlreadyExists
		}
		return serr.ErrInternal
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return serr.ErrInternal
	}
	if affected == 0 {
		return serr.ErrNotFound
	}
	return nil
}

func (r *UsersRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM users WHERE id = $1`,
		id,
	)
	if err != nil {
		return serr.ErrInternal
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return serr.ErrInternal
	}
	if affected == 0 {
		return serr.ErrNotFound
	}
	return nil
}
