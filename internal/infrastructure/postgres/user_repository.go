package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tilestrack-api/internal/domain"
	"github.com/jhoicas/tilestrack-api/internal/domain/entity"
	"github.com/jhoicas/tilestrack-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo persistencia de cuentas en PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create inserta la cuenta; el id UUID viene generado por la capa de aplicación.
func (r *UserRepo) Create(u *entity.User) error {
	query := `
	INSERT INTO users (id, username, password_hash, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5)`

	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Username, u.PasswordHash, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return fmt.Errorf("user.Create: %w", err)
	}
	return nil
}

// GetByUsername devuelve (nil, nil) cuando la cuenta no existe.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	query := `
	SELECT id, username, password_hash, created_at, updated_at
	FROM users
	WHERE username = $1`

	var u entity.User
	err := r.q.QueryRow(context.Background(), query, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("user.GetByUsername: %w", err)
	}
	return &u, nil
}

// UpdatePassword reemplaza el hash y marca la fecha de actualización.
func (r *UserRepo) UpdatePassword(id, passwordHash string) error {
	query := `
	UPDATE users
	SET password_hash = $2, updated_at = NOW()
	WHERE id = $1`

	tag, err := r.q.Exec(context.Background(), query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("user.UpdatePassword: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
