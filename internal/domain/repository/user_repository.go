package repository

import "github.com/jhoicas/tilestrack-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByUsername(username string) (*entity.User, error)
	// UpdatePassword reemplaza el hash de password del usuario.
	UpdatePassword(id, passwordHash string) error
}
