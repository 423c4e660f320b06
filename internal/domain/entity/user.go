package entity

import "time"

// User representa un usuario del sistema (acceso por username + password).
type User struct {
	ID           string // UUID
	Username     string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
