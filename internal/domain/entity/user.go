package entity

import "time"

// User representa una cuenta del sistema (personal del CRM o cliente del portal).
// Los roles válidos viven en el paquete policy.
type User struct {
	ID           string
	Email        string
	FullName     string
	AvatarURL    string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	IsActive     bool
	Role         string // admin, manager, waiter, warehouse, user
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
