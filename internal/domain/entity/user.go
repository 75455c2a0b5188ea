package entity

import "time"

// Roles de usuario del sistema.
const (
	RoleAdmin  = "admin"
	RoleCajero = "cajero"
	RoleMedico = "medico"
)

// User usuario del sistema (personal del hospital).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
