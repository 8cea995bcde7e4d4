package entity

import "time"

// Roles de usuario. El rol restringido solo puede consultar el resumen de
// facturas; todo lo demás requiere admin.
const (
	RolAdmin       = "admin"
	RolRestringido = "restringido"
)

// Usuario cuenta de acceso a la aplicación.
type Usuario struct {
	ID           string
	Email        string
	Nombre       string
	PasswordHash string
	Rol          string // admin | restringido
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
