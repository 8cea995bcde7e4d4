package dto

import "time"

// LoginRequest body para POST /api/auth/login. Usuario acepta el email o
// un nombre de usuario conocido (se resuelve a email en el caso de uso).
type LoginRequest struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
}

// RegisterRequest body para POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Nombre   string `json:"nombre"`
	Password string `json:"password"`
	Rol      string `json:"rol,omitempty"` // admin | restringido; vacío = admin
}

// UsuarioResponse usuario en respuestas (sin hash).
type UsuarioResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Nombre    string    `json:"nombre"`
	Rol       string    `json:"rol"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse token JWT más el usuario autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
