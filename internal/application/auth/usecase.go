// Package auth implementa registro y login. El login acepta email o un
// nombre de usuario corto conocido (mapa fijo heredado del despliegue
// original).
package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/facturas-rastreo/internal/application/dto"
	"github.com/tu-usuario/facturas-rastreo/internal/domain"
	"github.com/tu-usuario/facturas-rastreo/internal/domain/entity"
	"github.com/tu-usuario/facturas-rastreo/internal/domain/repository"
	"github.com/tu-usuario/facturas-rastreo/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// aliasUsuario resuelve nombres de usuario cortos a su email registrado.
// "valeria" es la cuenta de consulta restringida del despliegue original.
var aliasUsuario = map[string]string{
	"valeria": "valeria@g.com",
}

// UseCase casos de uso de autenticación.
type UseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	rol := in.Rol
	switch rol {
	case "":
		rol = entity.RolAdmin
	case entity.RolAdmin, entity.RolRestringido:
	default:
		return nil, domain.ErrInvalidInput
	}

	existing, _ := uc.usuarioRepo.FindByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	nombre := in.Nombre
	if nombre == "" {
		nombre = in.Email
	}
	usuario := &entity.Usuario{
		ID:           uuid.New().String(),
		Email:        in.Email,
		Nombre:       nombre,
		PasswordHash: string(hash),
		Rol:          rol,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.usuarioRepo.Create(usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// Login verifica usuario/password, genera JWT y retorna token + usuario.
// El campo usuario acepta un email o un alias corto conocido.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := in.Usuario
	if alias, ok := aliasUsuario[email]; ok {
		email = alias
	}
	usuario, err := uc.usuarioRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if usuario.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Usuario: *toUsuarioResponse(usuario),
	}, nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:        u.ID,
		Email:     u.Email,
		Nombre:    u.Nombre,
		Rol:       u.Rol,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
