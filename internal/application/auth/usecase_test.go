package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/facturas-rastreo/internal/application/dto"
	"github.com/tu-usuario/facturas-rastreo/internal/domain"
	"github.com/tu-usuario/facturas-rastreo/internal/domain/entity"
	"github.com/tu-usuario/facturas-rastreo/pkg/jwt"
)

type fakeUsuarioRepo struct {
	porEmail map[string]*entity.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{porEmail: make(map[string]*entity.Usuario)}
}

func (r *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	if _, ok := r.porEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	copia := *u
	r.porEmail[u.Email] = &copia
	return nil
}

func (r *fakeUsuarioRepo) FindByEmail(email string) (*entity.Usuario, error) {
	u, ok := r.porEmail[email]
	if !ok {
		return nil, nil
	}
	copia := *u
	return &copia, nil
}

func (r *fakeUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	for _, u := range r.porEmail {
		if u.ID == id {
			copia := *u
			return &copia, nil
		}
	}
	return nil, nil
}

func testJWTConfig() JWTConfig {
	return JWTConfig{Secret: "secreto-de-test", ExpMinutes: 60, Issuer: "facturas-rastreo"}
}

func TestRegisterYLogin(t *testing.T) {
	uc := NewUseCase(newFakeUsuarioRepo(), testJWTConfig())

	reg, err := uc.Register(dto.RegisterRequest{
		Email:    "admin@empresa.com",
		Nombre:   "Admin",
		Password: "clave123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RolAdmin, reg.Rol, "sin rol explícito se asigna admin")

	resp, err := uc.Login(dto.LoginRequest{Usuario: "admin@empresa.com", Password: "clave123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin@empresa.com", resp.Usuario.Email)

	userID, rol, err := jwt.Parse("secreto-de-test", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, userID)
	assert.Equal(t, entity.RolAdmin, rol)
}

func TestLogin_AliasDeUsuario(t *testing.T) {
	uc := NewUseCase(newFakeUsuarioRepo(), testJWTConfig())

	_, err := uc.Register(dto.RegisterRequest{
		Email:    "valeria@g.com",
		Nombre:   "Valeria",
		Password: "clave123",
		Rol:      entity.RolRestringido,
	})
	require.NoError(t, err)

	// El alias corto resuelve al email registrado.
	resp, err := uc.Login(dto.LoginRequest{Usuario: "valeria", Password: "clave123"})
	require.NoError(t, err)
	assert.Equal(t, "valeria@g.com", resp.Usuario.Email)
	assert.Equal(t, entity.RolRestringido, resp.Usuario.Rol)

	_, rol, err := jwt.Parse("secreto-de-test", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RolRestringido, rol)
}

func TestLogin_Errores(t *testing.T) {
	uc := NewUseCase(newFakeUsuarioRepo(), testJWTConfig())

	_, err := uc.Register(dto.RegisterRequest{Email: "a@b.com", Password: "clave123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Usuario: "nadie@b.com", Password: "clave123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Login(dto.LoginRequest{Usuario: "a@b.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc := NewUseCase(newFakeUsuarioRepo(), testJWTConfig())

	_, err := uc.Register(dto.RegisterRequest{Email: "a@b.com", Password: "clave123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "a@b.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_RolInvalido(t *testing.T) {
	uc := NewUseCase(newFakeUsuarioRepo(), testJWTConfig())

	_, err := uc.Register(dto.RegisterRequest{Email: "a@b.com", Password: "clave123", Rol: "superusuario"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
