package auth_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comptalink-api/internal/application/auth"
	"github.com/jhoicas/comptalink-api/internal/application/dto"
	"github.com/jhoicas/comptalink-api/internal/domain"
	"github.com/jhoicas/comptalink-api/internal/domain/entity"
	"github.com/jhoicas/comptalink-api/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/comptalink-api/pkg/jwt"
)

func newAuthUC() (*auth.AuthUseCase, *memory.UserRepo) {
	users := memory.NewUserRepository()
	uc := auth.NewAuthUseCase(users, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "comptalink-test",
	})
	return uc, users
}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Username: "jean",
		Password: "motdepasse123",
		Email:    "jean@exemple.fr",
		FullName: "Jean Martin",
		Role:     entity.RoleClient,
	}
}

func TestRegister_CreaUsuarioConHashBcrypt(t *testing.T) {
	uc, users := newAuthUC()

	resp, err := uc.Register(registerRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "jean", resp.Username)
	assert.Equal(t, entity.RoleClient, resp.Role)

	stored, err := users.GetByUsername("jean")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "motdepasse123", stored.PasswordHash, "la contraseña nunca se guarda en claro")
	assert.NotEmpty(t, stored.PasswordHash)
}

// La respuesta pública no tiene campo de contraseña, ni serializado.
func TestRegister_RespuestaSinContrasena(t *testing.T) {
	uc, _ := newAuthUC()

	resp, err := uc.Register(registerRequest())
	require.NoError(t, err)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "motdepasse123")
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	uc, _ := newAuthUC()

	_, err := uc.Register(registerRequest())
	require.NoError(t, err)

	dup := registerRequest()
	dup.Email = "autre@exemple.fr"
	_, err = uc.Register(dup)
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)
}

func TestRegister_RolDesconocido(t *testing.T) {
	uc, _ := newAuthUC()

	in := registerRequest()
	in.Role = "admin"
	_, err := uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_RolPorDefectoEsClient(t *testing.T) {
	uc, _ := newAuthUC()

	in := registerRequest()
	in.Role = ""
	resp, err := uc.Register(in)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleClient, resp.Role)
}

func TestLogin_EmiteTokenConIdYRol(t *testing.T) {
	uc, _ := newAuthUC()

	in := registerRequest()
	in.Role = entity.RoleAccountant
	_, err := uc.Register(in)
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "jean", Password: "motdepasse123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "jean", out.User.Username)

	userID, role, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleAccountant, role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _ := newAuthUC()

	_, err := uc.Register(registerRequest())
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "jean", Password: "mauvais"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Username: "inconnu", Password: "motdepasse123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
