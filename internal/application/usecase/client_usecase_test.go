package usecase_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comptalink-api/internal/application/usecase"
	"github.com/jhoicas/comptalink-api/internal/domain"
	"github.com/jhoicas/comptalink-api/internal/domain/entity"
)

func (f *fixture) clientUC() *usecase.ClientUseCase {
	return usecase.NewClientUseCase(f.users)
}

func TestClientes_SoloParaContadores(t *testing.T) {
	f := newFixture(t)
	uc := f.clientUC()

	_, err := uc.ListClients(f.client)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	list, err := uc.ListClients(f.accountant)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Jean Martin", list[0].FullName)
}

// El hash de contraseña jamás aparece en la representación pública,
// ni siquiera serializada.
func TestClientes_SinHashDeContrasena(t *testing.T) {
	f := newFixture(t)
	_, err := f.users.Create(&entity.User{Username: "zoe", PasswordHash: "$2a$10$secret-hash", FullName: "Zoé Bernard", Role: entity.RoleClient})
	require.NoError(t, err)

	list, err := f.clientUC().ListClients(f.accountant)
	require.NoError(t, err)

	raw, err := json.Marshal(list)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret-hash")
	assert.NotContains(t, string(raw), "password")
}

func TestClientes_OrdenPorNombre(t *testing.T) {
	f := newFixture(t)
	_, err := f.users.Create(&entity.User{Username: "zoe", PasswordHash: "x", FullName: "Zoé Bernard", Role: entity.RoleClient})
	require.NoError(t, err)
	_, err = f.users.Create(&entity.User{Username: "alice", PasswordHash: "x", FullName: "Alice Moreau", Role: entity.RoleClient})
	require.NoError(t, err)

	list, err := f.clientUC().ListClients(f.accountant)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Alice Moreau", list[0].FullName)
	assert.Equal(t, "Jean Martin", list[1].FullName)
	assert.Equal(t, "Zoé Bernard", list[2].FullName)
}
