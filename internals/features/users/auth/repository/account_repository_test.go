package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quanlycanho_backend/internals/constants"
	"quanlycanho_backend/internals/seeds"
)

func TestFindByUsernameAndCheckPassword(t *testing.T) {
	repo := NewAccountRepository(seeds.NewStore())

	acc, err := repo.FindByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, constants.RoleAdmin, acc.Role)
	assert.NotEqual(t, "admin123", acc.Password, "password phải được hash khi nạp")

	assert.NoError(t, repo.CheckPassword(acc, "admin123"))
	assert.Error(t, repo.CheckPassword(acc, "sai-mat-khau"))
}

func TestFindByUsernameNotFound(t *testing.T) {
	repo := NewAccountRepository(seeds.NewStore())

	_, err := repo.FindByUsername("khong-ton-tai")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestTenantAccountBinding(t *testing.T) {
	repo := NewAccountRepository(seeds.NewStore())

	acc, err := repo.FindByUsername("tenant1")
	require.NoError(t, err)
	assert.Equal(t, constants.RoleTenant, acc.Role)
	assert.Equal(t, 1, acc.TenantID)
	assert.Equal(t, "201", acc.RoomID)
}

func TestListNeverExposesPlaintext(t *testing.T) {
	repo := NewAccountRepository(seeds.NewStore())

	list := repo.List()
	require.Len(t, list, 6)
	for _, acc := range list {
		assert.True(t, strings.HasPrefix(acc.Password, "$2"), "password của %s phải là hash bcrypt", acc.Username)
	}
}
