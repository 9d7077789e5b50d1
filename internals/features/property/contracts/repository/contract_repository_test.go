package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contractModel "quanlycanho_backend/internals/features/property/contracts/model"
	"quanlycanho_backend/internals/seeds"
)

func newRepo() *ContractRepository {
	return NewContractRepository(seeds.NewStore())
}

func TestCreateAssignsNextID(t *testing.T) {
	repo := newRepo()

	created := repo.Create(contractModel.ContractModel{
		TenantID:    2,
		RoomID:      "301",
		StartDate:   "2025-01-01",
		EndDate:     "2025-12-31",
		MonthlyRent: 5200000,
		Deposit:     5200000,
		Status:      contractModel.ContractStatusActive,
	})

	assert.Equal(t, 5, created.ID)
	assert.Len(t, repo.List(), 5)
}

func TestFindByTenantID(t *testing.T) {
	repo := newRepo()

	contract, err := repo.FindByTenantID(1)
	require.NoError(t, err)
	assert.Equal(t, "201", contract.RoomID)

	_, err = repo.FindByTenantID(99)
	assert.ErrorIs(t, err, ErrContractNotFound)
}

func TestUpdateAndDelete(t *testing.T) {
	repo := newRepo()

	updated, err := repo.Update(1, contractModel.ContractModel{
		TenantID:    1,
		RoomID:      "201",
		StartDate:   "2024-06-01",
		EndDate:     "2026-05-31",
		MonthlyRent: 5400000,
		Deposit:     5400000,
		Status:      contractModel.ContractStatusActive,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.ID)
	assert.Equal(t, int64(5400000), updated.MonthlyRent)

	require.NoError(t, repo.Delete(1))
	_, err = repo.FindByID(1)
	assert.ErrorIs(t, err, ErrContractNotFound)
}
