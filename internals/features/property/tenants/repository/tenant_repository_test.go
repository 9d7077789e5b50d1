package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tenantModel "quanlycanho_backend/internals/features/property/tenants/model"
	"quanlycanho_backend/internals/seeds"
)

func newRepo() *TenantRepository {
	return NewTenantRepository(seeds.NewStore())
}

func TestCreateAssignsNextID(t *testing.T) {
	repo := newRepo()

	created := repo.Create(tenantModel.TenantModel{
		Name:   "Trần Văn Mới",
		Phone:  "0900000000",
		RoomID: "202",
		Status: tenantModel.TenantStatusActive,
	})

	assert.Equal(t, 5, created.ID)
	assert.Equal(t, 5, repo.Count())
}

func TestCreateOnEmptyRepositoryStartsAtOne(t *testing.T) {
	repo := &TenantRepository{}

	created := repo.Create(tenantModel.TenantModel{Name: "Đầu tiên"})

	assert.Equal(t, 1, created.ID)
}

func TestNextIDReusesGapFreeMax(t *testing.T) {
	repo := newRepo()

	// xóa id giữa chừng không được làm id mới trùng với id lớn nhất
	require.NoError(t, repo.Delete(2))
	created := repo.Create(tenantModel.TenantModel{Name: "Sau khi xóa"})

	assert.Equal(t, 5, created.ID)
}

func TestUpdate(t *testing.T) {
	repo := newRepo()

	updated, err := repo.Update(1, tenantModel.TenantModel{
		Name:   "Nguyễn Văn An (đổi tên)",
		Status: tenantModel.TenantStatusActive,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, updated.ID)
	assert.Equal(t, "Nguyễn Văn An (đổi tên)", updated.Name)

	_, err = repo.Update(99, tenantModel.TenantModel{})
	assert.ErrorIs(t, err, ErrTenantNotFound)
}

func TestDelete(t *testing.T) {
	repo := newRepo()

	require.NoError(t, repo.Delete(3))
	_, err := repo.FindByID(3)
	assert.ErrorIs(t, err, ErrTenantNotFound)
	assert.Equal(t, 3, repo.Count())

	assert.ErrorIs(t, repo.Delete(3), ErrTenantNotFound)
}
