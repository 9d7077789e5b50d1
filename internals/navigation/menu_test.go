package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quanlycanho_backend/internals/constants"
)

func TestMenuForAdmin(t *testing.T) {
	items := MenuFor(constants.RoleAdmin)

	assert.Len(t, items, 12)
	assert.Equal(t, "Trang chủ", items[0].Label)
	assert.Equal(t, "/dashboard", items[0].Path)
	assert.Equal(t, "Quản lý hệ thống", items[len(items)-1].Label)
}

func TestMenuForManager(t *testing.T) {
	items := MenuFor(constants.RoleManager)

	assert.Len(t, items, 11)
	// manager không thấy mục quản lý hệ thống
	for _, item := range items {
		assert.NotEqual(t, "/system", item.Path)
	}
	assert.Equal(t, "Quản lý tài khoản", items[len(items)-1].Label)
}

func TestMenuForTenant(t *testing.T) {
	items := MenuFor(constants.RoleTenant)

	assert.Len(t, items, 8)
	assert.Equal(t, "Trang chủ", items[0].Label)
	assert.Equal(t, "Thông tin phòng", items[1].Label)
	for _, item := range items {
		assert.NotEqual(t, "/rooms", item.Path)
		assert.NotEqual(t, "/tenants", item.Path)
	}
}

func TestMenuForUnknownRoleFallsBackToTenant(t *testing.T) {
	assert.Equal(t, MenuFor(constants.RoleTenant), MenuFor("guest"))
}

func TestTitleFor(t *testing.T) {
	assert.Equal(t, "Quản lý phòng", TitleFor("/rooms"))
	assert.Equal(t, "Hóa đơn của tôi", TitleFor("/my-invoices"))
	assert.Equal(t, DefaultTitle, TitleFor("/does-not-exist"))
	assert.Equal(t, DefaultTitle, TitleFor(""))
}
