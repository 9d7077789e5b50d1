package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quanlycanho_backend/internals/constants"
)

func TestCanAccessManagedResources(t *testing.T) {
	for _, res := range []Resource{ResRooms, ResTenants, ResContracts, ResInvoices} {
		for _, act := range []Action{ActView, ActCreate, ActEdit} {
			assert.True(t, CanAccess(constants.RoleAdmin, res, act), "admin %s %s", res, act)
			assert.True(t, CanAccess(constants.RoleManager, res, act), "manager %s %s", res, act)
			assert.False(t, CanAccess(constants.RoleTenant, res, act), "tenant %s %s", res, act)
		}
		// xóa chỉ dành cho admin
		assert.True(t, CanAccess(constants.RoleAdmin, res, ActDelete))
		assert.False(t, CanAccess(constants.RoleManager, res, ActDelete))
		assert.False(t, CanAccess(constants.RoleTenant, res, ActDelete))
	}
}

func TestCanAccessSharedResources(t *testing.T) {
	for _, res := range []Resource{ResDashboard, ResIncidents, ResFeedbacks, ResNotifications, ResRules} {
		for _, role := range constants.AllRoles {
			assert.True(t, CanAccess(role, res, ActView), "%s %s", role, res)
		}
		assert.False(t, CanAccess(constants.RoleAdmin, res, ActDelete))
	}
}

func TestCanAccessTenantSelfService(t *testing.T) {
	for _, res := range []Resource{ResMyRoom, ResMyContract, ResMyInvoices} {
		assert.True(t, CanAccess(constants.RoleTenant, res, ActView))
		assert.False(t, CanAccess(constants.RoleAdmin, res, ActView))
		assert.False(t, CanAccess(constants.RoleManager, res, ActView))
	}
}

func TestCanAccessStaffOnlyPages(t *testing.T) {
	for _, res := range []Resource{ResExpenses, ResAccounts} {
		assert.True(t, CanAccess(constants.RoleAdmin, res, ActView))
		assert.True(t, CanAccess(constants.RoleManager, res, ActView))
		assert.False(t, CanAccess(constants.RoleTenant, res, ActView))
	}
}

func TestCanAccessSystemAdminOnly(t *testing.T) {
	assert.True(t, CanAccess(constants.RoleAdmin, ResSystem, ActView))
	assert.False(t, CanAccess(constants.RoleManager, ResSystem, ActView))
	assert.False(t, CanAccess(constants.RoleTenant, ResSystem, ActView))
}

func TestCanAccessUnknownInputs(t *testing.T) {
	assert.False(t, CanAccess("guest", ResRooms, ActView))
	assert.False(t, CanAccess(constants.RoleAdmin, Resource("reports"), ActView))
}

func TestRolesFor(t *testing.T) {
	assert.Equal(t, []string{constants.RoleAdmin, constants.RoleManager}, RolesFor(ResRooms, ActView))
	assert.Equal(t, []string{constants.RoleAdmin}, RolesFor(ResRooms, ActDelete))
	assert.Equal(t, []string{constants.RoleTenant}, RolesFor(ResMyRoom, ActView))
	assert.Equal(t, constants.AllRoles, RolesFor(ResDashboard, ActView))
}
