// Package policy gom toàn bộ bảng phân quyền role → resource/action về một
// chỗ. Trước đây logic này (canEdit/canDelete) bị lặp lại trong từng trang;
// mọi route và menu giờ đều tra qua đây.
package policy

import (
	"quanlycanho_backend/internals/constants"
)

type Resource string

const (
	ResDashboard     Resource = "dashboard"
	ResRooms         Resource = "rooms"
	ResTenants       Resource = "tenants"
	ResContracts     Resource = "contracts"
	ResInvoices      Resource = "invoices"
	ResExpenses      Resource = "expenses"
	ResAccounts      Resource = "accounts"
	ResSystem        Resource = "system"
	ResMyRoom        Resource = "my-room"
	ResMyContract    Resource = "my-contract"
	ResMyInvoices    Resource = "my-invoices"
	ResIncidents     Resource = "incidents"
	ResFeedbacks     Resource = "feedbacks"
	ResNotifications Resource = "notifications"
	ResRules         Resource = "rules"
)

type Action string

const (
	ActView   Action = "view"
	ActCreate Action = "create"
	ActEdit   Action = "edit"
	ActDelete Action = "delete"
)

// Các resource CRUD dùng chung một rule: xem/sửa cho admin+manager,
// xóa chỉ admin.
var managedResources = map[Resource]struct{}{
	ResRooms:     {},
	ResTenants:   {},
	ResContracts: {},
	ResInvoices:  {},
}

// CanAccess trả lời (role, resource, action) → được phép hay không.
// Bảng rule là tập đóng: role lạ hay resource lạ đều bị từ chối.
func CanAccess(role string, res Resource, act Action) bool {
	switch res {
	case ResDashboard:
		// mọi role đều có dashboard (tenant là bản own-scoped)
		return act == ActView && contains(constants.AllRoles, role)

	case ResIncidents, ResFeedbacks, ResNotifications, ResRules:
		return act == ActView && contains(constants.AllRoles, role)

	case ResMyRoom, ResMyContract, ResMyInvoices:
		return act == ActView && role == constants.RoleTenant

	case ResExpenses, ResAccounts:
		return act == ActView && contains(constants.StaffRoles, role)

	case ResSystem:
		return act == ActView && role == constants.RoleAdmin
	}

	if _, ok := managedResources[res]; ok {
		switch act {
		case ActView, ActCreate, ActEdit:
			return contains(constants.StaffRoles, role)
		case ActDelete:
			return role == constants.RoleAdmin
		}
	}
	return false
}

// RolesFor liệt kê các role được phép, dùng để dựng middleware cho route
// group. Thứ tự theo constants.AllRoles.
func RolesFor(res Resource, act Action) []string {
	var out []string
	for _, role := range constants.AllRoles {
		if CanAccess(role, res, act) {
			out = append(out, role)
		}
	}
	return out
}

func contains(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
