package constants

import "fmt"

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleTenant  = "tenant"
)

// Template thông báo lỗi phân quyền
const (
	ErrOnlyStaffCanAccess  = "❌ Chỉ quản trị viên hoặc quản lý mới được truy cập chức năng %s."
	ErrOnlyAdminCanAccess  = "❌ Chỉ quản trị viên mới được truy cập chức năng %s."
	ErrOnlyTenantCanAccess = "❌ Chức năng %s chỉ dành cho khách thuê."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminCanAccess, feature)
}

func RoleErrorTenant(feature string) string {
	return fmt.Sprintf(ErrOnlyTenantCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleManager,
		RoleTenant,
	}

	StaffRoles = []string{
		RoleAdmin,
		RoleManager,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	TenantOnly = []string{
		RoleTenant,
	}
)

// RoleLabel trả về nhãn hiển thị tiếng Việt của role (Header.js cũ).
func RoleLabel(role string) string {
	switch role {
	case RoleAdmin:
		return "Quản trị viên"
	case RoleManager:
		return "Quản lý"
	case RoleTenant:
		return "Khách thuê"
	default:
		return role
	}
}
