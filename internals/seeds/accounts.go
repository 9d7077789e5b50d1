package seeds

import (
	"quanlycanho_backend/internals/constants"
	accountModel "quanlycanho_backend/internals/features/users/auth/model"
)

// Bảng tài khoản cố định. Password ở đây là plaintext demo; repository sẽ
// hash bcrypt khi nạp, login so sánh qua bcrypt.
var accounts = []accountModel.AccountModel{
	{ID: 1, Username: "admin", Password: "admin123", Name: "Phạm Hải Dương", Role: constants.RoleAdmin},
	{ID: 2, Username: "manager", Password: "manager123", Name: "Nguyễn Thị Hà", Role: constants.RoleManager},
	{ID: 3, Username: "tenant1", Password: "tenant123", Name: "Nguyễn Văn A", Role: constants.RoleTenant, TenantID: 1, RoomID: "201"},
	{ID: 4, Username: "tenant2", Password: "tenant123", Name: "Trần Thị B", Role: constants.RoleTenant, TenantID: 2, RoomID: "301"},
	{ID: 5, Username: "tenant3", Password: "tenant123", Name: "Lê Văn C", Role: constants.RoleTenant, TenantID: 3, RoomID: "402"},
	{ID: 6, Username: "tenant4", Password: "tenant123", Name: "Phạm Thị D", Role: constants.RoleTenant, TenantID: 4, RoomID: "601"},
}
