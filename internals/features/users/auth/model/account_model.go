package model

// AccountModel: tài khoản đăng nhập cố định của hệ thống. Password trong
// seed là plaintext (bảng demo), được hash bcrypt khi nạp vào repository.
// TenantID/RoomID chỉ có với role tenant.
type AccountModel struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	TenantID int    `json:"tenantId,omitempty"`
	RoomID   string `json:"roomId,omitempty"`
}
