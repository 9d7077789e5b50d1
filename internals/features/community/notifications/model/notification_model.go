package model

// NotificationModel: thông báo của ban quản lý. TargetRole = "all" hoặc một
// role cụ thể; chỉ thông báo IsActive mới được trả về cho người dùng.
type NotificationModel struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Type        string `json:"type"` // maintenance | announcement
	TargetRole  string `json:"targetRole"`
	CreatedDate string `json:"createdDate"`
	IsActive    bool   `json:"isActive"`
}
