package model

const (
	TenantStatusActive   = "active"
	TenantStatusInactive = "inactive"
	TenantStatusPending  = "pending"
)

// TenantModel: khách thuê. RoomID tham chiếu RoomModel.ID (không ràng buộc
// duy nhất — UI cũ cũng không kiểm tra).
type TenantModel struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	IDCard     string `json:"idCard"`
	RoomID     string `json:"roomId"`
	MoveInDate string `json:"moveInDate"`
	Status     string `json:"status"`
}

func (m *TenantModel) StatusLabel() string {
	switch m.Status {
	case TenantStatusActive:
		return "Đang thuê"
	case TenantStatusInactive:
		return "Đã rời đi"
	case TenantStatusPending:
		return "Chờ xác nhận"
	default:
		return m.Status
	}
}
