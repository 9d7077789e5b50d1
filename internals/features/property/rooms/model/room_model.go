package model

// Trạng thái phòng
const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
)

// RoomModel: phòng trong tòa nhà. ID do người quản lý đặt ("201", "302"...),
// giá tính bằng VNĐ, diện tích m².
type RoomModel struct {
	ID     string `json:"id"`
	Area   int    `json:"area"`
	Price  int64  `json:"price"`
	Floor  int    `json:"floor"`
	Status string `json:"status"`
}

// StatusLabel trả về nhãn hiển thị tiếng Việt của trạng thái phòng.
func (m *RoomModel) StatusLabel() string {
	switch m.Status {
	case RoomStatusAvailable:
		return "Trống"
	case RoomStatusOccupied:
		return "Đã thuê"
	case RoomStatusMaintenance:
		return "Bảo trì"
	default:
		return m.Status
	}
}
