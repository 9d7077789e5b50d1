package model

const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

// InvoiceModel: hóa đơn hàng tháng của một khách thuê. Total là field dẫn
// xuất — luôn được tính lại từ 5 khoản phí, không bao giờ tin giá trị client
// gửi lên.
type InvoiceModel struct {
	ID          int    `json:"id"`
	TenantID    int    `json:"tenantId"`
	RoomID      string `json:"roomId"`
	Month       string `json:"month"` // YYYY-MM
	Rent        int64  `json:"rent"`
	Electricity int64  `json:"electricity"`
	Water       int64  `json:"water"`
	Internet    int64  `json:"internet"`
	Parking     int64  `json:"parking"`
	Total       int64  `json:"total"`
	Status      string `json:"status"`
	PaidDate    string `json:"paidDate,omitempty"` // YYYY-MM-DD, chỉ set khi chuyển sang paid
}

// ComputeTotal tính lại tổng hóa đơn từ 5 khoản phí thành phần.
func (m *InvoiceModel) ComputeTotal() int64 {
	return m.Rent + m.Electricity + m.Water + m.Internet + m.Parking
}

func (m *InvoiceModel) StatusLabel() string {
	switch m.Status {
	case InvoiceStatusPaid:
		return "Đã thanh toán"
	case InvoiceStatusPending:
		return "Chờ thanh toán"
	case InvoiceStatusOverdue:
		return "Quá hạn"
	default:
		return m.Status
	}
}
