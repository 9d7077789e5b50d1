package model

const (
	ContractStatusActive     = "active"
	ContractStatusExpired    = "expired"
	ContractStatusTerminated = "terminated"
)

// ContractModel: hợp đồng thuê giữa một khách thuê và một phòng.
type ContractModel struct {
	ID          int    `json:"id"`
	TenantID    int    `json:"tenantId"`
	RoomID      string `json:"roomId"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	MonthlyRent int64  `json:"monthlyRent"`
	Deposit     int64  `json:"deposit"`
	Status      string `json:"status"`
}

func (m *ContractModel) StatusLabel() string {
	switch m.Status {
	case ContractStatusActive:
		return "Đang hiệu lực"
	case ContractStatusExpired:
		return "Hết hạn"
	case ContractStatusTerminated:
		return "Đã chấm dứt"
	default:
		return m.Status
	}
}
