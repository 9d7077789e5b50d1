package model

const (
	IncidentStatusPending  = "pending"
	IncidentStatusResolved = "resolved"
)

// IncidentModel: báo cáo sự cố của khách thuê.
type IncidentModel struct {
	ID           int     `json:"id"`
	TenantID     int     `json:"tenantId"`
	RoomID       string  `json:"roomId"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Status       string  `json:"status"`
	Priority     string  `json:"priority"`
	CreatedDate  string  `json:"createdDate"`
	ResolvedDate *string `json:"resolvedDate"`
}
