package model

// FeedbackModel: phản ánh/góp ý của khách thuê.
type FeedbackModel struct {
	ID          int    `json:"id"`
	TenantID    int    `json:"tenantId"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Status      string `json:"status"` // pending | reviewed
	CreatedDate string `json:"createdDate"`
}
