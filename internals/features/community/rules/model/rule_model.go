package model

// RuleModel: nội quy & quy định của tòa nhà.
type RuleModel struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Type    string `json:"type"` // general | payment
}
