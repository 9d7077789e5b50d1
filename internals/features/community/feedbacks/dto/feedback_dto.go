package dto

import (
	feedbackModel "quanlycanho_backend/internals/features/community/feedbacks/model"
	tenantModel "quanlycanho_backend/internals/features/property/tenants/model"
	helper "quanlycanho_backend/internals/helpers"
)

type FeedbackResponse struct {
	ID          int    `json:"id"`
	TenantID    int    `json:"tenantId"`
	TenantName  string `json:"tenantName"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel"`
	CreatedDate string `json:"createdDate"`
}

func statusLabel(status string) string {
	switch status {
	case "reviewed":
		return "Đã xem xét"
	case "pending":
		return "Chờ xem xét"
	default:
		return status
	}
}

func ToFeedbackResponse(m *feedbackModel.FeedbackModel, tenants []tenantModel.TenantModel) FeedbackResponse {
	return FeedbackResponse{
		ID:          m.ID,
		TenantID:    m.TenantID,
		TenantName:  helper.TenantName(tenants, m.TenantID),
		Title:       m.Title,
		Content:     m.Content,
		Status:      m.Status,
		StatusLabel: statusLabel(m.Status),
		CreatedDate: m.CreatedDate,
	}
}

func ToFeedbackResponseList(models []feedbackModel.FeedbackModel, tenants []tenantModel.TenantModel) []FeedbackResponse {
	result := make([]FeedbackResponse, 0, len(models))
	for i := range models {
		result = append(result, ToFeedbackResponse(&models[i], tenants))
	}
	return result
}
