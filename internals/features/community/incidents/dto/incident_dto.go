package dto

import (
	incidentModel "quanlycanho_backend/internals/features/community/incidents/model"
	tenantModel "quanlycanho_backend/internals/features/property/tenants/model"
	helper "quanlycanho_backend/internals/helpers"
)

type IncidentResponse struct {
	ID           int     `json:"id"`
	TenantID     int     `json:"tenantId"`
	TenantName   string  `json:"tenantName"`
	RoomID       string  `json:"roomId"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Status       string  `json:"status"`
	StatusLabel  string  `json:"statusLabel"`
	Priority     string  `json:"priority"`
	CreatedDate  string  `json:"createdDate"`
	ResolvedDate *string `json:"resolvedDate"`
}

func statusLabel(status string) string {
	switch status {
	case incidentModel.IncidentStatusResolved:
		return "Đã xử lý"
	case incidentModel.IncidentStatusPending:
		return "Chờ xử lý"
	default:
		return status
	}
}

func ToIncidentResponse(m *incidentModel.IncidentModel, tenants []tenantModel.TenantModel) IncidentResponse {
	return IncidentResponse{
		ID:           m.ID,
		TenantID:     m.TenantID,
		TenantName:   helper.TenantName(tenants, m.TenantID),
		RoomID:       m.RoomID,
		Title:        m.Title,
		Description:  m.Description,
		Status:       m.Status,
		StatusLabel:  statusLabel(m.Status),
		Priority:     m.Priority,
		CreatedDate:  m.CreatedDate,
		ResolvedDate: m.ResolvedDate,
	}
}

func ToIncidentResponseList(models []incidentModel.IncidentModel, tenants []tenantModel.TenantModel) []IncidentResponse {
	result := make([]IncidentResponse, 0, len(models))
	for i := range models {
		result = append(result, ToIncidentResponse(&models[i], tenants))
	}
	return result
}
