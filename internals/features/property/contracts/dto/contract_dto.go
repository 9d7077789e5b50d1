package dto

import (
	contractModel "quanlycanho_backend/internals/features/property/contracts/model"
	roomModel "quanlycanho_backend/internals/features/property/rooms/model"
	tenantModel "quanlycanho_backend/internals/features/property/tenants/model"
	helper "quanlycanho_backend/internals/helpers"
)

// 🔹 Request tạo/cập nhật hợp đồng. Bộ field bắt buộc theo form cũ.
type ContractRequest struct {
	TenantID    int    `json:"tenantId" validate:"required"`
	RoomID      string `json:"roomId" validate:"required"`
	StartDate   string `json:"startDate" validate:"required"`
	EndDate     string `json:"endDate" validate:"required"`
	MonthlyRent int64  `json:"monthlyRent" validate:"required"`
	Deposit     int64  `json:"deposit" validate:"required"`
	Status      string `json:"status" validate:"omitempty,oneof=active expired terminated"`
}

// 🔹 Response hợp đồng, kèm tên khách thuê và nhãn phòng đã resolve
// (dangling reference → "N/A").
type ContractResponse struct {
	ID          int    `json:"id"`
	TenantID    int    `json:"tenantId"`
	TenantName  string `json:"tenantName"`
	RoomID      string `json:"roomId"`
	RoomLabel   string `json:"roomLabel"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	MonthlyRent int64  `json:"monthlyRent"`
	Deposit     int64  `json:"deposit"`
	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel"`
}

func (r *ContractRequest) ToModel() contractModel.ContractModel {
	status := r.Status
	if status == "" {
		status = contractModel.ContractStatusActive
	}
	return contractModel.ContractModel{
		TenantID:    r.TenantID,
		RoomID:      r.RoomID,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		MonthlyRent: r.MonthlyRent,
		Deposit:     r.Deposit,
		Status:      status,
	}
}

func ToContractResponse(m *contractModel.ContractModel, tenants []tenantModel.TenantModel, rooms []roomModel.RoomModel) ContractResponse {
	return ContractResponse{
		ID:          m.ID,
		TenantID:    m.TenantID,
		TenantName:  helper.TenantName(tenants, m.TenantID),
		RoomID:      m.RoomID,
		RoomLabel:   helper.RoomLabel(rooms, m.RoomID),
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		MonthlyRent: m.MonthlyRent,
		Deposit:     m.Deposit,
		Status:      m.Status,
		StatusLabel: m.StatusLabel(),
	}
}

func ToContractResponseList(models []contractModel.ContractModel, tenants []tenantModel.TenantModel, rooms []roomModel.RoomModel) []ContractResponse {
	result := make([]ContractResponse, 0, len(models))
	for i := range models {
		result = append(result, ToContractResponse(&models[i], tenants, rooms))
	}
	return result
}
