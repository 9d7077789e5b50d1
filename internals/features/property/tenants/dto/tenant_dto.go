package dto

import (
	tenantModel "quanlycanho_backend/internals/features/property/tenants/model"
)

// 🔹 Request tạo/cập nhật khách thuê. Bộ field bắt buộc lấy đúng theo form
// cũ: name, phone, email, idCard, roomId, moveInDate.
type TenantRequest struct {
	Name       string `json:"name" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	IDCard     string `json:"idCard" validate:"required"`
	RoomID     string `json:"roomId" validate:"required"`
	MoveInDate string `json:"moveInDate" validate:"required"`
	Status     string `json:"status" validate:"omitempty,oneof=active inactive pending"`
}

// 🔹 Response khách thuê
type TenantResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	IDCard      string `json:"idCard"`
	RoomID      string `json:"roomId"`
	MoveInDate  string `json:"moveInDate"`
	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel"`
}

func (r *TenantRequest) ToModel() tenantModel.TenantModel {
	status := r.Status
	if status == "" {
		status = tenantModel.TenantStatusActive
	}
	return tenantModel.TenantModel{
		Name:       r.Name,
		Phone:      r.Phone,
		Email:      r.Email,
		IDCard:     r.IDCard,
		RoomID:     r.RoomID,
		MoveInDate: r.MoveInDate,
		Status:     status,
	}
}

func ToTenantResponse(m *tenantModel.TenantModel) TenantResponse {
	return TenantResponse{
		ID:          m.ID,
		Name:        m.Name,
		Phone:       m.Phone,
		Email:       m.Email,
		IDCard:      m.IDCard,
		RoomID:      m.RoomID,
		MoveInDate:  m.MoveInDate,
		Status:      m.Status,
		StatusLabel: m.StatusLabel(),
	}
}

func ToTenantResponseList(models []tenantModel.TenantModel) []TenantResponse {
	result := make([]TenantResponse, 0, len(models))
	for i := range models {
		result = append(result, ToTenantResponse(&models[i]))
	}
	return result
}
