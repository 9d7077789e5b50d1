package dto

import (
	invoiceModel "quanlycanho_backend/internals/features/finance/invoices/model"
	tenantModel "quanlycanho_backend/internals/features/property/tenants/model"
	helper "quanlycanho_backend/internals/helpers"
)

// 🔹 Request tạo/cập nhật hóa đơn. Các khoản phí không gửi mặc định 0,
// tổng tiền luôn do server tính lại.
type InvoiceRequest struct {
	TenantID    int    `json:"tenantId" validate:"required"`
	RoomID      string `json:"roomId" validate:"required"`
	Month       string `json:"month" validate:"required"`
	Rent        int64  `json:"rent"`
	Electricity int64  `json:"electricity"`
	Water       int64  `json:"water"`
	Internet    int64  `json:"internet"`
	Parking     int64  `json:"parking"`
	Status      string `json:"status" validate:"omitempty,oneof=paid pending overdue"`
}

type InvoiceResponse struct {
	ID          int    `json:"id"`
	TenantID    int    `json:"tenantId"`
	TenantName  string `json:"tenantName"`
	RoomID      string `json:"roomId"`
	Month       string `json:"month"`
	Rent        int64  `json:"rent"`
	Electricity int64  `json:"electricity"`
	Water       int64  `json:"water"`
	Internet    int64  `json:"internet"`
	Parking     int64  `json:"parking"`
	Total       int64  `json:"total"`
	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel"`
	PaidDate    string `json:"paidDate,omitempty"`
}

func (r *InvoiceRequest) ToModel() invoiceModel.InvoiceModel {
	status := r.Status
	if status == "" {
		status = invoiceModel.InvoiceStatusPending
	}
	m := invoiceModel.InvoiceModel{
		TenantID:    r.TenantID,
		RoomID:      r.RoomID,
		Month:       r.Month,
		Rent:        r.Rent,
		Electricity: r.Electricity,
		Water:       r.Water,
		Internet:    r.Internet,
		Parking:     r.Parking,
		Status:      status,
	}
	m.Total = m.ComputeTotal()
	return m
}

func ToInvoiceResponse(m *invoiceModel.InvoiceModel, tenants []tenantModel.TenantModel) InvoiceResponse {
	return InvoiceResponse{
		ID:          m.ID,
		TenantID:    m.TenantID,
		TenantName:  helper.TenantName(tenants, m.TenantID),
		RoomID:      m.RoomID,
		Month:       m.Month,
		Rent:        m.Rent,
		Electricity: m.Electricity,
		Water:       m.Water,
		Internet:    m.Internet,
		Parking:     m.Parking,
		Total:       m.Total,
		Status:      m.Status,
		StatusLabel: m.StatusLabel(),
		PaidDate:    m.PaidDate,
	}
}

func ToInvoiceResponseList(models []invoiceModel.InvoiceModel, tenants []tenantModel.TenantModel) []InvoiceResponse {
	result := make([]InvoiceResponse, 0, len(models))
	for i := range models {
		result = append(result, ToInvoiceResponse(&models[i], tenants))
	}
	return result
}
