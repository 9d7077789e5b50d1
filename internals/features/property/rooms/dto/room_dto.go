package dto

import (
	roomModel "quanlycanho_backend/internals/features/property/rooms/model"
	tenantModel "quanlycanho_backend/internals/features/property/tenants/model"
)

// 🔹 Request tạo phòng mới (id do người quản lý đặt, không auto)
type RoomRequest struct {
	ID     string `json:"id" validate:"required"`
	Area   int    `json:"area" validate:"required"`
	Price  int64  `json:"price" validate:"required"`
	Floor  int    `json:"floor" validate:"required"`
	Status string `json:"status" validate:"omitempty,oneof=available occupied maintenance"`
}

// 🔹 Request cập nhật phòng (id lấy từ path)
type RoomUpdateRequest struct {
	Area   int    `json:"area" validate:"required"`
	Price  int64  `json:"price" validate:"required"`
	Floor  int    `json:"floor" validate:"required"`
	Status string `json:"status" validate:"required,oneof=available occupied maintenance"`
}

// 🔹 Thông tin khách thuê rút gọn gắn kèm phòng
type RoomTenantBrief struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// 🔹 Response phòng
type RoomResponse struct {
	ID          string           `json:"id"`
	Area        int              `json:"area"`
	Price       int64            `json:"price"`
	Floor       int              `json:"floor"`
	Status      string           `json:"status"`
	StatusLabel string           `json:"statusLabel"`
	Tenant      *RoomTenantBrief `json:"tenant,omitempty"`
}

func (r *RoomRequest) ToModel() roomModel.RoomModel {
	status := r.Status
	if status == "" {
		status = roomModel.RoomStatusAvailable
	}
	return roomModel.RoomModel{
		ID:     r.ID,
		Area:   r.Area,
		Price:  r.Price,
		Floor:  r.Floor,
		Status: status,
	}
}

func (r *RoomUpdateRequest) ToModel(id string) roomModel.RoomModel {
	return roomModel.RoomModel{
		ID:     id,
		Area:   r.Area,
		Price:  r.Price,
		Floor:  r.Floor,
		Status: r.Status,
	}
}

// ToRoomResponse gắn kèm khách đang ở (tìm theo roomId, như card phòng cũ).
func ToRoomResponse(m *roomModel.RoomModel, tenants []tenantModel.TenantModel) RoomResponse {
	resp := RoomResponse{
		ID:          m.ID,
		Area:        m.Area,
		Price:       m.Price,
		Floor:       m.Floor,
		Status:      m.Status,
		StatusLabel: m.StatusLabel(),
	}
	for i := range tenants {
		if tenants[i].RoomID == m.ID {
			resp.Tenant = &RoomTenantBrief{
				ID:    tenants[i].ID,
				Name:  tenants[i].Name,
				Phone: tenants[i].Phone,
			}
			break
		}
	}
	return resp
}

func ToRoomResponseList(models []roomModel.RoomModel, tenants []tenantModel.TenantModel) []RoomResponse {
	result := make([]RoomResponse, 0, len(models))
	for i := range models {
		result = append(result, ToRoomResponse(&models[i], tenants))
	}
	return result
}
