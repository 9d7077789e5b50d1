// file: internals/helpers/lookup.go
package helper

import (
	"fmt"

	roomModel "quanlycanho_backend/internals/features/property/rooms/model"
	tenantModel "quanlycanho_backend/internals/features/property/tenants/model"
)

// Placeholder khi một tham chiếu tenantId/roomId không còn resolve được.
const MissingRefLabel = "N/A"

// TenantName tra tên khách thuê theo id, trả về "N/A" khi không tìm thấy.
func TenantName(tenants []tenantModel.TenantModel, tenantID int) string {
	for i := range tenants {
		if tenants[i].ID == tenantID {
			return tenants[i].Name
		}
	}
	return MissingRefLabel
}

// RoomLabel tra nhãn phòng dạng "201 (25m²)" theo id, trả về "N/A" khi
// không tìm thấy.
func RoomLabel(rooms []roomModel.RoomModel, roomID string) string {
	for i := range rooms {
		if rooms[i].ID == roomID {
			return fmt.Sprintf("%s (%dm²)", rooms[i].ID, rooms[i].Area)
		}
	}
	return MissingRefLabel
}

// FindRoom trả về phòng theo id hoặc nil khi dangling reference.
func FindRoom(rooms []roomModel.RoomModel, roomID string) *roomModel.RoomModel {
	for i := range rooms {
		if rooms[i].ID == roomID {
			return &rooms[i]
		}
	}
	return nil
}
