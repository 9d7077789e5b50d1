package controller

import (
	"github.com/gofiber/fiber/v2"

	contractModel "quanlycanho_backend/internals/features/property/contracts/model"
	"quanlycanho_backend/internals/features/property/rooms/dto"
	roomModel "quanlycanho_backend/internals/features/property/rooms/model"
	helper "quanlycanho_backend/internals/helpers"
	"quanlycanho_backend/internals/seeds"
)

// MyRoomController: projection chỉ-đọc cho khách thuê, có working copy
// riêng — độc lập với RoomController của admin/manager.
type MyRoomController struct {
	rooms     []roomModel.RoomModel
	contracts []contractModel.ContractModel
}

func NewMyRoomController(store *seeds.Store) *MyRoomController {
	return &MyRoomController{
		rooms:     store.Rooms(),
		contracts: store.Contracts(),
	}
}

// 🟢 GET /api/u/my-room — phòng của khách thuê đang đăng nhập
func (ctrl *MyRoomController) GetMyRoom(c *fiber.Ctx) error {
	roomID, _ := c.Locals("room_id").(string)
	tenantID, _ := c.Locals("tenant_id").(int)

	room := helper.FindRoom(ctrl.rooms, roomID)
	if room == nil {
		// Không gán phòng hoặc phòng đã bị xóa: trạng thái "không tìm thấy",
		// không phải lỗi hệ thống.
		return helper.JsonError(c, fiber.StatusNotFound, "Không tìm thấy thông tin phòng.")
	}

	var contract *contractModel.ContractModel
	for i := range ctrl.contracts {
		if ctrl.contracts[i].TenantID == tenantID {
			contract = &ctrl.contracts[i]
			break
		}
	}

	resp := fiber.Map{
		"room": dto.ToRoomResponse(room, nil),
	}
	if contract != nil {
		resp["contract"] = contract
	}
	return helper.JsonOK(c, "", resp)
}
