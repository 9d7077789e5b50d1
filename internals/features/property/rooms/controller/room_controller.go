package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"quanlycanho_backend/internals/features/property/rooms/dto"
	"quanlycanho_backend/internals/features/property/rooms/repository"
	tenantModel "quanlycanho_backend/internals/features/property/tenants/model"
	helper "quanlycanho_backend/internals/helpers"
	"quanlycanho_backend/internals/seeds"
)

// RoomController: CRUD phòng cho admin/manager. Giữ thêm bản copy danh sách
// khách thuê chỉ để gắn thông tin người đang ở vào response.
type RoomController struct {
	Rooms   *repository.RoomRepository
	tenants []tenantModel.TenantModel
}

func NewRoomController(store *seeds.Store) *RoomController {
	return &RoomController{
		Rooms:   repository.NewRoomRepository(store),
		tenants: store.Tenants(),
	}
}

// 🟢 GET /api/a/rooms
func (ctrl *RoomController) List(c *fiber.Ctx) error {
	rooms := ctrl.Rooms.List()
	return helper.JsonList(c, "", dto.ToRoomResponseList(rooms, ctrl.tenants))
}

// 🟢 GET /api/a/rooms/:id
func (ctrl *RoomController) GetByID(c *fiber.Ctx) error {
	room, err := ctrl.Rooms.FindByID(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Không tìm thấy phòng")
	}
	return helper.JsonOK(c, "", dto.ToRoomResponse(room, ctrl.tenants))
}

// 🟢 POST /api/a/rooms
func (ctrl *RoomController) Create(c *fiber.Ctx) error {
	var req dto.RoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Dữ liệu không hợp lệ")
	}
	if fieldErrors := helper.ValidateStruct(req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	room, err := ctrl.Rooms.Create(req.ToModel())
	if err != nil {
		if errors.Is(err, repository.ErrRoomIDTaken) {
			return helper.JsonError(c, fiber.StatusConflict, "Mã phòng đã tồn tại")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Không thể tạo phòng")
	}
	return helper.JsonCreated(c, "Đã tạo phòng mới", dto.ToRoomResponse(room, ctrl.tenants))
}

// 🟡 PUT /api/a/rooms/:id
func (ctrl *RoomController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.RoomUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Dữ liệu không hợp lệ")
	}
	if fieldErrors := helper.ValidateStruct(req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	room, err := ctrl.Rooms.Update(id, req.ToModel(id))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Không tìm thấy phòng")
	}
	return helper.JsonUpdated(c, "Đã cập nhật phòng", dto.ToRoomResponse(room, ctrl.tenants))
}

// 🔴 DELETE /api/a/rooms/:id?confirm=true (chỉ admin)
func (ctrl *RoomController) Delete(c *fiber.Ctx) error {
	if !helper.DeleteConfirmed(c) {
		return helper.JsonOK(c, helper.NotConfirmedMessage, nil)
	}

	if err := ctrl.Rooms.Delete(c.Params("id")); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Không tìm thấy phòng")
	}
	return helper.JsonDeleted(c, "Đã xóa phòng", nil)
}
