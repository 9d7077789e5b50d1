package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	roomModel "quanlycanho_backend/internals/features/property/rooms/model"
	"quanlycanho_backend/internals/features/property/tenants/dto"
	"quanlycanho_backend/internals/features/property/tenants/repository"
	helper "quanlycanho_backend/internals/helpers"
	"quanlycanho_backend/internals/seeds"
)

// TenantController: CRUD khách thuê cho admin/manager. Giữ copy danh sách
// phòng để phục vụ dropdown "phòng còn trống" của form.
type TenantController struct {
	Tenants *repository.TenantRepository
	rooms   []roomModel.RoomModel
}

func NewTenantController(store *seeds.Store) *TenantController {
	return &TenantController{
		Tenants: repository.NewTenantRepository(store),
		rooms:   store.Rooms(),
	}
}

// 🟢 GET /api/a/tenants
func (ctrl *TenantController) List(c *fiber.Ctx) error {
	return helper.JsonList(c, "", dto.ToTenantResponseList(ctrl.Tenants.List()))
}

// 🟢 GET /api/a/tenants/available-rooms?current=201
// Phòng chọn được trong form: phòng trống + phòng hiện tại của khách đang
// sửa (để không tự đá khách ra khỏi phòng của họ).
func (ctrl *TenantController) AvailableRooms(c *fiber.Ctx) error {
	current := c.Query("current")

	var out []roomModel.RoomModel
	for i := range ctrl.rooms {
		if ctrl.rooms[i].Status == roomModel.RoomStatusAvailable || ctrl.rooms[i].ID == current {
			out = append(out, ctrl.rooms[i])
		}
	}
	return helper.JsonList(c, "", out)
}

// 🟢 GET /api/a/tenants/:id
func (ctrl *TenantController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID không hợp lệ")
	}

	tenant, err := ctrl.Tenants.FindByID(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Không tìm thấy khách thuê")
	}
	return helper.JsonOK(c, "", dto.ToTenantResponse(tenant))
}

// 🟢 POST /api/a/tenants
func (ctrl *TenantController) Create(c *fiber.Ctx) error {
	var req dto.TenantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Dữ liệu không hợp lệ")
	}
	if fieldErrors := helper.ValidateStruct(req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	tenant := ctrl.Tenants.Create(req.ToModel())
	return helper.JsonCreated(c, "Đã thêm khách thuê", dto.ToTenantResponse(tenant))
}

// 🟡 PUT /api/a/tenants/:id
func (ctrl *TenantController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID không hợp lệ")
	}

	var req dto.TenantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Dữ liệu không hợp lệ")
	}
	if fieldErrors := helper.ValidateStruct(req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	tenant, err := ctrl.Tenants.Update(id, req.ToModel())
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Không tìm thấy khách thuê")
	}
	return helper.JsonUpdated(c, "Đã cập nhật khách thuê", dto.ToTenantResponse(tenant))
}

// 🔴 DELETE /api/a/tenants/:id?confirm=true (chỉ admin)
// Lưu ý: xóa khách thuê KHÔNG tự chuyển trạng thái phòng; trạng thái phòng
// sửa riêng qua module phòng.
func (ctrl *TenantController) Delete(c *fiber.Ctx) error {
	if !helper.DeleteConfirmed(c) {
		return helper.JsonOK(c, helper.NotConfirmedMessage, nil)
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID không hợp lệ")
	}

	if err := ctrl.Tenants.Delete(id); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Không tìm thấy khách thuê")
	}
	return helper.JsonDeleted(c, "Đã xóa khách thuê", nil)
}
