package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"quanlycanho_backend/internals/features/property/contracts/dto"
	"quanlycanho_backend/internals/features/property/contracts/repository"
	roomModel "quanlycanho_backend/internals/features/property/rooms/model"
	tenantModel "quanlycanho_backend/internals/features/property/tenants/model"
	helper "quanlycanho_backend/internals/helpers"
	"quanlycanho_backend/internals/seeds"
)

type ContractController struct {
	Contracts *repository.ContractRepository
	tenants   []tenantModel.TenantModel
	rooms     []roomModel.RoomModel
}

func NewContractController(store *seeds.Store) *ContractController {
	return &ContractController{
		Contracts: repository.NewContractRepository(store),
		tenants:   store.Tenants(),
		rooms:     store.Rooms(),
	}
}

// 🟢 GET /api/a/contracts
func (ctrl *ContractController) List(c *fiber.Ctx) error {
	contracts := ctrl.Contracts.List()
	return helper.JsonList(c, "Danh sách hợp đồng", dto.ToContractResponseList(contracts, ctrl.tenants, ctrl.rooms))
}

// 🟢 GET /api/a/contracts/:id
func (ctrl *ContractController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID hợp đồng không hợp lệ")
	}
	contract, err := ctrl.Contracts.FindByID(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Không tìm thấy hợp đồng")
	}
	return helper.JsonOK(c, "Chi tiết hợp đồng", dto.ToContractResponse(contract, ctrl.tenants, ctrl.rooms))
}

// 🟡 POST /api/a/contracts
func (ctrl *ContractController) Create(c *fiber.Ctx) error {
	var req dto.ContractRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Dữ liệu gửi lên không hợp lệ")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}
	created := ctrl.Contracts.Create(req.ToModel())
	return helper.JsonCreated(c, "Tạo hợp đồng thành công", dto.ToContractResponse(&created, ctrl.tenants, ctrl.rooms))
}

// 🟡 PUT /api/a/contracts/:id
func (ctrl *ContractController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID hợp đồng không hợp lệ")
	}
	var req dto.ContractRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Dữ liệu gửi lên không hợp lệ")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}
	updated, err := ctrl.Contracts.Update(id, req.ToModel())
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Không tìm thấy hợp đồng")
	}
	return helper.JsonUpdated(c, "Cập nhật hợp đồng thành công", dto.ToContractResponse(updated, ctrl.tenants, ctrl.rooms))
}

// 🔴 DELETE /api/a/contracts/:id?confirm=true
func (ctrl *ContractController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID hợp đồng không hợp lệ")
	}
	if !helper.DeleteConfirmed(c) {
		return helper.JsonOK(c, helper.NotConfirmedMessage, nil)
	}
	if err := ctrl.Contracts.Delete(id); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Không tìm thấy hợp đồng")
	}
	return helper.JsonDeleted(c, "Xóa hợp đồng thành công", fiber.Map{"id": id})
}
