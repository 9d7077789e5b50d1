package controller

import (
	"github.com/gofiber/fiber/v2"

	"quanlycanho_backend/internals/features/property/contracts/dto"
	"quanlycanho_backend/internals/features/property/contracts/repository"
	roomModel "quanlycanho_backend/internals/features/property/rooms/model"
	tenantModel "quanlycanho_backend/internals/features/property/tenants/model"
	helper "quanlycanho_backend/internals/helpers"
	"quanlycanho_backend/internals/seeds"
)

// MyContractController phục vụ khách thuê xem hợp đồng của chính mình.
type MyContractController struct {
	contracts *repository.ContractRepository
	tenants   []tenantModel.TenantModel
	rooms     []roomModel.RoomModel
}

func NewMyContractController(store *seeds.Store) *MyContractController {
	return &MyContractController{
		contracts: repository.NewContractRepository(store),
		tenants:   store.Tenants(),
		rooms:     store.Rooms(),
	}
}

// 🟢 GET /api/u/my-contract
func (ctrl *MyContractController) GetMyContract(c *fiber.Ctx) error {
	tenantID, _ := c.Locals("tenant_id").(int)
	contract, err := ctrl.contracts.FindByTenantID(tenantID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Không tìm thấy hợp đồng của bạn.")
	}
	return helper.JsonOK(c, "Hợp đồng của bạn", dto.ToContractResponse(contract, ctrl.tenants, ctrl.rooms))
}
