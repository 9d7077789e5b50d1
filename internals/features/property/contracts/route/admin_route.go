package route

import (
	"github.com/gofiber/fiber/v2"

	"quanlycanho_backend/internals/constants"
	"quanlycanho_backend/internals/features/property/contracts/controller"
	authMiddleware "quanlycanho_backend/internals/middlewares/auth"
	"quanlycanho_backend/internals/policy"
	"quanlycanho_backend/internals/seeds"
)

// ContractAdminRoutes: CRUD hợp đồng, quyền theo bảng policy (xóa chỉ admin).
func ContractAdminRoutes(api fiber.Router, store *seeds.Store) {
	ctrl := controller.NewContractController(store)

	contracts := api.Group("/contracts",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorStaff("quản lý hợp đồng"),
			policy.RolesFor(policy.ResContracts, policy.ActView),
		),
	)
	contracts.Get("/", ctrl.List)
	contracts.Get("/:id", ctrl.GetByID)
	contracts.Post("/", ctrl.Create)
	contracts.Put("/:id", ctrl.Update)
	contracts.Delete("/:id",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("xóa hợp đồng"),
			policy.RolesFor(policy.ResContracts, policy.ActDelete),
		),
		ctrl.Delete,
	)
}
