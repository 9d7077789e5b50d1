package route

import (
	"github.com/gofiber/fiber/v2"

	"quanlycanho_backend/internals/constants"
	"quanlycanho_backend/internals/features/property/contracts/controller"
	authMiddleware "quanlycanho_backend/internals/middlewares/auth"
	"quanlycanho_backend/internals/policy"
	"quanlycanho_backend/internals/seeds"
)

// ContractUserRoutes: self-service cho khách thuê.
func ContractUserRoutes(api fiber.Router, store *seeds.Store) {
	ctrl := controller.NewMyContractController(store)

	api.Get("/my-contract",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorTenant("hợp đồng"),
			policy.RolesFor(policy.ResMyContract, policy.ActView),
		),
		ctrl.GetMyContract,
	)
}
