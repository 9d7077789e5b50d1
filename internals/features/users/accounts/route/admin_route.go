package route

import (
	"github.com/gofiber/fiber/v2"

	"quanlycanho_backend/internals/constants"
	"quanlycanho_backend/internals/features/users/accounts/controller"
	authMiddleware "quanlycanho_backend/internals/middlewares/auth"
	"quanlycanho_backend/internals/policy"
	"quanlycanho_backend/internals/seeds"
)

// AccountAdminRoutes: bảng tài khoản demo, chỉ staff xem được.
func AccountAdminRoutes(api fiber.Router, store *seeds.Store) {
	ctrl := controller.NewAccountController(store)

	api.Get("/accounts",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorStaff("quản lý tài khoản"),
			policy.RolesFor(policy.ResAccounts, policy.ActView),
		),
		ctrl.List,
	)
}
