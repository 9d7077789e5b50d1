package route

import (
	"github.com/gofiber/fiber/v2"

	"quanlycanho_backend/internals/constants"
	"quanlycanho_backend/internals/features/system/controller"
	authMiddleware "quanlycanho_backend/internals/middlewares/auth"
	"quanlycanho_backend/internals/policy"
)

// SystemRoutes: thông tin vận hành, chỉ quản trị viên.
func SystemRoutes(api fiber.Router) {
	ctrl := controller.NewSystemController()

	api.Get("/system",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("quản lý hệ thống"),
			policy.RolesFor(policy.ResSystem, policy.ActView),
		),
		ctrl.GetInfo,
	)
}
