package route

import (
	"github.com/gofiber/fiber/v2"

	"quanlycanho_backend/internals/constants"
	"quanlycanho_backend/internals/features/property/tenants/controller"
	authMiddleware "quanlycanho_backend/internals/middlewares/auth"
	"quanlycanho_backend/internals/policy"
	"quanlycanho_backend/internals/seeds"
)

// TenantAdminRoutes: CRUD khách thuê, quyền theo bảng policy.
func TenantAdminRoutes(api fiber.Router, store *seeds.Store) {
	ctrl := controller.NewTenantController(store)

	tenants := api.Group("/tenants",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorStaff("quản lý khách thuê"),
			policy.RolesFor(policy.ResTenants, policy.ActView),
		),
	)
	tenants.Get("/", ctrl.List)
	tenants.Get("/available-rooms", ctrl.AvailableRooms)
	tenants.Get("/:id", ctrl.GetByID)
	tenants.Post("/", ctrl.Create)
	tenants.Put("/:id", ctrl.Update)
	tenants.Delete("/:id",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("xóa khách thuê"),
			policy.RolesFor(policy.ResTenants, policy.ActDelete),
		),
		ctrl.Delete,
	)
}
