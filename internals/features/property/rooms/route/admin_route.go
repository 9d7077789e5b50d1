package route

import (
	"github.com/gofiber/fiber/v2"

	"quanlycanho_backend/internals/constants"
	"quanlycanho_backend/internals/features/property/rooms/controller"
	authMiddleware "quanlycanho_backend/internals/middlewares/auth"
	"quanlycanho_backend/internals/policy"
	"quanlycanho_backend/internals/seeds"
)

// RoomAdminRoutes: CRUD phòng, quyền theo bảng policy (xóa chỉ admin).
func RoomAdminRoutes(api fiber.Router, store *seeds.Store) {
	ctrl := controller.NewRoomController(store)

	rooms := api.Group("/rooms",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorStaff("quản lý phòng"),
			policy.RolesFor(policy.ResRooms, policy.ActView),
		),
	)
	rooms.Get("/", ctrl.List)
	rooms.Get("/:id", ctrl.GetByID)
	rooms.Post("/", ctrl.Create)
	rooms.Put("/:id", ctrl.Update)
	rooms.Delete("/:id",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("xóa phòng"),
			policy.RolesFor(policy.ResRooms, policy.ActDelete),
		),
		ctrl.Delete,
	)
}
