package route

import (
	"github.com/gofiber/fiber/v2"

	"quanlycanho_backend/internals/constants"
	"quanlycanho_backend/internals/features/property/rooms/controller"
	authMiddleware "quanlycanho_backend/internals/middlewares/auth"
	"quanlycanho_backend/internals/policy"
	"quanlycanho_backend/internals/seeds"
)

// RoomUserRoutes: self-service cho khách thuê.
func RoomUserRoutes(api fiber.Router, store *seeds.Store) {
	ctrl := controller.NewMyRoomController(store)

	api.Get("/my-room",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorTenant("thông tin phòng"),
			policy.RolesFor(policy.ResMyRoom, policy.ActView),
		),
		ctrl.GetMyRoom,
	)
}
