package route

import (
	"github.com/gofiber/fiber/v2"

	"quanlycanho_backend/internals/features/users/preferences/controller"
)

// PreferenceUserRoutes: tùy chọn giao diện cá nhân.
func PreferenceUserRoutes(api fiber.Router) {
	ctrl := controller.NewPreferenceController()

	prefs := api.Group("/preferences")
	prefs.Get("/sidebar", ctrl.GetSidebar)
	prefs.Put("/sidebar", ctrl.PutSidebar)
}
