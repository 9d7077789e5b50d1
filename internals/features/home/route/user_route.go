package route

import (
	"github.com/gofiber/fiber/v2"

	dashboardController "quanlycanho_backend/internals/features/home/dashboard/controller"
	menuController "quanlycanho_backend/internals/features/home/menu/controller"
	"quanlycanho_backend/internals/seeds"
)

// HomeUserRoutes: tổng quan + menu điều hướng, mở cho mọi role đăng nhập.
func HomeUserRoutes(api fiber.Router, store *seeds.Store) {
	dashboard := dashboardController.NewDashboardController(store)
	menu := menuController.NewMenuController()

	api.Get("/dashboard", dashboard.Get)
	api.Get("/menu", menu.GetMenu)
	api.Get("/menu/title", menu.GetTitle)
}
