package routes

import (
	"github.com/gofiber/fiber/v2"

	helper "quanlycanho_backend/internals/helpers"
)

// BaseRoutes: route công khai, không cần token.
func BaseRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return helper.JsonOK(c, "CRM Quản lý Căn hộ API", fiber.Map{
			"service": "quanlycanho_backend",
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return helper.JsonOK(c, "OK", fiber.Map{
			"status": "healthy",
		})
	})
}
