package route

import (
	"github.com/gofiber/fiber/v2"

	"quanlycanho_backend/internals/features/users/auth/controller"
	"quanlycanho_backend/internals/middlewares"
	authMiddleware "quanlycanho_backend/internals/middlewares/auth"
	"quanlycanho_backend/internals/seeds"
)

// AuthRoutes: login công khai (rate limit chặt), logout/me cần token.
func AuthRoutes(app *fiber.App, store *seeds.Store) {
	ctrl := controller.NewAuthController(store)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/logout", authMiddleware.AuthMiddleware(), ctrl.Logout)
	auth.Get("/me", authMiddleware.AuthMiddleware(), ctrl.Me)
}
