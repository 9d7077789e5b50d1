package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMiddleware "quanlycanho_backend/internals/middlewares/logger"
)

// SetupMiddlewares gắn chuỗi middleware dùng chung cho toàn app
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
