package controller

import (
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"

	"quanlycanho_backend/internals/configs"
	helper "quanlycanho_backend/internals/helpers"
)

var startTime = time.Now()

type SystemController struct{}

func NewSystemController() *SystemController {
	return &SystemController{}
}

// 🟢 GET /api/s/system — thông tin vận hành, chỉ dành cho quản trị viên.
func (ctrl *SystemController) GetInfo(c *fiber.Ctx) error {
	env := configs.GetEnv("APP_ENV")
	if env == "" {
		env = "development"
	}
	return helper.JsonOK(c, "Thông tin hệ thống", fiber.Map{
		"uptime":      time.Since(startTime).Round(time.Second).String(),
		"goVersion":   runtime.Version(),
		"environment": env,
		"serverTime":  time.Now().Format(time.RFC3339),
	})
}
