package controller

import (
	"github.com/gofiber/fiber/v2"

	helper "quanlycanho_backend/internals/helpers"
	"quanlycanho_backend/internals/navigation"
)

type MenuController struct{}

func NewMenuController() *MenuController {
	return &MenuController{}
}

// 🟢 GET /api/u/menu — danh sách menu theo role của người gọi.
func (ctrl *MenuController) GetMenu(c *fiber.Ctx) error {
	role, _ := c.Locals("userRole").(string)
	return helper.JsonList(c, "Menu điều hướng", navigation.MenuFor(role))
}

// 🟢 GET /api/u/menu/title?path=/rooms — tiêu đề trang theo path.
func (ctrl *MenuController) GetTitle(c *fiber.Ctx) error {
	path := c.Query("path")
	return helper.JsonOK(c, "Tiêu đề trang", fiber.Map{
		"path":  path,
		"title": navigation.TitleFor(path),
	})
}
