package controller

import (
	"github.com/gofiber/fiber/v2"

	"quanlycanho_backend/internals/configs"
	"quanlycanho_backend/internals/features/users/preferences/service"
	helper "quanlycanho_backend/internals/helpers"
)

type PreferenceController struct {
	prefs *service.PreferenceService
}

func NewPreferenceController() *PreferenceController {
	return &PreferenceController{
		prefs: service.NewPreferenceService(configs.PrefsFile),
	}
}

type sidebarRequest struct {
	Collapsed bool `json:"collapsed"`
}

// 🟢 GET /api/u/preferences/sidebar
func (ctrl *PreferenceController) GetSidebar(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(int)
	return helper.JsonOK(c, "Tùy chọn sidebar", fiber.Map{
		"collapsed": ctrl.prefs.SidebarCollapsed(userID),
	})
}

// 🟡 PUT /api/u/preferences/sidebar {"collapsed": true}
func (ctrl *PreferenceController) PutSidebar(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(int)
	var req sidebarRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Dữ liệu gửi lên không hợp lệ")
	}
	if err := ctrl.prefs.SetSidebarCollapsed(userID, req.Collapsed); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Không lưu được tùy chọn")
	}
	return helper.JsonUpdated(c, "Đã lưu tùy chọn sidebar", fiber.Map{
		"collapsed": req.Collapsed,
	})
}
