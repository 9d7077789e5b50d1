package controller

import (
	"github.com/gofiber/fiber/v2"

	notificationModel "quanlycanho_backend/internals/features/community/notifications/model"
	helper "quanlycanho_backend/internals/helpers"
	"quanlycanho_backend/internals/seeds"
)

type NotificationController struct {
	notifications []notificationModel.NotificationModel
}

func NewNotificationController(store *seeds.Store) *NotificationController {
	return &NotificationController{notifications: store.Notifications()}
}

// 🟢 GET /api/u/notifications — chỉ trả thông báo đang hoạt động, đúng
// đối tượng (targetRole = "all" hoặc trùng role người gọi).
func (ctrl *NotificationController) List(c *fiber.Ctx) error {
	role, _ := c.Locals("userRole").(string)
	visible := make([]notificationModel.NotificationModel, 0)
	for i := range ctrl.notifications {
		n := ctrl.notifications[i]
		if !n.IsActive {
			continue
		}
		if n.TargetRole != "all" && n.TargetRole != role {
			continue
		}
		visible = append(visible, n)
	}
	return helper.JsonList(c, "Danh sách thông báo", visible)
}
