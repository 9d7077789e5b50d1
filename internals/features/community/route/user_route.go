package route

import (
	"github.com/gofiber/fiber/v2"

	feedbackController "quanlycanho_backend/internals/features/community/feedbacks/controller"
	incidentController "quanlycanho_backend/internals/features/community/incidents/controller"
	notificationController "quanlycanho_backend/internals/features/community/notifications/controller"
	ruleController "quanlycanho_backend/internals/features/community/rules/controller"
	"quanlycanho_backend/internals/seeds"
)

// CommunityUserRoutes: sự cố, phản ánh, thông báo, nội quy. Mọi role đăng
// nhập đều truy cập được, dữ liệu tự scope theo role trong controller.
func CommunityUserRoutes(api fiber.Router, store *seeds.Store) {
	incidents := incidentController.NewIncidentController(store)
	feedbacks := feedbackController.NewFeedbackController(store)
	notifications := notificationController.NewNotificationController(store)
	rules := ruleController.NewRuleController(store)

	api.Get("/incidents", incidents.List)
	api.Get("/feedbacks", feedbacks.List)
	api.Get("/notifications", notifications.List)
	api.Get("/rules", rules.List)
}
