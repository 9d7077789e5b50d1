package controller

import (
	"github.com/gofiber/fiber/v2"

	"quanlycanho_backend/internals/constants"
	"quanlycanho_backend/internals/features/community/feedbacks/dto"
	feedbackModel "quanlycanho_backend/internals/features/community/feedbacks/model"
	tenantModel "quanlycanho_backend/internals/features/property/tenants/model"
	helper "quanlycanho_backend/internals/helpers"
	"quanlycanho_backend/internals/seeds"
)

type FeedbackController struct {
	feedbacks []feedbackModel.FeedbackModel
	tenants   []tenantModel.TenantModel
}

func NewFeedbackController(store *seeds.Store) *FeedbackController {
	return &FeedbackController{
		feedbacks: store.Feedbacks(),
		tenants:   store.Tenants(),
	}
}

// 🟢 GET /api/u/feedbacks — staff thấy toàn bộ, khách thuê chỉ thấy phản ánh
// của mình.
func (ctrl *FeedbackController) List(c *fiber.Ctx) error {
	role, _ := c.Locals("userRole").(string)
	if role == constants.RoleTenant {
		tenantID, _ := c.Locals("tenant_id").(int)
		mine := make([]feedbackModel.FeedbackModel, 0)
		for i := range ctrl.feedbacks {
			if ctrl.feedbacks[i].TenantID == tenantID {
				mine = append(mine, ctrl.feedbacks[i])
			}
		}
		return helper.JsonList(c, "Phản ánh của bạn", dto.ToFeedbackResponseList(mine, ctrl.tenants))
	}
	return helper.JsonList(c, "Danh sách phản ánh", dto.ToFeedbackResponseList(ctrl.feedbacks, ctrl.tenants))
}
