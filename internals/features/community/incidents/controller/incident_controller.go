package controller

import (
	"github.com/gofiber/fiber/v2"

	"quanlycanho_backend/internals/constants"
	"quanlycanho_backend/internals/features/community/incidents/dto"
	incidentModel "quanlycanho_backend/internals/features/community/incidents/model"
	tenantModel "quanlycanho_backend/internals/features/property/tenants/model"
	helper "quanlycanho_backend/internals/helpers"
	"quanlycanho_backend/internals/seeds"
)

type IncidentController struct {
	incidents []incidentModel.IncidentModel
	tenants   []tenantModel.TenantModel
}

func NewIncidentController(store *seeds.Store) *IncidentController {
	return &IncidentController{
		incidents: store.Incidents(),
		tenants:   store.Tenants(),
	}
}

// 🟢 GET /api/u/incidents — staff thấy toàn bộ, khách thuê chỉ thấy báo cáo
// của mình.
func (ctrl *IncidentController) List(c *fiber.Ctx) error {
	role, _ := c.Locals("userRole").(string)
	if role == constants.RoleTenant {
		tenantID, _ := c.Locals("tenant_id").(int)
		mine := make([]incidentModel.IncidentModel, 0)
		for i := range ctrl.incidents {
			if ctrl.incidents[i].TenantID == tenantID {
				mine = append(mine, ctrl.incidents[i])
			}
		}
		return helper.JsonList(c, "Báo cáo sự cố của bạn", dto.ToIncidentResponseList(mine, ctrl.tenants))
	}
	return helper.JsonList(c, "Danh sách báo cáo sự cố", dto.ToIncidentResponseList(ctrl.incidents, ctrl.tenants))
}
