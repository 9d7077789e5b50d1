package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"quanlycanho_backend/internals/constants"
	"quanlycanho_backend/internals/features/home/dashboard/service"
	helper "quanlycanho_backend/internals/helpers"
	"quanlycanho_backend/internals/seeds"
)

type DashboardController struct {
	stats *service.DashboardService
}

func NewDashboardController(store *seeds.Store) *DashboardController {
	return &DashboardController{stats: service.NewDashboardService(store)}
}

// 🟢 GET /api/u/dashboard — số liệu theo role: staff thấy toàn tòa nhà,
// khách thuê chỉ thấy số liệu phòng mình.
func (ctrl *DashboardController) Get(c *fiber.Ctx) error {
	role, _ := c.Locals("userRole").(string)
	userName, _ := c.Locals("user_name").(string)

	payload := fiber.Map{
		"greeting": service.Greeting(time.Now()),
		"userName": userName,
		"role":     role,
	}

	if role == constants.RoleTenant {
		tenantID, _ := c.Locals("tenant_id").(int)
		roomID, _ := c.Locals("room_id").(string)
		payload["stats"] = ctrl.stats.TenantStats(tenantID, roomID)
	} else {
		payload["stats"] = ctrl.stats.StaffStats()
	}

	return helper.JsonOK(c, "Tổng quan", payload)
}
