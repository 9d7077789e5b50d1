package route

import (
	"github.com/gofiber/fiber/v2"

	"quanlycanho_backend/internals/constants"
	"quanlycanho_backend/internals/features/finance/expenses/controller"
	authMiddleware "quanlycanho_backend/internals/middlewares/auth"
	"quanlycanho_backend/internals/policy"
)

// ExpenseAdminRoutes: placeholder chi phí, chỉ staff xem được.
func ExpenseAdminRoutes(api fiber.Router) {
	ctrl := controller.NewExpenseController()

	api.Get("/expenses",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorStaff("quản lý chi phí"),
			policy.RolesFor(policy.ResExpenses, policy.ActView),
		),
		ctrl.List,
	)
}
