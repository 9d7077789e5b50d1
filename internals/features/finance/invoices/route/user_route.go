package route

import (
	"github.com/gofiber/fiber/v2"

	"quanlycanho_backend/internals/constants"
	"quanlycanho_backend/internals/features/finance/invoices/controller"
	authMiddleware "quanlycanho_backend/internals/middlewares/auth"
	"quanlycanho_backend/internals/policy"
	"quanlycanho_backend/internals/seeds"
)

// InvoiceUserRoutes: self-service cho khách thuê.
func InvoiceUserRoutes(api fiber.Router, store *seeds.Store) {
	ctrl := controller.NewMyInvoicesController(store)

	api.Get("/my-invoices",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorTenant("hóa đơn"),
			policy.RolesFor(policy.ResMyInvoices, policy.ActView),
		),
		ctrl.GetMyInvoices,
	)
}
