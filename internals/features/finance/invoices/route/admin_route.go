package route

import (
	"github.com/gofiber/fiber/v2"

	"quanlycanho_backend/internals/constants"
	"quanlycanho_backend/internals/features/finance/invoices/controller"
	authMiddleware "quanlycanho_backend/internals/middlewares/auth"
	"quanlycanho_backend/internals/policy"
	"quanlycanho_backend/internals/seeds"
)

// InvoiceAdminRoutes: CRUD hóa đơn + ghi nhận thanh toán + tổng hợp.
// Route tĩnh /summary phải đăng ký trước /:id.
func InvoiceAdminRoutes(api fiber.Router, store *seeds.Store) {
	ctrl := controller.NewInvoiceController(store)

	invoices := api.Group("/invoices",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorStaff("quản lý hóa đơn"),
			policy.RolesFor(policy.ResInvoices, policy.ActView),
		),
	)
	invoices.Get("/", ctrl.List)
	invoices.Get("/summary", ctrl.Summary)
	invoices.Get("/:id", ctrl.GetByID)
	invoices.Post("/", ctrl.Create)
	invoices.Post("/:id/pay", ctrl.MarkPaid)
	invoices.Put("/:id", ctrl.Update)
	invoices.Delete("/:id",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("xóa hóa đơn"),
			policy.RolesFor(policy.ResInvoices, policy.ActDelete),
		),
		ctrl.Delete,
	)
}
