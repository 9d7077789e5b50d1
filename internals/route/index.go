package routes

import (
	"github.com/gofiber/fiber/v2"

	communityRoute "quanlycanho_backend/internals/features/community/route"
	expenseRoute "quanlycanho_backend/internals/features/finance/expenses/route"
	invoiceRoute "quanlycanho_backend/internals/features/finance/invoices/route"
	homeRoute "quanlycanho_backend/internals/features/home/route"
	contractRoute "quanlycanho_backend/internals/features/property/contracts/route"
	roomRoute "quanlycanho_backend/internals/features/property/rooms/route"
	tenantRoute "quanlycanho_backend/internals/features/property/tenants/route"
	systemRoute "quanlycanho_backend/internals/features/system/route"
	accountRoute "quanlycanho_backend/internals/features/users/accounts/route"
	authRoute "quanlycanho_backend/internals/features/users/auth/route"
	preferenceRoute "quanlycanho_backend/internals/features/users/preferences/route"
	authMiddleware "quanlycanho_backend/internals/middlewares/auth"
	"quanlycanho_backend/internals/seeds"
)

// SetupRoutes gắn toàn bộ route của ứng dụng.
//
//	/api/auth — đăng nhập/đăng xuất, không cần token
//	/api/u    — người dùng đã đăng nhập (mọi role)
//	/api/a    — nghiệp vụ quản lý (admin/manager, xóa chỉ admin)
//	/api/s    — quản trị hệ thống (chỉ admin)
func SetupRoutes(app *fiber.App, store *seeds.Store) {
	BaseRoutes(app)

	authRoute.AuthRoutes(app, store)

	user := app.Group("/api/u", authMiddleware.AuthMiddleware())
	homeRoute.HomeUserRoutes(user, store)
	roomRoute.RoomUserRoutes(user, store)
	contractRoute.ContractUserRoutes(user, store)
	invoiceRoute.InvoiceUserRoutes(user, store)
	communityRoute.CommunityUserRoutes(user, store)
	preferenceRoute.PreferenceUserRoutes(user)

	admin := app.Group("/api/a", authMiddleware.AuthMiddleware())
	roomRoute.RoomAdminRoutes(admin, store)
	tenantRoute.TenantAdminRoutes(admin, store)
	contractRoute.ContractAdminRoutes(admin, store)
	invoiceRoute.InvoiceAdminRoutes(admin, store)
	expenseRoute.ExpenseAdminRoutes(admin)
	accountRoute.AccountAdminRoutes(admin, store)

	system := app.Group("/api/s", authMiddleware.AuthMiddleware())
	systemRoute.SystemRoutes(system)
}
