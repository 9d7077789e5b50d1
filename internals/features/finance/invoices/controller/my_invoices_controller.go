package controller

import (
	"github.com/gofiber/fiber/v2"

	"quanlycanho_backend/internals/features/finance/invoices/dto"
	invoiceModel "quanlycanho_backend/internals/features/finance/invoices/model"
	"quanlycanho_backend/internals/features/finance/invoices/repository"
	tenantModel "quanlycanho_backend/internals/features/property/tenants/model"
	helper "quanlycanho_backend/internals/helpers"
	"quanlycanho_backend/internals/seeds"
)

// MyInvoicesController phục vụ khách thuê xem hóa đơn của chính mình.
type MyInvoicesController struct {
	invoices *repository.InvoiceRepository
	tenants  []tenantModel.TenantModel
}

func NewMyInvoicesController(store *seeds.Store) *MyInvoicesController {
	return &MyInvoicesController{
		invoices: repository.NewInvoiceRepository(store),
		tenants:  store.Tenants(),
	}
}

// 🟢 GET /api/u/my-invoices — danh sách hóa đơn của khách thuê kèm tổng
// đã đóng / còn nợ.
func (ctrl *MyInvoicesController) GetMyInvoices(c *fiber.Ctx) error {
	tenantID, _ := c.Locals("tenant_id").(int)
	mine := ctrl.invoices.ListByTenantID(tenantID)

	var paidTotal, unpaidTotal int64
	unpaidCount := 0
	for i := range mine {
		if mine[i].Status == invoiceModel.InvoiceStatusPaid {
			paidTotal += mine[i].Total
		} else {
			unpaidTotal += mine[i].Total
			unpaidCount++
		}
	}

	return helper.JsonOK(c, "Hóa đơn của bạn", fiber.Map{
		"invoices":    dto.ToInvoiceResponseList(mine, ctrl.tenants),
		"paidTotal":   paidTotal,
		"unpaidTotal": unpaidTotal,
		"unpaidCount": unpaidCount,
	})
}
