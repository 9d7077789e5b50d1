package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"quanlycanho_backend/internals/features/finance/invoices/dto"
	invoiceModel "quanlycanho_backend/internals/features/finance/invoices/model"
	"quanlycanho_backend/internals/features/finance/invoices/repository"
	tenantModel "quanlycanho_backend/internals/features/property/tenants/model"
	helper "quanlycanho_backend/internals/helpers"
	"quanlycanho_backend/internals/seeds"
)

type InvoiceController struct {
	Invoices *repository.InvoiceRepository
	tenants  []tenantModel.TenantModel
}

func NewInvoiceController(store *seeds.Store) *InvoiceController {
	return &InvoiceController{
		Invoices: repository.NewInvoiceRepository(store),
		tenants:  store.Tenants(),
	}
}

// 🟢 GET /api/a/invoices
func (ctrl *InvoiceController) List(c *fiber.Ctx) error {
	invoices := ctrl.Invoices.List()
	return helper.JsonList(c, "Danh sách hóa đơn", dto.ToInvoiceResponseList(invoices, ctrl.tenants))
}

// 🟢 GET /api/a/invoices/summary — tổng hợp doanh thu theo trạng thái.
func (ctrl *InvoiceController) Summary(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Tổng hợp hóa đơn", fiber.Map{
		"paidTotal":    ctrl.Invoices.TotalByStatus(invoiceModel.InvoiceStatusPaid).IntPart(),
		"pendingTotal": ctrl.Invoices.TotalByStatus(invoiceModel.InvoiceStatusPending).IntPart(),
		"overdueTotal": ctrl.Invoices.TotalByStatus(invoiceModel.InvoiceStatusOverdue).IntPart(),
		"paidCount":    ctrl.Invoices.CountByStatus(invoiceModel.InvoiceStatusPaid),
		"pendingCount": ctrl.Invoices.CountByStatus(invoiceModel.InvoiceStatusPending),
		"overdueCount": ctrl.Invoices.CountByStatus(invoiceModel.InvoiceStatusOverdue),
		"invoiceCount": len(ctrl.Invoices.List()),
	})
}

// 🟢 GET /api/a/invoices/:id
func (ctrl *InvoiceController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID hóa đơn không hợp lệ")
	}
	invoice, err := ctrl.Invoices.FindByID(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Không tìm thấy hóa đơn")
	}
	return helper.JsonOK(c, "Chi tiết hóa đơn", dto.ToInvoiceResponse(invoice, ctrl.tenants))
}

// 🟡 POST /api/a/invoices
func (ctrl *InvoiceController) Create(c *fiber.Ctx) error {
	var req dto.InvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Dữ liệu gửi lên không hợp lệ")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}
	created := ctrl.Invoices.Create(req.ToModel())
	return helper.JsonCreated(c, "Tạo hóa đơn thành công", dto.ToInvoiceResponse(&created, ctrl.tenants))
}

// 🟡 PUT /api/a/invoices/:id
func (ctrl *InvoiceController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID hóa đơn không hợp lệ")
	}
	var req dto.InvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Dữ liệu gửi lên không hợp lệ")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}
	updated, err := ctrl.Invoices.Update(id, req.ToModel())
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Không tìm thấy hóa đơn")
	}
	return helper.JsonUpdated(c, "Cập nhật hóa đơn thành công", dto.ToInvoiceResponse(updated, ctrl.tenants))
}

// 🟡 POST /api/a/invoices/:id/pay — ghi nhận thanh toán.
func (ctrl *InvoiceController) MarkPaid(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID hóa đơn không hợp lệ")
	}
	invoice, err := ctrl.Invoices.MarkPaid(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Không tìm thấy hóa đơn")
	}
	return helper.JsonUpdated(c, "Đã ghi nhận thanh toán", dto.ToInvoiceResponse(invoice, ctrl.tenants))
}

// 🔴 DELETE /api/a/invoices/:id?confirm=true
func (ctrl *InvoiceController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID hóa đơn không hợp lệ")
	}
	if !helper.DeleteConfirmed(c) {
		return helper.JsonOK(c, helper.NotConfirmedMessage, nil)
	}
	if err := ctrl.Invoices.Delete(id); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Không tìm thấy hóa đơn")
	}
	return helper.JsonDeleted(c, "Xóa hóa đơn thành công", fiber.Map{"id": id})
}
