package controller

import (
	"github.com/gofiber/fiber/v2"

	helper "quanlycanho_backend/internals/helpers"
)

// ExpenseController: quản lý chi phí chưa có nghiệp vụ, endpoint giữ chỗ
// cho tới khi tính năng được xây.
type ExpenseController struct{}

func NewExpenseController() *ExpenseController {
	return &ExpenseController{}
}

// 🟢 GET /api/a/expenses
func (ctrl *ExpenseController) List(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Chức năng đang phát triển", fiber.Map{
		"expenses": []interface{}{},
	})
}
