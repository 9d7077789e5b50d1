package controller

import (
	"github.com/gofiber/fiber/v2"

	authDTO "quanlycanho_backend/internals/features/users/auth/dto"
	authRepo "quanlycanho_backend/internals/features/users/auth/repository"
	helper "quanlycanho_backend/internals/helpers"
	"quanlycanho_backend/internals/seeds"
)

// AccountController liệt kê bảng tài khoản cố định, không bao giờ trả mật khẩu.
type AccountController struct {
	accounts *authRepo.AccountRepository
}

func NewAccountController(store *seeds.Store) *AccountController {
	return &AccountController{accounts: authRepo.NewAccountRepository(store)}
}

// 🟢 GET /api/a/accounts
func (ctrl *AccountController) List(c *fiber.Ctx) error {
	list := ctrl.accounts.List()
	result := make([]authDTO.PrincipalResponse, 0, len(list))
	for i := range list {
		result = append(result, authDTO.ToPrincipalResponse(&list[i]))
	}
	return helper.JsonList(c, "Danh sách tài khoản", result)
}
