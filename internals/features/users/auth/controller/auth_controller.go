package controller

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"quanlycanho_backend/internals/features/users/auth/dto"
	"quanlycanho_backend/internals/features/users/auth/repository"
	"quanlycanho_backend/internals/features/users/auth/service"
	helper "quanlycanho_backend/internals/helpers"
	"quanlycanho_backend/internals/seeds"
)

type AuthController struct {
	Accounts *repository.AccountRepository
}

func NewAuthController(store *seeds.Store) *AuthController {
	return &AuthController{Accounts: repository.NewAccountRepository(store)}
}

// 🟢 POST /api/auth/login
// Sai username hay sai password đều trả cùng một message — không cho
// phân biệt tài khoản tồn tại hay không.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Dữ liệu không hợp lệ")
	}
	req.Username = strings.TrimSpace(req.Username)

	if fieldErrors := helper.ValidateStruct(req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	acc, err := ctrl.Accounts.FindByUsername(req.Username)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Tên đăng nhập hoặc mật khẩu không đúng")
	}
	if err := ctrl.Accounts.CheckPassword(acc, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Tên đăng nhập hoặc mật khẩu không đúng")
	}

	token, err := service.IssueAccessToken(acc)
	if err != nil {
		log.Printf("[ERROR] Ký access token thất bại: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Đã xảy ra lỗi khi đăng nhập")
	}

	return helper.JsonOK(c, "Đăng nhập thành công", dto.LoginResponse{
		AccessToken: token,
		User:        dto.ToPrincipalResponse(acc),
	})
}

// 🟢 POST /api/auth/logout — thu hồi token hiện tại tới khi hết hạn
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	jti, _ := c.Locals("token_jti").(string)
	exp, _ := c.Locals("token_exp").(int64)
	if jti == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Thiếu token")
	}

	service.BlacklistToken(jti, time.Unix(exp, 0))
	return helper.JsonOK(c, "Đăng xuất thành công", nil)
}

// 🟢 GET /api/auth/me — principal của phiên hiện tại
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(int)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Thiếu thông tin người dùng")
	}

	acc, err := ctrl.Accounts.FindByID(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Không tìm thấy tài khoản")
	}

	return helper.JsonOK(c, "", dto.ToPrincipalResponse(acc))
}
