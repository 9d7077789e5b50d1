// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"quanlycanho_backend/internals/configs"
	authService "quanlycanho_backend/internals/features/users/auth/service"
	helper "quanlycanho_backend/internals/helpers"
)

// AuthMiddleware xác thực JWT, chặn token đã logout (blacklist) và đẩy
// thông tin principal vào Locals cho các handler phía sau:
// user_id (int), user_name, userRole, tenant_id (int), room_id, token_jti,
// token_exp (int64). Quyết định chặn xảy ra trước khi handler chạy — route
// được bảo vệ không bao giờ "lộ" nội dung cho request thiếu quyền.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(configs.JWTSecret), nil
		}); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Token không hợp lệ")
		}

		jti, _ := claims["jti"].(string)
		if jti == "" || authService.IsTokenBlacklisted(jti) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Token đã bị thu hồi")
		}

		storeClaimsToLocals(c, claims, jti)
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return "", errors.New("Unauthorized - Header Authorization sai định dạng")
		}
		return strings.TrimPrefix(authHeader, "Bearer "), nil
	}
	// cookie fallback
	if tok := c.Cookies("access_token"); tok != "" {
		return tok, nil
	}
	return "", errors.New("Unauthorized - Thiếu token")
}

func storeClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims, jti string) {
	c.Locals("token_jti", jti)
	if sub, ok := claims["sub"].(float64); ok {
		c.Locals("user_id", int(sub))
	}
	if name, ok := claims["user_name"].(string); ok {
		c.Locals("user_name", name)
	}
	if role, ok := claims["role"].(string); ok {
		c.Locals("userRole", role)
	}
	if tid, ok := claims["tenant_id"].(float64); ok {
		c.Locals("tenant_id", int(tid))
	}
	if rid, ok := claims["room_id"].(string); ok {
		c.Locals("room_id", rid)
	}
	if exp, ok := claims["exp"].(float64); ok {
		c.Locals("token_exp", int64(exp))
	}
}
