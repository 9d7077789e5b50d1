package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"quanlycanho_backend/internals/configs"
	"quanlycanho_backend/internals/constants"
	accountModel "quanlycanho_backend/internals/features/users/auth/model"
)

const accessTokenTTL = 24 * time.Hour

// buildAccessClaims dựng claims cho access token của một tài khoản.
// tenant_id/room_id chỉ có với role tenant.
func buildAccessClaims(acc *accountModel.AccountModel, now time.Time) jwt.MapClaims {
	claims := jwt.MapClaims{
		"sub":       acc.ID,
		"user_name": acc.Name,
		"role":      acc.Role,
		"jti":       uuid.NewString(),
		"iat":       now.Unix(),
		"exp":       now.Add(accessTokenTTL).Unix(),
	}
	if acc.Role == constants.RoleTenant {
		claims["tenant_id"] = acc.TenantID
		claims["room_id"] = acc.RoomID
	}
	return claims
}

// IssueAccessToken ký access token HS256 cho tài khoản.
func IssueAccessToken(acc *accountModel.AccountModel) (string, error) {
	claims := buildAccessClaims(acc, time.Now())
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
}
