package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quanlycanho_backend/internals/configs"
	"quanlycanho_backend/internals/constants"
	accountModel "quanlycanho_backend/internals/features/users/auth/model"
)

func TestBuildAccessClaims(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	staff := &accountModel.AccountModel{ID: 1, Name: "Phạm Hải Dương", Role: constants.RoleAdmin}
	claims := buildAccessClaims(staff, now)

	assert.Equal(t, 1, claims["sub"])
	assert.Equal(t, constants.RoleAdmin, claims["role"])
	assert.Equal(t, now.Unix(), claims["iat"])
	assert.Equal(t, now.Add(24*time.Hour).Unix(), claims["exp"])
	assert.NotEmpty(t, claims["jti"])
	// staff không mang binding tenant
	assert.NotContains(t, claims, "tenant_id")
	assert.NotContains(t, claims, "room_id")

	tenant := &accountModel.AccountModel{ID: 3, Name: "Nguyễn Văn An", Role: constants.RoleTenant, TenantID: 1, RoomID: "201"}
	claims = buildAccessClaims(tenant, now)

	assert.Equal(t, 1, claims["tenant_id"])
	assert.Equal(t, "201", claims["room_id"])
}

func TestIssueAccessTokenRoundTrip(t *testing.T) {
	configs.JWTSecret = "test-secret"

	acc := &accountModel.AccountModel{ID: 2, Name: "Nguyễn Thị Hà", Role: constants.RoleManager}
	signed, err := IssueAccessToken(acc)
	require.NoError(t, err)

	parsed, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, constants.RoleManager, claims["role"])
	assert.Equal(t, "Nguyễn Thị Hà", claims["user_name"])
}

func TestBlacklist(t *testing.T) {
	BlacklistToken("jti-con-han", time.Now().Add(time.Hour))
	BlacklistToken("jti-het-han", time.Now().Add(-time.Minute))

	assert.True(t, IsTokenBlacklisted("jti-con-han"))
	assert.False(t, IsTokenBlacklisted("jti-het-han"))
	assert.False(t, IsTokenBlacklisted("jti-chua-thay"))

	// entry hết hạn bị quét bỏ ở lần ghi kế tiếp
	BlacklistToken("jti-khac", time.Now().Add(time.Hour))
	blacklistMu.RLock()
	_, stillThere := blacklist["jti-het-han"]
	blacklistMu.RUnlock()
	assert.False(t, stillThere)
}
