package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quanlycanho_backend/internals/configs"
	"quanlycanho_backend/internals/seeds"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	configs.JWTSecret = "test-secret"
	configs.PrefsFile = filepath.Join(t.TempDir(), "prefs.json")

	app := fiber.New()
	SetupRoutes(app, seeds.NewStore())
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var payload map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &payload))
	return resp, payload
}

func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	resp, payload := doJSON(t, app, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": username,
		"password": password,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := payload["data"].(map[string]interface{})
	return data["accessToken"].(string)
}

func TestLoginWrongPasswordIsGeneric(t *testing.T) {
	app := newTestApp(t)

	resp, payload := doJSON(t, app, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": "admin",
		"password": "sai",
	})

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Tên đăng nhập hoặc mật khẩu không đúng", payload["message"])
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	app := newTestApp(t)

	resp, payload := doJSON(t, app, fiber.MethodGet, "/api/u/dashboard", "", nil)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, false, payload["success"])
}

func TestTenantCannotReachManagementRoutes(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "tenant1", "tenant123")

	resp, _ := doJSON(t, app, fiber.MethodGet, "/api/a/rooms/", token, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/s/system", token, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestManagerCannotDeleteOrSeeSystem(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "manager", "manager123")

	resp, _ := doJSON(t, app, fiber.MethodGet, "/api/a/rooms/", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodDelete, "/api/a/rooms/102?confirm=true", token, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/s/system", token, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAdminDeleteRequiresConfirmation(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "admin", "admin123")

	// thiếu confirm → không xóa, vẫn 200
	resp, payload := doJSON(t, app, fiber.MethodDelete, "/api/a/rooms/102", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Chưa xác nhận xóa", payload["message"])

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/a/rooms/102", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// có confirm → xóa thật
	resp, _ = doJSON(t, app, fiber.MethodDelete, "/api/a/rooms/102?confirm=true", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/a/rooms/102", token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestTenantSelfServiceScoping(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "tenant1", "tenant123")

	resp, payload := doJSON(t, app, fiber.MethodGet, "/api/u/my-room", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := payload["data"].(map[string]interface{})
	room := data["room"].(map[string]interface{})
	assert.Equal(t, "201", room["id"])

	// chỉ thấy sự cố của chính mình
	resp, payload = doJSON(t, app, fiber.MethodGet, "/api/u/incidents", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	incidents := payload["data"].([]interface{})
	require.Len(t, incidents, 1)
	first := incidents[0].(map[string]interface{})
	assert.Equal(t, float64(1), first["tenantId"])
}

func TestLogoutRevokesToken(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "admin", "admin123")

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/u/dashboard", token, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestSidebarPreferenceRoundTrip(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "manager", "manager123")

	resp, payload := doJSON(t, app, fiber.MethodPut, "/api/u/preferences/sidebar", token, fiber.Map{"collapsed": true})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, payload = doJSON(t, app, fiber.MethodGet, "/api/u/preferences/sidebar", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := payload["data"].(map[string]interface{})
	assert.Equal(t, true, data["collapsed"])
}
