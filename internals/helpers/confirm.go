// file: internals/helpers/confirm.go
package helper

import (
	"github.com/gofiber/fiber/v2"
)

// Mọi thao tác xóa đều phải có bước xác nhận từ người dùng.
// Phía API: thiếu ?confirm=true thì thao tác là no-op, không phải lỗi.
const NotConfirmedMessage = "Chưa xác nhận xóa"

// DeleteConfirmed đọc cờ xác nhận từ query ?confirm=true.
func DeleteConfirmed(c *fiber.Ctx) bool {
	return c.Query("confirm") == "true"
}
