package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret string
	PrefsFile string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Không tìm thấy file .env, dùng ENV của hệ thống")
	} else {
		log.Println("✅ Đã nạp file .env")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	if JWTSecret == "" {
		// Ứng dụng chạy trên dữ liệu mẫu; vẫn cho khởi động khi dev local
		JWTSecret = "quanlycanho-dev-secret"
		log.Println("⚠️ JWT_SECRET chưa được set, dùng secret mặc định (chỉ dành cho dev)")
	}

	PrefsFile = GetEnv("PREFS_FILE")
	if PrefsFile == "" {
		PrefsFile = "ui_preferences.json"
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}
