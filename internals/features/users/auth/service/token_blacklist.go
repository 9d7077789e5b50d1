package service

import (
	"sync"
	"time"
)

// Blacklist token trong bộ nhớ, thay cho bảng token_blacklist khi không có
// database: map jti → thời điểm hết hạn. Entry hết hạn được quét bỏ mỗi lần
// ghi (không cần goroutine dọn nền).
var (
	blacklistMu sync.RWMutex
	blacklist   = map[string]time.Time{}
)

// BlacklistToken thu hồi một jti cho tới khi token tự hết hạn.
func BlacklistToken(jti string, expiresAt time.Time) {
	blacklistMu.Lock()
	defer blacklistMu.Unlock()

	now := time.Now()
	for key, exp := range blacklist {
		if exp.Before(now) {
			delete(blacklist, key)
		}
	}
	blacklist[jti] = expiresAt
}

// IsTokenBlacklisted kiểm tra một jti đã bị thu hồi hay chưa.
func IsTokenBlacklisted(jti string) bool {
	blacklistMu.RLock()
	defer blacklistMu.RUnlock()

	exp, ok := blacklist[jti]
	return ok && exp.After(time.Now())
}
