package service

import (
	"os"
	"sync"

	"github.com/bytedance/sonic"
)

// PreferenceService giữ tùy chọn giao diện theo user, bền qua restart bằng
// một file JSON. Ghi theo kiểu last-writer-wins.
type PreferenceService struct {
	mu       sync.Mutex
	path     string
	sidebars map[int]bool // user_id → sidebar thu gọn?
}

func NewPreferenceService(path string) *PreferenceService {
	s := &PreferenceService{
		path:     path,
		sidebars: make(map[int]bool),
	}
	s.load()
	return s
}

type prefsFile struct {
	Sidebars map[int]bool `json:"sidebars"`
}

// load đọc file tùy chọn nếu có; file hỏng hoặc thiếu thì bắt đầu rỗng.
func (s *PreferenceService) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var f prefsFile
	if err := sonic.Unmarshal(data, &f); err != nil {
		return
	}
	if f.Sidebars != nil {
		s.sidebars = f.Sidebars
	}
}

func (s *PreferenceService) persistLocked() error {
	data, err := sonic.Marshal(prefsFile{Sidebars: s.sidebars})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

func (s *PreferenceService) SidebarCollapsed(userID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sidebars[userID]
}

func (s *PreferenceService) SetSidebarCollapsed(userID int, collapsed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidebars[userID] = collapsed
	return s.persistLocked()
}
