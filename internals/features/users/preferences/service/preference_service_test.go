package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSidebarDefaultsToExpanded(t *testing.T) {
	svc := NewPreferenceService(filepath.Join(t.TempDir(), "prefs.json"))

	assert.False(t, svc.SidebarCollapsed(1))
}

func TestSetSidebarSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")

	svc := NewPreferenceService(path)
	require.NoError(t, svc.SetSidebarCollapsed(1, true))
	require.NoError(t, svc.SetSidebarCollapsed(2, false))

	// service mới đọc lại từ file, như sau một lần restart
	reloaded := NewPreferenceService(path)
	assert.True(t, reloaded.SidebarCollapsed(1))
	assert.False(t, reloaded.SidebarCollapsed(2))
}

func TestLastWriterWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	svc := NewPreferenceService(path)

	require.NoError(t, svc.SetSidebarCollapsed(1, true))
	require.NoError(t, svc.SetSidebarCollapsed(1, false))

	assert.False(t, svc.SidebarCollapsed(1))
	assert.False(t, NewPreferenceService(path).SidebarCollapsed(1))
}

func TestCorruptFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("không phải json"), 0o644))

	svc := NewPreferenceService(path)
	assert.False(t, svc.SidebarCollapsed(1))
}
