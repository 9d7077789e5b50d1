package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quanlycanho_backend/internals/seeds"
)

func TestGreeting(t *testing.T) {
	day := time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local)

	assert.Equal(t, "Chào buổi sáng", Greeting(day.Add(8*time.Hour)))
	assert.Equal(t, "Chào buổi sáng", Greeting(day.Add(11*time.Hour)))
	assert.Equal(t, "Chào buổi chiều", Greeting(day.Add(12*time.Hour)))
	assert.Equal(t, "Chào buổi chiều", Greeting(day.Add(17*time.Hour)))
	assert.Equal(t, "Chào buổi tối", Greeting(day.Add(18*time.Hour)))
	assert.Equal(t, "Chào buổi tối", Greeting(day.Add(23*time.Hour)))
}

func TestOccupancyRate(t *testing.T) {
	assert.Equal(t, 45.5, OccupancyRate(5, 11))
	assert.Equal(t, 0.0, OccupancyRate(0, 11))
	assert.Equal(t, 100.0, OccupancyRate(11, 11))
	// không có phòng nào thì không chia cho 0
	assert.Equal(t, 0.0, OccupancyRate(0, 0))
}

func TestStaffStats(t *testing.T) {
	svc := NewDashboardService(seeds.NewStore())

	stats := svc.StaffStats()

	assert.Equal(t, 11, stats["totalRooms"])
	assert.Equal(t, 4, stats["occupiedRooms"])
	assert.Equal(t, 7, stats["availableRooms"])
	assert.Equal(t, 4, stats["totalTenants"])
	assert.Equal(t, 1, stats["pendingInvoices"])
	assert.Equal(t, 1, stats["overdueInvoices"])
	assert.Equal(t, 1, stats["pendingIncidents"])
	assert.Equal(t, 36.4, stats["occupancyRate"])

	alerts, ok := stats["alerts"].([]string)
	require.True(t, ok)
	assert.Equal(t, []string{
		"1 hóa đơn quá hạn cần xử lý",
		"1 sự cố đang chờ xử lý",
	}, alerts)
}

func TestTenantStats(t *testing.T) {
	svc := NewDashboardService(seeds.NewStore())

	// khách thuê 1: hóa đơn duy nhất đã thanh toán, còn 1 sự cố chờ xử lý
	stats := svc.TenantStats(1, "201")
	assert.Equal(t, "201", stats["roomId"])
	assert.Equal(t, 0, stats["unpaidInvoices"])
	assert.Equal(t, 1, stats["pendingIncidents"])
	assert.Equal(t, 25, stats["roomArea"])
	assert.Equal(t, "Phòng 201 · 25m² · tầng 2", stats["roomSummary"])

	// khách thuê 2: một hóa đơn chờ thanh toán, sự cố đã xử lý
	stats = svc.TenantStats(2, "301")
	assert.Equal(t, 1, stats["unpaidInvoices"])
	assert.Equal(t, 0, stats["pendingIncidents"])
}

func TestTenantStatsDanglingRoom(t *testing.T) {
	svc := NewDashboardService(seeds.NewStore())

	stats := svc.TenantStats(4, "999")

	assert.Equal(t, "999", stats["roomId"])
	assert.NotContains(t, stats, "roomArea")
	assert.NotContains(t, stats, "roomSummary")
}
