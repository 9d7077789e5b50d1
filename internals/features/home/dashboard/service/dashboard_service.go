package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	incidentModel "quanlycanho_backend/internals/features/community/incidents/model"
	invoiceModel "quanlycanho_backend/internals/features/finance/invoices/model"
	invoiceRepo "quanlycanho_backend/internals/features/finance/invoices/repository"
	roomModel "quanlycanho_backend/internals/features/property/rooms/model"
	roomRepo "quanlycanho_backend/internals/features/property/rooms/repository"
	tenantRepo "quanlycanho_backend/internals/features/property/tenants/repository"
	"quanlycanho_backend/internals/seeds"
)

// DashboardService tính số liệu tổng quan từ bản sao làm việc của dữ liệu.
type DashboardService struct {
	rooms     *roomRepo.RoomRepository
	tenants   *tenantRepo.TenantRepository
	invoices  *invoiceRepo.InvoiceRepository
	incidents []incidentModel.IncidentModel
}

func NewDashboardService(store *seeds.Store) *DashboardService {
	return &DashboardService{
		rooms:     roomRepo.NewRoomRepository(store),
		tenants:   tenantRepo.NewTenantRepository(store),
		invoices:  invoiceRepo.NewInvoiceRepository(store),
		incidents: store.Incidents(),
	}
}

// Greeting theo giờ địa phương: sáng < 12h, chiều < 18h, còn lại là tối.
func Greeting(now time.Time) string {
	switch hour := now.Hour(); {
	case hour < 12:
		return "Chào buổi sáng"
	case hour < 18:
		return "Chào buổi chiều"
	default:
		return "Chào buổi tối"
	}
}

// OccupancyRate = occupied/total * 100, làm tròn 1 chữ số thập phân.
// Không có phòng nào → 0.
func OccupancyRate(occupied, total int) float64 {
	if total == 0 {
		return 0
	}
	rate := decimal.NewFromInt(int64(occupied)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).
		Round(1)
	f, _ := rate.Float64()
	return f
}

func (s *DashboardService) pendingIncidentCount() int {
	count := 0
	for i := range s.incidents {
		if s.incidents[i].Status == incidentModel.IncidentStatusPending {
			count++
		}
	}
	return count
}

// StaffStats: số liệu toàn tòa nhà cho admin/manager.
func (s *DashboardService) StaffStats() map[string]interface{} {
	total, occupied := s.rooms.Count()
	pendingInvoices := s.invoices.CountByStatus(invoiceModel.InvoiceStatusPending)
	overdueInvoices := s.invoices.CountByStatus(invoiceModel.InvoiceStatusOverdue)
	pendingIncidents := s.pendingIncidentCount()

	alerts := make([]string, 0)
	if overdueInvoices > 0 {
		alerts = append(alerts, fmt.Sprintf("%d hóa đơn quá hạn cần xử lý", overdueInvoices))
	}
	if pendingIncidents > 0 {
		alerts = append(alerts, fmt.Sprintf("%d sự cố đang chờ xử lý", pendingIncidents))
	}
	if len(alerts) == 0 {
		alerts = append(alerts, "Không có cảnh báo mới")
	}

	return map[string]interface{}{
		"totalRooms":       total,
		"occupiedRooms":    occupied,
		"availableRooms":   total - occupied,
		"totalTenants":     s.tenants.Count(),
		"pendingInvoices":  pendingInvoices,
		"overdueInvoices":  overdueInvoices,
		"pendingIncidents": pendingIncidents,
		"occupancyRate":    OccupancyRate(occupied, total),
		"alerts":           alerts,
	}
}

// TenantStats: số liệu gói gọn trong phòng của một khách thuê.
func (s *DashboardService) TenantStats(tenantID int, roomID string) map[string]interface{} {
	unpaidInvoices := 0
	for _, inv := range s.invoices.ListByTenantID(tenantID) {
		if inv.Status != invoiceModel.InvoiceStatusPaid {
			unpaidInvoices++
		}
	}

	pendingIncidents := 0
	for i := range s.incidents {
		if s.incidents[i].TenantID == tenantID && s.incidents[i].Status == incidentModel.IncidentStatusPending {
			pendingIncidents++
		}
	}

	stats := map[string]interface{}{
		"roomId":           roomID,
		"unpaidInvoices":   unpaidInvoices,
		"pendingIncidents": pendingIncidents,
	}
	if room, err := s.rooms.FindByID(roomID); err == nil {
		stats["roomArea"] = room.Area
		stats["roomSummary"] = roomSummary(room)
	}
	return stats
}

func roomSummary(room *roomModel.RoomModel) string {
	return fmt.Sprintf("Phòng %s · %dm² · tầng %d", room.ID, room.Area, room.Floor)
}
