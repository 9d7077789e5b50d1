// Package navigation dựng menu theo role và tra tiêu đề trang theo path.
// Nhãn và thứ tự là cố định, client chỉ việc render.
package navigation

import (
	"quanlycanho_backend/internals/constants"
)

type MenuItem struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Path  string `json:"path"`
}

var homeItem = MenuItem{Label: "Trang chủ", Icon: "dashboard", Path: "/dashboard"}

// Bộ menu vận hành của manager; admin = bộ này + quản lý hệ thống.
var staffItems = []MenuItem{
	{Label: "Quản lý phòng", Icon: "home", Path: "/rooms"},
	{Label: "Quản lý khách thuê", Icon: "people", Path: "/tenants"},
	{Label: "Quản lý hợp đồng", Icon: "description", Path: "/contracts"},
	{Label: "Quản lý hóa đơn", Icon: "receipt", Path: "/invoices"},
	{Label: "Báo cáo sự cố", Icon: "report-problem", Path: "/incidents"},
	{Label: "Phản ánh", Icon: "feedback", Path: "/feedbacks"},
	{Label: "Quản lý thông báo", Icon: "notifications", Path: "/notifications"},
	{Label: "Nội quy & Quy định", Icon: "rule", Path: "/rules"},
	{Label: "Quản lý chi phí", Icon: "attach-money", Path: "/expenses"},
	{Label: "Quản lý tài khoản", Icon: "account-circle", Path: "/accounts"},
}

var systemItem = MenuItem{Label: "Quản lý hệ thống", Icon: "settings", Path: "/system"}

var tenantItems = []MenuItem{
	{Label: "Thông tin phòng", Icon: "home", Path: "/my-room"},
	{Label: "Hợp đồng của tôi", Icon: "description", Path: "/my-contract"},
	{Label: "Hóa đơn của tôi", Icon: "receipt", Path: "/my-invoices"},
	{Label: "Báo cáo sự cố", Icon: "report-problem", Path: "/incidents"},
	{Label: "Phản ánh", Icon: "feedback", Path: "/feedbacks"},
	{Label: "Thông báo", Icon: "notifications", Path: "/notifications"},
	{Label: "Nội quy & Quy định", Icon: "rule", Path: "/rules"},
}

// MenuFor trả về menu theo đúng thứ tự cố định của từng role. Role lạ nhận
// menu như tenant (nhánh else của sidebar cũ).
func MenuFor(role string) []MenuItem {
	items := []MenuItem{homeItem}
	switch role {
	case constants.RoleAdmin:
		items = append(items, staffItems...)
		items = append(items, systemItem)
	case constants.RoleManager:
		items = append(items, staffItems...)
	default:
		items = append(items, tenantItems...)
	}
	return items
}

// DefaultTitle là tiêu đề fallback khi path không có trong bảng.
const DefaultTitle = "Hệ thống CRM Quản lý Căn hộ"

var titles = map[string]string{
	"/dashboard":     "Trang chủ",
	"/rooms":         "Quản lý phòng",
	"/tenants":       "Quản lý khách thuê",
	"/contracts":     "Quản lý hợp đồng",
	"/invoices":      "Quản lý hóa đơn",
	"/my-room":       "Thông tin phòng",
	"/my-contract":   "Hợp đồng của tôi",
	"/my-invoices":   "Hóa đơn của tôi",
	"/incidents":     "Báo cáo sự cố",
	"/feedbacks":     "Phản ánh",
	"/notifications": "Thông báo",
	"/rules":         "Nội quy & Quy định",
	"/expenses":      "Quản lý chi phí",
	"/accounts":      "Quản lý tài khoản",
	"/system":        "Quản lý hệ thống",
}

// TitleFor tra tiêu đề hiển thị của một path, fallback về DefaultTitle.
func TitleFor(path string) string {
	if t, ok := titles[path]; ok {
		return t
	}
	return DefaultTitle
}
