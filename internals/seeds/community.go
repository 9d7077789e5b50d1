package seeds

import (
	feedbackModel "quanlycanho_backend/internals/features/community/feedbacks/model"
	incidentModel "quanlycanho_backend/internals/features/community/incidents/model"
	notificationModel "quanlycanho_backend/internals/features/community/notifications/model"
	ruleModel "quanlycanho_backend/internals/features/community/rules/model"
)

func strPtr(s string) *string { return &s }

// Dữ liệu báo cáo sự cố
var incidents = []incidentModel.IncidentModel{
	{
		ID:          1,
		TenantID:    1,
		RoomID:      "201",
		Title:       "Máy lạnh không hoạt động",
		Description: "Máy lạnh phòng 201 không khởi động được",
		Status:      incidentModel.IncidentStatusPending,
		Priority:    "high",
		CreatedDate: "2024-12-20",
	},
	{
		ID:           2,
		TenantID:     2,
		RoomID:       "301",
		Title:        "Vòi nước bị rò rỉ",
		Description:  "Vòi nước trong phòng tắm bị rò rỉ nhỏ giọt",
		Status:       incidentModel.IncidentStatusResolved,
		Priority:     "medium",
		CreatedDate:  "2024-12-18",
		ResolvedDate: strPtr("2024-12-19"),
	},
}

// Dữ liệu phản ánh
var feedbacks = []feedbackModel.FeedbackModel{
	{
		ID:          1,
		TenantID:    1,
		Title:       "Đề xuất cải thiện hệ thống thang máy",
		Content:     "Thang máy thường xuyên chậm, đề xuất bảo trì định kỳ",
		Status:      "pending",
		CreatedDate: "2024-12-15",
	},
	{
		ID:          2,
		TenantID:    3,
		Title:       "Góp ý về giờ giấc ra vào",
		Content:     "Đề xuất mở cửa sớm hơn vào cuối tuần",
		Status:      "reviewed",
		CreatedDate: "2024-12-10",
	},
}

// Dữ liệu thông báo
var notifications = []notificationModel.NotificationModel{
	{
		ID:          1,
		Title:       "Thông báo bảo trì hệ thống điện",
		Content:     "Tòa nhà sẽ tạm ngừng điện từ 8h-12h ngày 25/12 để bảo trì",
		Type:        "maintenance",
		TargetRole:  "all",
		CreatedDate: "2024-12-20",
		IsActive:    true,
	},
	{
		ID:          2,
		Title:       "Thông báo tăng giá dịch vụ",
		Content:     "Từ tháng 1/2025, giá dịch vụ internet tăng lên 250,000đ/tháng",
		Type:        "announcement",
		TargetRole:  "all",
		CreatedDate: "2024-12-18",
		IsActive:    true,
	},
}

// Nội quy và quy định
var rules = []ruleModel.RuleModel{
	{
		ID:    1,
		Title: "Nội quy chung",
		Content: `
1. Giữ gìn vệ sinh chung
2. Không gây ồn ào sau 22h
3. Không nuôi thú cưng
4. Báo trước khi có khách qua đêm
5. Tham gia đầy đủ các cuộc họp cư dân
	`,
		Type: "general",
	},
	{
		ID:    2,
		Title: "Quy định về thanh toán",
		Content: `
1. Thanh toán tiền thuê trước ngày 5 hàng tháng
2. Phí phạt 50,000đ/ngày nếu trễ hạn
3. Tiền cọc bằng 2 tháng tiền thuê
4. Thông báo trước 30 ngày khi muốn chấm dứt hợp đồng
	`,
		Type: "payment",
	},
}
