package seeds

import (
	tenantModel "quanlycanho_backend/internals/features/property/tenants/model"
)

// Dữ liệu khách thuê mẫu
var tenants = []tenantModel.TenantModel{
	{
		ID:         1,
		Name:       "Nguyễn Văn A",
		Phone:      "0901234567",
		Email:      "nguyenvana@email.com",
		IDCard:     "123456789",
		RoomID:     "201",
		MoveInDate: "2024-01-15",
		Status:     tenantModel.TenantStatusActive,
	},
	{
		ID:         2,
		Name:       "Trần Thị B",
		Phone:      "0907654321",
		Email:      "tranthib@email.com",
		IDCard:     "987654321",
		RoomID:     "301",
		MoveInDate: "2024-02-01",
		Status:     tenantModel.TenantStatusActive,
	},
	{
		ID:         3,
		Name:       "Lê Văn C",
		Phone:      "0912345678",
		Email:      "levanc@email.com",
		IDCard:     "456789123",
		RoomID:     "402",
		MoveInDate: "2024-03-10",
		Status:     tenantModel.TenantStatusActive,
	},
	{
		ID:         4,
		Name:       "Phạm Thị D",
		Phone:      "0918765432",
		Email:      "phamthid@email.com",
		IDCard:     "789123456",
		RoomID:     "601",
		MoveInDate: "2024-01-20",
		Status:     tenantModel.TenantStatusActive,
	},
}
