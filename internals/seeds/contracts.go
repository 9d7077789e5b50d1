package seeds

import (
	contractModel "quanlycanho_backend/internals/features/property/contracts/model"
)

// Dữ liệu hợp đồng mẫu
var contracts = []contractModel.ContractModel{
	{
		ID:          1,
		TenantID:    1,
		RoomID:      "201",
		StartDate:   "2024-01-15",
		EndDate:     "2025-01-14",
		MonthlyRent: 5200000,
		Deposit:     10400000,
		Status:      contractModel.ContractStatusActive,
	},
	{
		ID:          2,
		TenantID:    2,
		RoomID:      "301",
		StartDate:   "2024-02-01",
		EndDate:     "2025-01-31",
		MonthlyRent: 5200000,
		Deposit:     10400000,
		Status:      contractModel.ContractStatusActive,
	},
	{
		ID:          3,
		TenantID:    3,
		RoomID:      "402",
		StartDate:   "2024-03-10",
		EndDate:     "2025-03-09",
		MonthlyRent: 4200000,
		Deposit:     8400000,
		Status:      contractModel.ContractStatusActive,
	},
	{
		ID:          4,
		TenantID:    4,
		RoomID:      "601",
		StartDate:   "2024-01-20",
		EndDate:     "2025-01-19",
		MonthlyRent: 5200000,
		Deposit:     10400000,
		Status:      contractModel.ContractStatusActive,
	},
}
