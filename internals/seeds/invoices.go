package seeds

import (
	invoiceModel "quanlycanho_backend/internals/features/finance/invoices/model"
)

// Dữ liệu hóa đơn mẫu
var invoices = []invoiceModel.InvoiceModel{
	{
		ID:          1,
		TenantID:    1,
		RoomID:      "201",
		Month:       "2024-12",
		Rent:        5200000,
		Electricity: 150000,
		Water:       80000,
		Internet:    200000,
		Parking:     100000,
		Total:       5730000,
		Status:      invoiceModel.InvoiceStatusPaid,
		PaidDate:    "2024-12-05",
	},
	{
		ID:          2,
		TenantID:    2,
		RoomID:      "301",
		Month:       "2024-12",
		Rent:        5200000,
		Electricity: 180000,
		Water:       90000,
		Internet:    200000,
		Parking:     100000,
		Total:       5770000,
		Status:      invoiceModel.InvoiceStatusPending,
	},
	{
		ID:          3,
		TenantID:    3,
		RoomID:      "402",
		Month:       "2024-12",
		Rent:        4200000,
		Electricity: 120000,
		Water:       70000,
		Internet:    200000,
		Parking:     100000,
		Total:       4690000,
		Status:      invoiceModel.InvoiceStatusOverdue,
	},
}
