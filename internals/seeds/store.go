package seeds

import (
	feedbackModel "quanlycanho_backend/internals/features/community/feedbacks/model"
	incidentModel "quanlycanho_backend/internals/features/community/incidents/model"
	notificationModel "quanlycanho_backend/internals/features/community/notifications/model"
	ruleModel "quanlycanho_backend/internals/features/community/rules/model"
	invoiceModel "quanlycanho_backend/internals/features/finance/invoices/model"
	contractModel "quanlycanho_backend/internals/features/property/contracts/model"
	roomModel "quanlycanho_backend/internals/features/property/rooms/model"
	tenantModel "quanlycanho_backend/internals/features/property/tenants/model"
	accountModel "quanlycanho_backend/internals/features/users/auth/model"
)

// Store là Fixture Store của hệ thống: các collection mẫu chỉ-đọc.
// Mọi accessor trả về bản copy sâu, mỗi controller giữ working copy riêng
// của mình — sửa đổi không bao giờ ghi ngược về Store, nên hai controller
// cùng loại có thể lệch nhau trong một phiên.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

func cloneSlice[T any](src []T) []T {
	out := make([]T, len(src))
	copy(out, src)
	return out
}

func (s *Store) Rooms() []roomModel.RoomModel {
	return cloneSlice(rooms)
}

func (s *Store) Tenants() []tenantModel.TenantModel {
	return cloneSlice(tenants)
}

func (s *Store) Contracts() []contractModel.ContractModel {
	return cloneSlice(contracts)
}

func (s *Store) Invoices() []invoiceModel.InvoiceModel {
	return cloneSlice(invoices)
}

func (s *Store) Incidents() []incidentModel.IncidentModel {
	out := cloneSlice(incidents)
	// ResolvedDate là con trỏ, copy riêng để working copy không chạm seed
	for i := range out {
		if out[i].ResolvedDate != nil {
			d := *out[i].ResolvedDate
			out[i].ResolvedDate = &d
		}
	}
	return out
}

func (s *Store) Feedbacks() []feedbackModel.FeedbackModel {
	return cloneSlice(feedbacks)
}

func (s *Store) Notifications() []notificationModel.NotificationModel {
	return cloneSlice(notifications)
}

func (s *Store) Rules() []ruleModel.RuleModel {
	return cloneSlice(rules)
}

func (s *Store) Accounts() []accountModel.AccountModel {
	return cloneSlice(accounts)
}
