package repository

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	invoiceModel "quanlycanho_backend/internals/features/finance/invoices/model"
	"quanlycanho_backend/internals/seeds"
)

var ErrInvoiceNotFound = errors.New("invoice not found")

// InvoiceRepository giữ bản sao làm việc của danh sách hóa đơn.
type InvoiceRepository struct {
	invoices []invoiceModel.InvoiceModel
}

func NewInvoiceRepository(store *seeds.Store) *InvoiceRepository {
	return &InvoiceRepository{invoices: store.Invoices()}
}

func (r *InvoiceRepository) List() []invoiceModel.InvoiceModel {
	return r.invoices
}

// ListByTenantID lọc hóa đơn theo khách thuê, giữ nguyên thứ tự.
func (r *InvoiceRepository) ListByTenantID(tenantID int) []invoiceModel.InvoiceModel {
	result := make([]invoiceModel.InvoiceModel, 0)
	for i := range r.invoices {
		if r.invoices[i].TenantID == tenantID {
			result = append(result, r.invoices[i])
		}
	}
	return result
}

func (r *InvoiceRepository) FindByID(id int) (*invoiceModel.InvoiceModel, error) {
	for i := range r.invoices {
		if r.invoices[i].ID == id {
			return &r.invoices[i], nil
		}
	}
	return nil, ErrInvoiceNotFound
}

// nextID = max(id hiện có) + 1, danh sách rỗng → 1.
func (r *InvoiceRepository) nextID() int {
	maxID := 0
	for i := range r.invoices {
		if r.invoices[i].ID > maxID {
			maxID = r.invoices[i].ID
		}
	}
	return maxID + 1
}

func (r *InvoiceRepository) Create(m invoiceModel.InvoiceModel) invoiceModel.InvoiceModel {
	m.ID = r.nextID()
	m.Total = m.ComputeTotal()
	r.invoices = append(r.invoices, m)
	return m
}

func (r *InvoiceRepository) Update(id int, m invoiceModel.InvoiceModel) (*invoiceModel.InvoiceModel, error) {
	for i := range r.invoices {
		if r.invoices[i].ID == id {
			m.ID = id
			m.Total = m.ComputeTotal()
			r.invoices[i] = m
			return &r.invoices[i], nil
		}
	}
	return nil, ErrInvoiceNotFound
}

func (r *InvoiceRepository) Delete(id int) error {
	for i := range r.invoices {
		if r.invoices[i].ID == id {
			r.invoices = append(r.invoices[:i], r.invoices[i+1:]...)
			return nil
		}
	}
	return ErrInvoiceNotFound
}

// MarkPaid chuyển hóa đơn sang trạng thái đã thanh toán, ghi ngày thu theo
// ngày hiện tại. Hóa đơn đã thanh toán rồi thì giữ nguyên (idempotent).
func (r *InvoiceRepository) MarkPaid(id int) (*invoiceModel.InvoiceModel, error) {
	for i := range r.invoices {
		if r.invoices[i].ID == id {
			if r.invoices[i].Status == invoiceModel.InvoiceStatusPaid {
				return &r.invoices[i], nil
			}
			r.invoices[i].Status = invoiceModel.InvoiceStatusPaid
			r.invoices[i].PaidDate = time.Now().Format("2006-01-02")
			return &r.invoices[i], nil
		}
	}
	return nil, ErrInvoiceNotFound
}

// TotalByStatus cộng dồn tổng tiền các hóa đơn theo trạng thái.
func (r *InvoiceRepository) TotalByStatus(status string) decimal.Decimal {
	sum := decimal.Zero
	for i := range r.invoices {
		if r.invoices[i].Status == status {
			sum = sum.Add(decimal.NewFromInt(r.invoices[i].Total))
		}
	}
	return sum
}

// CountByStatus đếm số hóa đơn theo trạng thái.
func (r *InvoiceRepository) CountByStatus(status string) int {
	count := 0
	for i := range r.invoices {
		if r.invoices[i].Status == status {
			count++
		}
	}
	return count
}
