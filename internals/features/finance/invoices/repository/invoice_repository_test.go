package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	invoiceModel "quanlycanho_backend/internals/features/finance/invoices/model"
	"quanlycanho_backend/internals/seeds"
)

func newRepo() *InvoiceRepository {
	return NewInvoiceRepository(seeds.NewStore())
}

func TestCreateAssignsNextIDAndRecomputesTotal(t *testing.T) {
	repo := newRepo()

	created := repo.Create(invoiceModel.InvoiceModel{
		TenantID:    2,
		RoomID:      "301",
		Month:       "2025-01",
		Rent:        5200000,
		Electricity: 180000,
		Water:       90000,
		Internet:    200000,
		Parking:     100000,
		Total:       1, // giá trị client gửi phải bị bỏ qua
		Status:      invoiceModel.InvoiceStatusPending,
	})

	assert.Equal(t, 4, created.ID)
	assert.Equal(t, int64(5770000), created.Total)
}

func TestCreateOnEmptyRepositoryStartsAtOne(t *testing.T) {
	repo := &InvoiceRepository{}

	created := repo.Create(invoiceModel.InvoiceModel{TenantID: 1, Month: "2025-01"})

	assert.Equal(t, 1, created.ID)
}

func TestUpdateRecomputesTotal(t *testing.T) {
	repo := newRepo()

	updated, err := repo.Update(2, invoiceModel.InvoiceModel{
		TenantID: 2,
		RoomID:   "301",
		Month:    "2024-12",
		Rent:     5000000,
		Water:    50000,
		Status:   invoiceModel.InvoiceStatusPending,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, updated.ID)
	assert.Equal(t, int64(5050000), updated.Total)
}

func TestMarkPaidSetsTodayAndIsIdempotent(t *testing.T) {
	repo := newRepo()
	today := time.Now().Format("2006-01-02")

	paid, err := repo.MarkPaid(2)
	require.NoError(t, err)
	assert.Equal(t, invoiceModel.InvoiceStatusPaid, paid.Status)
	assert.Equal(t, today, paid.PaidDate)

	// hóa đơn 1 đã thanh toán từ trước, ngày thu phải giữ nguyên
	already, err := repo.MarkPaid(1)
	require.NoError(t, err)
	assert.Equal(t, invoiceModel.InvoiceStatusPaid, already.Status)
	assert.Equal(t, "2024-12-05", already.PaidDate)
}

func TestMarkPaidNotFound(t *testing.T) {
	repo := newRepo()

	_, err := repo.MarkPaid(99)
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}

func TestTotalsAndCountsByStatus(t *testing.T) {
	repo := newRepo()

	assert.Equal(t, int64(5730000), repo.TotalByStatus(invoiceModel.InvoiceStatusPaid).IntPart())
	assert.Equal(t, int64(5770000), repo.TotalByStatus(invoiceModel.InvoiceStatusPending).IntPart())
	assert.Equal(t, int64(4690000), repo.TotalByStatus(invoiceModel.InvoiceStatusOverdue).IntPart())

	assert.Equal(t, 1, repo.CountByStatus(invoiceModel.InvoiceStatusPaid))
	assert.Equal(t, 1, repo.CountByStatus(invoiceModel.InvoiceStatusPending))
	assert.Equal(t, 1, repo.CountByStatus(invoiceModel.InvoiceStatusOverdue))
}

func TestListByTenantID(t *testing.T) {
	repo := newRepo()

	mine := repo.ListByTenantID(1)
	require.Len(t, mine, 1)
	assert.Equal(t, 1, mine[0].ID)

	assert.Empty(t, repo.ListByTenantID(4))
}

func TestDelete(t *testing.T) {
	repo := newRepo()

	require.NoError(t, repo.Delete(1))
	_, err := repo.FindByID(1)
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
	assert.Len(t, repo.List(), 2)

	assert.ErrorIs(t, repo.Delete(1), ErrInvoiceNotFound)
}
