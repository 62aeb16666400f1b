package service

import (
	"context"
	"testing"
	"time"

	"github.com/aakshay001/MOOFUs-Billing-APP/internal/model"
	"github.com/aakshay001/MOOFUs-Billing-APP/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedBill(t *testing.T, db *gorm.DB, billNo, fy string, customerID uint, total int64, status string) {
	t.Helper()
	require.NoError(t, db.Create(&model.Bill{
		BillNo:        billNo,
		FY:            fy,
		CustomerID:    customerID,
		BillDate:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		TaxMode:       "GST",
		Subtotal:      decimal.NewFromInt(total),
		GrandTotal:    decimal.NewFromInt(total),
		PaymentStatus: status,
	}).Error)
}

func TestSalesSummary(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	customer := &model.Customer{Name: "Ravi Stores"}
	require.NoError(t, db.Create(customer).Error)
	other := &model.Customer{Name: "Anu Traders"}
	require.NoError(t, db.Create(other).Error)

	svc := NewReportService(repository.NewBillRepository(db), repository.NewCustomerRepository(db))

	seedBill(t, db, "INV/2024-2025/1", "2024-2025", customer.ID, 100, model.PaymentPaid)
	seedBill(t, db, "INV/2024-2025/2", "2024-2025", customer.ID, 200, model.PaymentPending)
	seedBill(t, db, "INV/2024-2025/3", "2024-2025", other.ID, 400, model.PaymentPartiallyPaid)
	seedBill(t, db, "INV/2023-2024/1", "2023-2024", customer.ID, 800, model.PaymentPaid)

	t.Run("aggregates the current financial year", func(t *testing.T) {
		summary, err := svc.SalesSummary(ctx, SalesSummaryFilter{FY: "2024-2025"})
		require.NoError(t, err)
		assert.Equal(t, int64(3), summary.BillCount)
		assert.Equal(t, "700.00", summary.TotalSales)
		assert.Equal(t, "100.00", summary.PaidAmount)
		// Partially paid still counts as money outstanding.
		assert.Equal(t, "600.00", summary.PendingAmount)
	})

	t.Run("customer filter narrows every aggregate", func(t *testing.T) {
		summary, err := svc.SalesSummary(ctx, SalesSummaryFilter{FY: "2024-2025", CustomerID: customer.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(2), summary.BillCount)
		assert.Equal(t, "300.00", summary.TotalSales)
		assert.Equal(t, "100.00", summary.PaidAmount)
		assert.Equal(t, "200.00", summary.PendingAmount)
	})

	t.Run("status filter zeroes the other bucket", func(t *testing.T) {
		summary, err := svc.SalesSummary(ctx, SalesSummaryFilter{FY: "2024-2025", PaymentStatus: model.PaymentPaid})
		require.NoError(t, err)
		assert.Equal(t, int64(1), summary.BillCount)
		assert.Equal(t, "100.00", summary.TotalSales)
		assert.Equal(t, "100.00", summary.PaidAmount)
		assert.Equal(t, "0.00", summary.PendingAmount)
	})

	t.Run("empty result set sums to zero", func(t *testing.T) {
		summary, err := svc.SalesSummary(ctx, SalesSummaryFilter{FY: "2020-2021"})
		require.NoError(t, err)
		assert.Zero(t, summary.BillCount)
		assert.Equal(t, "0.00", summary.TotalSales)
	})
}

func TestCustomerLedger(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	customer := &model.Customer{Name: "Ravi Stores"}
	require.NoError(t, db.Create(customer).Error)

	svc := NewReportService(repository.NewBillRepository(db), repository.NewCustomerRepository(db))

	seedBill(t, db, "INV/2024-2025/1", "2024-2025", customer.ID, 100, model.PaymentPaid)
	seedBill(t, db, "INV/2024-2025/2", "2024-2025", customer.ID, 250, model.PaymentPending)

	ledger, err := svc.CustomerLedger(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ravi Stores", ledger.CustomerName)
	assert.Equal(t, int64(2), ledger.BillCount)
	assert.Equal(t, "350.00", ledger.Total)
	assert.Equal(t, "100.00", ledger.Paid)
	assert.Equal(t, "250.00", ledger.Outstanding)
	assert.Len(t, ledger.Bills, 2)

	_, err = svc.CustomerLedger(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}
