package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aakshay001/MOOFUs-Billing-APP/internal/model"
	"github.com/aakshay001/MOOFUs-Billing-APP/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SalesSummaryFilter struct {
	FY            string
	PaymentStatus string
	CustomerID    uint
}

type SalesSummary struct {
	BillCount     int64  `json:"bill_count"`
	TotalSales    string `json:"total_sales"`
	PaidAmount    string `json:"paid_amount"`
	PendingAmount string `json:"pending_amount"`
}

type CustomerLedgerEntry struct {
	BillNo        string `json:"bill_no"`
	BillDate      string `json:"bill_date"`
	GrandTotal    string `json:"grand_total"`
	PaymentStatus string `json:"payment_status"`
}

type CustomerLedger struct {
	CustomerID   uint                  `json:"customer_id"`
	CustomerName string                `json:"customer_name"`
	BillCount    int64                 `json:"bill_count"`
	Total        string                `json:"total"`
	Paid         string                `json:"paid"`
	Outstanding  string                `json:"outstanding"`
	Bills        []CustomerLedgerEntry `json:"bills"`
}

type ReportService interface {
	SalesSummary(ctx context.Context, filter SalesSummaryFilter) (SalesSummary, error)
	CustomerLedger(ctx context.Context, customerID uint) (CustomerLedger, error)
}

type reportService struct {
	billRepo     repository.BillRepository
	customerRepo repository.CustomerRepository
}

func NewReportService(billRepo repository.BillRepository, customerRepo repository.CustomerRepository) ReportService {
	return &reportService{billRepo: billRepo, customerRepo: customerRepo}
}

// SalesSummary aggregates grand totals over the filtered bill set. Pending
// covers both Pending and Partially Paid: a partially paid bill still has
// money outstanding.
func (s *reportService) SalesSummary(ctx context.Context, filter SalesSummaryFilter) (SalesSummary, error) {
	base := repository.BillListFilter{
		FY:         filter.FY,
		CustomerID: filter.CustomerID,
	}
	if filter.PaymentStatus != "" {
		base.Statuses = []string{filter.PaymentStatus}
	}

	total, count, err := s.sum(ctx, base)
	if err != nil {
		return SalesSummary{}, err
	}

	paidFilter := base
	paidFilter.Statuses = intersectStatuses(base.Statuses, []string{model.PaymentPaid})
	paid, _, err := s.sum(ctx, paidFilter)
	if err != nil {
		return SalesSummary{}, err
	}

	pendingFilter := base
	pendingFilter.Statuses = intersectStatuses(base.Statuses, []string{model.PaymentPending, model.PaymentPartiallyPaid})
	pending, _, err := s.sum(ctx, pendingFilter)
	if err != nil {
		return SalesSummary{}, err
	}

	return SalesSummary{
		BillCount:     count,
		TotalSales:    total.StringFixed(2),
		PaidAmount:    paid.StringFixed(2),
		PendingAmount: pending.StringFixed(2),
	}, nil
}

func (s *reportService) CustomerLedger(ctx context.Context, customerID uint) (CustomerLedger, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CustomerLedger{}, fmt.Errorf("customer %d: %w", customerID, ErrNotFound)
		}
		return CustomerLedger{}, fmt.Errorf("failed to load customer: %w", err)
	}

	bills, count, err := s.billRepo.List(ctx, repository.BillListFilter{CustomerID: customerID})
	if err != nil {
		return CustomerLedger{}, fmt.Errorf("failed to list customer bills: %w", err)
	}

	total := decimal.Zero
	paid := decimal.Zero
	entries := make([]CustomerLedgerEntry, 0, len(bills))
	for _, b := range bills {
		total = total.Add(b.GrandTotal)
		if b.PaymentStatus == model.PaymentPaid {
			paid = paid.Add(b.GrandTotal)
		}
		entries = append(entries, CustomerLedgerEntry{
			BillNo:        b.BillNo,
			BillDate:      b.BillDate.Format("2006-01-02"),
			GrandTotal:    b.GrandTotal.StringFixed(2),
			PaymentStatus: b.PaymentStatus,
		})
	}

	return CustomerLedger{
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		BillCount:    count,
		Total:        total.StringFixed(2),
		Paid:         paid.StringFixed(2),
		Outstanding:  total.Sub(paid).StringFixed(2),
		Bills:        entries,
	}, nil
}

func (s *reportService) sum(ctx context.Context, filter repository.BillListFilter) (decimal.Decimal, int64, error) {
	value, count, err := s.billRepo.SumGrandTotal(ctx, filter)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("failed to aggregate bills: %w", err)
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("failed to parse aggregate %q: %w", value, err)
	}
	return d, count, nil
}

// intersectStatuses narrows the wanted statuses by the caller's explicit
// status filter, so a summary filtered to "Paid" reports zero pending.
func intersectStatuses(explicit, wanted []string) []string {
	if len(explicit) == 0 {
		return wanted
	}
	var out []string
	for _, w := range wanted {
		for _, e := range explicit {
			if w == e {
				out = append(out, w)
				break
			}
		}
	}
	if len(out) == 0 {
		// Empty intersection must match nothing, not everything.
		return []string{"__none__"}
	}
	return out
}
