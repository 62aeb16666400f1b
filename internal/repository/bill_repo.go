package repository

import (
	"context"

	"github.com/aakshay001/MOOFUs-Billing-APP/internal/model"

	"gorm.io/gorm"
)

// BillListFilter narrows bill listings and report aggregations. Zero values
// mean "no filter". Statuses with more than one entry match any of them.
type BillListFilter struct {
	FY         string
	CustomerID uint
	Statuses   []string
	Page       int
	Limit      int
}

type BillRepository interface {
	Create(ctx context.Context, bill *model.Bill) error
	CreateItem(ctx context.Context, item *model.BillItem) error
	FindByBillNo(ctx context.Context, billNo string) (*model.Bill, error)
	FindByBillNoWithItems(ctx context.Context, billNo string) (*model.Bill, error)
	ItemsByBillNo(ctx context.Context, billNo string) ([]model.BillItem, error)
	DeleteItemsByBillNo(ctx context.Context, billNo string) error
	Update(ctx context.Context, bill *model.Bill) error
	List(ctx context.Context, filter BillListFilter) ([]model.Bill, int64, error)
	CountByFY(ctx context.Context, fy string) (int64, error)
	SumGrandTotal(ctx context.Context, filter BillListFilter) (string, int64, error)
}

type billRepository struct {
	db *gorm.DB
}

func NewBillRepository(db *gorm.DB) BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) Create(ctx context.Context, bill *model.Bill) error {
	return GetDB(ctx, r.db).Create(bill).Error
}

func (r *billRepository) CreateItem(ctx context.Context, item *model.BillItem) error {
	return GetDB(ctx, r.db).Create(item).Error
}

func (r *billRepository) FindByBillNo(ctx context.Context, billNo string) (*model.Bill, error) {
	var bill model.Bill
	if err := GetDB(ctx, r.db).First(&bill, "bill_no = ?", billNo).Error; err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *billRepository) FindByBillNoWithItems(ctx context.Context, billNo string) (*model.Bill, error) {
	var bill model.Bill
	if err := GetDB(ctx, r.db).Preload("Items").Preload("Customer").
		First(&bill, "bill_no = ?", billNo).Error; err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *billRepository) ItemsByBillNo(ctx context.Context, billNo string) ([]model.BillItem, error) {
	var items []model.BillItem
	if err := GetDB(ctx, r.db).Where("bill_no = ?", billNo).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteItemsByBillNo clears a bill's line items ahead of the edit flow's
// wholesale reinsert. Bills themselves are never deleted.
func (r *billRepository) DeleteItemsByBillNo(ctx context.Context, billNo string) error {
	return GetDB(ctx, r.db).Where("bill_no = ?", billNo).Delete(&model.BillItem{}).Error
}

func (r *billRepository) Update(ctx context.Context, bill *model.Bill) error {
	return GetDB(ctx, r.db).Save(bill).Error
}

func applyBillFilter(query *gorm.DB, filter BillListFilter) *gorm.DB {
	if filter.FY != "" {
		query = query.Where("fy = ?", filter.FY)
	}
	if filter.CustomerID != 0 {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if len(filter.Statuses) > 0 {
		query = query.Where("payment_status IN ?", filter.Statuses)
	}
	return query
}

func (r *billRepository) List(ctx context.Context, filter BillListFilter) ([]model.Bill, int64, error) {
	var bills []model.Bill
	var total int64

	query := applyBillFilter(GetDB(ctx, r.db).Model(&model.Bill{}), filter)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Preload("Customer").Order("bill_date desc, id desc")
	if filter.Limit > 0 {
		query = query.Offset((filter.Page - 1) * filter.Limit).Limit(filter.Limit)
	}
	if err := query.Find(&bills).Error; err != nil {
		return nil, 0, err
	}

	return bills, total, nil
}

// CountByFY feeds the invoice-number sequence: next seq = count + 1. Counting
// a snapshot is racy across writers; the surrounding transaction serializes
// it for the single-writer deployment this targets.
func (r *billRepository) CountByFY(ctx context.Context, fy string) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&model.Bill{}).Where("fy = ?", fy).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumGrandTotal returns the summed grand_total (as text, exact) and the bill
// count for the filtered set.
func (r *billRepository) SumGrandTotal(ctx context.Context, filter BillListFilter) (string, int64, error) {
	var result struct {
		Value string
		Count int64
	}
	query := applyBillFilter(GetDB(ctx, r.db).Model(&model.Bill{}), filter)
	if err := query.
		Select("COALESCE(CAST(SUM(grand_total) AS TEXT), '0') as value, COUNT(*) as count").
		Scan(&result).Error; err != nil {
		return "0", 0, err
	}
	return result.Value, result.Count, nil
}
