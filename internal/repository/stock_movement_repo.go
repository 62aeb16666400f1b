package repository

import (
	"context"

	"github.com/aakshay001/MOOFUs-Billing-APP/internal/model"

	"gorm.io/gorm"
)

// MovementListFilter narrows the movement history view. Zero values mean
// "no filter".
type MovementListFilter struct {
	ProductID    uint
	MovementType string
	Page         int
	Limit        int
}

// StockMovementRepository is append-and-read only by design: the ledger has
// no update or delete methods anywhere in the codebase.
type StockMovementRepository interface {
	Append(ctx context.Context, movement *model.StockMovement) error
	List(ctx context.Context, filter MovementListFilter) ([]model.StockMovement, int64, error)
}

type stockMovementRepository struct {
	db *gorm.DB
}

func NewStockMovementRepository(db *gorm.DB) StockMovementRepository {
	return &stockMovementRepository{db: db}
}

func (r *stockMovementRepository) Append(ctx context.Context, movement *model.StockMovement) error {
	return GetDB(ctx, r.db).Create(movement).Error
}

func (r *stockMovementRepository) List(ctx context.Context, filter MovementListFilter) ([]model.StockMovement, int64, error) {
	var movements []model.StockMovement
	var total int64

	query := GetDB(ctx, r.db).Model(&model.StockMovement{})
	if filter.MovementType != "" {
		query = query.Where("movement_type = ?", filter.MovementType)
	}
	if filter.ProductID != 0 {
		query = query.Where("product_id = ?", filter.ProductID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.Preload("Product").Order("id desc").Offset(offset).Limit(filter.Limit).Find(&movements).Error; err != nil {
		return nil, 0, err
	}

	return movements, total, nil
}
