package repository

import (
	"context"

	"github.com/aakshay001/MOOFUs-Billing-APP/internal/model"

	"gorm.io/gorm"
)

type BatchRepository interface {
	Create(ctx context.Context, batch *model.Batch) error
	Update(ctx context.Context, batch *model.Batch) error
	FindByProductAndNo(ctx context.Context, productID uint, batchNo string) (*model.Batch, error)
	ListByProduct(ctx context.Context, productID uint) ([]model.Batch, error)
	List(ctx context.Context, page, limit int) ([]model.Batch, int64, error)
}

type batchRepository struct {
	db *gorm.DB
}

func NewBatchRepository(db *gorm.DB) BatchRepository {
	return &batchRepository{db: db}
}

func (r *batchRepository) Create(ctx context.Context, batch *model.Batch) error {
	return GetDB(ctx, r.db).Create(batch).Error
}

func (r *batchRepository) Update(ctx context.Context, batch *model.Batch) error {
	return GetDB(ctx, r.db).Save(batch).Error
}

func (r *batchRepository) FindByProductAndNo(ctx context.Context, productID uint, batchNo string) (*model.Batch, error) {
	var batch model.Batch
	if err := GetDB(ctx, r.db).
		Where("product_id = ? AND batch_no = ?", productID, batchNo).
		First(&batch).Error; err != nil {
		return nil, err
	}
	return &batch, nil
}

func (r *batchRepository) ListByProduct(ctx context.Context, productID uint) ([]model.Batch, error) {
	var batches []model.Batch
	if err := GetDB(ctx, r.db).Where("product_id = ?", productID).Order("id").Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

func (r *batchRepository) List(ctx context.Context, page, limit int) ([]model.Batch, int64, error) {
	var batches []model.Batch
	var total int64

	db := GetDB(ctx, r.db).Model(&model.Batch{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := GetDB(ctx, r.db).Preload("Product").Order("id").Offset(offset).Limit(limit).Find(&batches).Error; err != nil {
		return nil, 0, err
	}

	return batches, total, nil
}
