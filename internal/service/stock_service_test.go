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

type stockFixture struct {
	db      *gorm.DB
	svc     *stockService
	product *model.Product
}

func setupStockTest(t *testing.T) *stockFixture {
	t.Helper()
	db := setupTestDB(t)

	product := &model.Product{
		Name:  "Paneer 200g",
		Price: decimal.NewFromInt(80),
		Stock: 15,
	}
	require.NoError(t, db.Create(product).Error)

	svc := NewStockService(
		repository.NewProductRepository(db),
		repository.NewBatchRepository(db),
		repository.NewStockMovementRepository(db),
		repository.NewTransactionManager(db),
		nil,
	).(*stockService)
	svc.now = func() time.Time { return fixedNow }

	return &stockFixture{db: db, svc: svc, product: product}
}

func TestAddBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the batch, raises stock and journals IN", func(t *testing.T) {
		f := setupStockTest(t)

		batch, err := f.svc.AddBatch(ctx, AddBatchRequest{
			ProductID: f.product.ID,
			BatchNo:   "B-100",
			Quantity:  10,
			Price:     "60",
			Mfg:       "2024-05",
			Exp:       "2025-05",
		})
		require.NoError(t, err)
		assert.Equal(t, 10, batch.Quantity)
		assert.Equal(t, "2024-05", batch.MfgDate)

		var product model.Product
		require.NoError(t, f.db.First(&product, f.product.ID).Error)
		assert.Equal(t, 25, product.Stock)

		var movement model.StockMovement
		require.NoError(t, f.db.First(&movement).Error)
		assert.Equal(t, model.MovementIn, movement.MovementType)
		assert.Equal(t, 10, movement.Quantity)
		assert.Equal(t, "B-100", movement.BatchNo)
		assert.Equal(t, "Batch B-100", movement.Reference)
	})

	t.Run("merges quantity into an existing batch row", func(t *testing.T) {
		f := setupStockTest(t)

		_, err := f.svc.AddBatch(ctx, AddBatchRequest{ProductID: f.product.ID, BatchNo: "B-100", Quantity: 10})
		require.NoError(t, err)
		batch, err := f.svc.AddBatch(ctx, AddBatchRequest{ProductID: f.product.ID, BatchNo: "B-100", Quantity: 5})
		require.NoError(t, err)

		assert.Equal(t, 15, batch.Quantity)

		var count int64
		require.NoError(t, f.db.Model(&model.Batch{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)

		var product model.Product
		require.NoError(t, f.db.First(&product, f.product.ID).Error)
		assert.Equal(t, 30, product.Stock)

		require.NoError(t, f.db.Model(&model.StockMovement{}).Count(&count).Error)
		assert.Equal(t, int64(2), count)
	})

	t.Run("rejects unknown products and bad input", func(t *testing.T) {
		f := setupStockTest(t)

		_, err := f.svc.AddBatch(ctx, AddBatchRequest{ProductID: 999, BatchNo: "B-1", Quantity: 1})
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = f.svc.AddBatch(ctx, AddBatchRequest{ProductID: f.product.ID, BatchNo: " ", Quantity: 1})
		assert.ErrorIs(t, err, ErrValidation)

		_, err = f.svc.AddBatch(ctx, AddBatchRequest{ProductID: f.product.ID, BatchNo: "B-1", Quantity: 0})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestAdjustStock(t *testing.T) {
	ctx := context.Background()

	t.Run("ADD raises stock and journals ADJUST_IN", func(t *testing.T) {
		f := setupStockTest(t)

		product, err := f.svc.AdjustStock(ctx, AdjustStockRequest{
			ProductID: f.product.ID,
			Action:    AdjustActionAdd,
			Quantity:  5,
			Notes:     "found in back room",
		})
		require.NoError(t, err)
		assert.Equal(t, 20, product.Stock)

		var movement model.StockMovement
		require.NoError(t, f.db.First(&movement).Error)
		assert.Equal(t, model.MovementAdjustIn, movement.MovementType)
		assert.Equal(t, 5, movement.Quantity)
		assert.Equal(t, model.BatchNoManual, movement.BatchNo)
		assert.Equal(t, model.ReferenceManualAdjustment, movement.Reference)
		assert.Equal(t, "found in back room", movement.Notes)
	})

	t.Run("REMOVE clamps at zero and journals the requested quantity", func(t *testing.T) {
		f := setupStockTest(t)

		product, err := f.svc.AdjustStock(ctx, AdjustStockRequest{
			ProductID: f.product.ID,
			Action:    AdjustActionRemove,
			Quantity:  40,
		})
		require.NoError(t, err)
		assert.Equal(t, 0, product.Stock)

		var movement model.StockMovement
		require.NoError(t, f.db.First(&movement).Error)
		assert.Equal(t, model.MovementAdjustOut, movement.MovementType)
		assert.Equal(t, -40, movement.Quantity)
	})

	t.Run("SET journals the delta between new and old", func(t *testing.T) {
		f := setupStockTest(t)

		product, err := f.svc.AdjustStock(ctx, AdjustStockRequest{
			ProductID: f.product.ID,
			Action:    AdjustActionSet,
			Quantity:  3,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, product.Stock)

		var movement model.StockMovement
		require.NoError(t, f.db.First(&movement).Error)
		assert.Equal(t, model.MovementAdjustSet, movement.MovementType)
		assert.Equal(t, -12, movement.Quantity)
	})

	t.Run("SET to the current level records no movement", func(t *testing.T) {
		f := setupStockTest(t)

		_, err := f.svc.AdjustStock(ctx, AdjustStockRequest{
			ProductID: f.product.ID,
			Action:    AdjustActionSet,
			Quantity:  15,
		})
		require.NoError(t, err)

		var count int64
		require.NoError(t, f.db.Model(&model.StockMovement{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		f := setupStockTest(t)

		_, err := f.svc.AdjustStock(ctx, AdjustStockRequest{ProductID: 999, Action: AdjustActionAdd, Quantity: 1})
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = f.svc.AdjustStock(ctx, AdjustStockRequest{ProductID: f.product.ID, Action: "DOUBLE", Quantity: 1})
		assert.ErrorIs(t, err, ErrValidation)

		_, err = f.svc.AdjustStock(ctx, AdjustStockRequest{ProductID: f.product.ID, Action: AdjustActionAdd, Quantity: 0})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestListMovements(t *testing.T) {
	ctx := context.Background()
	f := setupStockTest(t)

	_, err := f.svc.AddBatch(ctx, AddBatchRequest{ProductID: f.product.ID, BatchNo: "B-1", Quantity: 4})
	require.NoError(t, err)
	_, err = f.svc.AdjustStock(ctx, AdjustStockRequest{ProductID: f.product.ID, Action: AdjustActionRemove, Quantity: 2})
	require.NoError(t, err)

	movements, total, err := f.svc.ListMovements(ctx, MovementFilter{ProductID: f.product.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, movements, 2)
	// Newest first
	assert.Equal(t, model.MovementAdjustOut, movements[0].MovementType)
	assert.Equal(t, model.MovementIn, movements[1].MovementType)

	movements, total, err = f.svc.ListMovements(ctx, MovementFilter{MovementType: model.MovementIn})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, movements, 1)
	assert.Equal(t, "B-1", movements[0].BatchNo)
}

func TestLowStockProducts(t *testing.T) {
	ctx := context.Background()
	f := setupStockTest(t)

	low := &model.Product{Name: "Butter 100g", Price: decimal.NewFromInt(55), Stock: 4}
	require.NoError(t, f.db.Create(low).Error)

	products, err := f.svc.LowStockProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Butter 100g", products[0].Name)
}

func TestListBatches(t *testing.T) {
	ctx := context.Background()
	f := setupStockTest(t)

	other := &model.Product{Name: "Curd 500g", Price: decimal.NewFromInt(35), Stock: 12}
	require.NoError(t, f.db.Create(other).Error)

	_, err := f.svc.AddBatch(ctx, AddBatchRequest{ProductID: f.product.ID, BatchNo: "B-1", Quantity: 4})
	require.NoError(t, err)
	_, err = f.svc.AddBatch(ctx, AddBatchRequest{ProductID: other.ID, BatchNo: "B-2", Quantity: 6})
	require.NoError(t, err)

	batches, total, err := f.svc.ListBatches(ctx, f.product.ID, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, batches, 1)
	assert.Equal(t, "B-1", batches[0].BatchNo)

	batches, total, err = f.svc.ListBatches(ctx, 0, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, batches, 2)
}
