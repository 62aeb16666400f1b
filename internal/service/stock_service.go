package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aakshay001/MOOFUs-Billing-APP/internal/model"
	"github.com/aakshay001/MOOFUs-Billing-APP/internal/repository"
	ws "github.com/aakshay001/MOOFUs-Billing-APP/internal/websocket"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Adjustment actions accepted by AdjustStock.
const (
	AdjustActionAdd    = "ADD"
	AdjustActionRemove = "REMOVE"
	AdjustActionSet    = "SET"
)

// --- DTOs ---

type AddBatchRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	BatchNo   string `json:"batch_no" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
	Price     string `json:"price"`
	Mfg       string `json:"mfg"`
	Exp       string `json:"exp"`
}

type AdjustStockRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Action    string `json:"action" binding:"required,oneof=ADD REMOVE SET"`
	// No "required" here: SET to an absolute level of zero is a valid
	// correction and must survive binding. Per-action positivity is
	// enforced in AdjustStock.
	Quantity int    `json:"quantity" binding:"gte=0"`
	Notes    string `json:"notes"`
}

type MovementFilter struct {
	ProductID    uint
	MovementType string
	Page         int
	Limit        int
}

// --- Interface ---

type StockService interface {
	AddBatch(ctx context.Context, req AddBatchRequest) (*model.Batch, error)
	AdjustStock(ctx context.Context, req AdjustStockRequest) (*model.Product, error)
	ListBatches(ctx context.Context, productID uint, page, limit int) ([]model.Batch, int64, error)
	ListMovements(ctx context.Context, filter MovementFilter) ([]model.StockMovement, int64, error)
	LowStockProducts(ctx context.Context) ([]model.Product, error)
}

type stockService struct {
	productRepo  repository.ProductRepository
	batchRepo    repository.BatchRepository
	movementRepo repository.StockMovementRepository
	txManager    repository.TransactionManager
	hub          *ws.Hub
	now          func() time.Time
}

func NewStockService(
	productRepo repository.ProductRepository,
	batchRepo repository.BatchRepository,
	movementRepo repository.StockMovementRepository,
	txManager repository.TransactionManager,
	hub *ws.Hub,
) StockService {
	return &stockService{
		productRepo:  productRepo,
		batchRepo:    batchRepo,
		movementRepo: movementRepo,
		txManager:    txManager,
		hub:          hub,
		now:          time.Now,
	}
}

// AddBatch records incoming stock. An existing product+batch row is merged
// (quantity added, price/mfg/exp refreshed when supplied); product stock goes
// up by the same amount and an IN movement is journaled.
func (s *stockService) AddBatch(ctx context.Context, req AddBatchRequest) (*model.Batch, error) {
	if strings.TrimSpace(req.BatchNo) == "" {
		return nil, fmt.Errorf("batch_no is required: %w", ErrValidation)
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive: %w", ErrValidation)
	}

	var price decimal.Decimal
	if req.Price != "" {
		var err error
		if price, err = parseDecimalField(req.Price, "price"); err != nil {
			return nil, err
		}
	}

	var batch *model.Batch
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		product, err := s.productRepo.FindByIDForUpdate(txCtx, req.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product %d: %w", req.ProductID, ErrNotFound)
			}
			return fmt.Errorf("failed to lock product %d: %w", req.ProductID, err)
		}

		existing, err := s.batchRepo.FindByProductAndNo(txCtx, product.ID, req.BatchNo)
		switch {
		case err == nil:
			existing.Quantity += req.Quantity
			if req.Price != "" {
				existing.Price = price
			}
			if req.Mfg != "" {
				existing.MfgDate = req.Mfg
			}
			if req.Exp != "" {
				existing.ExpDate = req.Exp
			}
			if err := s.batchRepo.Update(txCtx, existing); err != nil {
				return fmt.Errorf("failed to merge batch %s: %w", req.BatchNo, err)
			}
			batch = existing
		case errors.Is(err, gorm.ErrRecordNotFound):
			batch = &model.Batch{
				ProductID: product.ID,
				BatchNo:   req.BatchNo,
				Quantity:  req.Quantity,
				Price:     price,
				MfgDate:   req.Mfg,
				ExpDate:   req.Exp,
			}
			if err := s.batchRepo.Create(txCtx, batch); err != nil {
				return fmt.Errorf("failed to create batch %s: %w", req.BatchNo, err)
			}
		default:
			return fmt.Errorf("failed to look up batch %s: %w", req.BatchNo, err)
		}

		product.Stock += req.Quantity
		if err := s.productRepo.UpdateStock(txCtx, product.ID, product.Stock); err != nil {
			return fmt.Errorf("failed to update stock for product %d: %w", product.ID, err)
		}

		movement := &model.StockMovement{
			ProductID:    product.ID,
			BatchNo:      req.BatchNo,
			MovementType: model.MovementIn,
			Quantity:     req.Quantity,
			Date:         s.now(),
			Reference:    "Batch " + req.BatchNo,
		}
		if err := s.movementRepo.Append(txCtx, movement); err != nil {
			return fmt.Errorf("failed to record stock movement: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return batch, nil
}

// AdjustStock applies a manual correction. REMOVE clamps at zero; SET
// journals the delta between the new and old levels, so SET to the current
// level records nothing.
func (s *stockService) AdjustStock(ctx context.Context, req AdjustStockRequest) (*model.Product, error) {
	var product *model.Product

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		product, err = s.productRepo.FindByIDForUpdate(txCtx, req.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product %d: %w", req.ProductID, ErrNotFound)
			}
			return fmt.Errorf("failed to lock product %d: %w", req.ProductID, err)
		}

		old := product.Stock
		var movementType string
		var movementQty int

		switch req.Action {
		case AdjustActionAdd:
			if req.Quantity <= 0 {
				return fmt.Errorf("quantity must be positive: %w", ErrValidation)
			}
			product.Stock = old + req.Quantity
			movementType = model.MovementAdjustIn
			movementQty = req.Quantity
		case AdjustActionRemove:
			if req.Quantity <= 0 {
				return fmt.Errorf("quantity must be positive: %w", ErrValidation)
			}
			product.Stock = clampStock(old - req.Quantity)
			movementType = model.MovementAdjustOut
			movementQty = -req.Quantity
		case AdjustActionSet:
			if req.Quantity < 0 {
				return fmt.Errorf("quantity must not be negative: %w", ErrValidation)
			}
			product.Stock = req.Quantity
			movementType = model.MovementAdjustSet
			movementQty = req.Quantity - old
		default:
			return fmt.Errorf("unknown adjustment action %q: %w", req.Action, ErrValidation)
		}

		if err := s.productRepo.UpdateStock(txCtx, product.ID, product.Stock); err != nil {
			return fmt.Errorf("failed to update stock for product %d: %w", product.ID, err)
		}

		if movementQty == 0 {
			// SET to the current level changes nothing.
			return nil
		}

		movement := &model.StockMovement{
			ProductID:    product.ID,
			BatchNo:      model.BatchNoManual,
			MovementType: movementType,
			Quantity:     movementQty,
			Date:         s.now(),
			Reference:    model.ReferenceManualAdjustment,
			Notes:        req.Notes,
		}
		if err := s.movementRepo.Append(txCtx, movement); err != nil {
			return fmt.Errorf("failed to record stock movement: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if product.Stock < model.LowStockThreshold {
		s.broadcastLowStock(*product)
	}
	return product, nil
}

func (s *stockService) ListBatches(ctx context.Context, productID uint, page, limit int) ([]model.Batch, int64, error) {
	if productID != 0 {
		batches, err := s.batchRepo.ListByProduct(ctx, productID)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to list batches: %w", err)
		}
		return batches, int64(len(batches)), nil
	}

	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	batches, total, err := s.batchRepo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list batches: %w", err)
	}
	return batches, total, nil
}

func (s *stockService) ListMovements(ctx context.Context, filter MovementFilter) ([]model.StockMovement, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	movements, total, err := s.movementRepo.List(ctx, repository.MovementListFilter{
		ProductID:    filter.ProductID,
		MovementType: filter.MovementType,
		Page:         filter.Page,
		Limit:        filter.Limit,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list stock movements: %w", err)
	}
	return movements, total, nil
}

func (s *stockService) LowStockProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.ListBelowStock(ctx, model.LowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("failed to list low-stock products: %w", err)
	}
	return products, nil
}

func (s *stockService) broadcastLowStock(product model.Product) {
	if s.hub == nil {
		return
	}
	payload, err := json.Marshal(ws.Event{
		Event: ws.EventLowStock,
		Data: map[string]interface{}{
			"product_id": product.ID,
			"name":       product.Name,
			"stock":      product.Stock,
		},
	})
	if err != nil {
		return
	}
	s.hub.Broadcast <- payload
}
