package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aakshay001/MOOFUs-Billing-APP/internal/model"
	"github.com/aakshay001/MOOFUs-Billing-APP/internal/repository"

	"gorm.io/gorm"
)

type ProductRequest struct {
	Name     string `json:"name" binding:"required"`
	HSN      string `json:"hsn"`
	Price    string `json:"price" binding:"required"`
	GSTRate  string `json:"gst"`
	Stock    int    `json:"stock"`
	Mfg      string `json:"mfg"`
	Exp      string `json:"exp"`
	FreeQty  int    `json:"free"`
	Discount string `json:"discount"`
}

type ProductService interface {
	Create(ctx context.Context, req ProductRequest) (*model.Product, error)
	Update(ctx context.Context, id uint, req ProductRequest) (*model.Product, error)
	Get(ctx context.Context, id uint) (*model.Product, error)
	List(ctx context.Context, page, limit int, search string) ([]model.Product, int64, error)
	Delete(ctx context.Context, id uint) error
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

// Create stores a new product. Initial stock is taken as-is without a ledger
// movement; the ledger only journals changes after the product exists.
func (s *productService) Create(ctx context.Context, req ProductRequest) (*model.Product, error) {
	product, err := s.fromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

func (s *productService) Update(ctx context.Context, id uint, req ProductRequest) (*model.Product, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	updated, err := s.fromRequest(req)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return updated, nil
}

func (s *productService) Get(ctx context.Context, id uint) (*model.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	return product, nil
}

func (s *productService) List(ctx context.Context, page, limit int, search string) ([]model.Product, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	products, total, err := s.repo.List(ctx, page, limit, search)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, total, nil
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

func (s *productService) fromRequest(req ProductRequest) (*model.Product, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("product name is required: %w", ErrValidation)
	}
	price, err := parseDecimalField(req.Price, "price")
	if err != nil {
		return nil, err
	}
	gst, err := parseOptionalDecimal(req.GSTRate, "gst")
	if err != nil {
		return nil, err
	}
	discount, err := parseOptionalDecimal(req.Discount, "discount")
	if err != nil {
		return nil, err
	}
	if req.Stock < 0 {
		return nil, fmt.Errorf("stock must not be negative: %w", ErrValidation)
	}

	return &model.Product{
		Name:        strings.TrimSpace(req.Name),
		HSN:         req.HSN,
		Price:       price,
		GSTRate:     gst,
		Stock:       req.Stock,
		Mfg:         req.Mfg,
		Exp:         req.Exp,
		FreeQty:     req.FreeQty,
		DiscountPct: discount,
	}, nil
}
