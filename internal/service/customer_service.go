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

type CreateCustomerRequest struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone"`
	GSTIN       string `json:"gstin"`
	Address     string `json:"address"`
	Place       string `json:"place"`
	ShipName    string `json:"ship_name"`
	ShipAddress string `json:"ship_address"`
	ShipPhone   string `json:"ship_phone"`
	ShipGSTIN   string `json:"ship_gstin"`
}

type CustomerService interface {
	Create(ctx context.Context, req CreateCustomerRequest) (*model.Customer, error)
	Get(ctx context.Context, id uint) (*model.Customer, error)
	List(ctx context.Context, page, limit int) ([]model.Customer, int64, error)
	Delete(ctx context.Context, id uint) error
}

type customerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) Create(ctx context.Context, req CreateCustomerRequest) (*model.Customer, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("customer name is required: %w", ErrValidation)
	}

	customer := &model.Customer{
		Name:        strings.TrimSpace(req.Name),
		Phone:       req.Phone,
		GSTIN:       req.GSTIN,
		Address:     req.Address,
		Place:       req.Place,
		ShipName:    req.ShipName,
		ShipAddress: req.ShipAddress,
		ShipPhone:   req.ShipPhone,
		ShipGSTIN:   req.ShipGSTIN,
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

func (s *customerService) Get(ctx context.Context, id uint) (*model.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("customer %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}
	return customer, nil
}

func (s *customerService) List(ctx context.Context, page, limit int) ([]model.Customer, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	customers, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, total, nil
}

// Delete removes the customer row. Bills keep their customer_id; historical
// invoices stay readable even after the customer is gone.
func (s *customerService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}
