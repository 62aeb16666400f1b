package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/aakshay001/MOOFUs-Billing-APP/internal/model"
	"github.com/aakshay001/MOOFUs-Billing-APP/internal/repository"
)

type SaveCompanyRequest struct {
	Name    string `json:"name" binding:"required"`
	GSTIN   string `json:"gstin"`
	MSME    string `json:"msme"`
	FSSAI   string `json:"fssai"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type SaveSettingsRequest struct {
	LogoPath string `json:"logo_path"`
	UPIID    string `json:"upi_id"`
}

type CompanyService interface {
	Get(ctx context.Context) (*model.Company, error)
	Save(ctx context.Context, req SaveCompanyRequest) (*model.Company, error)
	GetSettings(ctx context.Context) (*model.Settings, error)
	SaveSettings(ctx context.Context, req SaveSettingsRequest) (*model.Settings, error)
}

type companyService struct {
	repo repository.CompanyRepository
}

func NewCompanyService(repo repository.CompanyRepository) CompanyService {
	return &companyService{repo: repo}
}

func (s *companyService) Get(ctx context.Context) (*model.Company, error) {
	company, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load company profile: %w", err)
	}
	return company, nil
}

func (s *companyService) Save(ctx context.Context, req SaveCompanyRequest) (*model.Company, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("company name is required: %w", ErrValidation)
	}

	company, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load company profile: %w", err)
	}
	company.Name = strings.TrimSpace(req.Name)
	company.GSTIN = req.GSTIN
	company.MSME = req.MSME
	company.FSSAI = req.FSSAI
	company.Phone = req.Phone
	company.Address = req.Address

	if err := s.repo.Save(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to save company profile: %w", err)
	}
	return company, nil
}

func (s *companyService) GetSettings(ctx context.Context) (*model.Settings, error) {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

func (s *companyService) SaveSettings(ctx context.Context, req SaveSettingsRequest) (*model.Settings, error) {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	settings.LogoPath = req.LogoPath
	settings.UPIID = req.UPIID

	if err := s.repo.SaveSettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return settings, nil
}
