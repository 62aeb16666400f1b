package repository

import (
	"context"
	"errors"

	"github.com/aakshay001/MOOFUs-Billing-APP/internal/model"

	"gorm.io/gorm"
)

// CompanyRepository manages the two singleton rows: the seller profile and
// the renderer settings. Get creates the row empty when it does not exist
// yet, so callers always see exactly one row.
type CompanyRepository interface {
	Get(ctx context.Context) (*model.Company, error)
	Save(ctx context.Context, company *model.Company) error
	GetSettings(ctx context.Context) (*model.Settings, error)
	SaveSettings(ctx context.Context, settings *model.Settings) error
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Get(ctx context.Context) (*model.Company, error) {
	var company model.Company
	err := GetDB(ctx, r.db).Order("id").First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		company = model.Company{}
		if err := GetDB(ctx, r.db).Create(&company).Error; err != nil {
			return nil, err
		}
		return &company, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) Save(ctx context.Context, company *model.Company) error {
	return GetDB(ctx, r.db).Save(company).Error
}

func (r *companyRepository) GetSettings(ctx context.Context) (*model.Settings, error) {
	var settings model.Settings
	err := GetDB(ctx, r.db).Order("id").First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = model.Settings{}
		if err := GetDB(ctx, r.db).Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *companyRepository) SaveSettings(ctx context.Context, settings *model.Settings) error {
	return GetDB(ctx, r.db).Save(settings).Error
}
