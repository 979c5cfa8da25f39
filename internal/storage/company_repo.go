package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/contalibre-dev/contalibre/internal/model"
	"github.com/contalibre-dev/contalibre/internal/tenant"
)

// CompanyRepo persists companies in postgres.
type CompanyRepo struct {
	db *gorm.DB
}

// NewCompanyRepo creates a CompanyRepo.
func NewCompanyRepo(db *gorm.DB) *CompanyRepo {
	return &CompanyRepo{db: db}
}

// Create inserts a company.
func (r *CompanyRepo) Create(ctx context.Context, c *model.Company) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// Get returns a company by ID, or tenant.ErrNotFound.
func (r *CompanyRepo) Get(ctx context.Context, id uint) (*model.Company, error) {
	var c model.Company
	err := r.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, tenant.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading company %d: %w", id, err)
	}
	return &c, nil
}

// List returns all companies ordered by ID.
func (r *CompanyRepo) List(ctx context.Context) ([]model.Company, error) {
	var companies []model.Company
	if err := r.db.WithContext(ctx).Order("id").Find(&companies).Error; err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}
	return companies, nil
}
