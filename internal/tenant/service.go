package tenant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/contalibre-dev/contalibre/internal/model"
)

// ErrNotFound is returned when a company does not exist.
var ErrNotFound = errors.New("company not found")

// Repository persists companies.
type Repository interface {
	Create(ctx context.Context, c *model.Company) error
	Get(ctx context.Context, id uint) (*model.Company, error)
	List(ctx context.Context) ([]model.Company, error)
}

// ChartInstaller provisions a chart of accounts for a new company.
type ChartInstaller interface {
	Install(ctx context.Context, companyID uint) error
}

// Service provides company management. Creating a company also installs the
// default chart of accounts so reports work immediately.
type Service struct {
	repo   Repository
	charts ChartInstaller
}

// NewService creates a company Service.
func NewService(repo Repository, charts ChartInstaller) *Service {
	return &Service{repo: repo, charts: charts}
}

// Create registers a company and provisions its chart of accounts.
func (s *Service) Create(ctx context.Context, name, taxID string) (*model.Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("company name is required")
	}

	c := &model.Company{Name: name, TaxID: strings.TrimSpace(taxID)}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("creating company: %w", err)
	}

	if s.charts != nil {
		if err := s.charts.Install(ctx, c.ID); err != nil {
			return nil, fmt.Errorf("installing chart of accounts for company %d: %w", c.ID, err)
		}
	}
	return c, nil
}

// Get returns a company by ID.
func (s *Service) Get(ctx context.Context, id uint) (*model.Company, error) {
	return s.repo.Get(ctx, id)
}

// List returns all companies.
func (s *Service) List(ctx context.Context) ([]model.Company, error) {
	return s.repo.List(ctx)
}
