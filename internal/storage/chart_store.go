package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/contalibre-dev/contalibre/internal/chart"
	"github.com/contalibre-dev/contalibre/internal/model"
)

// ChartStore writes chart-of-accounts rows; it backs template provisioning.
type ChartStore struct {
	db *gorm.DB
}

// NewChartStore creates a ChartStore.
func NewChartStore(db *gorm.DB) *ChartStore {
	return &ChartStore{db: db}
}

// SaveChart inserts a flattened template for a company in one transaction.
// Parents are resolved by code; the flatten order guarantees a parent is
// inserted before its children.
func (s *ChartStore) SaveChart(ctx context.Context, companyID uint, classes []chart.FlatClass, accounts []chart.FlatAccount) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		classIDs := make(map[string]uint, len(classes))
		for _, fc := range classes {
			row := model.AccountClass{
				CompanyID: companyID,
				Code:      fc.Code,
				Name:      fc.Name,
				Position:  fc.Position,
			}
			if fc.ParentCode != "" {
				parentID, ok := classIDs[fc.ParentCode]
				if !ok {
					return fmt.Errorf("class %q references parent %q not yet inserted", fc.Code, fc.ParentCode)
				}
				row.ParentID = &parentID
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("inserting class %q: %w", fc.Code, err)
			}
			classIDs[fc.Code] = row.ID
		}

		for _, fa := range accounts {
			classID, ok := classIDs[fa.ClassCode]
			if !ok {
				return fmt.Errorf("account %q references unknown class %q", fa.Code, fa.ClassCode)
			}
			row := model.Account{
				CompanyID: companyID,
				ClassID:   classID,
				Code:      fa.Code,
				Name:      fa.Name,
				Active:    true,
				Position:  fa.Position,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("inserting account %q: %w", fa.Code, err)
			}
		}
		return nil
	})
}

// AccountByCode returns a company's account by its chart code.
func (s *ChartStore) AccountByCode(ctx context.Context, companyID uint, code string) (*model.Account, error) {
	var a model.Account
	err := s.db.WithContext(ctx).
		Where("company_id = ? AND code = ?", companyID, code).
		First(&a).Error
	if err != nil {
		return nil, fmt.Errorf("looking up account %q: %w", code, err)
	}
	return &a, nil
}
