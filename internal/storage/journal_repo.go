package storage

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/contalibre-dev/contalibre/internal/model"
)

// JournalRepo persists journal entries and their movements in postgres.
type JournalRepo struct {
	db *gorm.DB
}

// NewJournalRepo creates a JournalRepo.
func NewJournalRepo(db *gorm.DB) *JournalRepo {
	return &JournalRepo{db: db}
}

// Create stores an entry with its movements in one transaction.
func (r *JournalRepo) Create(ctx context.Context, entry *model.JournalEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("inserting journal entry %s: %w", entry.ID, err)
		}
		return nil
	})
}

// ListByDateRange returns entries dated in [from, to] with movements loaded.
func (r *JournalRepo) ListByDateRange(ctx context.Context, companyID uint, from, to time.Time) ([]model.JournalEntry, error) {
	var entries []model.JournalEntry
	err := r.db.WithContext(ctx).
		Preload("Movements").
		Where("company_id = ? AND date >= ? AND date <= ?", companyID, from, to).
		Order("date, id").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("listing entries for company %d: %w", companyID, err)
	}
	return entries, nil
}

// AccountsByID resolves a company's accounts for a set of IDs.
func (r *JournalRepo) AccountsByID(ctx context.Context, companyID uint, ids []uint) (map[uint]model.Account, error) {
	if len(ids) == 0 {
		return map[uint]model.Account{}, nil
	}
	var accounts []model.Account
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND id IN ?", companyID, ids).
		Find(&accounts).Error
	if err != nil {
		return nil, fmt.Errorf("resolving accounts for company %d: %w", companyID, err)
	}
	byID := make(map[uint]model.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}
	return byID, nil
}
