package journal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/contalibre-dev/contalibre/internal/id"
	"github.com/contalibre-dev/contalibre/internal/model"
	"github.com/contalibre-dev/contalibre/internal/tenant"
)

// ErrNoTenant is returned when a posting call carries no company context.
var ErrNoTenant = errors.New("no company in request context")

// Repository persists journal entries and resolves the accounts they post
// against. Create stores the entry and its movements atomically.
type Repository interface {
	Create(ctx context.Context, entry *model.JournalEntry) error
	ListByDateRange(ctx context.Context, companyID uint, from, to time.Time) ([]model.JournalEntry, error)
	AccountsByID(ctx context.Context, companyID uint, ids []uint) (map[uint]model.Account, error)
}

// Line is one proposed movement of a posting: exactly one of Debit/Credit
// is positive.
type Line struct {
	AccountID uint
	Debit     decimal.Decimal
	Credit    decimal.Decimal
	Reference string
}

// PostParams holds everything needed to post a journal entry.
type PostParams struct {
	Date        time.Time
	Description string
	Lines       []Line
}

// Service posts and lists journal entries ("asientos").
type Service struct {
	repo Repository
}

// NewService creates a journal Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Post validates a balanced entry and stores it with its movements. Returns
// the new entry ID.
func (s *Service) Post(ctx context.Context, tc tenant.Context, params PostParams) (*model.JournalEntry, error) {
	if !tc.Valid() {
		return nil, ErrNoTenant
	}

	ids := make([]uint, 0, len(params.Lines))
	for _, l := range params.Lines {
		ids = append(ids, l.AccountID)
	}
	accounts, err := s.repo.AccountsByID(ctx, tc.CompanyID, ids)
	if err != nil {
		return nil, fmt.Errorf("resolving accounts: %w", err)
	}

	if verrs := ValidateLines(params.Lines, accounts); len(verrs) > 0 {
		return nil, ValidationErrors(verrs)
	}

	entry := &model.JournalEntry{
		ID:          id.NewAt(params.Date),
		CompanyID:   tc.CompanyID,
		Date:        params.Date,
		Description: params.Description,
	}
	for _, l := range params.Lines {
		entry.Movements = append(entry.Movements, model.Movement{
			ID:        id.New(),
			EntryID:   entry.ID,
			AccountID: l.AccountID,
			Debit:     l.Debit,
			Credit:    l.Credit,
			Reference: l.Reference,
		})
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("storing journal entry: %w", err)
	}
	return entry, nil
}

// List returns the company's entries dated in [from, to], movements included.
func (s *Service) List(ctx context.Context, tc tenant.Context, from, to time.Time) ([]model.JournalEntry, error) {
	if !tc.Valid() {
		return nil, ErrNoTenant
	}
	entries, err := s.repo.ListByDateRange(ctx, tc.CompanyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing journal entries: %w", err)
	}
	return entries, nil
}
