package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/contalibre-dev/contalibre/internal/chart"
	"github.com/contalibre-dev/contalibre/internal/model"
	"github.com/contalibre-dev/contalibre/internal/statement"
)

// ReportStore serves the statement builder's two read boundaries from
// postgres: the single-pass balance aggregation and the chart load.
type ReportStore struct {
	db *gorm.DB
}

// NewReportStore creates a ReportStore.
func NewReportStore(db *gorm.DB) *ReportStore {
	return &ReportStore{db: db}
}

type balanceRow struct {
	AccountID   uint
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// FetchBalances aggregates debit/credit sums per account in one grouped
// query: movements joined to their journal entry for the company and date
// filters, restricted to accounts whose code family is in families.
// Accounts with no movements in the window simply do not appear.
func (s *ReportStore) FetchBalances(ctx context.Context, companyID uint, families []model.Family, upper time.Time, lower *time.Time) (map[uint]statement.AggregatedBalance, error) {
	q := s.db.WithContext(ctx).
		Table("movements").
		Select("movements.account_id AS account_id, COALESCE(SUM(movements.debit), 0) AS total_debit, COALESCE(SUM(movements.credit), 0) AS total_credit").
		Joins("JOIN journal_entries ON journal_entries.id = movements.entry_id").
		Joins("JOIN accounts ON accounts.id = movements.account_id").
		Where("journal_entries.company_id = ?", companyID).
		Where("LEFT(accounts.code, 1) IN ?", familyDigits(families)).
		Where("journal_entries.date <= ?", upper)
	if lower != nil {
		q = q.Where("journal_entries.date >= ?", *lower)
	}

	var rows []balanceRow
	if err := q.Group("movements.account_id").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("aggregating movements for company %d: %w", companyID, err)
	}

	balances := make(map[uint]statement.AggregatedBalance, len(rows))
	for _, r := range rows {
		if r.TotalDebit.IsZero() && r.TotalCredit.IsZero() {
			continue
		}
		balances[r.AccountID] = statement.AggregatedBalance{
			TotalDebit:  r.TotalDebit,
			TotalCredit: r.TotalCredit,
		}
	}
	return balances, nil
}

// LoadChart reads the company's classes and accounts for the requested
// families in chart order and reconstructs the tree in memory. Two flat
// queries per report, never one per node.
func (s *ReportStore) LoadChart(ctx context.Context, companyID uint, families []model.Family) (*chart.Tree, error) {
	digits := familyDigits(families)

	var classes []model.AccountClass
	err := s.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Where("LEFT(code, 1) IN ?", digits).
		Order("position, code").
		Find(&classes).Error
	if err != nil {
		return nil, fmt.Errorf("loading account classes for company %d: %w", companyID, err)
	}

	var accounts []model.Account
	err = s.db.WithContext(ctx).
		Where("company_id = ? AND active", companyID).
		Where("LEFT(code, 1) IN ?", digits).
		Order("position, code").
		Find(&accounts).Error
	if err != nil {
		return nil, fmt.Errorf("loading accounts for company %d: %w", companyID, err)
	}

	return chart.BuildTree(classes, accounts)
}

func familyDigits(families []model.Family) []string {
	digits := make([]string, len(families))
	for i, f := range families {
		digits[i] = fmt.Sprintf("%d", f)
	}
	return digits
}
