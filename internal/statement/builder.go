package statement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/contalibre-dev/contalibre/internal/chart"
	"github.com/contalibre-dev/contalibre/internal/model"
	"github.com/contalibre-dev/contalibre/internal/tenant"
)

// DateFormat is the ISO date layout accepted everywhere in the report API.
const DateFormat = "2006-01-02"

const (
	// ResultCode / ResultName identify the synthetic equity child holding
	// the period's net result ("Resultado del Ejercicio").
	ResultCode = "3R"
	ResultName = "Resultado del Ejercicio"
)

// ParseDate parses an ISO date, reporting InvalidDateRange on failure.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateFormat, value)
	if err != nil {
		return time.Time{}, ErrInvalidDate(value)
	}
	return t, nil
}

// BalanceReader is the single boundary into the movement store: one
// aggregated query per call, mapping account id to debit/credit sums for
// every account of the company whose family is in families, over journal
// entries dated in (lower, upper]. A nil lower means no lower bound
// (cumulative). Accounts with zero activity are omitted.
type BalanceReader interface {
	FetchBalances(ctx context.Context, companyID uint, families []model.Family, upper time.Time, lower *time.Time) (map[uint]AggregatedBalance, error)
}

// ChartLoader reads the company's chart of accounts, restricted to the root
// families a statement needs, as an in-memory tree.
type ChartLoader interface {
	LoadChart(ctx context.Context, companyID uint, families []model.Family) (*chart.Tree, error)
}

// Builder derives financial statements. It is a pure read: it never mutates
// the chart or the movement store, holds no state between calls, and calling
// it twice with identical inputs yields identical trees.
type Builder struct {
	balances BalanceReader
	charts   ChartLoader
}

// NewBuilder creates a statement Builder over its two store boundaries.
func NewBuilder(balances BalanceReader, charts ChartLoader) *Builder {
	return &Builder{balances: balances, charts: charts}
}

// BalanceSheet builds the point-in-time statement at periodEnd: families 1-3
// aggregated over all movements dated up to and including periodEnd, with the
// period's net result (families 4-5 over [periodStart, periodEnd]) folded
// into Equity as the synthetic "Resultado del Ejercicio" child, so that
// Assets = Liabilities + Equity holds by construction.
func (b *Builder) BalanceSheet(ctx context.Context, tc tenant.Context, periodStart, periodEnd time.Time) (*BalanceSheet, error) {
	if !tc.Valid() {
		return nil, newError(KindNoTenantContext, "no company in request context")
	}
	if periodEnd.Before(periodStart) {
		return nil, newError(KindInvalidDateRange, fmt.Sprintf("period end %s before start %s",
			periodEnd.Format(DateFormat), periodStart.Format(DateFormat)))
	}

	tree, err := b.loadChart(ctx, tc.CompanyID, model.BalanceSheetFamilies)
	if err != nil {
		return nil, err
	}

	// Cumulative window: a balance sheet is a snapshot, so no lower bound.
	cumulative, err := b.balances.FetchBalances(ctx, tc.CompanyID, model.BalanceSheetFamilies, periodEnd, nil)
	if err != nil {
		return nil, wrapError(KindAggregationQueryFailed, "aggregating balance accounts", err)
	}

	// Period window for the net result.
	result, err := b.balances.FetchBalances(ctx, tc.CompanyID, model.IncomeStatementFamilies, periodEnd, &periodStart)
	if err != nil {
		return nil, wrapError(KindAggregationQueryFailed, "aggregating result accounts", err)
	}

	sheet := &BalanceSheet{AsOf: periodEnd}
	for _, root := range tree.RootsOf(model.BalanceSheetFamilies) {
		node := aggregateClass(root, cumulative)
		switch root.Family() {
		case model.FamilyAsset:
			sheet.Asset = node
		case model.FamilyLiability:
			sheet.Liability = node
		case model.FamilyEquity:
			sheet.Equity = injectResult(node, root, result)
		}
	}

	if sheet.Asset != nil {
		sheet.TotalAssets = sheet.Asset.Balance
	}
	if sheet.Liability != nil {
		sheet.TotalLiabilities = sheet.Liability.Balance
	}
	if sheet.Equity != nil {
		sheet.TotalEquity = sheet.Equity.Balance
	}
	return sheet, nil
}

// IncomeStatement builds the period statement over families 4-5 for
// [periodStart, periodEnd], both inclusive.
func (b *Builder) IncomeStatement(ctx context.Context, tc tenant.Context, periodStart, periodEnd time.Time) (*IncomeStatement, error) {
	if !tc.Valid() {
		return nil, newError(KindNoTenantContext, "no company in request context")
	}
	if periodEnd.Before(periodStart) {
		return nil, newError(KindInvalidDateRange, fmt.Sprintf("period end %s before start %s",
			periodEnd.Format(DateFormat), periodStart.Format(DateFormat)))
	}

	tree, err := b.loadChart(ctx, tc.CompanyID, model.IncomeStatementFamilies)
	if err != nil {
		return nil, err
	}

	balances, err := b.balances.FetchBalances(ctx, tc.CompanyID, model.IncomeStatementFamilies, periodEnd, &periodStart)
	if err != nil {
		return nil, wrapError(KindAggregationQueryFailed, "aggregating result accounts", err)
	}

	st := &IncomeStatement{PeriodStart: periodStart, PeriodEnd: periodEnd}
	for _, root := range tree.RootsOf(model.IncomeStatementFamilies) {
		node := aggregateClass(root, balances)
		if node == nil {
			continue
		}
		st.Nodes = append(st.Nodes, node)
		// Each root contributes once; children are already rolled up.
		switch root.Family() {
		case model.FamilyIncome:
			st.TotalIncome = st.TotalIncome.Add(node.Balance)
		case model.FamilyExpense:
			st.TotalExpense = st.TotalExpense.Add(node.Balance)
		}
	}
	st.Profit = st.TotalIncome.Sub(st.TotalExpense)
	return st, nil
}

// loadChart reads the chart tree and maps structural failures to typed kinds.
// Every requested family must have a configured root class.
func (b *Builder) loadChart(ctx context.Context, companyID uint, families []model.Family) (*chart.Tree, error) {
	tree, err := b.charts.LoadChart(ctx, companyID, families)
	if err != nil {
		if errors.Is(err, chart.ErrMalformed) {
			return nil, wrapError(KindMalformedChartOfAccounts, "loading chart of accounts", err)
		}
		return nil, wrapError(KindAggregationQueryFailed, "loading chart of accounts", err)
	}

	roots := tree.RootsOf(families)
	have := make(map[model.Family]bool, len(roots))
	for _, r := range roots {
		have[r.Family()] = true
	}
	for _, f := range families {
		if !have[f] {
			return nil, newError(KindMissingChartOfAccounts,
				fmt.Sprintf("company %d has no root class for family %d", companyID, f))
		}
	}
	return tree, nil
}

// injectResult appends the synthetic result node to the equity root and folds
// the result window's totals into it. equity may be nil when the equity
// branch had no cumulative activity; a root is then synthesized from the
// chart so a non-zero result still appears on the statement.
func injectResult(equity *Node, equityRoot *chart.Class, result map[uint]AggregatedBalance) *Node {
	var resultDebit, resultCredit decimal.Decimal
	for _, b := range result {
		resultDebit = resultDebit.Add(b.TotalDebit)
		resultCredit = resultCredit.Add(b.TotalCredit)
	}
	if resultDebit.IsZero() && resultCredit.IsZero() {
		return equity
	}

	if equity == nil {
		equity = &Node{Code: equityRoot.Code, Name: equityRoot.Name}
	}
	equity.Children = append(equity.Children, &Node{
		Code:        ResultCode,
		Name:        ResultName,
		TotalDebit:  resultDebit,
		TotalCredit: resultCredit,
		Balance:     signedBalance(resultDebit, resultCredit, model.FamilyEquity),
	})
	equity.TotalDebit = equity.TotalDebit.Add(resultDebit)
	equity.TotalCredit = equity.TotalCredit.Add(resultCredit)
	equity.Balance = signedBalance(equity.TotalDebit, equity.TotalCredit, model.FamilyEquity)
	return equity
}
