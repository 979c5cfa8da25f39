package statement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contalibre-dev/contalibre/internal/chart"
	"github.com/contalibre-dev/contalibre/internal/model"
	"github.com/contalibre-dev/contalibre/internal/tenant"
)

var (
	tc          = tenant.Context{CompanyID: 7}
	periodStart = date(2024, 1, 1)
	periodEnd   = date(2024, 1, 31)
)

// tradingStore models a balanced January: capital 5000, a 2000 loan, a 3000
// sale and 1000 of salaries, everything inside the period so the cumulative
// and period windows agree.
func tradingStore() *fakeStore {
	return &fakeStore{
		tree: testChart(),
		cumulative: map[uint]AggregatedBalance{
			acctCaja:      bal("10000", "1000"),
			acctPrestamos: bal("0", "2000"),
			acctCapital:   bal("0", "5000"),
		},
		period: map[uint]AggregatedBalance{
			acctVentas:  bal("0", "3000"),
			acctSueldos: bal("1000", "0"),
		},
	}
}

func TestBalanceSheet_BalanceInvariant(t *testing.T) {
	store := tradingStore()
	b := NewBuilder(store, store)

	sheet, err := b.BalanceSheet(context.Background(), tc, periodStart, periodEnd)
	require.NoError(t, err)

	require.NotNil(t, sheet.Asset)
	require.NotNil(t, sheet.Liability)
	require.NotNil(t, sheet.Equity)

	assert.True(t, sheet.TotalAssets.Equal(dec("9000")))
	assert.True(t, sheet.TotalLiabilities.Equal(dec("2000")))
	assert.True(t, sheet.TotalEquity.Equal(dec("7000")))

	// Assets = Liabilities + Equity, result included.
	assert.True(t, sheet.TotalAssets.Equal(sheet.TotalLiabilities.Add(sheet.TotalEquity)))

	// Exactly two aggregation queries per report.
	assert.Equal(t, 2, store.fetchCalls)
}

func TestBalanceSheet_InjectsResultIntoEquity(t *testing.T) {
	store := tradingStore()
	b := NewBuilder(store, store)

	sheet, err := b.BalanceSheet(context.Background(), tc, periodStart, periodEnd)
	require.NoError(t, err)

	children := sheet.Equity.Children
	require.NotEmpty(t, children)
	result := children[len(children)-1]
	assert.Equal(t, ResultCode, result.Code)
	assert.Equal(t, "Resultado del Ejercicio", result.Name)
	assert.True(t, result.Balance.Equal(dec("2000")), "3000 income - 1000 expense")
}

func TestCrossStatementConsistency(t *testing.T) {
	store := tradingStore()
	b := NewBuilder(store, store)

	sheet, err := b.BalanceSheet(context.Background(), tc, periodStart, periodEnd)
	require.NoError(t, err)
	st, err := b.IncomeStatement(context.Background(), tc, periodStart, periodEnd)
	require.NoError(t, err)

	children := sheet.Equity.Children
	result := children[len(children)-1]
	require.Equal(t, ResultCode, result.Code)
	assert.True(t, st.Profit.Equal(result.Balance))
}

func TestIncomeStatement_ScenarioB(t *testing.T) {
	store := tradingStore()
	store.period = map[uint]AggregatedBalance{
		acctVentas:  bal("0", "5000"),
		acctSueldos: bal("2000", "0"),
	}
	b := NewBuilder(store, store)

	st, err := b.IncomeStatement(context.Background(), tc, periodStart, periodEnd)
	require.NoError(t, err)

	assert.True(t, st.TotalIncome.Equal(dec("5000")))
	assert.True(t, st.TotalExpense.Equal(dec("2000")))
	assert.True(t, st.Profit.Equal(dec("3000")))
	require.Len(t, st.Nodes, 2)
	assert.Equal(t, "4", st.Nodes[0].Code)
	assert.Equal(t, "5", st.Nodes[1].Code)

	// The same period folds into equity as +3000.
	sheet, err := b.BalanceSheet(context.Background(), tc, periodStart, periodEnd)
	require.NoError(t, err)
	children := sheet.Equity.Children
	assert.True(t, children[len(children)-1].Balance.Equal(dec("3000")))
}

func TestBalanceSheet_EmptyTenant(t *testing.T) {
	store := &fakeStore{tree: testChart()}
	b := NewBuilder(store, store)

	sheet, err := b.BalanceSheet(context.Background(), tc, periodStart, periodEnd)
	require.NoError(t, err)

	// Pruning applies uniformly, roots included: no activity, no nodes.
	assert.Nil(t, sheet.Asset)
	assert.Nil(t, sheet.Liability)
	assert.Nil(t, sheet.Equity)
	assert.True(t, sheet.TotalAssets.IsZero())
	assert.True(t, sheet.TotalLiabilities.IsZero())
	assert.True(t, sheet.TotalEquity.IsZero())

	st, err := b.IncomeStatement(context.Background(), tc, periodStart, periodEnd)
	require.NoError(t, err)
	assert.Empty(t, st.Nodes)
	assert.True(t, st.Profit.IsZero())
}

func TestBalanceSheet_ResultWithoutEquityActivity(t *testing.T) {
	store := tradingStore()
	// Only the period result exists; equity has no cumulative movements.
	store.cumulative = map[uint]AggregatedBalance{
		acctCaja: bal("2000", "0"),
	}
	b := NewBuilder(store, store)

	sheet, err := b.BalanceSheet(context.Background(), tc, periodStart, periodEnd)
	require.NoError(t, err)

	require.NotNil(t, sheet.Equity, "equity root synthesized for the result")
	assert.Equal(t, "3", sheet.Equity.Code)
	require.Len(t, sheet.Equity.Children, 1)
	assert.Equal(t, ResultCode, sheet.Equity.Children[0].Code)
	assert.True(t, sheet.TotalEquity.Equal(dec("2000")))
}

func TestBalanceSheet_Idempotent(t *testing.T) {
	store := tradingStore()
	b := NewBuilder(store, store)

	first, err := b.BalanceSheet(context.Background(), tc, periodStart, periodEnd)
	require.NoError(t, err)
	second, err := b.BalanceSheet(context.Background(), tc, periodStart, periodEnd)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestBuilder_ErrorKinds(t *testing.T) {
	store := tradingStore()
	b := NewBuilder(store, store)
	ctx := context.Background()

	t.Run("no tenant", func(t *testing.T) {
		_, err := b.BalanceSheet(ctx, tenant.Context{}, periodStart, periodEnd)
		assert.Equal(t, KindNoTenantContext, KindOf(err))
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := b.IncomeStatement(ctx, tc, periodEnd, periodStart)
		assert.Equal(t, KindInvalidDateRange, KindOf(err))
	})

	t.Run("unparsable date", func(t *testing.T) {
		_, err := ParseDate("31/01/2024")
		assert.Equal(t, KindInvalidDateRange, KindOf(err))
		assert.Contains(t, err.Error(), "YYYY-MM-DD")
	})

	t.Run("missing chart", func(t *testing.T) {
		empty, buildErr := chart.BuildTree(nil, nil)
		require.NoError(t, buildErr)
		s := &fakeStore{tree: empty}
		_, err := NewBuilder(s, s).BalanceSheet(ctx, tc, periodStart, periodEnd)
		assert.Equal(t, KindMissingChartOfAccounts, KindOf(err))
	})

	t.Run("malformed chart", func(t *testing.T) {
		s := tradingStore()
		s.chartErr = fmt.Errorf("loading: %w", chart.ErrMalformed)
		_, err := NewBuilder(s, s).BalanceSheet(ctx, tc, periodStart, periodEnd)
		assert.Equal(t, KindMalformedChartOfAccounts, KindOf(err))
	})

	t.Run("store failure wrapped", func(t *testing.T) {
		s := tradingStore()
		s.fetchErr = errStoreDown
		_, err := NewBuilder(s, s).BalanceSheet(ctx, tc, periodStart, periodEnd)
		assert.Equal(t, KindAggregationQueryFailed, KindOf(err))
		assert.True(t, errors.Is(err, errStoreDown), "cause stays reachable")
	})
}

func TestBalanceSheet_MissingFamilyRoot(t *testing.T) {
	// A chart with assets only cannot produce a balance sheet.
	classes := []model.AccountClass{{ID: 1, Code: "1", Name: "Activo"}}
	tree, err := chart.BuildTree(classes, nil)
	require.NoError(t, err)

	s := &fakeStore{tree: tree}
	_, err = NewBuilder(s, s).BalanceSheet(context.Background(), tc, periodStart, periodEnd)
	assert.Equal(t, KindMissingChartOfAccounts, KindOf(err))
}
