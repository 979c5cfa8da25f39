package statement

import (
	"time"

	"github.com/shopspring/decimal"
)

// AggregatedBalance holds the raw debit/credit sums for one account over a
// date window. Derived, never persisted.
type AggregatedBalance struct {
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// zero reports whether the balance has no activity at all.
func (b AggregatedBalance) zero() bool {
	return b.TotalDebit.IsZero() && b.TotalCredit.IsZero()
}

// Node is one row of a statement tree: a class with its rolled-up totals, or
// a leaf account. Balance is sign-adjusted per the node's family. Children
// hold leaf accounts first, then sub-classes, both in chart order. Nodes
// exist only for the duration of one report request.
type Node struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
	Balance     decimal.Decimal `json:"balance"`
	Children    []*Node         `json:"children"`
}

// BalanceSheet is the point-in-time statement over families 1-3. Any of the
// three nodes is nil when its whole branch had no activity (pruning applies
// uniformly, roots included).
type BalanceSheet struct {
	AsOf      time.Time `json:"as_of"`
	Asset     *Node     `json:"asset"`
	Liability *Node     `json:"liability"`
	Equity    *Node     `json:"equity"`

	TotalAssets      decimal.Decimal `json:"total_assets"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities"`
	TotalEquity      decimal.Decimal `json:"total_equity"`
}

// IncomeStatement is the period statement over families 4-5.
type IncomeStatement struct {
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
	Nodes       []*Node   `json:"nodes"`

	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Profit       decimal.Decimal `json:"profit"`
}
