package statement

import (
	"github.com/shopspring/decimal"

	"github.com/contalibre-dev/contalibre/internal/model"
)

var (
	plusOne  = decimal.NewFromInt(1)
	minusOne = decimal.NewFromInt(-1)
)

// Multiplier maps a class family to its sign convention: debit-natured
// families (Asset, Expense) report debit-heavy balances as positive,
// credit-natured families (Liability, Equity, Income) report credit-heavy
// balances as positive. Shared by both statements; there is exactly one
// sign table in the system.
func Multiplier(f model.Family) decimal.Decimal {
	switch f {
	case model.FamilyAsset, model.FamilyExpense:
		return plusOne
	case model.FamilyLiability, model.FamilyEquity, model.FamilyIncome:
		return minusOne
	default:
		return plusOne
	}
}

// signedBalance applies the family sign convention to raw totals:
// (debit - credit) * multiplier.
func signedBalance(debit, credit decimal.Decimal, f model.Family) decimal.Decimal {
	return debit.Sub(credit).Mul(Multiplier(f))
}
