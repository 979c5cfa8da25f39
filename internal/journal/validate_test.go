package journal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contalibre-dev/contalibre/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testAccounts() map[uint]model.Account {
	return map[uint]model.Account{
		101: {ID: 101, Code: "11102", Name: "Caja", Active: true},
		301: {ID: 301, Code: "31101", Name: "Capital Social", Active: true},
		502: {ID: 502, Code: "52102", Name: "Alquileres", Active: false},
	}
}

func invariants(errs []ValidationError) []int {
	out := make([]int, len(errs))
	for i, e := range errs {
		out[i] = e.Invariant
	}
	return out
}

func TestValidateLines_BalancedEntryPasses(t *testing.T) {
	lines := []Line{
		{AccountID: 101, Debit: dec("5000")},
		{AccountID: 301, Credit: dec("5000")},
	}
	assert.Empty(t, ValidateLines(lines, testAccounts()))
}

func TestValidateLines_TooFewLines(t *testing.T) {
	lines := []Line{{AccountID: 101, Debit: dec("100")}}
	errs := ValidateLines(lines, testAccounts())
	assert.Contains(t, invariants(errs), 1)
}

func TestValidateLines_OneSidePerLine(t *testing.T) {
	cases := []struct {
		name string
		line Line
	}{
		{"both sides", Line{AccountID: 101, Debit: dec("100"), Credit: dec("100")}},
		{"no side", Line{AccountID: 101}},
		{"negative debit", Line{AccountID: 101, Debit: dec("-100")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lines := []Line{tc.line, {AccountID: 301, Credit: dec("100")}}
			errs := ValidateLines(lines, testAccounts())
			assert.Contains(t, invariants(errs), 2)
		})
	}
}

func TestValidateLines_AccountMustBeKnownAndActive(t *testing.T) {
	lines := []Line{
		{AccountID: 999, Debit: dec("100")},
		{AccountID: 502, Credit: dec("100")},
	}
	errs := ValidateLines(lines, testAccounts())
	require.Len(t, errs, 2)
	assert.Equal(t, 3, errs[0].Invariant)
	assert.Contains(t, errs[0].Description, "unknown account 999")
	assert.Equal(t, 3, errs[1].Invariant)
	assert.Contains(t, errs[1].Description, "inactive")
}

func TestValidateLines_MustBalance(t *testing.T) {
	lines := []Line{
		{AccountID: 101, Debit: dec("100")},
		{AccountID: 301, Credit: dec("99.999")},
	}
	errs := ValidateLines(lines, testAccounts())
	assert.Contains(t, invariants(errs), 4)
}

func TestValidateLines_Scale(t *testing.T) {
	// Trailing zeros beyond the third place are still three places of value.
	lines := []Line{
		{AccountID: 101, Debit: dec("1.2300")},
		{AccountID: 301, Credit: dec("1.23")},
	}
	assert.Empty(t, ValidateLines(lines, testAccounts()))

	lines = []Line{
		{AccountID: 101, Debit: dec("1.2345")},
		{AccountID: 301, Credit: dec("1.2345")},
	}
	errs := ValidateLines(lines, testAccounts())
	assert.Contains(t, invariants(errs), 5)
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := ValidationErrors{
		{Invariant: 1, Description: "entry needs at least 2 lines, got 1"},
		{Invariant: 4, Description: "debits (100.000) != credits (50.000)"},
	}
	assert.Equal(t,
		"validation failed: invariant 1: entry needs at least 2 lines, got 1; invariant 4: debits (100.000) != credits (50.000)",
		errs.Error())
}

func TestValidateLines_ReportsAllViolations(t *testing.T) {
	lines := []Line{{AccountID: 999, Debit: dec("100"), Credit: dec("50")}}
	errs := ValidateLines(lines, testAccounts())
	got := invariants(errs)
	assert.Contains(t, got, 1)
	assert.Contains(t, got, 2)
	assert.Contains(t, got, 3)
	assert.Contains(t, got, 4)
}
