package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/contalibre-dev/contalibre/internal/model"
)

func TestMultiplier(t *testing.T) {
	tests := []struct {
		family model.Family
		want   string
	}{
		{model.FamilyAsset, "1"},
		{model.FamilyLiability, "-1"},
		{model.FamilyEquity, "-1"},
		{model.FamilyIncome, "-1"},
		{model.FamilyExpense, "1"},
	}
	for _, tt := range tests {
		assert.True(t, Multiplier(tt.family).Equal(dec(tt.want)), "family %d", tt.family)
	}
}

func TestSignedBalance_NormalBalancesArePositive(t *testing.T) {
	// Debit-natured: asset with more debits reports positive.
	assert.True(t, signedBalance(dec("100"), dec("30"), model.FamilyAsset).Equal(dec("70")))

	// Credit-natured: liability with more credits also reports positive.
	assert.True(t, signedBalance(dec("30"), dec("100"), model.FamilyLiability).Equal(dec("70")))

	// Income is credit-natured: a 500 credit is +500 income.
	assert.True(t, signedBalance(dec("0"), dec("500"), model.FamilyIncome).Equal(dec("500")))

	// Expense is debit-natured.
	assert.True(t, signedBalance(dec("2000"), dec("0"), model.FamilyExpense).Equal(dec("2000")))
}
