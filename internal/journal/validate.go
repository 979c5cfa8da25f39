package journal

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/contalibre-dev/contalibre/internal/model"
)

// ValidationError describes a single invariant violation in a posting.
type ValidationError struct {
	Invariant   int    `json:"invariant"`
	Description string `json:"description"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d: %s", e.Invariant, e.Description)
}

// ValidationErrors collects every violation of one rejected posting, so
// callers can branch on the rejection with errors.As instead of matching
// message text.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// maxScale mirrors the movements column type decimal(14,3).
const maxScale = 3

// ValidateLines enforces the posting invariants on a proposed entry:
//
//  1. at least two lines
//  2. each line has exactly one positive side, never a negative amount
//  3. every line references a known, active account of the company
//  4. the entry balances: sum(debits) == sum(credits)
//  5. amounts carry at most 3 decimal places
//
// accounts maps account ID to the company's account rows.
func ValidateLines(lines []Line, accounts map[uint]model.Account) []ValidationError {
	var errs []ValidationError

	if len(lines) < 2 {
		errs = append(errs, ValidationError{
			Invariant:   1,
			Description: fmt.Sprintf("entry needs at least 2 lines, got %d", len(lines)),
		})
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for i, line := range lines {
		hasDebit := line.Debit.IsPositive()
		hasCredit := line.Credit.IsPositive()
		if line.Debit.IsNegative() || line.Credit.IsNegative() || hasDebit == hasCredit {
			errs = append(errs, ValidationError{
				Invariant:   2,
				Description: fmt.Sprintf("line %d must have exactly one positive side (debit=%s credit=%s)", i+1, line.Debit, line.Credit),
			})
		}

		acct, known := accounts[line.AccountID]
		switch {
		case !known:
			errs = append(errs, ValidationError{
				Invariant:   3,
				Description: fmt.Sprintf("line %d: unknown account %d", i+1, line.AccountID),
			})
		case !acct.Active:
			errs = append(errs, ValidationError{
				Invariant:   3,
				Description: fmt.Sprintf("line %d: account %s is inactive", i+1, acct.Code),
			})
		}

		thousandths := decimal.New(1, maxScale)
		for _, amount := range []decimal.Decimal{line.Debit, line.Credit} {
			scaled := amount.Mul(thousandths)
			if !scaled.Equal(scaled.Floor()) {
				errs = append(errs, ValidationError{
					Invariant:   5,
					Description: fmt.Sprintf("line %d: amount %s has more than %d decimal places", i+1, amount, maxScale),
				})
			}
		}

		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}

	if !totalDebit.Equal(totalCredit) {
		errs = append(errs, ValidationError{
			Invariant:   4,
			Description: fmt.Sprintf("debits (%s) != credits (%s)", totalDebit.StringFixed(maxScale), totalCredit.StringFixed(maxScale)),
		})
	}

	return errs
}
