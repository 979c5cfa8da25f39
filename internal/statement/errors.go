package statement

import (
	"errors"
	"fmt"
)

// Kind is a machine-checkable failure category for report building.
type Kind string

const (
	// KindInvalidDateRange: unparsable dates or end < start.
	KindInvalidDateRange Kind = "invalid_date_range"
	// KindNoTenantContext: caller did not supply a company.
	KindNoTenantContext Kind = "no_tenant_context"
	// KindMissingChartOfAccounts: the company has no root classes for the
	// requested statement.
	KindMissingChartOfAccounts Kind = "missing_chart_of_accounts"
	// KindMalformedChartOfAccounts: parent pointers do not form a tree.
	KindMalformedChartOfAccounts Kind = "malformed_chart_of_accounts"
	// KindAggregationQueryFailed: the underlying store failed; the cause is
	// wrapped, never swallowed.
	KindAggregationQueryFailed Kind = "aggregation_query_failed"
)

// Error is a typed report-building failure.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap exposes the wrapped store error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func wrapError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the Kind from an error chain, or "" when err is not a
// statement error.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}

// ErrInvalidDate builds the InvalidDateRange error for an unparsable input,
// naming the expected format. Shared with the HTTP layer so query-parameter
// parsing reports the same kind.
func ErrInvalidDate(value string) *Error {
	return newError(KindInvalidDateRange, fmt.Sprintf("invalid date %q, expected ISO format YYYY-MM-DD", value))
}
