package id

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// New returns a ULID string for the current time.
func New() string {
	return ulid.Make().String()
}

// NewAt returns a ULID whose timestamp component is t. Journal entries keyed
// this way sort by posting date without a separate sequence column.
func NewAt(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), rand.Reader).String()
}

// Valid reports whether s parses as a ULID.
func Valid(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
