// Package reporting filters, normalises and aggregates transactions into the
// series consumed by chart renderers. Everything here is pure: no I/O, no
// shared state, and the same input always produces the same output.
package reporting

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidType        = errors.New("invalid transaction type")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidGranularity = errors.New("invalid granularity")
	ErrInvalidFilter      = errors.New("invalid filter")
)

// Type tags a transaction as income or expense.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeIncome, TypeExpense:
		return Type(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
}

func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Entry is the reporting view of a stored transaction. CategoryName is empty
// when the category could not be resolved.
type Entry struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	LedgerID     uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string
	Date         time.Time
	Description  string
	Amount       decimal.Decimal
	Type         Type
}

// DateLayout is the calendar date format used on the wire and in bucket keys.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// CalendarDate drops the time of day, keeping the date as written in t's
// own location.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
