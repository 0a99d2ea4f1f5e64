package reporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Filter restricts a transaction set. Nil pointers and an empty Description
// mean "no restriction"; UserID is always enforced.
type Filter struct {
	UserID      uuid.UUID
	LedgerID    *uuid.UUID
	CategoryID  *uuid.UUID
	Type        *Type
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
}

// FilterParams carries the raw query-string form of a Filter.
type FilterParams struct {
	LedgerID    string
	CategoryID  string
	Type        string
	Description string
	StartDate   string
	EndDate     string
}

// ParseFilter validates raw parameters. An inverted date range is not an
// error; see IsEmptyRange.
func ParseFilter(userID uuid.UUID, p FilterParams) (Filter, error) {
	f := Filter{
		UserID:      userID,
		Description: p.Description,
	}

	if p.LedgerID != "" {
		id, err := uuid.FromString(p.LedgerID)
		if err != nil {
			return Filter{}, fmt.Errorf("%w: ledgerId %q", ErrInvalidFilter, p.LedgerID)
		}
		f.LedgerID = &id
	}
	if p.CategoryID != "" {
		id, err := uuid.FromString(p.CategoryID)
		if err != nil {
			return Filter{}, fmt.Errorf("%w: categoryId %q", ErrInvalidFilter, p.CategoryID)
		}
		f.CategoryID = &id
	}
	if p.Type != "" {
		t, err := ParseType(p.Type)
		if err != nil {
			return Filter{}, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
		}
		f.Type = &t
	}
	if p.StartDate != "" {
		d, err := ParseDate(p.StartDate)
		if err != nil {
			return Filter{}, fmt.Errorf("%w: startDate: %w", ErrInvalidFilter, err)
		}
		f.StartDate = &d
	}
	if p.EndDate != "" {
		d, err := ParseDate(p.EndDate)
		if err != nil {
			return Filter{}, fmt.Errorf("%w: endDate: %w", ErrInvalidFilter, err)
		}
		f.EndDate = &d
	}

	return f, nil
}

// IsEmptyRange reports whether the date bounds can match nothing.
func (f Filter) IsEmptyRange() bool {
	if f.StartDate == nil || f.EndDate == nil {
		return false
	}
	return CalendarDate(*f.StartDate).After(CalendarDate(*f.EndDate))
}

// Matches is the in-memory form of the predicate the storage layer runs as SQL.
func (f Filter) Matches(e Entry) bool {
	if e.UserID != f.UserID {
		return false
	}
	if f.LedgerID != nil && e.LedgerID != *f.LedgerID {
		return false
	}
	if f.CategoryID != nil && e.CategoryID != *f.CategoryID {
		return false
	}
	if f.Type != nil && e.Type != *f.Type {
		return false
	}
	if f.Description != "" &&
		!strings.Contains(strings.ToLower(e.Description), strings.ToLower(f.Description)) {
		return false
	}

	date := CalendarDate(e.Date)
	if f.StartDate != nil && date.Before(CalendarDate(*f.StartDate)) {
		return false
	}
	if f.EndDate != nil && date.After(CalendarDate(*f.EndDate)) {
		return false
	}
	return true
}

// Apply returns the entries matching f, preserving order.
func (f Filter) Apply(entries []Entry) []Entry {
	matched := make([]Entry, 0, len(entries))
	if f.IsEmptyRange() {
		return matched
	}
	for _, e := range entries {
		if f.Matches(e) {
			matched = append(matched, e)
		}
	}
	return matched
}
