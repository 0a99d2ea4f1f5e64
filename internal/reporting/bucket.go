package reporting

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Granularity is the width of a trend bucket.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

func ParseGranularity(s string) (Granularity, error) {
	switch g := Granularity(s); g {
	case GranularityDay, GranularityWeek, GranularityMonth, GranularityYear:
		return g, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidGranularity, s)
	}
}

// Key derives the bucket key for date. Every format is zero padded so keys
// sort lexicographically in date order.
func (g Granularity) Key(date time.Time) (string, error) {
	date = CalendarDate(date)
	switch g {
	case GranularityDay:
		return date.Format(DateLayout), nil
	case GranularityWeek:
		return WeekStart(date).Format(DateLayout), nil
	case GranularityMonth:
		return date.Format("2006-01"), nil
	case GranularityYear:
		return date.Format("2006"), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidGranularity, string(g))
	}
}

// WeekStart returns the Monday of the ISO week containing date.
func WeekStart(date time.Time) time.Time {
	date = CalendarDate(date)
	offset := int(date.Weekday()) - int(time.Monday)
	if date.Weekday() == time.Sunday {
		offset = 6
	}
	return date.AddDate(0, 0, -offset)
}

// Bucket holds independent, non-negative income and expense totals.
type Bucket struct {
	Key     string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// BucketEntries groups entries by granularity. The whole batch is rejected if
// any entry lacks a date.
func BucketEntries(entries []Entry, g Granularity) ([]Bucket, error) {
	if _, err := ParseGranularity(string(g)); err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.Date.IsZero() {
			return nil, fmt.Errorf("%w: transaction %s has no date", ErrInvalidDate, e.ID)
		}
	}

	byKey := make(map[string]*Bucket)
	for _, e := range entries {
		key, err := g.Key(e.Date)
		if err != nil {
			return nil, err
		}

		b, ok := byKey[key]
		if !ok {
			b = &Bucket{Key: key, Income: decimal.Zero, Expense: decimal.Zero}
			byKey[key] = b
		}

		switch e.Amount.Sign() {
		case 1:
			b.Income = b.Income.Add(e.Amount)
		case -1:
			b.Expense = b.Expense.Add(e.Amount.Abs())
		}
	}

	buckets := make([]Bucket, 0, len(byKey))
	for _, b := range byKey {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Key < buckets[j].Key
	})

	return buckets, nil
}
