package reporting

import (
	"sort"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// UncategorizedLabel names the slice for entries whose category could not be
// resolved.
const UncategorizedLabel = "Uncategorized"

// GroupBy selects the key used to merge expenses into pie slices.
type GroupBy int

const (
	// GroupByName merges categories sharing a display name, e.g. a user
	// category that shadows a default one.
	GroupByName GroupBy = iota
	// GroupByID keeps every category record in its own slice.
	GroupByID
)

type slice struct {
	label      string
	categoryID uuid.UUID
	total      decimal.Decimal
}

// AggregateByCategory groups expense entries by resolved category name.
func AggregateByCategory(entries []Entry) PieReport {
	return AggregateByCategoryWith(entries, GroupByName)
}

// AggregateByCategoryWith sums absolute expense magnitudes per category.
// Income entries are ignored. Slices are ordered by total descending, then
// label ascending.
func AggregateByCategoryWith(entries []Entry, groupBy GroupBy) PieReport {
	slices := make(map[string]*slice)
	for _, e := range entries {
		if e.Type != TypeExpense {
			continue
		}

		label := e.CategoryName
		if label == "" {
			label = UncategorizedLabel
		}

		key := label
		if groupBy == GroupByID {
			key = e.CategoryID.String()
		}

		s, ok := slices[key]
		if !ok {
			s = &slice{label: label, categoryID: e.CategoryID, total: decimal.Zero}
			slices[key] = s
		}
		s.total = s.total.Add(e.Amount.Abs())
	}

	ordered := make([]*slice, 0, len(slices))
	for _, s := range slices {
		ordered = append(ordered, s)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if c := ordered[i].total.Cmp(ordered[j].total); c != 0 {
			return c > 0
		}
		if ordered[i].label != ordered[j].label {
			return ordered[i].label < ordered[j].label
		}
		return ordered[i].categoryID.String() < ordered[j].categoryID.String()
	})

	report := PieReport{
		Labels:      make([]string, len(ordered)),
		Values:      make([]decimal.Decimal, len(ordered)),
		CategoryIDs: make([]uuid.UUID, len(ordered)),
	}
	for i, s := range ordered {
		report.Labels[i] = s.label
		report.Values[i] = s.total
		report.CategoryIDs[i] = s.categoryID
	}
	return report
}
