package reporting

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TrendReport feeds line and bar charts. All three slices have equal length.
type TrendReport struct {
	Labels      []string
	IncomeData  []decimal.Decimal
	ExpenseData []decimal.Decimal
}

// PieReport feeds the category pie chart. All three slices have equal length.
type PieReport struct {
	Labels      []string
	Values      []decimal.Decimal
	CategoryIDs []uuid.UUID
}

// AssembleTrend flattens ordered buckets into parallel series.
func AssembleTrend(buckets []Bucket) TrendReport {
	report := TrendReport{
		Labels:      make([]string, len(buckets)),
		IncomeData:  make([]decimal.Decimal, len(buckets)),
		ExpenseData: make([]decimal.Decimal, len(buckets)),
	}
	for i, b := range buckets {
		report.Labels[i] = b.Key
		report.IncomeData[i] = b.Income
		report.ExpenseData[i] = b.Expense
	}
	return report
}

// BuildTrend buckets entries and assembles the result.
func BuildTrend(entries []Entry, g Granularity) (TrendReport, error) {
	buckets, err := BucketEntries(entries, g)
	if err != nil {
		return TrendReport{}, err
	}
	return AssembleTrend(buckets), nil
}
