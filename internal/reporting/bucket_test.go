package reporting

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGranularity(t *testing.T) {
	for _, s := range []string{"day", "week", "month", "year"} {
		g, err := ParseGranularity(s)
		assert.NoError(t, err)
		assert.Equal(t, Granularity(s), g)
	}

	_, err := ParseGranularity("quarter")
	assert.True(t, errors.Is(err, ErrInvalidGranularity))
}

func TestGranularity_Key(t *testing.T) {
	tests := []struct {
		g        Granularity
		date     string
		expected string
	}{
		{GranularityDay, "2024-03-09", "2024-03-09"},
		{GranularityMonth, "2024-03-09", "2024-03"},
		{GranularityYear, "2024-03-09", "2024"},
		// 2024-01-01 is a Monday.
		{GranularityWeek, "2024-01-01", "2024-01-01"},
		{GranularityWeek, "2024-01-03", "2024-01-01"},
		{GranularityWeek, "2024-01-07", "2024-01-01"},
		{GranularityWeek, "2024-01-08", "2024-01-08"},
		// Week crossing a year boundary keys on the earlier Monday.
		{GranularityWeek, "2025-01-01", "2024-12-30"},
	}

	for _, tc := range tests {
		t.Run(string(tc.g)+" "+tc.date, func(t *testing.T) {
			key, err := tc.g.Key(day(t, tc.date))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, key)
		})
	}
}

func TestBuildTrend_MonthScenario(t *testing.T) {
	entries := []Entry{
		entry(t, "2024-01-05", "100", TypeIncome),
		entry(t, "2024-01-10", "-40", TypeExpense),
		entry(t, "2024-02-01", "-10", TypeExpense),
	}

	report, err := BuildTrend(entries, GranularityMonth)
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-01", "2024-02"}, report.Labels, spew.Sdump(report))
	assertDecimals(t, []string{"100", "0"}, report.IncomeData, spew.Sdump(report))
	assertDecimals(t, []string{"40", "10"}, report.ExpenseData, spew.Sdump(report))
}

func TestBuildTrend_Empty(t *testing.T) {
	report, err := BuildTrend(nil, GranularityDay)
	require.NoError(t, err)

	assert.NotNil(t, report.Labels)
	assert.NotNil(t, report.IncomeData)
	assert.NotNil(t, report.ExpenseData)
	assert.Empty(t, report.Labels)
}

func TestBuildTrend_RejectsMissingDate(t *testing.T) {
	entries := []Entry{
		entry(t, "2024-01-05", "100", TypeIncome),
		{Amount: decimal.RequireFromString("-5"), Type: TypeExpense},
	}

	_, err := BuildTrend(entries, GranularityDay)
	assert.True(t, errors.Is(err, ErrInvalidDate), "got %v", err)
}

func TestBuildTrend_RejectsUnknownGranularity(t *testing.T) {
	_, err := BuildTrend(nil, Granularity("fortnight"))
	assert.True(t, errors.Is(err, ErrInvalidGranularity))
}

// Totals across buckets equal the totals across entries, and labels are
// strictly ascending, for every granularity.
func TestBuildTrend_CompletenessAndOrdering(t *testing.T) {
	entries := []Entry{
		entry(t, "2023-12-31", "12.10", TypeIncome),
		entry(t, "2024-01-01", "-3.40", TypeExpense),
		entry(t, "2024-01-07", "-1.00", TypeExpense),
		entry(t, "2024-02-29", "250", TypeIncome),
		entry(t, "2024-02-29", "-99.99", TypeExpense),
		entry(t, "2024-06-15", "0", TypeExpense),
		entry(t, "2025-01-01", "7", TypeIncome),
		entry(t, "2022-05-05", "-18.5", TypeExpense),
	}

	expectedIncome := decimal.Zero
	expectedExpense := decimal.Zero
	for _, e := range entries {
		if e.Amount.IsPositive() {
			expectedIncome = expectedIncome.Add(e.Amount)
		} else {
			expectedExpense = expectedExpense.Add(e.Amount.Abs())
		}
	}

	for _, g := range []Granularity{GranularityDay, GranularityWeek, GranularityMonth, GranularityYear} {
		t.Run(string(g), func(t *testing.T) {
			report, err := BuildTrend(entries, g)
			require.NoError(t, err)

			require.Len(t, report.IncomeData, len(report.Labels))
			require.Len(t, report.ExpenseData, len(report.Labels))

			income := decimal.Zero
			expense := decimal.Zero
			for i := range report.Labels {
				assert.False(t, report.IncomeData[i].IsNegative())
				assert.False(t, report.ExpenseData[i].IsNegative())
				income = income.Add(report.IncomeData[i])
				expense = expense.Add(report.ExpenseData[i])
				if i > 0 {
					assert.Less(t, report.Labels[i-1], report.Labels[i], spew.Sdump(report.Labels))
				}
			}
			assert.True(t, expectedIncome.Equal(income), "income %s != %s", income, expectedIncome)
			assert.True(t, expectedExpense.Equal(expense), "expense %s != %s", expense, expectedExpense)
		})
	}
}

func TestBuildTrend_Deterministic(t *testing.T) {
	entries := []Entry{
		entry(t, "2024-03-01", "1", TypeIncome),
		entry(t, "2024-01-01", "-2", TypeExpense),
		entry(t, "2024-02-01", "3", TypeIncome),
	}

	first, err := BuildTrend(entries, GranularityMonth)
	require.NoError(t, err)
	second, err := BuildTrend(entries, GranularityMonth)
	require.NoError(t, err)

	assert.Equal(t, first.Labels, second.Labels)
	assert.Equal(t, []string{"2024-01", "2024-02", "2024-03"}, first.Labels)
}
