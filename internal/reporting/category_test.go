package reporting

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categorised(e Entry, id uuid.UUID, name string) Entry {
	e.CategoryID = id
	e.CategoryName = name
	return e
}

func TestAggregateByCategory_FoodScenario(t *testing.T) {
	food := uuid.Must(uuid.NewV4())
	salary := uuid.Must(uuid.NewV4())

	entries := []Entry{
		categorised(entry(t, "2024-01-01", "-20", TypeExpense), food, "Food"),
		categorised(entry(t, "2024-01-02", "-30", TypeExpense), food, "Food"),
		categorised(entry(t, "2024-01-03", "100", TypeIncome), salary, "Salary"),
	}

	report := AggregateByCategory(entries)

	assert.Equal(t, []string{"Food"}, report.Labels, spew.Sdump(report))
	assertDecimals(t, []string{"50"}, report.Values, spew.Sdump(report))
	assert.Equal(t, []uuid.UUID{food}, report.CategoryIDs)
}

func TestAggregateByCategory_Uncategorized(t *testing.T) {
	entries := []Entry{
		categorised(entry(t, "2024-01-01", "-5", TypeExpense), uuid.Must(uuid.NewV4()), ""),
		categorised(entry(t, "2024-01-02", "-7", TypeExpense), uuid.Must(uuid.NewV4()), ""),
		categorised(entry(t, "2024-01-03", "-1", TypeExpense), uuid.Must(uuid.NewV4()), "Transport"),
	}

	report := AggregateByCategory(entries)

	assert.Equal(t, []string{UncategorizedLabel, "Transport"}, report.Labels, spew.Sdump(report))
	assertDecimals(t, []string{"12", "1"}, report.Values)
}

func TestAggregateByCategory_OrderingAndTotals(t *testing.T) {
	ids := map[string]uuid.UUID{
		"Food":      uuid.Must(uuid.NewV4()),
		"Housing":   uuid.Must(uuid.NewV4()),
		"Health":    uuid.Must(uuid.NewV4()),
		"Transport": uuid.Must(uuid.NewV4()),
	}
	entries := []Entry{
		categorised(entry(t, "2024-01-01", "-10", TypeExpense), ids["Health"], "Health"),
		categorised(entry(t, "2024-01-01", "-10", TypeExpense), ids["Food"], "Food"),
		categorised(entry(t, "2024-01-01", "-500", TypeExpense), ids["Housing"], "Housing"),
		categorised(entry(t, "2024-01-01", "-2.5", TypeExpense), ids["Transport"], "Transport"),
		categorised(entry(t, "2024-01-02", "-2.5", TypeExpense), ids["Transport"], "Transport"),
		categorised(entry(t, "2024-01-02", "900", TypeIncome), ids["Food"], "Food"),
	}

	report := AggregateByCategory(entries)

	require.Len(t, report.Values, len(report.Labels))
	require.Len(t, report.CategoryIDs, len(report.Labels))
	assert.Equal(t, []string{"Housing", "Food", "Health", "Transport"}, report.Labels, spew.Sdump(report))
	assertDecimals(t, []string{"500", "10", "10", "5"}, report.Values)

	expected := decimal.Zero
	for _, e := range entries {
		if e.Type == TypeExpense {
			expected = expected.Add(e.Amount.Abs())
		}
	}
	total := decimal.Zero
	seen := map[string]bool{}
	for i, label := range report.Labels {
		total = total.Add(report.Values[i])
		assert.False(t, seen[label], "duplicate label %s", label)
		seen[label] = true
	}
	assert.True(t, expected.Equal(total))
}

func TestAggregateByCategoryWith_GroupByID(t *testing.T) {
	defaultFood := uuid.Must(uuid.NewV4())
	userFood := uuid.Must(uuid.NewV4())
	entries := []Entry{
		categorised(entry(t, "2024-01-01", "-20", TypeExpense), defaultFood, "Food"),
		categorised(entry(t, "2024-01-02", "-30", TypeExpense), userFood, "Food"),
	}

	byName := AggregateByCategoryWith(entries, GroupByName)
	assert.Equal(t, []string{"Food"}, byName.Labels)
	assertDecimals(t, []string{"50"}, byName.Values)

	byID := AggregateByCategoryWith(entries, GroupByID)
	assert.Equal(t, []string{"Food", "Food"}, byID.Labels)
	assertDecimals(t, []string{"30", "20"}, byID.Values)
	assert.Equal(t, []uuid.UUID{userFood, defaultFood}, byID.CategoryIDs)
}

func TestAggregateByCategory_Empty(t *testing.T) {
	report := AggregateByCategory([]Entry{entry(t, "2024-01-01", "10", TypeIncome)})

	assert.NotNil(t, report.Labels)
	assert.NotNil(t, report.Values)
	assert.NotNil(t, report.CategoryIDs)
	assert.Empty(t, report.Labels)
}
