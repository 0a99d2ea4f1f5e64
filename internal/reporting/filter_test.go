package reporting

import (
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter_Empty(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	f, err := ParseFilter(userID, FilterParams{})
	require.NoError(t, err)
	assert.Equal(t, userID, f.UserID)
	assert.Nil(t, f.LedgerID)
	assert.Nil(t, f.CategoryID)
	assert.Nil(t, f.Type)
	assert.Nil(t, f.StartDate)
	assert.Nil(t, f.EndDate)
	assert.False(t, f.IsEmptyRange())
}

func TestParseFilter_AllFields(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	ledgerID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	f, err := ParseFilter(userID, FilterParams{
		LedgerID:    ledgerID.String(),
		CategoryID:  categoryID.String(),
		Type:        "expense",
		Description: " coffee",
		StartDate:   "2024-01-01",
		EndDate:     "2024-01-31",
	})
	require.NoError(t, err)
	assert.Equal(t, ledgerID, *f.LedgerID)
	assert.Equal(t, categoryID, *f.CategoryID)
	assert.Equal(t, TypeExpense, *f.Type)
	assert.Equal(t, " coffee", f.Description)
	assert.Equal(t, "2024-01-01", f.StartDate.Format(DateLayout))
	assert.Equal(t, "2024-01-31", f.EndDate.Format(DateLayout))
}

func TestParseFilter_Invalid(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	tests := map[string]FilterParams{
		"ledger":   {LedgerID: "nope"},
		"category": {CategoryID: "nope"},
		"type":     {Type: "transfer"},
		"start":    {StartDate: "2024-13-01"},
		"end":      {EndDate: "01/02/2024"},
	}
	for name, params := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseFilter(userID, params)
			assert.True(t, errors.Is(err, ErrInvalidFilter), "got %v", err)
		})
	}
}

func TestFilter_Matches(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	ledgerID := uuid.Must(uuid.NewV4())
	otherLedger := uuid.Must(uuid.NewV4())

	e := entry(t, "2024-03-15", "-12", TypeExpense)
	e.UserID = userID
	e.LedgerID = ledgerID
	e.Description = "Morning Coffee"

	start := day(t, "2024-03-15")
	end := day(t, "2024-03-15")
	expense := TypeExpense
	income := TypeIncome

	tests := []struct {
		name     string
		filter   Filter
		expected bool
	}{
		{"owner only", Filter{UserID: userID}, true},
		{"other user", Filter{UserID: uuid.Must(uuid.NewV4())}, false},
		{"ledger match", Filter{UserID: userID, LedgerID: &ledgerID}, true},
		{"ledger mismatch", Filter{UserID: userID, LedgerID: &otherLedger}, false},
		{"type match", Filter{UserID: userID, Type: &expense}, true},
		{"type mismatch", Filter{UserID: userID, Type: &income}, false},
		{"description case insensitive", Filter{UserID: userID, Description: "COFFEE"}, true},
		{"description miss", Filter{UserID: userID, Description: "tea"}, false},
		{"description keeps leading space", Filter{UserID: userID, Description: " coffee"}, true},
		{"description space not inside word", Filter{UserID: userID, Description: " offee"}, false},
		{"inclusive bounds", Filter{UserID: userID, StartDate: &start, EndDate: &end}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.filter.Matches(e))
		})
	}
}

func TestFilter_InvertedRangeMatchesNothing(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	f, err := ParseFilter(userID, FilterParams{StartDate: "2024-02-01", EndDate: "2024-01-01"})
	require.NoError(t, err)
	assert.True(t, f.IsEmptyRange())

	entries := []Entry{
		entry(t, "2024-01-01", "5", TypeIncome),
		entry(t, "2024-01-15", "5", TypeIncome),
		entry(t, "2024-02-01", "5", TypeIncome),
	}
	for i := range entries {
		entries[i].UserID = userID
	}

	matched := f.Apply(entries)
	assert.NotNil(t, matched)
	assert.Empty(t, matched)
}

func TestFilter_ApplyPreservesOrder(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	entries := []Entry{
		entry(t, "2024-01-03", "1", TypeIncome),
		entry(t, "2024-01-01", "2", TypeIncome),
		entry(t, "2024-01-02", "3", TypeIncome),
	}
	for i := range entries {
		entries[i].UserID = userID
	}
	entries[1].UserID = uuid.Must(uuid.NewV4())

	matched := Filter{UserID: userID}.Apply(entries)
	require.Len(t, matched, 2)
	assert.Equal(t, entries[0].ID, matched[0].ID)
	assert.Equal(t, entries[2].ID, matched[1].ID)
}
