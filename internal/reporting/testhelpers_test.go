package reporting

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func entry(t *testing.T, date string, amount string, typ Type) Entry {
	t.Helper()
	return Entry{
		ID:     uuid.Must(uuid.NewV4()),
		Date:   day(t, date),
		Amount: decimal.RequireFromString(amount),
		Type:   typ,
	}
}

func assertDecimals(t *testing.T, expected []string, actual []decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return
	}
	for i := range expected {
		assert.Truef(t, decimal.RequireFromString(expected[i]).Equal(actual[i]),
			"index %d: expected %s, got %s", i, expected[i], actual[i])
	}
}
