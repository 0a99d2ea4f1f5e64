package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleRows() []Row {
	return []Row{
		{
			Ledger:      "Daily",
			Date:        "2024-01-05",
			Description: "Lunch, with friends",
			Category:    "Food",
			Type:        "expense",
			Amount:      decimal.RequireFromString("-40"),
			Currency:    "CNY",
			CreatedAt:   time.Date(2024, 1, 5, 12, 30, 0, 0, time.UTC),
		},
		{
			Ledger:      "Daily",
			Date:        "2024-01-01",
			Description: "Salary",
			Category:    "Salary",
			Type:        "income",
			Amount:      decimal.RequireFromString("100.5"),
			Currency:    "CNY",
			CreatedAt:   time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		},
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat("XLSX")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = ParseFormat("pdf")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestWrite_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, sampleRows()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, Header, records[0])
	assert.Equal(t, []string{
		"Daily", "2024-01-05", "Lunch, with friends", "Food", "expense", "-40.00", "CNY", "2024-01-05 12:30:00",
	}, records[1])
	assert.Equal(t, "100.50", records[2][5])
}

func TestWrite_XLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatXLSX, sampleRows()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, "Lunch, with friends", rows[1][2])
	assert.Equal(t, "-40", rows[1][5])
	assert.Equal(t, "100.5", rows[2][5])
}

func TestFormat_FileName(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	assert.Equal(t, "transactions-1700000000000.xlsx", FormatXLSX.FileName(now))
	assert.Equal(t, "text/csv; charset=utf-8", FormatCSV.ContentType())
}
