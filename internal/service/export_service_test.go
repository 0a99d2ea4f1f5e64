package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/reporting"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

func newTestExportService(t *testing.T) (*ExportService, tables) {
	t.Helper()
	store, _, m := newTestStore(t)
	svc := NewExportService(store, newTestLookup(store))
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return svc, m
}

func TestExport_NoRows(t *testing.T) {
	svc, m := newTestExportService(t)
	m.transactions.EXPECT().List(mock.Anything, mock.Anything).Return([]*sqlconfig.Transaction{}, nil)

	_, err := svc.Export(context.Background(), ordinary(), ExportRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExport_InvalidFormat(t *testing.T) {
	svc, _ := newTestExportService(t)

	_, err := svc.Export(context.Background(), ordinary(), ExportRequest{Format: "pdf"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestExport_CSV(t *testing.T) {
	svc, m := newTestExportService(t)
	p := ordinary()
	ledgerID, categoryID := newID(), newID()

	m.transactions.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.LedgerID != nil && *f.LedgerID == ledgerID && f.UserID == p.UserID
	})).Return([]*sqlconfig.Transaction{{
		ID:          newID(),
		UserID:      p.UserID,
		LedgerID:    ledgerID,
		CategoryID:  categoryID,
		Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Description: "Lunch",
		Amount:      mustDecimal("-40"),
		Type:        reporting.TypeExpense,
		CreatedAt:   time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC),
	}}, nil)
	m.ledgers.EXPECT().FindByID(mock.Anything, ledgerID).
		Return(&sqlconfig.Ledger{ID: ledgerID, Name: "Daily", Currency: "USD"}, nil)
	m.categories.EXPECT().FindByID(mock.Anything, categoryID).
		Return(&sqlconfig.Category{ID: categoryID, Name: "Food"}, nil)

	file, err := svc.Export(context.Background(), p, ExportRequest{LedgerID: ledgerID.String()})
	require.NoError(t, err)
	assert.Equal(t, "transactions-1700000000000.csv", file.Name)
	assert.Equal(t, 1, file.Rows)

	records, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"Daily", "2024-01-05", "Lunch", "Food", "expense", "-40.00", "USD", "2024-01-05 12:00:00"}, records[1])
}
