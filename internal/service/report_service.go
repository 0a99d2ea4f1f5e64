package service

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/reporting"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

const (
	groupByName = "name"
	groupByID   = "id"
)

// ReportService loads the caller's transactions and hands them to the pure
// reporting pipeline.
type ReportService struct {
	storage *storage.Storage
	lookup  *Lookup
}

func NewReportService(store *storage.Storage, lookup *Lookup) *ReportService {
	return &ReportService{storage: store, lookup: lookup}
}

// Trend buckets income and expense over time, by day unless granularity
// says otherwise.
func (s *ReportService) Trend(ctx context.Context, p Principal, params reporting.FilterParams, granularity string) (reporting.TrendReport, error) {
	return s.trend(ctx, p, params, granularity, reporting.GranularityDay)
}

// Bar is the comparison chart. It defaults to monthly buckets.
func (s *ReportService) Bar(ctx context.Context, p Principal, params reporting.FilterParams, granularity string) (reporting.TrendReport, error) {
	return s.trend(ctx, p, params, granularity, reporting.GranularityMonth)
}

func (s *ReportService) trend(ctx context.Context, p Principal, params reporting.FilterParams, granularity string, fallback reporting.Granularity) (reporting.TrendReport, error) {
	g := fallback
	if granularity != "" {
		var err error
		if g, err = reporting.ParseGranularity(granularity); err != nil {
			return reporting.TrendReport{}, translateError(err)
		}
	}

	entries, err := s.entries(ctx, p, params, false)
	if err != nil {
		return reporting.TrendReport{}, err
	}

	report, err := reporting.BuildTrend(entries, g)
	if err != nil {
		return reporting.TrendReport{}, translateError(err)
	}
	return report, nil
}

// Categories breaks expenses down by category, merging by display name
// unless groupBy is "id".
func (s *ReportService) Categories(ctx context.Context, p Principal, params reporting.FilterParams, groupBy string) (reporting.PieReport, error) {
	var mode reporting.GroupBy
	switch groupBy {
	case "", groupByName:
		mode = reporting.GroupByName
	case groupByID:
		mode = reporting.GroupByID
	default:
		return reporting.PieReport{}, validationError("groupBy must be %q or %q", groupByName, groupByID)
	}

	entries, err := s.entries(ctx, p, params, true)
	if err != nil {
		return reporting.PieReport{}, err
	}
	return reporting.AggregateByCategoryWith(entries, mode), nil
}

func (s *ReportService) entries(ctx context.Context, p Principal, params reporting.FilterParams, withNames bool) ([]reporting.Entry, error) {
	f, err := reporting.ParseFilter(p.UserID, params)
	if err != nil {
		return nil, translateError(err)
	}

	rows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{Filter: f})
	if err != nil {
		return nil, translateError(err)
	}

	entries := make([]reporting.Entry, len(rows))
	for i, row := range rows {
		entries[i] = entryFromStorage(row)
		if withNames {
			if entries[i].CategoryName, err = s.lookup.CategoryName(ctx, row.CategoryID); err != nil {
				return nil, err
			}
		}
	}
	return entries, nil
}

func entryFromStorage(row *sqlconfig.Transaction) reporting.Entry {
	return reporting.Entry{
		ID:          row.ID,
		UserID:      row.UserID,
		LedgerID:    row.LedgerID,
		CategoryID:  row.CategoryID,
		Date:        row.Date,
		Description: row.Description,
		Amount:      row.Amount,
		Type:        row.Type,
	}
}
