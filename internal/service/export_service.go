package service

import (
	"bytes"
	"context"
	"time"

	"github.com/carson-networks/ledger-server/internal/export"
	"github.com/carson-networks/ledger-server/internal/reporting"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

type ExportRequest struct {
	Format    string
	LedgerID  string
	StartDate string
	EndDate   string
}

// ExportFile is a rendered download.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
	Rows        int
}

type ExportService struct {
	storage *storage.Storage
	lookup  *Lookup
	now     func() time.Time
}

func NewExportService(store *storage.Storage, lookup *Lookup) *ExportService {
	return &ExportService{storage: store, lookup: lookup, now: time.Now}
}

// Export renders the caller's matching transactions. An empty selection is
// reported as ErrNotFound rather than an empty file.
func (s *ExportService) Export(ctx context.Context, p Principal, req ExportRequest) (*ExportFile, error) {
	format, err := export.ParseFormat(req.Format)
	if err != nil {
		return nil, translateError(err)
	}
	f, err := reporting.ParseFilter(p.UserID, reporting.FilterParams{
		LedgerID:  req.LedgerID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		return nil, translateError(err)
	}

	rows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{Filter: f})
	if err != nil {
		return nil, translateError(err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	out := make([]export.Row, len(rows))
	for i, row := range rows {
		ledger, err := s.lookup.Ledger(ctx, row.LedgerID)
		if err != nil {
			return nil, err
		}
		categoryName, err := s.lookup.CategoryName(ctx, row.CategoryID)
		if err != nil {
			return nil, err
		}
		if categoryName == "" {
			categoryName = reporting.UncategorizedLabel
		}

		out[i] = export.Row{
			Ledger:      ledger.Name,
			Date:        row.Date.Format(reporting.DateLayout),
			Description: row.Description,
			Category:    categoryName,
			Type:        string(row.Type),
			Amount:      row.Amount,
			Currency:    ledger.Currency,
			CreatedAt:   row.CreatedAt,
		}
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, out); err != nil {
		return nil, err
	}

	return &ExportFile{
		Name:        format.FileName(s.now()),
		ContentType: format.ContentType(),
		Data:        buf.Bytes(),
		Rows:        len(out),
	}, nil
}
