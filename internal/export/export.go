// Package export renders transaction rows as CSV or XLSX spreadsheets.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

var ErrInvalidFormat = errors.New("invalid export format")

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// SheetName is the worksheet that holds the rows in XLSX exports.
const SheetName = "Transactions"

const createdAtLayout = "2006-01-02 15:04:05"

// Header lists the exported columns in order.
var Header = []string{"Ledger", "Date", "Description", "Category", "Type", "Amount", "Currency", "Created At"}

// Row is one exported transaction.
type Row struct {
	Ledger      string
	Date        string
	Description string
	Category    string
	Type        string
	Amount      decimal.Decimal
	Currency    string
	CreatedAt   time.Time
}

// ParseFormat defaults to CSV when s is empty.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// FileName names the download after the export time.
func (f Format) FileName(now time.Time) string {
	return fmt.Sprintf("transactions-%d.%s", now.UnixMilli(), f)
}

func Write(w io.Writer, f Format, rows []Row) error {
	switch f {
	case FormatCSV:
		return writeCSV(w, rows)
	case FormatXLSX:
		return writeXLSX(w, rows)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, f)
	}
}

func (r Row) strings() []string {
	return []string{
		r.Ledger,
		r.Date,
		r.Description,
		r.Category,
		r.Type,
		r.Amount.StringFixed(2),
		r.Currency,
		r.CreatedAt.UTC().Format(createdAtLayout),
	}
}

func writeCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.strings()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeXLSX(w io.Writer, rows []Row) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	for col, h := range Header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return err
		}
		if err := f.SetCellStyle(SheetName, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	for i, r := range rows {
		values := r.strings()
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			var value any = v
			// Amounts stay numeric so the sheet can sum them.
			if Header[col] == "Amount" {
				value = r.Amount.InexactFloat64()
			}
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}
