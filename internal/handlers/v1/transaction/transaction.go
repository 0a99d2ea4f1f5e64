package transaction

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/handlers"
	"github.com/carson-networks/ledger-server/internal/reporting"
	"github.com/carson-networks/ledger-server/internal/service"
)

const dateLayout = "2006-01-02"

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID           string `json:"id" doc:"Transaction UUID"`
	LedgerID     string `json:"ledgerId" doc:"Ledger UUID"`
	LedgerName   string `json:"ledgerName"`
	Currency     string `json:"currency" doc:"ISO 4217 code of the ledger"`
	CategoryID   string `json:"categoryId" doc:"Category UUID"`
	CategoryName string `json:"categoryName" doc:"Uncategorized when the category was deleted"`
	Date         string `json:"date" doc:"Calendar date, YYYY-MM-DD"`
	Description  string `json:"description"`
	Amount       string `json:"amount" doc:"Signed decimal amount, negative for expenses"`
	Type         string `json:"type" enum:"income,expense"`
	CreatedAt    string `json:"createdAt" format:"date-time"`
}

func fromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:           tx.ID.String(),
		LedgerID:     tx.LedgerID.String(),
		LedgerName:   tx.LedgerName,
		Currency:     tx.Currency,
		CategoryID:   tx.CategoryID.String(),
		CategoryName: tx.CategoryName,
		Date:         tx.Date.Format(dateLayout),
		Description:  tx.Description,
		Amount:       tx.Amount.String(),
		Type:         string(tx.Type),
		CreatedAt:    handlers.FormatTime(tx.CreatedAt),
	}
}

type TransactionOutput struct {
	Body Transaction
}

type TransactionPath struct {
	ID string `path:"id" doc:"Transaction UUID"`
}

func (p TransactionPath) parse() (uuid.UUID, error) {
	return handlers.ParseID("transaction id", p.ID)
}

func parseDate(raw string) (time.Time, error) {
	date, err := reporting.ParseDate(raw)
	if err != nil {
		return time.Time{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
	}
	return date, nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	return amount, nil
}
