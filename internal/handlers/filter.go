package handlers

import "github.com/carson-networks/ledger-server/internal/reporting"

// FilterQuery is the transaction filter shared by listing, reports and
// exports. Embed it in an operation's input.
type FilterQuery struct {
	LedgerID    string `query:"ledgerId" doc:"Restrict to one ledger"`
	CategoryID  string `query:"categoryId" doc:"Restrict to one category"`
	Type        string `query:"type" doc:"income or expense"`
	Description string `query:"description" doc:"Case-insensitive substring of the description"`
	StartDate   string `query:"startDate" doc:"Inclusive YYYY-MM-DD lower bound"`
	EndDate     string `query:"endDate" doc:"Inclusive YYYY-MM-DD upper bound"`
}

func (q FilterQuery) Params() reporting.FilterParams {
	return reporting.FilterParams{
		LedgerID:    q.LedgerID,
		CategoryID:  q.CategoryID,
		Type:        q.Type,
		Description: q.Description,
		StartDate:   q.StartDate,
		EndDate:     q.EndDate,
	}
}
