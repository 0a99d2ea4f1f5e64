package export

import (
	"context"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/handlers"
	"github.com/carson-networks/ledger-server/internal/service"
)

type exporter interface {
	Export(ctx context.Context, p service.Principal, req service.ExportRequest) (*service.ExportFile, error)
}

type ExportInput struct {
	Format    string `query:"format" enum:"csv,xlsx" doc:"File format, csv when omitted"`
	LedgerID  string `query:"ledgerId"`
	StartDate string `query:"startDate" doc:"Inclusive YYYY-MM-DD lower bound"`
	EndDate   string `query:"endDate" doc:"Inclusive YYYY-MM-DD upper bound"`
}

type ExportOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// Handler serves GET /v1/export.
type Handler struct {
	ExportService exporter
}

func NewHandler(svc exporter) *Handler {
	return &Handler{ExportService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "export-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/export",
		Summary:     "Export transactions",
		Description: "Downloads the caller's transactions as CSV or XLSX. Accepts the token query parameter for plain download links.",
		Tags:        []string{"Export"},
		Security:    auth.Security(),
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, input *ExportInput) (*ExportOutput, error) {
	p, err := handlers.Caller(ctx)
	if err != nil {
		return nil, err
	}

	file, err := handlers.Timed(ctx, "exportMs", func() (*service.ExportFile, error) {
		return h.ExportService.Export(ctx, p, service.ExportRequest{
			Format:    input.Format,
			LedgerID:  input.LedgerID,
			StartDate: input.StartDate,
			EndDate:   input.EndDate,
		})
	})
	if err != nil {
		return nil, handlers.Error(ctx, err)
	}

	return &ExportOutput{
		ContentType:        file.ContentType,
		ContentDisposition: "attachment; filename=" + strconv.Quote(file.Name),
		Body:               file.Data,
	}, nil
}
