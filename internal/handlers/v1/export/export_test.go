package export

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/handlers/handlertest"
	"github.com/carson-networks/ledger-server/internal/service"
)

type mockExporter struct {
	mock.Mock
}

func (m *mockExporter) Export(ctx context.Context, p service.Principal, req service.ExportRequest) (*service.ExportFile, error) {
	args := m.Called(ctx, p, req)
	f, _ := args.Get(0).(*service.ExportFile)
	return f, args.Error(1)
}

func TestHTTP_Export_CSV(t *testing.T) {
	p := handlertest.User()
	svc := new(mockExporter)
	svc.On("Export", mock.Anything, *p, service.ExportRequest{Format: "csv", StartDate: "2025-01-01"}).
		Return(&service.ExportFile{
			Name:        "transactions-1700000000000.csv",
			ContentType: "text/csv; charset=utf-8",
			Data:        []byte("Ledger,Date\nDaily,2025-01-02\n"),
			Rows:        1,
		}, nil)

	api := handlertest.NewAPI(t, p)
	NewHandler(svc).Register(api)
	resp := api.Get("/v1/export?format=csv&startDate=2025-01-01")

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="transactions-1700000000000.csv"`, resp.Header().Get("Content-Disposition"))
	assert.Equal(t, "Ledger,Date\nDaily,2025-01-02\n", resp.Body.String())
}

func TestHTTP_Export_NothingToExport(t *testing.T) {
	svc := new(mockExporter)
	svc.On("Export", mock.Anything, mock.Anything, mock.Anything).Return(nil, service.ErrNotFound)

	api := handlertest.NewAPI(t, handlertest.User())
	NewHandler(svc).Register(api)
	resp := api.Get("/v1/export")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_Export_UnknownFormat(t *testing.T) {
	svc := new(mockExporter)

	api := handlertest.NewAPI(t, handlertest.User())
	NewHandler(svc).Register(api)
	resp := api.Get("/v1/export?format=pdf")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "Export")
}
