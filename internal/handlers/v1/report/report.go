package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/handlers"
	"github.com/carson-networks/ledger-server/internal/reporting"
	"github.com/carson-networks/ledger-server/internal/service"
)

type reportService interface {
	Trend(ctx context.Context, p service.Principal, params reporting.FilterParams, granularity string) (reporting.TrendReport, error)
	Bar(ctx context.Context, p service.Principal, params reporting.FilterParams, granularity string) (reporting.TrendReport, error)
	Categories(ctx context.Context, p service.Principal, params reporting.FilterParams, groupBy string) (reporting.PieReport, error)
}

type TrendInput struct {
	handlers.FilterQuery
	Granularity string `query:"granularity" enum:"day,week,month,year" doc:"Bucket size; day for trend and month for bar when omitted"`
}

// TrendResponseBody holds parallel series: IncomeData[i] and ExpenseData[i]
// belong to Labels[i]. Expenses are reported as positive magnitudes.
type TrendResponseBody struct {
	Labels      []string  `json:"labels"`
	IncomeData  []float64 `json:"incomeData"`
	ExpenseData []float64 `json:"expenseData"`
}

type TrendOutput struct {
	Body TrendResponseBody
}

type CategoriesInput struct {
	handlers.FilterQuery
	GroupBy string `query:"groupBy" enum:"name,id" doc:"Merge slices by category name (default) or keep one slice per category"`
}

type CategoriesResponseBody struct {
	Labels      []string  `json:"labels"`
	Values      []float64 `json:"values"`
	CategoryIDs []string  `json:"categoryIds"`
}

type CategoriesOutput struct {
	Body CategoriesResponseBody
}

// Handler serves /v1/reports.
type Handler struct {
	ReportService reportService
}

func NewHandler(svc reportService) *Handler {
	return &Handler{ReportService: svc}
}

func (h *Handler) Register(api huma.API) {
	tags := []string{"Reports"}

	huma.Register(api, huma.Operation{
		OperationID: "trend-report",
		Method:      http.MethodGet,
		Path:        "/v1/reports/trend",
		Summary:     "Income and expense trend",
		Description: "Buckets the filtered transactions by period. Periods without transactions are omitted.",
		Tags:        tags,
		Security:    auth.Security(),
	}, h.trend)

	huma.Register(api, huma.Operation{
		OperationID: "bar-report",
		Method:      http.MethodGet,
		Path:        "/v1/reports/bar",
		Summary:     "Income and expense per period",
		Tags:        tags,
		Security:    auth.Security(),
	}, h.bar)

	huma.Register(api, huma.Operation{
		OperationID: "category-report",
		Method:      http.MethodGet,
		Path:        "/v1/reports/categories",
		Summary:     "Totals per category",
		Description: "Sums absolute amounts per category, largest first.",
		Tags:        tags,
		Security:    auth.Security(),
	}, h.categories)
}

func (h *Handler) trend(ctx context.Context, input *TrendInput) (*TrendOutput, error) {
	return h.series(ctx, input, "trendReportMs", h.ReportService.Trend)
}

func (h *Handler) bar(ctx context.Context, input *TrendInput) (*TrendOutput, error) {
	return h.series(ctx, input, "barReportMs", h.ReportService.Bar)
}

type seriesFunc func(ctx context.Context, p service.Principal, params reporting.FilterParams, granularity string) (reporting.TrendReport, error)

func (h *Handler) series(ctx context.Context, input *TrendInput, timing string, build seriesFunc) (*TrendOutput, error) {
	p, err := handlers.Caller(ctx)
	if err != nil {
		return nil, err
	}

	report, err := handlers.Timed(ctx, timing, func() (reporting.TrendReport, error) {
		return build(ctx, p, input.Params(), input.Granularity)
	})
	if err != nil {
		return nil, handlers.Error(ctx, err)
	}

	return &TrendOutput{Body: TrendResponseBody{
		Labels:      nonNil(report.Labels),
		IncomeData:  floats(report.IncomeData),
		ExpenseData: floats(report.ExpenseData),
	}}, nil
}

func (h *Handler) categories(ctx context.Context, input *CategoriesInput) (*CategoriesOutput, error) {
	p, err := handlers.Caller(ctx)
	if err != nil {
		return nil, err
	}

	report, err := handlers.Timed(ctx, "categoryReportMs", func() (reporting.PieReport, error) {
		return h.ReportService.Categories(ctx, p, input.Params(), input.GroupBy)
	})
	if err != nil {
		return nil, handlers.Error(ctx, err)
	}

	ids := make([]string, len(report.CategoryIDs))
	for i, id := range report.CategoryIDs {
		ids[i] = id.String()
	}
	return &CategoriesOutput{Body: CategoriesResponseBody{
		Labels:      nonNil(report.Labels),
		Values:      floats(report.Values),
		CategoryIDs: ids,
	}}, nil
}

// floats converts for charting clients, which expect JSON numbers.
func floats(values []decimal.Decimal) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v.InexactFloat64()
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
