package port

import (
	"context"

	"campaign-reporting/internal/core/domain"
)

// ReportingService exposes the three aggregated campaign-metrics views.
// This is the primary port into the application domain; mock
// implementations can be generated from this interface for testing.
type ReportingService interface {
	// DailyMetrics returns one row per local calendar day inside the
	// required window, ordered by day ascending. Days without countable
	// campaigns are omitted.
	DailyMetrics(ctx context.Context, q DailyQuery) ([]domain.DailyMetrics, error)

	// MonthlyMetrics returns one page of per-month aggregates ordered by
	// (year, month) descending.
	MonthlyMetrics(ctx context.Context, q MonthlyQuery) (domain.CollectionPage[domain.MonthlyMetrics], error)

	// SentCampaignMetrics returns one page of per-campaign aggregates
	// ordered by schedule date descending.
	SentCampaignMetrics(ctx context.Context, q SentQuery) (domain.CollectionPage[domain.SentCampaignMetrics], error)
}

// DailyQuery selects the daily view. Both window bounds are required.
type DailyQuery struct {
	Account string
	Window  domain.TimeWindow
}

// MonthlyQuery selects the monthly view. Window bounds are optional.
type MonthlyQuery struct {
	Account string
	Window  domain.TimeWindow
	Paging  domain.PagingFilter
}

// SentQuery selects the per-campaign view. Window bounds are optional and
// the filter narrows the campaign set before grouping.
type SentQuery struct {
	Account string
	Window  domain.TimeWindow
	Filter  domain.CampaignFilter
	Paging  domain.PagingFilter
}
