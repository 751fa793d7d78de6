package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campaign-reporting/internal/core/domain"
	"campaign-reporting/internal/core/port"
	"campaign-reporting/internal/core/report"
)

// Validation failures returned to callers as rejected requests. None of
// them is retried.
var (
	ErrMissingAccount    = errors.New("account name is required")
	ErrMissingDateRange  = errors.New("start and end date are required")
	ErrInvalidTimeRange  = errors.New("start date must not be after end date")
	ErrInvalidPageSize   = errors.New("page size must be greater than zero")
	ErrInvalidPageNumber = errors.New("page number must not be negative")
)

// IsValidationError reports whether err is one of the request validation
// failures, as opposed to a service-level failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingAccount) ||
		errors.Is(err, ErrMissingDateRange) ||
		errors.Is(err, ErrInvalidTimeRange) ||
		errors.Is(err, ErrInvalidPageSize) ||
		errors.Is(err, ErrInvalidPageNumber)
}

// ReportingUseCase implements port.ReportingService on top of a FactSource.
// Each call is stateless: the facts are re-fetched and re-reconciled per
// request, there is no caching layer.
type ReportingUseCase struct {
	facts port.FactSource

	// queryTimeout bounds each individual fact source call so no request
	// blocks indefinitely.
	queryTimeout time.Duration
}

// NewReportingUseCase creates the use case with the provided fact source.
// A non-positive queryTimeout disables the per-call deadline.
func NewReportingUseCase(facts port.FactSource, queryTimeout time.Duration) *ReportingUseCase {
	return &ReportingUseCase{facts: facts, queryTimeout: queryTimeout}
}

// DailyMetrics returns per-day aggregates for the required window, ordered
// by day ascending.
func (u *ReportingUseCase) DailyMetrics(ctx context.Context, q port.DailyQuery) ([]domain.DailyMetrics, error) {
	if q.Account == "" {
		return nil, ErrMissingAccount
	}
	if q.Window.Start == nil || q.Window.End == nil {
		return nil, ErrMissingDateRange
	}
	if err := validateWindow(q.Window); err != nil {
		return nil, err
	}

	set, offset, err := u.reconciledSet(ctx, q.Account, q.Window, domain.CampaignFilter{})
	if err != nil {
		return nil, err
	}
	return report.Daily(set, offset), nil
}

// MonthlyMetrics returns one page of per-month aggregates ordered by
// (year, month) descending.
func (u *ReportingUseCase) MonthlyMetrics(ctx context.Context, q port.MonthlyQuery) (domain.CollectionPage[domain.MonthlyMetrics], error) {
	var zero domain.CollectionPage[domain.MonthlyMetrics]
	if q.Account == "" {
		return zero, ErrMissingAccount
	}
	if err := validateWindow(q.Window); err != nil {
		return zero, err
	}
	if err := validatePaging(q.Paging); err != nil {
		return zero, err
	}

	set, offset, err := u.reconciledSet(ctx, q.Account, q.Window, domain.CampaignFilter{})
	if err != nil {
		return zero, err
	}
	return domain.NewCollectionPage(report.Monthly(set, offset), q.Paging), nil
}

// SentCampaignMetrics returns one page of per-campaign aggregates ordered
// by schedule date descending.
func (u *ReportingUseCase) SentCampaignMetrics(ctx context.Context, q port.SentQuery) (domain.CollectionPage[domain.SentCampaignMetrics], error) {
	var zero domain.CollectionPage[domain.SentCampaignMetrics]
	if q.Account == "" {
		return zero, ErrMissingAccount
	}
	if err := validateWindow(q.Window); err != nil {
		return zero, err
	}
	if err := validatePaging(q.Paging); err != nil {
		return zero, err
	}

	set, offset, err := u.reconciledSet(ctx, q.Account, q.Window, q.Filter)
	if err != nil {
		return zero, err
	}
	return domain.NewCollectionPage(report.Sent(set, offset), q.Paging), nil
}

// reconciledSet performs the one logical snapshot read of a request: the
// account offset and both fact streams, each under the configured
// deadline, followed by filtering and reconciliation. Fact source failures
// surface as port.ErrDataUnavailable and are never retried here.
func (u *ReportingUseCase) reconciledSet(ctx context.Context, account string, window domain.TimeWindow, filter domain.CampaignFilter) (report.ReconciledSet, int, error) {
	offset, err := u.fetchOffset(ctx, account)
	if err != nil {
		return report.ReconciledSet{}, 0, err
	}

	facts, err := u.fetchCampaigns(ctx, account, window, filter)
	if err != nil {
		return report.ReconciledSet{}, 0, err
	}
	events, err := u.fetchEvents(ctx, account, window, filter)
	if err != nil {
		return report.ReconciledSet{}, 0, err
	}

	campaigns := report.FilterCampaigns(facts, offset, window, filter)
	set, err := report.Reconcile(campaigns, events)
	if err != nil {
		return report.ReconciledSet{}, 0, err
	}
	return set, offset, nil
}

func (u *ReportingUseCase) fetchOffset(ctx context.Context, account string) (int, error) {
	ctx, cancel := u.deadline(ctx)
	defer cancel()
	offset, err := u.facts.FetchAccountUTCOffset(ctx, account)
	if err != nil {
		if errors.Is(err, port.ErrAccountNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: account offset: %v", port.ErrDataUnavailable, err)
	}
	return offset, nil
}

func (u *ReportingUseCase) fetchCampaigns(ctx context.Context, account string, window domain.TimeWindow, filter domain.CampaignFilter) ([]domain.CampaignFact, error) {
	ctx, cancel := u.deadline(ctx)
	defer cancel()
	facts, err := u.facts.FetchCampaignFacts(ctx, account, window, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: campaign facts: %v", port.ErrDataUnavailable, err)
	}
	return facts, nil
}

func (u *ReportingUseCase) fetchEvents(ctx context.Context, account string, window domain.TimeWindow, filter domain.CampaignFilter) ([]domain.SubscriberEvent, error) {
	ctx, cancel := u.deadline(ctx)
	defer cancel()
	events, err := u.facts.FetchSubscriberEvents(ctx, account, window, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: subscriber events: %v", port.ErrDataUnavailable, err)
	}
	return events, nil
}

func (u *ReportingUseCase) deadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if u.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, u.queryTimeout)
}

func validateWindow(w domain.TimeWindow) error {
	if w.Start != nil && w.End != nil && w.Start.After(*w.End) {
		return ErrInvalidTimeRange
	}
	return nil
}

func validatePaging(p domain.PagingFilter) error {
	if p.PageSize <= 0 {
		return ErrInvalidPageSize
	}
	if p.PageNumber < 0 {
		return ErrInvalidPageNumber
	}
	return nil
}
