package port

import (
	"context"
	"errors"

	"campaign-reporting/internal/core/domain"
)

// ErrDataUnavailable signals a fact source failure. The engine performs no
// retries; retry policy belongs to callers of the service.
var ErrDataUnavailable = errors.New("fact source unavailable")

// ErrAccountNotFound signals that the requested account does not exist.
var ErrAccountNotFound = errors.New("account not found")

// ErrInvariantViolation signals that reconciliation produced an impossible
// classification. The request fails rather than returning wrong numbers.
var ErrInvariantViolation = errors.New("metrics invariant violation")

// FactSource provides the raw per-account fact streams the aggregation
// engine consumes. It is an outbound port; implementations must treat every
// call as an independent read-only snapshot and respect context deadlines.
//
// The window passed to the fetch methods is a coarse bound: implementations
// may return extra rows around the window edges, the engine applies the
// exact local-time boundaries itself.
type FactSource interface {
	// FetchCampaignFacts returns campaign-level counter rows for the
	// account, optionally narrowed by window and filter.
	FetchCampaignFacts(ctx context.Context, account string, window domain.TimeWindow, filter domain.CampaignFilter) ([]domain.CampaignFact, error)

	// FetchSubscriberEvents returns per-subscriber unsubscription rows for
	// the account's campaigns within the window.
	FetchSubscriberEvents(ctx context.Context, account string, window domain.TimeWindow, filter domain.CampaignFilter) ([]domain.SubscriberEvent, error)

	// FetchAccountUTCOffset returns the account's UTC offset in signed
	// minutes. Returns ErrAccountNotFound for unknown accounts.
	FetchAccountUTCOffset(ctx context.Context, account string) (int, error)
}
