package domain

import "time"

// TimeWindow bounds a query to [Start, End). Both bounds are optional; a
// nil bound means unbounded on that side. Bounds are interpreted against
// the campaign schedule date shifted to the account's local time, so a
// window edge always falls on the account owner's calendar, not the
// server's.
type TimeWindow struct {
	Start *time.Time
	End   *time.Time
}

// Contains reports whether the local-time instant falls inside the window.
func (w TimeWindow) Contains(local time.Time) bool {
	if w.Start != nil && local.Before(*w.Start) {
		return false
	}
	if w.End != nil && !local.Before(*w.End) {
		return false
	}
	return true
}

// IsZero reports whether the window has no bounds at all.
func (w TimeWindow) IsZero() bool {
	return w.Start == nil && w.End == nil
}

// CampaignFilter narrows the per-campaign view. Zero values mean "no
// constraint". Name matches as a case-insensitive substring, FromEmail as a
// case-insensitive exact value, CampaignType exactly except that TEST_AB
// matches any campaign belonging to an A/B test regardless of its stored
// type. When Labels is non-empty only campaigns whose label is in the set
// are kept.
type CampaignFilter struct {
	Name         string
	CampaignType string
	FromEmail    string
	Labels       []string
}

// PagingFilter selects one page of a paginated view. PageNumber is
// zero-based.
type PagingFilter struct {
	PageNumber int
	PageSize   int
}

// Offset is the index of the first item on the page.
func (p PagingFilter) Offset() int {
	return p.PageNumber * p.PageSize
}
