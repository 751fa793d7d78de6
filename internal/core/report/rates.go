package report

import (
	"math"

	"campaign-reporting/internal/core/domain"
)

// percent computes num/den as a percentage rounded to two decimals. A zero
// denominator yields zero, never NaN.
func percent(num, den int64) float64 {
	if den == 0 {
		return 0
	}
	return math.Round(float64(num)/float64(den)*10000) / 100
}

// deriveRates turns raw counters into the seven derived percentages. The
// open and unopen rates use sent as denominator, uniformly across every
// view.
func deriveRates(c domain.MetricCounters) domain.MetricRates {
	return domain.MetricRates{
		DeliveryRate:    percent(c.Sent, c.Subscribers),
		OpenRate:        percent(c.Opens, c.Sent),
		UnopenRate:      percent(c.Unopens, c.Sent),
		ClickToOpenRate: percent(c.Clicks, c.Opens),
		BounceRate:      percent(c.Bounces, c.Subscribers),
		UnsubscribeRate: percent(c.Unsubscribes, c.Sent),
		SpamRate:        percent(c.Spam, c.Sent),
	}
}

// accumulate adds one campaign's counters, including its reconciled
// unsubscribe/spam split, into the group counters. Unopens is re-derived
// after each addition with a floor at zero.
func accumulate(dst *domain.MetricCounters, c domain.CampaignFact, set ReconciledSet) {
	dst.Subscribers += c.SubscribersTargeted
	dst.Sent += c.Sent
	dst.Opens += c.Opens
	dst.Clicks += c.Clicks
	dst.Bounces += c.Bounces()
	dst.Unsubscribes += set.Unsubscribes[c.ID]
	dst.Spam += set.Spam[c.ID]
	dst.Unopens = dst.Sent - dst.Opens
	if dst.Unopens < 0 {
		dst.Unopens = 0
	}
}
