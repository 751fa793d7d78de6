package domain

import "time"

// MetricCounters holds the raw sums of a metrics group. Unopens is kept
// alongside the raw counters because it is derived with a floor at zero
// rather than a plain subtraction.
type MetricCounters struct {
	Subscribers  int64 `json:"subscribers"`
	Sent         int64 `json:"sent"`
	Opens        int64 `json:"opens"`
	Unopens      int64 `json:"unopens"`
	Clicks       int64 `json:"clicks"`
	Bounces      int64 `json:"bounces"`
	Unsubscribes int64 `json:"unsubscribes"`
	Spam         int64 `json:"spam"`
}

// MetricRates holds the derived percentages of a metrics group, rounded to
// two decimals. Every rate is zero when its denominator is zero.
type MetricRates struct {
	DeliveryRate    float64 `json:"deliveryRate"`
	OpenRate        float64 `json:"openRate"`
	UnopenRate      float64 `json:"unopenRate"`
	ClickToOpenRate float64 `json:"clickToOpenRate"`
	BounceRate      float64 `json:"bounceRate"`
	UnsubscribeRate float64 `json:"unsubscribeRate"`
	SpamRate        float64 `json:"spamRate"`
}

// DailyMetrics aggregates all countable campaigns of one local calendar
// day. Date is the local day at UTC midnight.
type DailyMetrics struct {
	Date time.Time `json:"date"`
	MetricCounters
	MetricRates
}

// MonthlyMetrics aggregates all countable campaigns of one local calendar
// month.
type MonthlyMetrics struct {
	Year           int `json:"year"`
	Month          int `json:"month"`
	CampaignsCount int `json:"campaignsCount"`
	MetricCounters
	MetricRates
}

// SentCampaignMetrics is the per-campaign view: one row per countable
// campaign, no merging across campaigns. ScheduleDate is shifted to the
// account's local time.
type SentCampaignMetrics struct {
	CampaignID   int64     `json:"campaignId"`
	Name         string    `json:"name"`
	ScheduleDate time.Time `json:"scheduleDate"`
	FromEmail    string    `json:"fromEmail"`
	CampaignType string    `json:"campaignType"`
	LabelName    string    `json:"labelName,omitempty"`
	MetricCounters
	MetricRates
}
