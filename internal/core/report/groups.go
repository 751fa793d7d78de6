package report

import (
	"sort"
	"time"

	"campaign-reporting/internal/core/domain"
)

// Daily groups the reconciled set by local calendar day, ordered by day
// ascending. Days without countable campaigns are not emitted.
func Daily(set ReconciledSet, offsetMinutes int) []domain.DailyMetrics {
	groups := make(map[time.Time]*domain.DailyMetrics)
	for _, c := range set.Campaigns {
		local := localTime(c.ScheduleDate, offsetMinutes)
		day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
		g := groups[day]
		if g == nil {
			g = &domain.DailyMetrics{Date: day}
			groups[day] = g
		}
		accumulate(&g.MetricCounters, c, set)
	}

	out := make([]domain.DailyMetrics, 0, len(groups))
	for _, g := range groups {
		g.MetricRates = deriveRates(g.MetricCounters)
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Monthly groups the reconciled set by local (year, month), ordered
// descending. Months without countable campaigns are not emitted.
func Monthly(set ReconciledSet, offsetMinutes int) []domain.MonthlyMetrics {
	type monthKey struct {
		year  int
		month int
	}
	groups := make(map[monthKey]*domain.MonthlyMetrics)
	for _, c := range set.Campaigns {
		local := localTime(c.ScheduleDate, offsetMinutes)
		key := monthKey{year: local.Year(), month: int(local.Month())}
		g := groups[key]
		if g == nil {
			g = &domain.MonthlyMetrics{Year: key.year, Month: key.month}
			groups[key] = g
		}
		g.CampaignsCount++
		accumulate(&g.MetricCounters, c, set)
	}

	out := make([]domain.MonthlyMetrics, 0, len(groups))
	for _, g := range groups {
		g.MetricRates = deriveRates(g.MetricCounters)
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].Month > out[j].Month
	})
	return out
}

// Sent produces one row per campaign with no merging across campaigns,
// ordered by schedule date descending. Campaign id breaks ties so repeated
// queries return an identical order.
func Sent(set ReconciledSet, offsetMinutes int) []domain.SentCampaignMetrics {
	out := make([]domain.SentCampaignMetrics, 0, len(set.Campaigns))
	for _, c := range set.Campaigns {
		m := domain.SentCampaignMetrics{
			CampaignID:   c.ID,
			Name:         c.Name,
			ScheduleDate: localTime(c.ScheduleDate, offsetMinutes),
			FromEmail:    c.FromEmail,
			CampaignType: c.CampaignType,
			LabelName:    c.LabelName,
		}
		accumulate(&m.MetricCounters, c, set)
		m.MetricRates = deriveRates(m.MetricCounters)
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ScheduleDate.Equal(out[j].ScheduleDate) {
			return out[i].ScheduleDate.After(out[j].ScheduleDate)
		}
		return out[i].CampaignID > out[j].CampaignID
	})
	return out
}
