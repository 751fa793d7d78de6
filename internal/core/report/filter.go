package report

import (
	"strings"
	"time"

	"campaign-reporting/internal/core/domain"
)

// localTime shifts a UTC instant into the account's local time. All
// grouping and boundary decisions operate on the shifted instant.
func localTime(t time.Time, offsetMinutes int) time.Time {
	return t.Add(time.Duration(offsetMinutes) * time.Minute)
}

// FilterCampaigns keeps the countable campaigns whose local schedule date
// falls inside the window and which pass the campaign filter. The result
// is the campaign set both the page query and the count query operate on,
// so pagination metadata can never disagree with the returned rows.
func FilterCampaigns(facts []domain.CampaignFact, offsetMinutes int, window domain.TimeWindow, filter domain.CampaignFilter) []domain.CampaignFact {
	out := make([]domain.CampaignFact, 0, len(facts))
	for _, c := range facts {
		if !c.Countable() {
			continue
		}
		if !window.Contains(localTime(c.ScheduleDate, offsetMinutes)) {
			continue
		}
		if !matches(c, filter) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matches(c domain.CampaignFact, f domain.CampaignFilter) bool {
	if name := strings.TrimSpace(f.Name); name != "" {
		if !strings.Contains(strings.ToLower(c.Name), strings.ToLower(name)) {
			return false
		}
	}
	if f.CampaignType != "" && !matchesType(c, f.CampaignType) {
		return false
	}
	if from := strings.TrimSpace(f.FromEmail); from != "" {
		if !strings.EqualFold(strings.TrimSpace(c.FromEmail), from) {
			return false
		}
	}
	if len(f.Labels) > 0 {
		found := false
		for _, l := range f.Labels {
			if strings.EqualFold(c.LabelName, l) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// matchesType compares campaign types exactly, except that TEST_AB matches
// any campaign belonging to an A/B test regardless of its stored type.
func matchesType(c domain.CampaignFact, campaignType string) bool {
	if campaignType == domain.CampaignTypeTestAB {
		return c.TestABID != 0 || c.CampaignType == domain.CampaignTypeTestAB
	}
	return c.CampaignType == campaignType
}
