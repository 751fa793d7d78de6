package httpadapter

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"campaign-reporting/internal/core/domain"
)

const defaultPageSize = 10

// parseWindow binds the optional startDate/endDate query parameters.
// Values are accepted as RFC3339 timestamps or plain dates (2006-01-02);
// plain dates are taken as local-day boundaries of the account.
func parseWindow(q url.Values) (domain.TimeWindow, error) {
	var w domain.TimeWindow
	if v := q.Get("startDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return w, fmt.Errorf("invalid startDate: %q", v)
		}
		w.Start = &t
	}
	if v := q.Get("endDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return w, fmt.Errorf("invalid endDate: %q", v)
		}
		w.End = &t
	}
	return w, nil
}

func parseDate(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UTC(), nil
	}
	return time.Parse("2006-01-02", v)
}

// parsePaging binds pageNumber/pageSize with the same defaults the
// original paging filter used: first page, ten items.
func parsePaging(q url.Values) (domain.PagingFilter, error) {
	p := domain.PagingFilter{PageNumber: 0, PageSize: defaultPageSize}
	if v := q.Get("pageNumber"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, fmt.Errorf("invalid pageNumber: %q", v)
		}
		p.PageNumber = n
	}
	if v := q.Get("pageSize"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, fmt.Errorf("invalid pageSize: %q", v)
		}
		p.PageSize = n
	}
	return p, nil
}

// parseCampaignFilter binds the optional campaign filter parameters.
// Labels come as a comma-separated list.
func parseCampaignFilter(q url.Values) domain.CampaignFilter {
	f := domain.CampaignFilter{
		Name:         q.Get("campaignName"),
		CampaignType: q.Get("campaignType"),
		FromEmail:    q.Get("fromEmail"),
	}
	if v := q.Get("labels"); v != "" {
		for _, l := range strings.Split(v, ",") {
			if l = strings.TrimSpace(l); l != "" {
				f.Labels = append(f.Labels, l)
			}
		}
	}
	return f
}
