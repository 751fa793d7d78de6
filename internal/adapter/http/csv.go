package httpadapter

import (
	"encoding/csv"
	"log/slog"
	"net/http"
	"strconv"

	"campaign-reporting/internal/core/domain"
)

// Fixed CSV headers for the exportable views. Field quoting follows
// RFC 4180: values containing comma, quote or newline are quoted with
// internal quotes doubled, which encoding/csv handles.
var (
	sentCSVHeader = []string{
		"CampaignId", "Name", "ScheduleDate", "FromEmail", "CampaignType", "Label",
		"Subscribers", "Sent", "DeliveryRate", "Opens", "OpenRate", "Unopens", "UnopenRate",
		"Clicks", "ClickToOpenRate", "Bounces", "BounceRate",
		"Unsubscribes", "UnsubscribeRate", "Spam", "SpamRate",
	}
	monthlyCSVHeader = []string{
		"Year", "Month", "CampaignsCount",
		"Subscribers", "Sent", "DeliveryRate", "Opens", "OpenRate", "Unopens", "UnopenRate",
		"Clicks", "ClickToOpenRate", "Bounces", "BounceRate",
		"Unsubscribes", "UnsubscribeRate", "Spam", "SpamRate",
	}
)

func (h *Handler) writeSentCSV(w http.ResponseWriter, r *http.Request, page domain.CollectionPage[domain.SentCampaignMetrics]) {
	records := make([][]string, 0, len(page.Items)+1)
	records = append(records, sentCSVHeader)
	for _, m := range page.Items {
		records = append(records, append([]string{
			strconv.FormatInt(m.CampaignID, 10),
			m.Name,
			m.ScheduleDate.Format("2006-01-02 15:04:05"),
			m.FromEmail,
			m.CampaignType,
			m.LabelName,
		}, metricColumns(m.MetricCounters, m.MetricRates)...))
	}
	h.writeCSV(w, r, "sent-campaigns-metrics.csv", records)
}

func (h *Handler) writeMonthlyCSV(w http.ResponseWriter, r *http.Request, page domain.CollectionPage[domain.MonthlyMetrics]) {
	records := make([][]string, 0, len(page.Items)+1)
	records = append(records, monthlyCSVHeader)
	for _, m := range page.Items {
		records = append(records, append([]string{
			strconv.Itoa(m.Year),
			strconv.Itoa(m.Month),
			strconv.Itoa(m.CampaignsCount),
		}, metricColumns(m.MetricCounters, m.MetricRates)...))
	}
	h.writeCSV(w, r, "monthly-campaigns-metrics.csv", records)
}

func metricColumns(c domain.MetricCounters, rt domain.MetricRates) []string {
	return []string{
		strconv.FormatInt(c.Subscribers, 10),
		strconv.FormatInt(c.Sent, 10),
		formatRate(rt.DeliveryRate),
		strconv.FormatInt(c.Opens, 10),
		formatRate(rt.OpenRate),
		strconv.FormatInt(c.Unopens, 10),
		formatRate(rt.UnopenRate),
		strconv.FormatInt(c.Clicks, 10),
		formatRate(rt.ClickToOpenRate),
		strconv.FormatInt(c.Bounces, 10),
		formatRate(rt.BounceRate),
		strconv.FormatInt(c.Unsubscribes, 10),
		formatRate(rt.UnsubscribeRate),
		strconv.FormatInt(c.Spam, 10),
		formatRate(rt.SpamRate),
	}
}

// formatRate renders a percentage with at most two decimal places.
func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func (h *Handler) writeCSV(w http.ResponseWriter, r *http.Request, filename string, records [][]string) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(records); err != nil {
		h.logger.Error("write csv error", slog.Any("error", err), slog.String("rid", RID(r.Context())))
	}
}
