package report

import (
	"testing"
	"time"

	"campaign-reporting/internal/core/domain"
)

// TestDailyEndToEnd runs the two-campaign scenario: campaign A with a spam
// complaint and campaign B with a plain unsubscribe, both on the same
// local day, and checks every counter and the derived rates.
func TestDailyEndToEnd(t *testing.T) {
	day := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

	campA := countableCampaign(1)
	campA.ScheduleDate = day
	campA.SubscribersTargeted = 100
	campA.Sent = 90
	campA.Opens = 40
	campA.Clicks = 10
	campA.HardBounces = 5

	campB := countableCampaign(2)
	campB.ScheduleDate = day.Add(4 * time.Hour)
	campB.SubscribersTargeted = 50
	campB.Sent = 50
	campB.Opens = 50
	campB.Clicks = 25

	events := []domain.SubscriberEvent{
		{CampaignID: 1, Status: domain.SubscriberUnsubscribed, Reason: domain.ReasonMarkedAsSpam},
		{CampaignID: 2, Status: domain.SubscriberUnsubscribed, Reason: domain.ReasonNotInterested},
	}

	set, err := Reconcile([]domain.CampaignFact{campA, campB}, events)
	if err != nil {
		t.Fatalf("Reconcile error: %v", err)
	}
	days := Daily(set, 0)
	if len(days) != 1 {
		t.Fatalf("expected one day group, got %d", len(days))
	}

	d := days[0]
	if d.Subscribers != 150 || d.Sent != 140 || d.Opens != 90 || d.Clicks != 35 || d.Bounces != 5 {
		t.Errorf("counters = %+v, want subscribers=150 sent=140 opens=90 clicks=35 bounces=5", d.MetricCounters)
	}
	if d.Unsubscribes != 1 || d.Spam != 1 {
		t.Errorf("unsubscribes=%d spam=%d, want 1 and 1", d.Unsubscribes, d.Spam)
	}
	if d.Unopens != 50 {
		t.Errorf("unopens = %d, want 50", d.Unopens)
	}
	if d.DeliveryRate != 93.33 {
		t.Errorf("deliveryRate = %v, want 93.33", d.DeliveryRate)
	}
	if d.OpenRate != 64.29 {
		t.Errorf("openRate = %v, want 64.29", d.OpenRate)
	}
	if d.BounceRate != 3.33 {
		t.Errorf("bounceRate = %v, want 3.33", d.BounceRate)
	}
}

// TestDailyTimezoneAttribution checks that a campaign scheduled late at
// night UTC counts toward the next local day for an account two hours
// ahead.
func TestDailyTimezoneAttribution(t *testing.T) {
	camp := countableCampaign(1)
	camp.ScheduleDate = time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC)

	set, err := Reconcile([]domain.CampaignFact{camp}, nil)
	if err != nil {
		t.Fatalf("Reconcile error: %v", err)
	}

	days := Daily(set, 120)
	if len(days) != 1 {
		t.Fatalf("expected one day group, got %d", len(days))
	}
	want := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	if !days[0].Date.Equal(want) {
		t.Errorf("day = %v, want %v", days[0].Date, want)
	}

	days = Daily(set, 0)
	want = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !days[0].Date.Equal(want) {
		t.Errorf("day without offset = %v, want %v", days[0].Date, want)
	}
}

// TestDailyOrderingAscending checks stable ascending order and that gaps
// in the range produce no synthetic zero rows.
func TestDailyOrderingAscending(t *testing.T) {
	c1 := countableCampaign(1)
	c1.ScheduleDate = time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	c2 := countableCampaign(2)
	c2.ScheduleDate = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	set, err := Reconcile([]domain.CampaignFact{c1, c2}, nil)
	if err != nil {
		t.Fatalf("Reconcile error: %v", err)
	}
	days := Daily(set, 0)
	if len(days) != 2 {
		t.Fatalf("expected two day groups (no synthetic rows for June 2nd), got %d", len(days))
	}
	if !days[0].Date.Before(days[1].Date) {
		t.Errorf("days not ascending: %v before %v", days[0].Date, days[1].Date)
	}
}

func TestMonthlyGroupingAndOrdering(t *testing.T) {
	jan := countableCampaign(1)
	jan.ScheduleDate = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	jan.SubscribersTargeted = 100
	jan.Sent = 100

	feb1 := countableCampaign(2)
	feb1.ScheduleDate = time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC)
	feb2 := countableCampaign(3)
	feb2.ScheduleDate = time.Date(2024, 2, 20, 12, 0, 0, 0, time.UTC)

	set, err := Reconcile([]domain.CampaignFact{jan, feb1, feb2}, nil)
	if err != nil {
		t.Fatalf("Reconcile error: %v", err)
	}
	months := Monthly(set, 0)
	if len(months) != 2 {
		t.Fatalf("expected two month groups, got %d", len(months))
	}
	if months[0].Year != 2024 || months[0].Month != 2 {
		t.Errorf("first group = %d-%d, want 2024-2 (descending order)", months[0].Year, months[0].Month)
	}
	if months[0].CampaignsCount != 2 || months[1].CampaignsCount != 1 {
		t.Errorf("campaignsCount = %d/%d, want 2/1", months[0].CampaignsCount, months[1].CampaignsCount)
	}
}

// TestMonthlyTimezoneBoundary checks that a campaign at the turn of the
// month groups into the account's local month.
func TestMonthlyTimezoneBoundary(t *testing.T) {
	camp := countableCampaign(1)
	camp.ScheduleDate = time.Date(2024, 1, 31, 23, 0, 0, 0, time.UTC)

	set, err := Reconcile([]domain.CampaignFact{camp}, nil)
	if err != nil {
		t.Fatalf("Reconcile error: %v", err)
	}
	months := Monthly(set, 120)
	if months[0].Month != 2 {
		t.Errorf("month = %d, want 2 for offset +120", months[0].Month)
	}
	months = Monthly(set, -120)
	if months[0].Month != 1 {
		t.Errorf("month = %d, want 1 for offset -120", months[0].Month)
	}
}

func TestSentOrderingAndIdentity(t *testing.T) {
	older := countableCampaign(1)
	older.Name = "Older"
	older.LabelName = "promo"
	older.ScheduleDate = time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)

	newer := countableCampaign(2)
	newer.Name = "Newer"
	newer.ScheduleDate = time.Date(2024, 4, 5, 8, 0, 0, 0, time.UTC)

	set, err := Reconcile([]domain.CampaignFact{older, newer}, nil)
	if err != nil {
		t.Fatalf("Reconcile error: %v", err)
	}
	rows := Sent(set, 60)
	if len(rows) != 2 {
		t.Fatalf("expected one row per campaign, got %d", len(rows))
	}
	if rows[0].CampaignID != 2 {
		t.Errorf("first row is campaign %d, want 2 (schedule date descending)", rows[0].CampaignID)
	}
	if rows[1].LabelName != "promo" {
		t.Errorf("labelName = %q, want promo", rows[1].LabelName)
	}
	want := time.Date(2024, 4, 5, 9, 0, 0, 0, time.UTC)
	if !rows[0].ScheduleDate.Equal(want) {
		t.Errorf("scheduleDate = %v, want local %v", rows[0].ScheduleDate, want)
	}
}

// TestZeroDenominators checks that every rate is zero, never NaN, when its
// denominator is zero, and that a zero-subscriber campaign still counts.
func TestZeroDenominators(t *testing.T) {
	camp := countableCampaign(1)
	// all counters zero

	set, err := Reconcile([]domain.CampaignFact{camp}, nil)
	if err != nil {
		t.Fatalf("Reconcile error: %v", err)
	}
	days := Daily(set, 0)
	if len(days) != 1 {
		t.Fatalf("zero-counter campaign must still produce a group, got %d", len(days))
	}
	r := days[0].MetricRates
	for name, v := range map[string]float64{
		"deliveryRate":    r.DeliveryRate,
		"openRate":        r.OpenRate,
		"unopenRate":      r.UnopenRate,
		"clickToOpenRate": r.ClickToOpenRate,
		"bounceRate":      r.BounceRate,
		"unsubscribeRate": r.UnsubscribeRate,
		"spamRate":        r.SpamRate,
	} {
		if v != 0 {
			t.Errorf("%s = %v, want 0 for zero denominator", name, v)
		}
	}
}

// TestUnopensFloor checks unopens never goes negative when opens exceed
// sent (overlapping event sources can over-report opens).
func TestUnopensFloor(t *testing.T) {
	camp := countableCampaign(1)
	camp.Sent = 10
	camp.Opens = 15

	set, err := Reconcile([]domain.CampaignFact{camp}, nil)
	if err != nil {
		t.Fatalf("Reconcile error: %v", err)
	}
	days := Daily(set, 0)
	if days[0].Unopens != 0 {
		t.Errorf("unopens = %d, want floor at 0", days[0].Unopens)
	}
}
