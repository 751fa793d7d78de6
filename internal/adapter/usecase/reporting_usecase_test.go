package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"campaign-reporting/internal/core/domain"
	"campaign-reporting/internal/core/port"
	"campaign-reporting/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

func sentCampaign(id int64, schedule time.Time) domain.CampaignFact {
	return domain.CampaignFact{
		ID:           id,
		Name:         "Campaign",
		Status:       domain.StatusSent,
		Active:       true,
		ScheduleDate: schedule,
	}
}

func TestDailyMetricsRequiresWindow(t *testing.T) {
	facts := mocks.NewMockFactSource(t)
	svc := NewReportingUseCase(facts, 0)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cases := []domain.TimeWindow{
		{},
		{Start: &start},
		{End: &start},
	}
	for _, window := range cases {
		_, err := svc.DailyMetrics(context.Background(), port.DailyQuery{Account: "acc", Window: window})
		if !errors.Is(err, ErrMissingDateRange) {
			t.Errorf("window %+v: err = %v, want ErrMissingDateRange", window, err)
		}
	}
}

func TestPagingValidation(t *testing.T) {
	facts := mocks.NewMockFactSource(t)
	svc := NewReportingUseCase(facts, 0)

	_, err := svc.MonthlyMetrics(context.Background(), port.MonthlyQuery{
		Account: "acc",
		Paging:  domain.PagingFilter{PageNumber: 0, PageSize: 0},
	})
	if !errors.Is(err, ErrInvalidPageSize) {
		t.Errorf("err = %v, want ErrInvalidPageSize", err)
	}

	_, err = svc.SentCampaignMetrics(context.Background(), port.SentQuery{
		Account: "acc",
		Paging:  domain.PagingFilter{PageNumber: -1, PageSize: 10},
	})
	if !errors.Is(err, ErrInvalidPageNumber) {
		t.Errorf("err = %v, want ErrInvalidPageNumber", err)
	}
}

func TestAccountNotFoundPassesThrough(t *testing.T) {
	facts := mocks.NewMockFactSource(t)
	facts.EXPECT().
		FetchAccountUTCOffset(mock.Anything, "ghost").
		Return(0, port.ErrAccountNotFound)

	svc := NewReportingUseCase(facts, 0)
	_, err := svc.MonthlyMetrics(context.Background(), port.MonthlyQuery{
		Account: "ghost",
		Paging:  domain.PagingFilter{PageSize: 10},
	})
	if !errors.Is(err, port.ErrAccountNotFound) {
		t.Errorf("err = %v, want ErrAccountNotFound", err)
	}
}

func TestFactSourceFailureSurfacesAsDataUnavailable(t *testing.T) {
	facts := mocks.NewMockFactSource(t)
	facts.EXPECT().
		FetchAccountUTCOffset(mock.Anything, "acc").
		Return(0, nil)
	facts.EXPECT().
		FetchCampaignFacts(mock.Anything, "acc", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset"))

	svc := NewReportingUseCase(facts, 0)
	_, err := svc.SentCampaignMetrics(context.Background(), port.SentQuery{
		Account: "acc",
		Paging:  domain.PagingFilter{PageSize: 10},
	})
	if !errors.Is(err, port.ErrDataUnavailable) {
		t.Errorf("err = %v, want wrapped ErrDataUnavailable", err)
	}
}

// TestSentCampaignMetricsPage checks that the page and its metadata come
// from the same filtered set and that repeating the query yields the same
// ordering.
func TestSentCampaignMetricsPage(t *testing.T) {
	base := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	campaigns := []domain.CampaignFact{
		sentCampaign(1, base),
		sentCampaign(2, base.AddDate(0, 0, 1)),
		sentCampaign(3, base.AddDate(0, 0, 2)),
	}

	facts := mocks.NewMockFactSource(t)
	facts.EXPECT().
		FetchAccountUTCOffset(mock.Anything, "acc").
		Return(0, nil)
	facts.EXPECT().
		FetchCampaignFacts(mock.Anything, "acc", mock.Anything, mock.Anything).
		Return(campaigns, nil)
	facts.EXPECT().
		FetchSubscriberEvents(mock.Anything, "acc", mock.Anything, mock.Anything).
		Return(nil, nil)

	svc := NewReportingUseCase(facts, 0)
	query := port.SentQuery{
		Account: "acc",
		Paging:  domain.PagingFilter{PageNumber: 0, PageSize: 2},
	}

	page, err := svc.SentCampaignMetrics(context.Background(), query)
	if err != nil {
		t.Fatalf("SentCampaignMetrics error: %v", err)
	}
	if page.TotalCount != 3 || page.PagesCount != 2 || len(page.Items) != 2 {
		t.Fatalf("page: items=%d total=%d pages=%d, want 2/3/2", len(page.Items), page.TotalCount, page.PagesCount)
	}
	if page.Items[0].CampaignID != 3 || page.Items[1].CampaignID != 2 {
		t.Fatalf("order = [%d %d], want [3 2]", page.Items[0].CampaignID, page.Items[1].CampaignID)
	}

	again, err := svc.SentCampaignMetrics(context.Background(), query)
	if err != nil {
		t.Fatalf("repeat query error: %v", err)
	}
	for i := range page.Items {
		if page.Items[i].CampaignID != again.Items[i].CampaignID {
			t.Fatalf("repeated query changed ordering at %d", i)
		}
	}
}

// TestDailyMetricsAppliesAccountOffset checks the offset fetched from the
// fact source is what shifts the grouping day.
func TestDailyMetricsAppliesAccountOffset(t *testing.T) {
	campaigns := []domain.CampaignFact{
		sentCampaign(1, time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC)),
	}

	facts := mocks.NewMockFactSource(t)
	facts.EXPECT().
		FetchAccountUTCOffset(mock.Anything, "acc").
		Return(120, nil)
	facts.EXPECT().
		FetchCampaignFacts(mock.Anything, "acc", mock.Anything, mock.Anything).
		Return(campaigns, nil)
	facts.EXPECT().
		FetchSubscriberEvents(mock.Anything, "acc", mock.Anything, mock.Anything).
		Return(nil, nil)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	svc := NewReportingUseCase(facts, time.Second)
	days, err := svc.DailyMetrics(context.Background(), port.DailyQuery{
		Account: "acc",
		Window:  domain.TimeWindow{Start: &start, End: &end},
	})
	if err != nil {
		t.Fatalf("DailyMetrics error: %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("expected one day, got %d", len(days))
	}
	want := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	if !days[0].Date.Equal(want) {
		t.Errorf("day = %v, want %v", days[0].Date, want)
	}
}
