package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-reporting/internal/core/domain"
	"campaign-reporting/internal/core/port"
)

// windowSlack widens the pushed-down window on both sides. The stored
// schedule dates are UTC while the window is interpreted in the account's
// local time, so the query over-fetches by up to a day and the engine
// applies the exact local-time boundaries.
const windowSlack = 24 * time.Hour

// FactSource implements port.FactSource using pgxpool for PostgreSQL. Each
// fetch is a single read-only query; classification and exact boundary
// filtering stay in the aggregation engine.
type FactSource struct {
	pool *pgxpool.Pool
}

// NewFactSource returns a new fact source instance.
func NewFactSource(pool *pgxpool.Pool) *FactSource {
	return &FactSource{pool: pool}
}

// FetchAccountUTCOffset returns the account's UTC offset in signed minutes.
func (s *FactSource) FetchAccountUTCOffset(ctx context.Context, account string) (int, error) {
	var offset int
	err := s.pool.QueryRow(ctx,
		`SELECT utc_offset_minutes FROM accounts WHERE name = $1`, account).Scan(&offset)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, port.ErrAccountNotFound
	}
	if err != nil {
		return 0, err
	}
	return offset, nil
}

// FetchCampaignFacts returns campaign counter rows for the account inside
// the widened window. The campaign filter is not pushed down; the engine
// re-applies it together with countability and exact window bounds.
func (s *FactSource) FetchCampaignFacts(ctx context.Context, account string, window domain.TimeWindow, _ domain.CampaignFilter) ([]domain.CampaignFact, error) {
	query := `
        SELECT
            c.id,
            c.account_id,
            c.name,
            c.from_email,
            c.campaign_type,
            c.label_id,
            COALESCE(l.name, ''),
            c.schedule_date,
            COALESCE(c.sent_date, c.schedule_date),
            c.status,
            c.active,
            c.is_test_variant,
            COALESCE(c.test_ab_id, 0),
            COALESCE(c.test_ab_category, 0),
            COALESCE(c.subscribers_targeted, 0),
            COALESCE(c.sent, 0),
            COALESCE(c.opens, 0),
            COALESCE(c.clicks, 0),
            COALESCE(c.hard_bounces, 0),
            COALESCE(c.soft_bounces, 0),
            c.declared_unsubscribes
        FROM campaigns c
        JOIN accounts a ON c.account_id = a.id
        LEFT JOIN labels l ON c.label_id = l.id
        WHERE a.name = $1
          AND ($2::timestamptz IS NULL OR c.schedule_date >= $2)
          AND ($3::timestamptz IS NULL OR c.schedule_date < $3)`

	start, end := widen(window)
	rows, err := s.pool.Query(ctx, query, account, start, end)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignFact, error) {
		var c domain.CampaignFact
		err := row.Scan(
			&c.ID,
			&c.AccountID,
			&c.Name,
			&c.FromEmail,
			&c.CampaignType,
			&c.LabelID,
			&c.LabelName,
			&c.ScheduleDate,
			&c.SentDate,
			&c.Status,
			&c.Active,
			&c.IsTestVariant,
			&c.TestABID,
			&c.TestABCategory,
			&c.SubscribersTargeted,
			&c.Sent,
			&c.Opens,
			&c.Clicks,
			&c.HardBounces,
			&c.SoftBounces,
			&c.DeclaredUnsubscribes,
		)
		return c, err
	})
}

// FetchSubscriberEvents returns unsubscription rows for the account's
// campaigns inside the widened window. Only unsubscribed subscribers are
// fetched; the spam/unsubscribe split happens in the engine.
func (s *FactSource) FetchSubscriberEvents(ctx context.Context, account string, window domain.TimeWindow, _ domain.CampaignFilter) ([]domain.SubscriberEvent, error) {
	query := `
        SELECT
            cs.campaign_id,
            cs.status,
            COALESCE(cs.unsubscription_reason, 0),
            COALESCE(cs.unsubscription_subreason, 0)
        FROM campaign_subscribers cs
        JOIN campaigns c ON cs.campaign_id = c.id
        JOIN accounts a ON c.account_id = a.id
        WHERE a.name = $1
          AND cs.status = $2
          AND ($3::timestamptz IS NULL OR c.schedule_date >= $3)
          AND ($4::timestamptz IS NULL OR c.schedule_date < $4)`

	start, end := widen(window)
	rows, err := s.pool.Query(ctx, query, account, domain.SubscriberUnsubscribed, start, end)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SubscriberEvent, error) {
		var ev domain.SubscriberEvent
		err := row.Scan(&ev.CampaignID, &ev.Status, &ev.Reason, &ev.Subreason)
		return ev, err
	})
}

func widen(w domain.TimeWindow) (*time.Time, *time.Time) {
	var start, end *time.Time
	if w.Start != nil {
		t := w.Start.Add(-windowSlack)
		start = &t
	}
	if w.End != nil {
		t := w.End.Add(windowSlack)
		end = &t
	}
	return start, end
}
