package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-reporting/internal/core/domain"
)

// Seed inserts demo reporting data: one account per timezone offset, a few
// labels and a spread of campaigns with unsubscription events.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	offsets := []int{0, -180, 120}
	for i, offset := range offsets {
		accountName := fmt.Sprintf("demo-%d@example.com", i+1)
		var accountID int64
		err := db.QueryRow(ctx, `INSERT INTO accounts (name, utc_offset_minutes)
VALUES ($1, $2) ON CONFLICT (name) DO UPDATE SET utc_offset_minutes = EXCLUDED.utc_offset_minutes
RETURNING id`, accountName, offset).Scan(&accountID)
		if err != nil {
			return err
		}

		labelIDs := make([]int64, 0, 3)
		for _, label := range []string{"newsletter", "promo", "onboarding"} {
			var labelID int64
			err = db.QueryRow(ctx, `INSERT INTO labels (account_id, name)
VALUES ($1, $2) RETURNING id`, accountID, label).Scan(&labelID)
			if err != nil {
				return err
			}
			labelIDs = append(labelIDs, labelID)
		}

		// campaigns spread over the last 90 days
		for j := 1; j <= 30; j++ {
			schedule := time.Now().UTC().AddDate(0, 0, -r.Intn(90)).Truncate(time.Hour)
			targeted := int64(500 + r.Intn(5000))
			sent := targeted - int64(r.Intn(50))
			opens := sent * int64(20+r.Intn(60)) / 100
			clicks := opens * int64(r.Intn(40)) / 100
			status := domain.StatusSent
			var declared *int64
			if j%7 == 0 {
				status = domain.StatusConsolidated
				d := int64(r.Intn(20))
				declared = &d
			}
			var campaignID int64
			err = db.QueryRow(ctx, `INSERT INTO campaigns
(account_id, name, from_email, campaign_type, label_id, schedule_date, sent_date, status,
 active, is_test_variant, subscribers_targeted, sent, opens, clicks, hard_bounces, soft_bounces,
 declared_unsubscribes)
VALUES ($1,$2,$3,$4,$5,$6,$6,$7,TRUE,FALSE,$8,$9,$10,$11,$12,$13,$14) RETURNING id`,
				accountID,
				fmt.Sprintf("Campaign %d", j),
				fmt.Sprintf("sender%d@example.com", 1+j%3),
				domain.CampaignTypeClassic,
				labelIDs[j%len(labelIDs)],
				schedule,
				status,
				targeted, sent, opens, clicks,
				int64(r.Intn(30)), int64(r.Intn(30)),
				declared,
			).Scan(&campaignID)
			if err != nil {
				return err
			}

			// a handful of unsubscription events per campaign, with an
			// occasional spam complaint
			for k := 0; k < r.Intn(6); k++ {
				reason := domain.ReasonNotInterested
				subreason := domain.SubreasonNone
				if k%3 == 0 {
					reason = domain.ReasonMarkedAsSpam
					subreason = domain.SubreasonSpamComplaint
				}
				_, err = db.Exec(ctx, `INSERT INTO campaign_subscribers
(campaign_id, subscriber_email, status, unsubscription_reason, unsubscription_subreason)
VALUES ($1,$2,$3,$4,$5)`,
					campaignID,
					uuid.NewString()+"@example.com",
					domain.SubscriberUnsubscribed,
					reason,
					subreason,
				)
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}
