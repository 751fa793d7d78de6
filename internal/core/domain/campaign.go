package domain

import "time"

// CampaignStatus is the lifecycle state of a campaign. Only a subset of
// states makes a campaign eligible for reporting, see CampaignFact.Countable.
type CampaignStatus int

const (
	StatusScheduled CampaignStatus = iota + 1
	StatusSending
	// StatusSent means the campaign was delivered and per-subscriber
	// unsubscription detail is still available.
	StatusSent
	// StatusConsolidated is a terminal state for campaigns whose
	// unsubscribe total was snapshotted into DeclaredUnsubscribes before
	// per-event detail was retained.
	StatusConsolidated
	StatusCompleted
	StatusCanceled
)

// Campaign type identifiers as stored on the campaign record.
const (
	CampaignTypeClassic = "CLASSIC"
	CampaignTypeSocial  = "SOCIAL"
	CampaignTypeTestAB  = "TEST_AB"
)

// ABCategory marks the role of a campaign inside an A/B test.
type ABCategory int

const (
	ABCategoryNone     ABCategory = 0
	ABCategorySubjectA ABCategory = 1
	ABCategorySubjectB ABCategory = 2
	// ABCategoryWinner is the variant that won the test and was sent to
	// the remaining audience. Losing variants are not countable.
	ABCategoryWinner ABCategory = 3
)

// CampaignFact is one raw campaign row as provided by the fact source.
// All timestamps are UTC instants; grouping into calendar days and months
// happens after shifting by the account's UTC offset.
type CampaignFact struct {
	ID             int64
	AccountID      int64
	Name           string
	FromEmail      string
	CampaignType   string
	LabelID        *int64
	LabelName      string
	ScheduleDate   time.Time
	SentDate       time.Time
	Status         CampaignStatus
	Active         bool
	IsTestVariant  bool
	TestABID       int64 // 0 when the campaign is not part of an A/B test
	TestABCategory ABCategory

	SubscribersTargeted int64
	Sent                int64
	Opens               int64
	Clicks              int64
	HardBounces         int64
	SoftBounces         int64
	// DeclaredUnsubscribes is the snapshotted unsubscribe total, present
	// only on consolidated campaigns. Nil means no declared counter.
	DeclaredUnsubscribes *int64
}

// Countable reports whether the campaign is eligible for inclusion in
// metrics: delivered or terminal status, active, not a test sub-variant and
// not a losing A/B variant.
func (c CampaignFact) Countable() bool {
	switch c.Status {
	case StatusSent, StatusConsolidated, StatusCompleted:
	default:
		return false
	}
	if !c.Active || c.IsTestVariant {
		return false
	}
	return c.TestABCategory == ABCategoryNone || c.TestABCategory == ABCategoryWinner
}

// HasDeclaredUnsubscribes reports whether the campaign carries an
// authoritative snapshotted unsubscribe counter that overrides per-event
// reconciliation.
func (c CampaignFact) HasDeclaredUnsubscribes() bool {
	return c.Status == StatusConsolidated && c.DeclaredUnsubscribes != nil
}

// Bounces is the combined hard and soft bounce count.
func (c CampaignFact) Bounces() int64 {
	return c.HardBounces + c.SoftBounces
}
