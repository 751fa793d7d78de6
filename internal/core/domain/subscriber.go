package domain

// SubscriberStatus is the state of a subscriber relative to a campaign.
type SubscriberStatus int

const (
	SubscriberActive       SubscriberStatus = 1
	SubscriberUnsubscribed SubscriberStatus = 5
)

// UnsubscriptionReason is the top-level reason a subscriber gave when
// leaving a list.
type UnsubscriptionReason int

const (
	ReasonNone          UnsubscriptionReason = 0
	ReasonNotInterested UnsubscriptionReason = 1
	// ReasonMarkedAsSpam classifies the event as a spam complaint
	// regardless of subreason.
	ReasonMarkedAsSpam UnsubscriptionReason = 2
	ReasonOther        UnsubscriptionReason = 3
)

// UnsubscriptionSubreason refines the unsubscription reason. Three
// subreasons are reserved for spam complaints.
type UnsubscriptionSubreason int

const (
	SubreasonNone          UnsubscriptionSubreason = 0
	SubreasonTooFrequent   UnsubscriptionSubreason = 1
	SubreasonAbuse         UnsubscriptionSubreason = 2
	SubreasonSpamComplaint UnsubscriptionSubreason = 3
	SubreasonRepeatedSpam  UnsubscriptionSubreason = 4
)

// SubscriberEvent is one raw (campaign, subscriber) unsubscription row as
// provided by the fact source. Each event is classified as exactly one of
// unsubscribe or spam during reconciliation, never both.
type SubscriberEvent struct {
	CampaignID int64
	Status     SubscriberStatus
	Reason     UnsubscriptionReason
	Subreason  UnsubscriptionSubreason
}
