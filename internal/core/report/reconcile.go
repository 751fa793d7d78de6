// Package report implements the aggregation engine: a single
// reconciliation step over the raw fact streams shared by three grouping
// projections (daily, monthly, per-campaign). The projections differ only
// in their grouping key and ordering, never in classification or rate
// logic.
package report

import (
	"fmt"

	"campaign-reporting/internal/core/domain"
	"campaign-reporting/internal/core/port"
)

// ReconciledSet is the filtered campaign set together with the
// unsubscribe/spam split derived from subscriber events. It is the single
// input to every grouping projection.
type ReconciledSet struct {
	Campaigns    []domain.CampaignFact
	Unsubscribes map[int64]int64
	Spam         map[int64]int64
}

type eventClass int

const (
	classUnsubscribe eventClass = iota + 1
	classSpam
)

// classify assigns exactly one class to an unsubscription event. An event
// is spam when the subscriber marked the mail as spam or used one of the
// three subreasons reserved for spam complaints; everything else is a
// plain unsubscribe.
func classify(ev domain.SubscriberEvent) eventClass {
	if ev.Reason == domain.ReasonMarkedAsSpam {
		return classSpam
	}
	switch ev.Subreason {
	case domain.SubreasonAbuse, domain.SubreasonSpamComplaint, domain.SubreasonRepeatedSpam:
		return classSpam
	}
	return classUnsubscribe
}

// Reconcile joins subscriber events to the given campaign set and splits
// them into unsubscribes and spam. Events belonging to campaigns outside
// the set, or whose subscriber is not unsubscribed, are ignored. For
// campaigns carrying a declared unsubscribe counter that counter is
// authoritative and per-event unsubscribes are discarded; spam is always
// event-derived.
//
// The campaigns slice must already be filtered to countable campaigns
// inside the requested window, see FilterCampaigns.
func Reconcile(campaigns []domain.CampaignFact, events []domain.SubscriberEvent) (ReconciledSet, error) {
	set := ReconciledSet{
		Campaigns:    campaigns,
		Unsubscribes: make(map[int64]int64, len(campaigns)),
		Spam:         make(map[int64]int64, len(campaigns)),
	}

	byID := make(map[int64]domain.CampaignFact, len(campaigns))
	for _, c := range campaigns {
		byID[c.ID] = c
	}

	var classified, declaredDrops int64
	for _, ev := range events {
		camp, ok := byID[ev.CampaignID]
		if !ok || ev.Status != domain.SubscriberUnsubscribed {
			continue
		}
		classified++
		switch classify(ev) {
		case classSpam:
			set.Spam[ev.CampaignID]++
		case classUnsubscribe:
			if camp.HasDeclaredUnsubscribes() {
				declaredDrops++
				continue
			}
			set.Unsubscribes[ev.CampaignID]++
		}
	}

	// Tally check: every classified event lands in exactly one bucket or
	// was superseded by a declared counter.
	var bucketed int64
	for _, n := range set.Unsubscribes {
		bucketed += n
	}
	for _, n := range set.Spam {
		bucketed += n
	}
	if bucketed+declaredDrops != classified {
		return ReconciledSet{}, fmt.Errorf("%w: %d events classified, %d counted",
			port.ErrInvariantViolation, classified, bucketed+declaredDrops)
	}

	for _, c := range campaigns {
		if c.HasDeclaredUnsubscribes() {
			set.Unsubscribes[c.ID] = *c.DeclaredUnsubscribes
		}
	}
	return set, nil
}
