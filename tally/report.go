package tally

import (
	"github.com/akojamsy/voting-system/types"
)

type Percentages struct {
	Yes     float64 `json:"yes"`
	No      float64 `json:"no"`
	Abstain float64 `json:"abstain"`
}

// BillReport is everything the bill overview shows about one bill.
type BillReport struct {
	Bill              types.Bill  `json:"bill"`
	Tally             types.Tally `json:"tally"`
	Percentages       Percentages `json:"percentages"`
	EligibleVoters    int         `json:"eligibleVoters"`
	PendingVotes      int         `json:"pendingVotes"`
	ParticipationRate float64     `json:"participationRate"`
	Label             string      `json:"label"`
	Leading           string      `json:"leading"`
	PredictedOutcome  string      `json:"predictedOutcome,omitempty"`
}

func Report(bill types.Bill, t types.Tally, memberCount int) BillReport {
	pending := memberCount - t.Total
	if pending < 0 {
		pending = 0
	}
	r := BillReport{
		Bill:  bill,
		Tally: t,
		Percentages: Percentages{
			Yes:     PercentageOf(t.Yes, t.Total),
			No:      PercentageOf(t.No, t.Total),
			Abstain: PercentageOf(t.Abstain, t.Total),
		},
		EligibleVoters:    memberCount,
		PendingVotes:      pending,
		ParticipationRate: PercentageOf(t.Total, memberCount),
		Label:             Label(bill.Status, t.Yes, t.No, t.Abstain),
		Leading:           Leading(t.Yes, t.No, t.Abstain),
	}
	if bill.Status == types.BillActive {
		r.PredictedOutcome = string(Outcome(t.Yes, t.No, t.Abstain))
	}
	return r
}
