// Package tally derives counts, percentages and outcomes from bills and votes.
// Everything here is pure: no storage, no clock, no logging.
package tally

import (
	"math"

	"github.com/akojamsy/voting-system/types"
)

const (
	LabelInProgress   = "Voting in Progress"
	LabelPassed       = "PASSED"
	LabelFailed       = "FAILED"
	LabelInconclusive = "TIE/INCONCLUSIVE"
)

// Outcome decides the final status of a bill when its voting session is closed.
// The rule order matters: a strict plurality wins first, an abstain plurality
// fails, and only then does the yes >= no fallback apply.
func Outcome(yes, no, abstain int) types.BillStatus {
	switch {
	case yes > no && yes > abstain:
		return types.BillPassed
	case no > yes && no > abstain:
		return types.BillFailed
	case abstain > yes && abstain > no:
		return types.BillFailed
	case yes >= no:
		return types.BillPassed
	default:
		return types.BillFailed
	}
}

// PercentageOf returns 100*count/total rounded to one decimal, or 0 for an empty total.
func PercentageOf(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(1000*float64(count)/float64(total)) / 10
}

// Label is the display classifier of a bill. Unlike Outcome it has no
// tie-break, so a bill closed as passed through the fallback rule still
// reads TIE/INCONCLUSIVE.
func Label(status types.BillStatus, yes, no, abstain int) string {
	if status == types.BillActive {
		return LabelInProgress
	}
	switch {
	case yes > no && yes > abstain:
		return LabelPassed
	case no > yes && no > abstain:
		return LabelFailed
	default:
		return LabelInconclusive
	}
}

const (
	LeadingYes = "YES"
	LeadingNo  = "NO"
	LeadingTie = "TIE"
)

// Leading reports YES or NO on a strict plurality and TIE otherwise. An
// abstain plurality is a TIE here.
func Leading(yes, no, abstain int) string {
	switch {
	case yes > no && yes > abstain:
		return LeadingYes
	case no > yes && no > abstain:
		return LeadingNo
	default:
		return LeadingTie
	}
}

// Count tallies the votes cast on billID.
func Count(votes []types.Vote, billID int64) types.Tally {
	var t types.Tally
	for _, v := range votes {
		if v.BillID == billID {
			t.Add(v.Vote)
		}
	}
	return t
}
