package tally

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akojamsy/voting-system/types"
)

func TestOutcome(t *testing.T) {
	cases := []struct {
		yes, no, abstain int
		want             types.BillStatus
	}{
		{5, 2, 1, types.BillPassed},
		{2, 5, 1, types.BillFailed},
		{1, 2, 5, types.BillFailed},
		{3, 3, 0, types.BillPassed},
		{0, 0, 0, types.BillPassed},
		{2, 3, 3, types.BillFailed},
		{3, 3, 3, types.BillPassed},
		{4, 1, 4, types.BillPassed},
		{1, 4, 4, types.BillFailed},
	}
	for _, c := range cases {
		name := fmt.Sprintf("%d-%d-%d", c.yes, c.no, c.abstain)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.want, Outcome(c.yes, c.no, c.abstain))
		})
	}
}

func TestPercentageOf(t *testing.T) {
	assert.Equal(t, 0.0, PercentageOf(0, 0))
	assert.Equal(t, 0.0, PercentageOf(5, 0))
	assert.Equal(t, 33.3, PercentageOf(1, 3))
	assert.Equal(t, 66.7, PercentageOf(2, 3))
	assert.Equal(t, 100.0, PercentageOf(3, 3))
	assert.Equal(t, 12.5, PercentageOf(1, 8))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, LabelInProgress, Label(types.BillActive, 9, 0, 0))
	assert.Equal(t, LabelPassed, Label(types.BillPassed, 5, 2, 1))
	assert.Equal(t, LabelFailed, Label(types.BillFailed, 2, 5, 1))
	assert.Equal(t, LabelInconclusive, Label(types.BillFailed, 1, 2, 5))

	// A three way tie closes as passed but still displays as inconclusive.
	assert.Equal(t, types.BillPassed, Outcome(3, 3, 3))
	assert.Equal(t, LabelInconclusive, Label(types.BillPassed, 3, 3, 3))
}

func TestLeading(t *testing.T) {
	assert.Equal(t, LeadingYes, Leading(3, 1, 1))
	assert.Equal(t, LeadingNo, Leading(1, 3, 1))
	assert.Equal(t, LeadingTie, Leading(1, 1, 3))
	assert.Equal(t, LeadingTie, Leading(2, 2, 1))
	assert.Equal(t, LeadingTie, Leading(0, 0, 0))
}

func TestCount(t *testing.T) {
	votes := []types.Vote{
		{ID: 1, BillID: 10, UserID: 1, Vote: types.VoteYes},
		{ID: 2, BillID: 10, UserID: 2, Vote: types.VoteNo},
		{ID: 3, BillID: 11, UserID: 1, Vote: types.VoteYes},
		{ID: 4, BillID: 10, UserID: 3, Vote: types.VoteAbstain},
		{ID: 5, BillID: 10, UserID: 4, Vote: types.VoteYes},
	}
	assert.Equal(t, types.Tally{Yes: 2, No: 1, Abstain: 1, Total: 4}, Count(votes, 10))
	assert.Equal(t, types.Tally{Yes: 1, Total: 1}, Count(votes, 11))
	assert.Equal(t, types.Tally{}, Count(votes, 99))
}

func TestReport(t *testing.T) {
	bill := types.Bill{ID: 1, Title: "Health Care Reform Act", Status: types.BillActive}
	r := Report(bill, types.Tally{Yes: 2, No: 1, Abstain: 0, Total: 3}, 4)

	assert.Equal(t, 66.7, r.Percentages.Yes)
	assert.Equal(t, 33.3, r.Percentages.No)
	assert.Equal(t, 0.0, r.Percentages.Abstain)
	assert.Equal(t, 75.0, r.ParticipationRate)
	assert.Equal(t, 1, r.PendingVotes)
	assert.Equal(t, LabelInProgress, r.Label)
	assert.Equal(t, LeadingYes, r.Leading)
	assert.Equal(t, string(types.BillPassed), r.PredictedOutcome)

	bill.Status = types.BillFailed
	r = Report(bill, types.Tally{Yes: 1, No: 1, Abstain: 1, Total: 3}, 2)
	assert.Equal(t, 0, r.PendingVotes)
	assert.Equal(t, LabelInconclusive, r.Label)
	assert.Empty(t, r.PredictedOutcome)
}

func TestSummarize(t *testing.T) {
	bills := []types.Bill{
		{ID: 1, Title: "A", Category: "Health Care", Status: types.BillActive},
		{ID: 2, Title: "B", Category: "Education", Status: types.BillPassed},
		{ID: 3, Title: "C", Category: "Health Care", Status: types.BillFailed},
		{ID: 4, Title: "D", Category: "Environment", Status: types.BillPassed},
	}
	votes := []types.Vote{
		{BillID: 1, UserID: 1, Vote: types.VoteYes},
		{BillID: 1, UserID: 2, Vote: types.VoteNo},
		{BillID: 2, UserID: 1, Vote: types.VoteAbstain},
		{BillID: 99, UserID: 1, Vote: types.VoteYes},
	}
	a := Summarize(bills, votes, 3)

	assert.Equal(t, 4, a.TotalBills)
	assert.Equal(t, 2, a.PassedBills)
	assert.Equal(t, 1, a.FailedBills)
	assert.Equal(t, 1, a.ActiveBills)
	assert.Equal(t, 4, a.TotalVotes)
	assert.Equal(t, 66.7, a.PassRate)
	assert.Equal(t, 33.3, a.ParticipationRate)

	assert.Len(t, a.Trends, 4)
	assert.Equal(t, Trend{BillID: 1, Title: "A", Status: types.BillActive, Yes: 1, No: 1, Total: 2}, a.Trends[0])
	assert.Equal(t, []CategoryCount{
		{Name: "Health Care", Value: 2},
		{Name: "Education", Value: 1},
		{Name: "Environment", Value: 1},
	}, a.Categories)
}

func TestSummarize_Empty(t *testing.T) {
	a := Summarize(nil, nil, 0)
	assert.Equal(t, 0.0, a.PassRate)
	assert.Equal(t, 0.0, a.ParticipationRate)
	assert.Empty(t, a.Trends)
	assert.Empty(t, a.Categories)
}
