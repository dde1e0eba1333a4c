package tally

import (
	"github.com/akojamsy/voting-system/types"
)

type Trend struct {
	BillID  int64            `json:"billId"`
	Title   string           `json:"title"`
	Status  types.BillStatus `json:"status"`
	Yes     int              `json:"yes"`
	No      int              `json:"no"`
	Abstain int              `json:"abstain"`
	Total   int              `json:"total"`
}

type CategoryCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type Analytics struct {
	TotalBills        int             `json:"totalBills"`
	PassedBills       int             `json:"passedBills"`
	FailedBills       int             `json:"failedBills"`
	ActiveBills       int             `json:"activeBills"`
	TotalVotes        int             `json:"totalVotes"`
	TotalMembers      int             `json:"totalMembers"`
	PassRate          float64         `json:"passRate"`
	ParticipationRate float64         `json:"participationRate"`
	Trends            []Trend         `json:"trends"`
	Categories        []CategoryCount `json:"categories"`
}

// Summarize builds dashboard statistics. Trends follow bill order and
// categories keep the order in which they are first seen.
func Summarize(bills []types.Bill, votes []types.Vote, memberCount int) Analytics {
	a := Analytics{
		TotalBills:   len(bills),
		TotalVotes:   len(votes),
		TotalMembers: memberCount,
		Trends:       make([]Trend, 0, len(bills)),
		Categories:   []CategoryCount{},
	}

	byBill := make(map[int64]*types.Tally, len(bills))
	for _, b := range bills {
		byBill[b.ID] = &types.Tally{}
	}
	for _, v := range votes {
		if t, ok := byBill[v.BillID]; ok {
			t.Add(v.Vote)
		}
	}

	categoryIndex := make(map[string]int)
	for _, b := range bills {
		switch b.Status {
		case types.BillPassed:
			a.PassedBills++
		case types.BillFailed:
			a.FailedBills++
		case types.BillActive:
			a.ActiveBills++
		}

		t := byBill[b.ID]
		a.Trends = append(a.Trends, Trend{
			BillID:  b.ID,
			Title:   b.Title,
			Status:  b.Status,
			Yes:     t.Yes,
			No:      t.No,
			Abstain: t.Abstain,
			Total:   t.Total,
		})

		if idx, ok := categoryIndex[b.Category]; ok {
			a.Categories[idx].Value++
			continue
		}
		categoryIndex[b.Category] = len(a.Categories)
		a.Categories = append(a.Categories, CategoryCount{Name: b.Category, Value: 1})
	}

	a.PassRate = PercentageOf(a.PassedBills, a.PassedBills+a.FailedBills)
	a.ParticipationRate = PercentageOf(a.TotalVotes, memberCount*a.TotalBills)
	return a
}
