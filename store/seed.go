package store

import (
	"time"

	"github.com/akojamsy/voting-system/types"
	"github.com/akojamsy/voting-system/utils"
)

func DefaultMembers() []types.Member {
	return []types.Member{
		{
			ID:           1,
			Name:         "John Smith",
			Party:        "Democratic Party",
			Constituency: "District 1",
			Email:        "john@parliament.gov",
		},
		{
			ID:           2,
			Name:         "Sarah Johnson",
			Party:        "Republican Party",
			Constituency: "District 2",
			Email:        "sarah@parliament.gov",
		},
		{
			ID:           3,
			Name:         "Michael Brown",
			Party:        "Independent",
			Constituency: "District 3",
			Email:        "michael@parliament.gov",
		},
	}
}

// DefaultBills returns one active, one failed and two passed bills, each a whole day older than the previous.
func DefaultBills(now time.Time) []types.Bill {
	return []types.Bill{
		{
			ID:          1,
			Title:       "Health Care Reform Act",
			Description: "A bill to improve and expand access to affordable health care.",
			Status:      types.BillActive,
			Category:    "Health Care",
			CreatedAt:   now,
		},
		{
			ID:          2,
			Title:       "Education Funding Bill",
			Description: "Increase funding for public education systems.",
			Status:      types.BillPassed,
			Category:    "Education",
			CreatedAt:   utils.DaysBefore(now, 1),
		},
		{
			ID:          3,
			Title:       "Infrastructure Investment Act",
			Description: "Investment in roads, bridges, and public transportation.",
			Status:      types.BillFailed,
			Category:    "Infrastructure",
			CreatedAt:   utils.DaysBefore(now, 2),
		},
		{
			ID:          4,
			Title:       "Environmental Protection Bill",
			Description: "Strengthen environmental regulations and protections.",
			Status:      types.BillPassed,
			Category:    "Environment",
			CreatedAt:   utils.DaysBefore(now, 3),
		},
	}
}
