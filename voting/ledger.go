package voting

import (
	"context"
	"fmt"

	"github.com/akojamsy/voting-system/store"
	"github.com/akojamsy/voting-system/tally"
	"github.com/akojamsy/voting-system/types"
)

// Ledger records at most one vote per (bill, voter). It trusts the caller on
// bill state and voter eligibility, and expects the store lock to be held.
type Ledger struct {
	st *store.Store
}

func NewLedger(st *store.Store) *Ledger {
	return &Ledger{st: st}
}

// Cast overwrites the choice of an existing vote in place, keeping its id and
// timestamp, or appends a fresh one.
func (l *Ledger) Cast(ctx context.Context, billID, userID int64, choice types.VoteChoice) (types.Vote, error) {
	if !choice.Valid() {
		return types.Vote{}, fmt.Errorf("%w: %q", types.ErrInvalidVote, choice)
	}
	votes := make([]types.Vote, len(l.st.Votes), len(l.st.Votes)+1)
	copy(votes, l.st.Votes)

	idx := l.index(billID, userID)
	if idx >= 0 {
		votes[idx].Vote = choice
	} else {
		votes = append(votes, types.Vote{
			ID:        l.st.IDs.NextID(),
			BillID:    billID,
			UserID:    userID,
			Vote:      choice,
			Timestamp: l.st.Now(),
		})
		idx = len(votes) - 1
	}
	if err := l.st.ReplaceVotes(ctx, votes); err != nil {
		return types.Vote{}, err
	}
	return votes[idx], nil
}

func (l *Ledger) index(billID, userID int64) int {
	for i, v := range l.st.Votes {
		if v.BillID == billID && v.UserID == userID {
			return i
		}
	}
	return -1
}

func (l *Ledger) CountVotes(billID int64, choice types.VoteChoice) int {
	count := 0
	for _, v := range l.st.Votes {
		if v.BillID == billID && v.Vote == choice {
			count++
		}
	}
	return count
}

func (l *Ledger) Tally(billID int64) types.Tally {
	return tally.Count(l.st.Votes, billID)
}

func (l *Ledger) Find(billID, userID int64) (types.Vote, bool) {
	idx := l.index(billID, userID)
	if idx < 0 {
		return types.Vote{}, false
	}
	return l.st.Votes[idx], true
}

func (l *Ledger) VotesForBill(billID int64) []types.Vote {
	var votes []types.Vote
	for _, v := range l.st.Votes {
		if v.BillID == billID {
			votes = append(votes, v)
		}
	}
	return votes
}

// VotesByUser returns the voter's history, most recent first.
func (l *Ledger) VotesByUser(userID int64) []types.Vote {
	var votes []types.Vote
	for i := len(l.st.Votes) - 1; i >= 0; i-- {
		if l.st.Votes[i].UserID == userID {
			votes = append(votes, l.st.Votes[i])
		}
	}
	return votes
}

func (l *Ledger) All() []types.Vote {
	votes := make([]types.Vote, len(l.st.Votes))
	copy(votes, l.st.Votes)
	return votes
}
