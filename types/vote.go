// Package types
package types

import (
	"encoding/json"
	"fmt"
	"time"
)

type VoteChoice string

const (
	VoteYes     VoteChoice = "yes"
	VoteNo      VoteChoice = "no"
	VoteAbstain VoteChoice = "abstain"
)

func (v VoteChoice) Valid() bool {
	switch v {
	case VoteYes, VoteNo, VoteAbstain:
		return true
	}
	return false
}

func ParseVoteChoice(s string) (VoteChoice, error) {
	choice := VoteChoice(s)
	if !choice.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidVote, s)
	}
	return choice, nil
}

func (v *VoteChoice) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	choice, err := ParseVoteChoice(raw)
	if err != nil {
		return err
	}
	*v = choice
	return nil
}

type Vote struct {
	ID        int64      `json:"id"`
	BillID    int64      `json:"billId"`
	UserID    int64      `json:"userId"`
	Vote      VoteChoice `json:"vote"`
	Timestamp time.Time  `json:"timestamp"`
}

// Tally is the yes/no/abstain count of a single bill.
type Tally struct {
	Yes     int `json:"yes"`
	No      int `json:"no"`
	Abstain int `json:"abstain"`
	Total   int `json:"total"`
}

func (t *Tally) Add(choice VoteChoice) {
	switch choice {
	case VoteYes:
		t.Yes++
	case VoteNo:
		t.No++
	case VoteAbstain:
		t.Abstain++
	default:
		return
	}
	t.Total++
}

// VoteRecord is a vote joined with the display name of its voter.
type VoteRecord struct {
	Vote
	VoterName string `json:"voterName"`
}
