// Package types
package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	wrapErr := fmt.Errorf("load bills: %w", ErrMalformedCollection)
	assert.True(t, errors.Is(wrapErr, ErrMalformedCollection))
	assert.False(t, errors.Is(wrapErr, ErrBillNotFound))
}

func TestBillStatus_UnmarshalJSON(t *testing.T) {
	var b Bill
	err := json.Unmarshal([]byte(`{"id":1,"status":"passed"}`), &b)
	assert.NoError(t, err)
	assert.Equal(t, BillPassed, b.Status)

	err = json.Unmarshal([]byte(`{"id":1,"status":"pending"}`), &b)
	assert.True(t, errors.Is(err, ErrInvalidStatus))
}

func TestVoteChoice_UnmarshalJSON(t *testing.T) {
	var v Vote
	assert.NoError(t, json.Unmarshal([]byte(`{"vote":"abstain"}`), &v))
	assert.Equal(t, VoteAbstain, v.Vote)

	err := json.Unmarshal([]byte(`{"vote":"maybe"}`), &v)
	assert.True(t, errors.Is(err, ErrInvalidVote))
}

func TestRole_UnmarshalJSON(t *testing.T) {
	var u User
	assert.NoError(t, json.Unmarshal([]byte(`{"role":"admin"}`), &u))
	assert.True(t, u.IsAdmin())

	err := json.Unmarshal([]byte(`{"role":"root"}`), &u)
	assert.True(t, errors.Is(err, ErrInvalidRole))
}

func TestTally_Add(t *testing.T) {
	var tally Tally
	for _, c := range []VoteChoice{VoteYes, VoteYes, VoteNo, VoteAbstain, VoteChoice("bogus")} {
		tally.Add(c)
	}
	assert.Equal(t, Tally{Yes: 2, No: 1, Abstain: 1, Total: 4}, tally)
}
