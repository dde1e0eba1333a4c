// Package types
package types

import (
	"errors"
)

var ErrBillNotFound = errors.New("bill not found")
var ErrBillNotActive = errors.New("bill is not open for voting")
var ErrMemberNotFound = errors.New("member not found")
var ErrInvalidStatus = errors.New("invalid bill status")
var ErrInvalidVote = errors.New("invalid vote value")
var ErrInvalidRole = errors.New("invalid role")
var ErrMalformedCollection = errors.New("malformed collection")

var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrSessionNotFound = errors.New("session not found")
var ErrUserNotFound = errors.New("user not found")
var ErrAlreadyVoted = errors.New("already voted on this bill")
