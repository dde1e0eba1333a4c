// Package types
package types

import (
	"encoding/json"
	"fmt"
	"time"
)

type BillStatus string

const (
	BillActive BillStatus = "active"
	BillPassed BillStatus = "passed"
	BillFailed BillStatus = "failed"
)

func (s BillStatus) Valid() bool {
	switch s {
	case BillActive, BillPassed, BillFailed:
		return true
	}
	return false
}

func ParseBillStatus(s string) (BillStatus, error) {
	status := BillStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return status, nil
}

func (s *BillStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	status, err := ParseBillStatus(raw)
	if err != nil {
		return err
	}
	*s = status
	return nil
}

type Bill struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Status      BillStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// BillFields carries the caller supplied text of a new bill.
type BillFields struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=5000"`
	Category    string `json:"category" validate:"required,max=100"`
}

// BillFilter selects bills by status, newest first.
type BillFilter struct {
	Status     BillStatus
	Pagination *Pagination
}
