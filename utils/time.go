// Package utils
package utils

import (
	"time"
)

// DaysBefore returns t shifted back by whole days.
func DaysBefore(t time.Time, days int) time.Time {
	return t.Add(-time.Duration(days) * 24 * time.Hour)
}
