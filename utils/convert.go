// Package utils
package utils

import (
	"strconv"
	"strings"
)

// StrToInt64 parses a decimal id, reporting false for anything that is not a positive integer.
func StrToInt64(data string) (int64, bool) {
	i, err := strconv.ParseInt(strings.TrimSpace(data), 10, 64)
	if err != nil || i <= 0 {
		return 0, false
	}
	return i, true
}

// NormalizeEmail lowercases and trims an address so lookups are case insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
