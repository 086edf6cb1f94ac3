package handler

import (
	"strings"
	"time"
)

// parseDateOptional parses a YYYY-MM-DD value. Empty input yields the zero
// time, which downstream code treats as "default to today".
func parseDateOptional(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", value)
}
