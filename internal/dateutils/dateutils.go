// Package dateutils provides common date and time operations used during
// record ingestion.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutFull     = "2006-01-02 15:04:05"
)

// ingestFormats lists the timestamp formats accepted in imported record
// files, most specific first.
var ingestFormats = []string{
	time.RFC3339,
	DateLayoutFull,
	DateLayoutISO,
	DateLayoutEuropean,
}

// ParseTimestamp parses a timestamp string from an imported records file
// using multiple common formats. An empty string yields the zero time.
func ParseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}

	for _, format := range ingestFormats {
		if t, err := time.Parse(format, raw); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse timestamp: %s", raw)
}

// ToISODate formats a time.Time as an ISO date (YYYY-MM-DD). The zero
// time yields an empty string.
func ToISODate(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format(DateLayoutISO)
}
