package analytics

import "time"

const (
	// DateKeyLayout is the canonical YYYY-MM-DD key used by the sparse
	// chart payload.
	DateKeyLayout = "2006-01-02"

	// dayLabelLayout is the short MM-DD label placed on the chart x-axis.
	dayLabelLayout = "01-02"
)

// ParseDateKey parses a canonical date key. Invalid calendar dates
// (e.g. 2025-02-30) are rejected by time.Parse, not silently rolled over.
func ParseDateKey(key string) (time.Time, error) {
	return time.Parse(DateKeyLayout, key)
}

// FormatDateKey renders t as a canonical date key.
func FormatDateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}
