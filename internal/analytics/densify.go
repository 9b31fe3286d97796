package analytics

import "time"

// DailyPoint is one calendar day on the daily bookings chart.
type DailyPoint struct {
	Day      string `json:"day"`
	Bookings int    `json:"bookings"`
}

// DailySeries covers every day of a single month, in ascending order.
type DailySeries []DailyPoint

// Total sums the counts across the series.
func (s DailySeries) Total() int {
	total := 0
	for _, p := range s {
		total += p.Bookings
	}
	return total
}

// IsEmpty reports whether every day in the series is zero.
func (s DailySeries) IsEmpty() bool {
	return s.Total() == 0
}

// Densify turns a sparse date-key -> count map into a dense series covering
// every day of ref's month. Missing days default to zero, keys outside the
// target month are dropped (charts are strictly month-scoped). A key that is
// not a valid date, or a negative count, fails with a ValidationError — it is
// never clamped or skipped.
func Densify(ref time.Time, sparse map[string]int) (DailySeries, error) {
	for key, count := range sparse {
		if _, err := ParseDateKey(key); err != nil {
			return nil, validationErrorf(key, "not a valid date key")
		}
		if count < 0 {
			return nil, validationErrorf(key, "negative count %d", count)
		}
	}

	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()

	series := make(DailySeries, 0, days)
	for i := 0; i < days; i++ {
		day := first.AddDate(0, 0, i)
		series = append(series, DailyPoint{
			Day:      day.Format(dayLabelLayout),
			Bookings: sparse[FormatDateKey(day)],
		})
	}
	return series, nil
}
