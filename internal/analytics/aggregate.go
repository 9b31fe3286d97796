package analytics

import (
	"errors"
	"fmt"
	"time"

	"carservice/internal/domain"
)

// Summary holds the four headline counters of the dashboard.
type Summary struct {
	DailyBookings      int `json:"daily_bookings"`
	WeeklyBookings     int `json:"weekly_bookings"`
	MonthlyBookings    int `json:"monthly_bookings"`
	TotalCancellations int `json:"total_cancellations"`
}

// Report is the display-ready shape derived from a raw stats payload.
// Renderers consume it without further transformation.
type Report struct {
	Summary       Summary                   `json:"summary"`
	DailySeries   DailySeries               `json:"daily_series"`
	MonthlySeries []domain.MonthlyBreakdown `json:"monthly_series"`
	IsEmpty       bool                      `json:"is_empty"`

	// DefaultedFields records which absent optional counters were resolved
	// to zero. Internal bookkeeping for tests, not part of the wire shape.
	DefaultedFields []string `json:"-"`
}

// Aggregate validates a stats payload and reshapes it for rendering. It fails
// on the first structural violation and never returns a partial report. The
// payload comes from an independently evolving backend, so every field gets
// an explicit default-or-fail decision: an absent optional counter becomes 0
// (recorded in DefaultedFields), anything malformed is a ValidationError.
func Aggregate(ref time.Time, payload *domain.DashboardStats) (*Report, error) {
	if payload == nil {
		return nil, validationErrorf("payload", "missing")
	}

	r := &Report{}

	var err error
	if r.Summary.DailyBookings, err = r.counter("daily_bookings", payload.DailyBookings); err != nil {
		return nil, err
	}
	if r.Summary.WeeklyBookings, err = r.counter("weekly_bookings", payload.WeeklyBookings); err != nil {
		return nil, err
	}
	if r.Summary.MonthlyBookings, err = r.counter("monthly_bookings", payload.MonthlyBookings); err != nil {
		return nil, err
	}
	if r.Summary.TotalCancellations, err = r.counter("total_cancellations", payload.TotalCancellations); err != nil {
		return nil, err
	}

	series, err := Densify(ref, payload.DailyBookingsChart)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return nil, validationErrorf("daily_bookings_chart."+verr.Field, "%s", verr.Reason)
		}
		return nil, err
	}
	r.DailySeries = series
	// Computed from the densified series so that an empty map and a map of
	// explicit zeros look identical to the renderer.
	r.IsEmpty = series.IsEmpty()

	monthly, err := validateMonthly(payload.YearlyBreakdownChart)
	if err != nil {
		return nil, err
	}
	r.MonthlySeries = monthly

	return r, nil
}

// counter resolves one optional scalar: absent means zero (a documented
// default, not an error), negative fails.
func (r *Report) counter(field string, v *int) (int, error) {
	if v == nil {
		r.DefaultedFields = append(r.DefaultedFields, field)
		return 0, nil
	}
	if *v < 0 {
		return 0, validationErrorf(field, "negative count %d", *v)
	}
	return *v, nil
}

// validateMonthly enforces unique month labels and non-negative counts. The
// input order is preserved as-is: chronological ordering is the producer's
// contract, and re-sorting abbreviated month labels lexicographically would
// corrupt it.
func validateMonthly(in []domain.MonthlyBreakdown) ([]domain.MonthlyBreakdown, error) {
	seen := make(map[string]bool, len(in))
	out := make([]domain.MonthlyBreakdown, 0, len(in))
	for i, e := range in {
		field := func(name string) string {
			return fmt.Sprintf("yearly_breakdown_chart[%d].%s", i, name)
		}
		if e.Month == "" {
			return nil, validationErrorf(field("month"), "empty label")
		}
		if seen[e.Month] {
			return nil, validationErrorf(field("month"), "duplicate label %q", e.Month)
		}
		seen[e.Month] = true
		if e.Bookings < 0 {
			return nil, validationErrorf(field("bookings"), "negative count %d", e.Bookings)
		}
		if e.Cancellations < 0 {
			return nil, validationErrorf(field("cancellations"), "negative count %d", e.Cancellations)
		}
		out = append(out, e)
	}
	return out, nil
}
