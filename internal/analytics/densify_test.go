package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDensify_CoversWholeMonth(t *testing.T) {
	cases := []struct {
		ref  time.Time
		days int
	}{
		{time.Date(2025, time.November, 14, 0, 0, 0, 0, time.UTC), 30},
		{time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), 31},
		{time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), 28},
		{time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), 29}, // leap year
	}

	for _, tc := range cases {
		series, err := Densify(tc.ref, nil)
		assert.NoError(t, err)
		assert.Len(t, series, tc.days, "month of %s", tc.ref.Format("2006-01"))
	}
}

func TestDensify_SparseInput(t *testing.T) {
	ref := time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC)
	series, err := Densify(ref, map[string]int{
		"2025-11-03": 1,
		"2025-11-05": 2,
	})

	assert.NoError(t, err)
	assert.Len(t, series, 30)
	assert.False(t, series.IsEmpty())
	assert.Equal(t, 3, series.Total())

	for i, p := range series {
		switch i {
		case 2:
			assert.Equal(t, DailyPoint{Day: "11-03", Bookings: 1}, p)
		case 4:
			assert.Equal(t, DailyPoint{Day: "11-05", Bookings: 2}, p)
		default:
			assert.Zero(t, p.Bookings, "day %s", p.Day)
		}
	}
}

func TestDensify_EmptyInputIsAllZero(t *testing.T) {
	ref := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	series, err := Densify(ref, map[string]int{})
	assert.NoError(t, err)
	assert.Len(t, series, 30)
	assert.True(t, series.IsEmpty())
}

func TestDensify_DropsKeysOutsideMonth(t *testing.T) {
	ref := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)

	series, err := Densify(ref, map[string]int{
		"2025-10-31": 7,
		"2025-11-10": 4,
		"2025-12-01": 2,
	})
	assert.NoError(t, err)
	assert.Equal(t, 4, series.Total())
}

func TestDensify_TotalMatchesInMonthSum(t *testing.T) {
	ref := time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)
	sparse := map[string]int{
		"2025-03-01": 2,
		"2025-03-15": 5,
		"2025-03-31": 1,
		"2025-04-01": 9, // outside target month
	}

	series, err := Densify(ref, sparse)
	assert.NoError(t, err)
	assert.Equal(t, 8, series.Total())

	// Densifying the same input again gives the same series.
	again, err := Densify(ref, sparse)
	assert.NoError(t, err)
	assert.Equal(t, series, again)
}

func TestDensify_InvalidDateKey(t *testing.T) {
	ref := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)

	series, err := Densify(ref, map[string]int{"2025-02-30": 1})
	assert.Nil(t, series)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "2025-02-30", verr.Field)
}

func TestDensify_NegativeCount(t *testing.T) {
	ref := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)

	series, err := Densify(ref, map[string]int{"2025-11-08": -1})
	assert.Nil(t, series)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "2025-11-08", verr.Field)
}
