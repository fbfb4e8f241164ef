// Package timebucket groups timestamped values into the trailing six
// calendar months for the dashboard charts.
package timebucket

import (
	"time"

	"github.com/shopspring/decimal"
)

// Months is the chart window: the current month plus the five before it.
const Months = 6

type Point struct {
	At    time.Time
	Value decimal.Decimal
}

type Bucket struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// Monthly buckets the points by calendar month. Bucket bounds are
// inclusive at the month start and exclusive at the next month start, so
// a point dated exactly on a boundary lands in the later month. Points
// outside the window are dropped. The result always has six buckets,
// oldest month first.
func Monthly(points []Point, now time.Time) []Bucket {
	starts := monthStarts(now)

	buckets := make([]Bucket, Months)
	for i := 0; i < Months; i++ {
		// starts[i] counts back from the current month; the output is
		// oldest-first, so index from the far end.
		j := Months - 1 - i
		buckets[j] = Bucket{Label: starts[i].Month().String(), Value: decimal.Zero}
	}

	for _, p := range points {
		for i := 0; i < Months; i++ {
			upper := starts[i].AddDate(0, 1, 0)
			if !p.At.Before(starts[i]) && p.At.Before(upper) {
				j := Months - 1 - i
				buckets[j].Value = buckets[j].Value.Add(p.Value)
				break
			}
		}
	}
	return buckets
}

// WindowStart is the first instant covered by Monthly for the given now,
// i.e. the 1st of the month five months back. Useful for scoping the
// store query to the chart window.
func WindowStart(now time.Time) time.Time {
	return monthStarts(now)[Months-1]
}

// Today returns the [midnight, next midnight) local-time range for the
// sales-today statistic.
func Today(now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}

func monthStarts(now time.Time) [Months]time.Time {
	var starts [Months]time.Time
	for i := 0; i < Months; i++ {
		starts[i] = time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
	}
	return starts
}
