package timebucket

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func one() decimal.Decimal { return decimal.NewFromInt(1) }

func TestMonthlyAlwaysSixBuckets(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.Local)
	buckets := Monthly(nil, now)
	if len(buckets) != Months {
		t.Fatalf("got %d buckets, want %d", len(buckets), Months)
	}
	wantLabels := []string{"January", "February", "March", "April", "May", "June"}
	for i, b := range buckets {
		if b.Label != wantLabels[i] {
			t.Fatalf("bucket %d label = %q, want %q", i, b.Label, wantLabels[i])
		}
		if !b.Value.IsZero() {
			t.Fatalf("bucket %d value = %s, want 0", i, b.Value)
		}
	}
}

func TestMonthlyWindowEdges(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.Local)
	points := []Point{
		// exactly the window start: first (oldest) bucket
		{At: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local), Value: one()},
		// one second before the window: excluded
		{At: time.Date(2023, time.December, 31, 23, 59, 59, 0, time.Local), Value: one()},
		// a month boundary belongs to the later month
		{At: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local), Value: one()},
		// current month
		{At: now, Value: one()},
	}
	buckets := Monthly(points, now)

	if !buckets[0].Value.Equal(one()) {
		t.Fatalf("January bucket = %s, want 1", buckets[0].Value)
	}
	if buckets[0].Label != "January" {
		t.Fatalf("oldest bucket label = %q, want January", buckets[0].Label)
	}
	if !buckets[1].Value.IsZero() {
		t.Fatalf("February bucket = %s, want 0 (December point must be excluded)", buckets[1].Value)
	}
	if !buckets[2].Value.Equal(one()) {
		t.Fatalf("March bucket = %s, want 1 (boundary goes to the later month)", buckets[2].Value)
	}
	if !buckets[5].Value.Equal(one()) {
		t.Fatalf("June bucket = %s, want 1", buckets[5].Value)
	}
}

func TestMonthlyNoDoubleCounting(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.Local)
	points := []Point{
		{At: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.Local), Value: decimal.NewFromInt(5)},
	}
	total := decimal.Zero
	for _, b := range Monthly(points, now) {
		total = total.Add(b.Value)
	}
	if !total.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("sum over buckets = %s, want 5", total)
	}
}

func TestMonthlyYearRollover(t *testing.T) {
	// Window spanning a year boundary: Sep..Feb.
	now := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.Local)
	points := []Point{
		{At: time.Date(2023, time.September, 5, 0, 0, 0, 0, time.Local), Value: one()},
		{At: time.Date(2024, time.January, 20, 0, 0, 0, 0, time.Local), Value: one()},
	}
	buckets := Monthly(points, now)
	if buckets[0].Label != "September" || !buckets[0].Value.Equal(one()) {
		t.Fatalf("bucket 0 = %s %s, want September 1", buckets[0].Label, buckets[0].Value)
	}
	if buckets[4].Label != "January" || !buckets[4].Value.Equal(one()) {
		t.Fatalf("bucket 4 = %s %s, want January 1", buckets[4].Label, buckets[4].Value)
	}
}

func TestWindowStart(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.Local)
	want := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)
	if got := WindowStart(now); !got.Equal(want) {
		t.Fatalf("window start = %s, want %s", got, want)
	}
}

func TestToday(t *testing.T) {
	now := time.Date(2024, time.June, 15, 18, 30, 0, 0, time.Local)
	start, end := Today(now)
	if !start.Equal(time.Date(2024, time.June, 15, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("start = %s", start)
	}
	if !end.Equal(time.Date(2024, time.June, 16, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("end = %s", end)
	}
	if !now.Before(end) || now.Before(start) {
		t.Fatalf("now %s should fall inside [%s, %s)", now, start, end)
	}
}
