package spending

import (
	"testing"
	"time"
)

func TestResolveRange(t *testing.T) {
	// Anchor mid-month to make the bounds unambiguous.
	now := time.Date(2026, time.September, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		kind     RangeKind
		wantFrom string
		wantTo   string
	}{
		{RangeThisMonth, "2026-09-01", "2026-09-30"},
		{RangeLastMonth, "2026-08-01", "2026-08-31"},
		{RangeLast3Months, "2026-06-01", "2026-09-30"},
		{RangeYTD, "2026-01-01", "2026-09-30"},
		{RangeAll, "2000-01-01", "2026-09-30"},
		{RangeKind("bogus"), "2000-01-01", "2026-09-30"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			from, to := ResolveRange(tt.kind, now)
			if from != tt.wantFrom || to != tt.wantTo {
				t.Errorf("ResolveRange(%s) = [%s, %s], want [%s, %s]",
					tt.kind, from, to, tt.wantFrom, tt.wantTo)
			}
		})
	}
}

func TestResolveRangeYearBoundary(t *testing.T) {
	// January: last_month crosses the year, ytd is a single month.
	now := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

	from, to := ResolveRange(RangeLastMonth, now)
	if from != "2025-12-01" || to != "2025-12-31" {
		t.Errorf("last_month = [%s, %s], want [2025-12-01, 2025-12-31]", from, to)
	}

	from, to = ResolveRange(RangeYTD, now)
	if from != "2026-01-01" || to != "2026-01-31" {
		t.Errorf("ytd = [%s, %s], want [2026-01-01, 2026-01-31]", from, to)
	}
}

func TestResolveRangeFebruary(t *testing.T) {
	now := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)

	from, to := ResolveRange(RangeThisMonth, now)
	if from != "2024-02-01" || to != "2024-02-29" {
		t.Errorf("this_month = [%s, %s], want leap-year February bounds", from, to)
	}

	// March 31 anchors: last_month must not normalize past February.
	now = time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	from, to = ResolveRange(RangeLastMonth, now)
	if from != "2024-02-01" || to != "2024-02-29" {
		t.Errorf("last_month from March 31 = [%s, %s], want February bounds", from, to)
	}
}

func TestValidRange(t *testing.T) {
	for _, kind := range []RangeKind{RangeThisMonth, RangeLastMonth, RangeLast3Months, RangeYTD, RangeAll} {
		if !ValidRange(kind) {
			t.Errorf("expected %s to be valid", kind)
		}
	}
	if ValidRange("last_week") {
		t.Error("expected unknown range to be invalid")
	}
}
