package spending

import "time"

// RangeKind names a calendar window used to scope transaction queries.
type RangeKind string

const (
	RangeThisMonth   RangeKind = "this_month"
	RangeLastMonth   RangeKind = "last_month"
	RangeLast3Months RangeKind = "last_3_months"
	RangeYTD         RangeKind = "ytd"
	RangeAll         RangeKind = "all"
)

// epochFloor is the lower bound of the "all" range.
var epochFloor = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// ValidRange reports whether kind is a known range filter.
func ValidRange(kind RangeKind) bool {
	switch kind {
	case RangeThisMonth, RangeLastMonth, RangeLast3Months, RangeYTD, RangeAll:
		return true
	}
	return false
}

// ResolveRange maps a range kind to inclusive [from, to] date strings
// anchored on now. It is total: unknown kinds resolve like RangeAll.
func ResolveRange(kind RangeKind, now time.Time) (from, to string) {
	var start, end time.Time

	switch kind {
	case RangeThisMonth:
		start = startOfMonth(now)
		end = endOfMonth(now)
	case RangeLastMonth:
		start = startOfMonth(now).AddDate(0, -1, 0)
		end = startOfMonth(now).AddDate(0, 0, -1)
	case RangeLast3Months:
		start = startOfMonth(now).AddDate(0, -3, 0)
		end = endOfMonth(now)
	case RangeYTD:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		end = endOfMonth(now)
	default:
		start = epochFloor
		end = endOfMonth(now)
	}

	return start.Format("2006-01-02"), end.Format("2006-01-02")
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func endOfMonth(t time.Time) time.Time {
	return startOfMonth(t).AddDate(0, 1, -1)
}
