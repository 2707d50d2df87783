package fleet

import (
	"errors"
	"fmt"
	"sort"
	"time"

	lo "github.com/samber/lo"
)

// ErrInvalidRange is returned when a range ends before it starts.
var ErrInvalidRange = errors.New("fleet: range ends before it starts")

const dayLayout = "2006-01-02"

// DateRange is a closed interval of calendar days: both Start and End are
// counted.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange truncates both ends to their calendar day and rejects
// reversed intervals.
func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: Day(start), End: Day(end)}
	if !r.Valid() {
		return DateRange{}, fmt.Errorf("%w: %s", ErrInvalidRange, r)
	}
	return r, nil
}

// Day returns midnight UTC of the calendar day t falls on.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween is the number of whole days from a to b (negative when b is
// before a).
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)) / (24 * time.Hour))
}

func (r DateRange) Valid() bool { return !r.End.Before(r.Start) }

// Days is the inclusive day count, 0 for a reversed range.
func (r DateRange) Days() int {
	if !r.Valid() {
		return 0
	}
	return DaysBetween(r.Start, r.End) + 1
}

// Intersect clips r to o. The boolean is false when they share no day.
func (r DateRange) Intersect(o DateRange) (DateRange, bool) {
	out := DateRange{Start: r.Start, End: r.End}
	if o.Start.After(out.Start) {
		out.Start = o.Start
	}
	if o.End.Before(out.End) {
		out.End = o.End
	}
	if !out.Valid() {
		return DateRange{}, false
	}
	return out, true
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s..%s", r.Start.Format(dayLayout), r.End.Format(dayLayout))
}

// MergeRanges folds overlapping or back-to-back ranges into disjoint ones,
// ordered by start. A range starting the day after the running range ends is
// treated as contiguous. Reversed ranges carry no days and are dropped.
func MergeRanges(ranges []DateRange) []DateRange {
	sorted := lo.Filter(ranges, func(r DateRange, _ int) bool { return r.Valid() })
	if len(sorted) == 0 {
		return nil
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start.Before(sorted[j].Start) })

	merged := make([]DateRange, 0, len(sorted))
	cur := sorted[0]
	for _, r := range sorted[1:] {
		if !r.Start.After(cur.End.AddDate(0, 0, 1)) {
			if r.End.After(cur.End) {
				cur.End = r.End
			}
			continue
		}
		merged = append(merged, cur)
		cur = r
	}
	return append(merged, cur)
}

// MergedDays counts every day covered by ranges exactly once.
func MergedDays(ranges []DateRange) int {
	return lo.SumBy(MergeRanges(ranges), func(r DateRange) int { return r.Days() })
}
