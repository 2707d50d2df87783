package fleet

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidQuarter is returned for quarter numbers outside 1..4.
var ErrInvalidQuarter = errors.New("fleet: quarter must be between 1 and 4")

// Quarter is a calendar quarter number, 1 to 4.
type Quarter int

func (q Quarter) Valid() bool { return q >= 1 && q <= 4 }

// Label is the pivot form, e.g. "Q1 2025".
func (q Quarter) Label(year int) string { return fmt.Sprintf("Q%d %d", int(q), year) }

// BreakdownLabel is the drill-down form, e.g. "Q1-2025".
func (q Quarter) BreakdownLabel(year int) string { return fmt.Sprintf("Q%d-%d", int(q), year) }

// QuarterBounds returns the first and last calendar day of quarter q.
func QuarterBounds(year int, q Quarter) (DateRange, error) {
	if !q.Valid() {
		return DateRange{}, fmt.Errorf("%w: %d", ErrInvalidQuarter, int(q))
	}
	start := time.Date(year, time.Month((int(q)-1)*3+1), 1, 0, 0, 0, 0, time.UTC)
	return DateRange{Start: start, End: start.AddDate(0, 3, -1)}, nil
}

// ClipToQuarter intersects span with the calendar bounds of quarter q.
func ClipToQuarter(span DateRange, year int, q Quarter) (DateRange, bool) {
	bounds, err := QuarterBounds(year, q)
	if err != nil {
		return DateRange{}, false
	}
	return DateRange{Start: Day(span.Start), End: Day(span.End)}.Intersect(bounds)
}

// DaysInQuarter counts the days of [start, end] that fall inside quarter q
// of year. It does no merging, so it only makes sense for a single project.
func DaysInQuarter(start, end time.Time, year int, q Quarter) int {
	clipped, ok := ClipToQuarter(DateRange{Start: start, End: end}, year, q)
	if !ok {
		return 0
	}
	return clipped.Days()
}

// Period is the reporting window: one year and the quarters reported for it.
type Period struct {
	Year     int
	Quarters []Quarter
}

// FullYear reports all four quarters of year.
func FullYear(year int) Period {
	return Period{Year: year, Quarters: []Quarter{1, 2, 3, 4}}
}

func (p Period) Validate() error {
	if len(p.Quarters) == 0 {
		return errors.New("fleet: period has no quarters")
	}
	seen := map[Quarter]bool{}
	for _, q := range p.Quarters {
		if !q.Valid() {
			return fmt.Errorf("%w: %d", ErrInvalidQuarter, int(q))
		}
		if seen[q] {
			return fmt.Errorf("fleet: quarter %d listed twice", int(q))
		}
		seen[q] = true
	}
	return nil
}

// Bounds spans the first day of January to the last day of December.
func (p Period) Bounds() DateRange {
	return DateRange{
		Start: time.Date(p.Year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(p.Year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}
