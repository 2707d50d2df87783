package csv

import (
	"fmt"
	"strconv"

	"vessel-stats/domain/fleet"
)

// PivotBase is the snapshot base name of the vessel pivot for year.
func PivotBase(year int) string { return fmt.Sprintf("vessel_quarterly_pivot_%d", year) }

const (
	EnhancedBase  = "enhanced_project"
	BreakdownBase = "quarterly_breakdown"
	TimelineBase  = "vessel_timeline"
)

// QuarterDaysColumn is the pivot header holding merged days for q.
func QuarterDaysColumn(q fleet.Quarter) string { return fmt.Sprintf("Q%d Days", int(q)) }

// PivotTable lays out one row per vessel with days, average day rate, cost
// and revenue for each quarter of period.
func PivotTable(rows []fleet.VesselRow, period fleet.Period) Table {
	t := Table{Header: []string{"Vessel"}}
	for _, q := range period.Quarters {
		n := int(q)
		t.Header = append(t.Header,
			QuarterDaysColumn(q),
			fmt.Sprintf("Q%d Avg Day Rate", n),
			fmt.Sprintf("Q%d Total Cost", n),
			fmt.Sprintf("Q%d Revenue", n),
		)
	}
	for _, r := range rows {
		row := []string{r.Vessel}
		for _, m := range r.Quarters {
			row = append(row,
				strconv.Itoa(m.Days),
				FormatAmount(m.AvgDayRate),
				FormatAmount(m.TotalCost),
				FormatAmount(m.TotalRevenue),
			)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

var BreakdownColumns = []string{"Project", "Vessel", "Survey Type", "Quarter", "Duration"}

func BreakdownTable(records []fleet.BreakdownRecord) Table {
	t := Table{Header: BreakdownColumns}
	for _, r := range records {
		t.Rows = append(t.Rows, []string{r.Project, r.Vessel, r.SurveyType, r.Label, strconv.Itoa(r.Duration)})
	}
	return t
}

func TimelineTable(segments []fleet.Segment) Table {
	t := Table{Header: []string{"Vessel", "Project", "Legend", "Phase", "Start", "Finish", "Days"}}
	for _, s := range segments {
		t.Rows = append(t.Rows, []string{
			s.Vessel, s.Project, s.Legend, string(s.Phase),
			s.Start.Format(DateLayout), s.Finish.Format(DateLayout), strconv.Itoa(s.Days),
		})
	}
	return t
}
