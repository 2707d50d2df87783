package csv

import (
	"testing"
	"time"

	"vessel-stats/domain/fleet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPivotTable(t *testing.T) {
	period := fleet.Period{Year: 2025, Quarters: []fleet.Quarter{1, 2}}
	rows := []fleet.VesselRow{{
		Vessel: "A",
		Quarters: []fleet.VesselQuarterMetrics{
			{Vessel: "A", Quarter: 1, Days: 15, AvgDayRate: 25000.0 / 15, TotalCost: 25000, TotalRevenue: 120},
			{Vessel: "A", Quarter: 2},
		},
	}}
	tbl := PivotTable(rows, period)

	require.Equal(t, []string{
		"Vessel",
		"Q1 Days", "Q1 Avg Day Rate", "Q1 Total Cost", "Q1 Revenue",
		"Q2 Days", "Q2 Avg Day Rate", "Q2 Total Cost", "Q2 Revenue",
	}, tbl.Header)
	require.Equal(t, []string{"A", "15", "1666.67", "25000", "120", "0", "0", "0", "0"}, tbl.Rows[0])
	assert.Equal(t, "vessel_quarterly_pivot_2025", PivotBase(2025))
}

func TestBreakdownTable(t *testing.T) {
	tbl := BreakdownTable([]fleet.BreakdownRecord{{Project: "P", Vessel: "A", SurveyType: "3D", Quarter: 1, Label: "Q1-2025", Duration: 42}})
	assert.Equal(t, BreakdownColumns, tbl.Header)
	assert.Equal(t, []string{"P", "A", "3D", "Q1-2025", "42"}, tbl.Rows[0])
}

func TestTimelineTable(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tbl := TimelineTable([]fleet.Segment{{
		Vessel: "A", Project: "P", Legend: "Ghana 2D", Phase: fleet.PhaseMobilization,
		Start: start, Finish: start.AddDate(0, 0, 3), Days: 3,
	}})
	assert.Equal(t, []string{"A", "P", "Ghana 2D", "Mobilization", "2025-01-01", "2025-01-04", "3"}, tbl.Rows[0])
}
