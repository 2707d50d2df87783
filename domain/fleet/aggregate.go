package fleet

import (
	lo "github.com/samber/lo"
)

// VesselQuarter keys the aggregated metrics.
type VesselQuarter struct {
	Vessel  string
	Quarter Quarter
}

// VesselQuarterMetrics is the utilisation rollup of one vessel in one
// quarter.
type VesselQuarterMetrics struct {
	Vessel  string
	Quarter Quarter
	Label   string
	// Days counts each calendar day once even if several projects cover it.
	Days int
	// AvgDayRate is weighted by each project's own days in the quarter.
	AvgDayRate   float64
	TotalCost    float64
	TotalRevenue float64
}

// Aggregate rolls projects up per vessel and quarter of period. Every vessel
// of roster.Order(projects) gets a record for every quarter of period, zero
// valued when nothing overlaps it.
//
// Days merges the quarter-clipped spans so overlapping or back-to-back
// projects are not double counted. The average day rate is weighted by the
// unmerged per-project days, cost is that rate times the merged days, and
// revenue is summed as given without pro-rating.
func Aggregate(projects []Project, period Period, roster Roster) map[VesselQuarter]VesselQuarterMetrics {
	out := map[VesselQuarter]VesselQuarterMetrics{}
	for _, vessel := range roster.Order(projects) {
		for _, q := range period.Quarters {
			out[VesselQuarter{Vessel: vessel, Quarter: q}] = VesselQuarterMetrics{
				Vessel:  vessel,
				Quarter: q,
				Label:   q.Label(period.Year),
			}
		}
	}

	groups := lo.GroupBy(projectQuarters(projects, period), func(e projectQuarter) VesselQuarter {
		return VesselQuarter{Vessel: e.project.Vessel, Quarter: e.quarter}
	})
	for key, group := range groups {
		m := out[key]
		m.Vessel, m.Quarter, m.Label = key.Vessel, key.Quarter, key.Quarter.Label(period.Year)

		m.Days = MergedDays(lo.Map(group, func(e projectQuarter, _ int) DateRange { return e.span }))
		rawDays := lo.SumBy(group, func(e projectQuarter) int { return e.days })
		if rawDays > 0 {
			weighted := lo.SumBy(group, func(e projectQuarter) float64 { return e.project.DayRate * float64(e.days) })
			m.AvgDayRate = weighted / float64(rawDays)
		}
		m.TotalCost = m.AvgDayRate * float64(m.Days)
		m.TotalRevenue = lo.SumBy(group, func(e projectQuarter) float64 { return e.project.Revenue })
		out[key] = m
	}
	return out
}

// VesselRow is one line of the quarterly pivot: a vessel and its metrics in
// period order.
type VesselRow struct {
	Vessel   string
	Quarters []VesselQuarterMetrics
}

// Pivot lays aggregated metrics out one row per vessel in roster order.
func Pivot(metrics map[VesselQuarter]VesselQuarterMetrics, period Period, vessels []string) []VesselRow {
	return lo.Map(vessels, func(vessel string, _ int) VesselRow {
		return VesselRow{
			Vessel: vessel,
			Quarters: lo.Map(period.Quarters, func(q Quarter, _ int) VesselQuarterMetrics {
				m, ok := metrics[VesselQuarter{Vessel: vessel, Quarter: q}]
				if !ok {
					return VesselQuarterMetrics{Vessel: vessel, Quarter: q, Label: q.Label(period.Year)}
				}
				return m
			}),
		}
	})
}
