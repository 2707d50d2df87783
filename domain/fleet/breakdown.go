package fleet

import (
	"sort"
)

// BreakdownRecord is one project's days in one quarter. Unlike the vessel
// rollup it is not merged across projects, so overlapping projects on the
// same vessel each report their own days.
type BreakdownRecord struct {
	Project    string
	Vessel     string
	SurveyType string
	Quarter    Quarter
	Label      string
	Duration   int
}

// Breakdown emits a record for every (project, quarter) pair with a positive
// overlap, ordered by vessel then quarter.
func Breakdown(projects []Project, period Period) []BreakdownRecord {
	var out []BreakdownRecord
	for _, e := range projectQuarters(projects, period) {
		out = append(out, BreakdownRecord{
			Project:    e.project.Name,
			Vessel:     e.project.Vessel,
			SurveyType: e.project.Activity,
			Quarter:    e.quarter,
			Label:      e.quarter.BreakdownLabel(period.Year),
			Duration:   e.days,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Vessel != out[j].Vessel {
			return out[i].Vessel < out[j].Vessel
		}
		return out[i].Quarter < out[j].Quarter
	})
	return out
}

// projectQuarter is one project's share of one quarter: its span clipped to
// the quarter bounds and the days in it.
type projectQuarter struct {
	project Project
	quarter Quarter
	span    DateRange
	days    int
}

func projectQuarters(projects []Project, period Period) []projectQuarter {
	var out []projectQuarter
	for _, p := range projects {
		span, ok := p.Span()
		if !ok {
			continue
		}
		for _, q := range period.Quarters {
			days := DaysInQuarter(span.Start, span.End, period.Year, q)
			if days <= 0 {
				continue
			}
			clipped, _ := ClipToQuarter(span, period.Year, q)
			out = append(out, projectQuarter{project: p, quarter: q, span: clipped, days: days})
		}
	}
	return out
}
