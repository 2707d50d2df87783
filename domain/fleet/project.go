package fleet

import (
	"strings"
	"time"
)

// Project is one vessel survey engagement as read from the roster.
// Phase timestamps are optional; when present they are expected to be
// non-decreasing but that is not checked.
type Project struct {
	Name     string
	Vessel   string
	Client   string
	Country  string
	Activity string

	MobilisationStart *time.Time
	DeploymentStart   *time.Time
	ProductionStart   *time.Time
	ProductionEnd     *time.Time
	RetrievalEnd      *time.Time
	DemobilisationEnd *time.Time

	DayRate float64
	Revenue float64
}

// IsMultiClient reports whether the survey was shot on spec rather than for
// a proprietary client.
func (p Project) IsMultiClient() bool {
	return strings.EqualFold(strings.TrimSpace(p.Client), "Multi-Client")
}

// Span is mobilisation start through demobilisation end. Projects missing
// either end, or whose ends are reversed, have no span and take no part in
// temporal aggregation.
func (p Project) Span() (DateRange, bool) {
	if p.MobilisationStart == nil || p.DemobilisationEnd == nil {
		return DateRange{}, false
	}
	r, err := NewDateRange(*p.MobilisationStart, *p.DemobilisationEnd)
	if err != nil {
		return DateRange{}, false
	}
	return r, true
}

// SplitScheduled separates projects that have a span from those that are
// skipped by aggregation.
func SplitScheduled(projects []Project) (scheduled, skipped []Project) {
	for _, p := range projects {
		if _, ok := p.Span(); ok {
			scheduled = append(scheduled, p)
		} else {
			skipped = append(skipped, p)
		}
	}
	return scheduled, skipped
}

// PhaseDurations are whole-day differences between consecutive phase
// timestamps. A nil field means one of its two timestamps is missing.
type PhaseDurations struct {
	Mobilization   *int
	Deployment     *int
	Production     *int
	Recovery       *int
	Demobilization *int
	Total          *int
}

func (p Project) Durations() PhaseDurations {
	return PhaseDurations{
		Mobilization:   between(p.MobilisationStart, p.DeploymentStart),
		Deployment:     between(p.DeploymentStart, p.ProductionStart),
		Production:     between(p.ProductionStart, p.ProductionEnd),
		Recovery:       between(p.ProductionEnd, p.RetrievalEnd),
		Demobilization: between(p.RetrievalEnd, p.DemobilisationEnd),
		Total:          between(p.MobilisationStart, p.DemobilisationEnd),
	}
}

func between(from, to *time.Time) *int {
	if from == nil || to == nil {
		return nil
	}
	d := DaysBetween(*from, *to)
	return &d
}
