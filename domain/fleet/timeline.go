package fleet

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Phase names the five stages of a survey project.
type Phase string

const (
	PhaseMobilization   Phase = "Mobilization"
	PhaseDeployment     Phase = "Deployment"
	PhaseProduction     Phase = "Production"
	PhaseRecovery       Phase = "Recovery"
	PhaseDemobilization Phase = "Demobilization"
)

// Segment is one phase of one project, as drawn on a vessel timeline.
type Segment struct {
	Vessel  string
	Project string
	Legend  string
	Phase   Phase
	Start   time.Time
	Finish  time.Time
	Days    int
}

// Legend labels a project as "<Country> <Activity>".
func (p Project) Legend() string {
	return fmt.Sprintf("%s %s", orUnknown(p.Country), orUnknown(p.Activity))
}

func orUnknown(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return "Unknown"
	}
	return s
}

// Segments splits a project into its phases. A phase is emitted only when
// both of its bounding timestamps are known.
func (p Project) Segments() []Segment {
	if _, ok := p.Span(); !ok {
		return nil
	}
	bounds := []struct {
		phase    Phase
		from, to *time.Time
	}{
		{PhaseMobilization, p.MobilisationStart, p.DeploymentStart},
		{PhaseDeployment, p.DeploymentStart, p.ProductionStart},
		{PhaseProduction, p.ProductionStart, p.ProductionEnd},
		{PhaseRecovery, p.ProductionEnd, p.RetrievalEnd},
		{PhaseDemobilization, p.RetrievalEnd, p.DemobilisationEnd},
	}
	var out []Segment
	for _, b := range bounds {
		if b.from == nil || b.to == nil {
			continue
		}
		out = append(out, Segment{
			Vessel:  p.Vessel,
			Project: p.Name,
			Legend:  p.Legend(),
			Phase:   b.phase,
			Start:   Day(*b.from),
			Finish:  Day(*b.to),
			Days:    DaysBetween(*b.from, *b.to),
		})
	}
	return out
}

// Timeline lists the phase segments of every project that starts or ends in
// the period's year, ordered by roster position then start date.
func Timeline(projects []Project, period Period, roster Roster) []Segment {
	var out []Segment
	for _, p := range projects {
		span, ok := p.Span()
		if !ok || (span.Start.Year() != period.Year && span.End.Year() != period.Year) {
			continue
		}
		out = append(out, p.Segments()...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := roster.rank(out[i].Vessel), roster.rank(out[j].Vessel)
		if ri != rj {
			return ri < rj
		}
		if out[i].Vessel != out[j].Vessel {
			return out[i].Vessel < out[j].Vessel
		}
		return out[i].Start.Before(out[j].Start)
	})
	return out
}
