package csv

import (
	"fmt"
	"strconv"
	"time"

	"vessel-stats/domain/fleet"
)

// Roster column headers.
const (
	ColVessel            = "Vessel"
	ColSurveyName        = "Survey Name"
	ColClient            = "Client"
	ColCountry           = "Country"
	ColActivity          = "Activity"
	ColMobilisationStart = "Mobilisation Start"
	ColDeploymentStart   = "Deployment Start"
	ColProductionStart   = "Production Start"
	ColProductionEnd     = "Production End"
	ColRetrievalEnd      = "Retrieval End"
	ColDemobilisationEnd = "Demobilisation End"
	ColDayRate           = "Day Rate"
	ColRevenue           = "Total Revenue"
)

var requiredColumns = []string{ColVessel, ColSurveyName, ColMobilisationStart, ColDemobilisationEnd}

// Columns names the currency columns, which vary between roster exports.
type Columns struct {
	DayRate string
	Revenue string
}

func DefaultColumns() Columns {
	return Columns{DayRate: ColDayRate, Revenue: ColRevenue}
}

// Warning is a row-scoped problem that did not stop the import.
type Warning struct {
	Row    int
	Column string
	Value  string
	Reason string
}

// ProjectTable is a parsed roster.
type ProjectTable struct {
	Projects []fleet.Project
	Warnings []Warning
}

// ReadProjects reads and parses the roster at path.
func ReadProjects(path string, cols Columns) (*ProjectTable, error) {
	t, err := ReadTable(path)
	if err != nil {
		return nil, err
	}
	return ParseProjects(t, cols)
}

// ParseProjects turns roster rows into projects. Only the presence of the
// required columns is checked; bad dates and amounts become missing or zero
// values and are reported as warnings.
func ParseProjects(t Table, cols Columns) (*ProjectTable, error) {
	if err := t.Require("project roster", requiredColumns...); err != nil {
		return nil, err
	}
	idx := indexMap(t.Header)
	out := &ProjectTable{Projects: make([]fleet.Project, 0, len(t.Rows))}

	for i, rec := range t.Rows {
		line := i + 2
		cell := func(col string) string {
			j, ok := idx[normalizeHeader(col)]
			if !ok || j >= len(rec) {
				return ""
			}
			return rec[j]
		}
		date := func(col string) *time.Time {
			d, err := ParseDate(cell(col))
			if err != nil {
				out.Warnings = append(out.Warnings, Warning{Row: line, Column: col, Value: cell(col), Reason: err.Error()})
			}
			return d
		}
		amount := func(col string) float64 {
			if col == "" {
				return 0
			}
			a := ParseAmount(cell(col))
			if a.Status == AmountInvalid {
				out.Warnings = append(out.Warnings, Warning{Row: line, Column: col, Value: a.Raw, Reason: "not a number, using 0"})
			}
			return a.Value
		}

		p := fleet.Project{
			Name:              cell(ColSurveyName),
			Vessel:            cell(ColVessel),
			Client:            cell(ColClient),
			Country:           cell(ColCountry),
			Activity:          cell(ColActivity),
			MobilisationStart: date(ColMobilisationStart),
			DeploymentStart:   date(ColDeploymentStart),
			ProductionStart:   date(ColProductionStart),
			ProductionEnd:     date(ColProductionEnd),
			RetrievalEnd:      date(ColRetrievalEnd),
			DemobilisationEnd: date(ColDemobilisationEnd),
			DayRate:           amount(cols.DayRate),
			Revenue:           amount(cols.Revenue),
		}
		if p.MobilisationStart == nil || p.DemobilisationEnd == nil {
			out.Warnings = append(out.Warnings, Warning{Row: line, Column: ColMobilisationStart + "/" + ColDemobilisationEnd, Reason: "no mobilisation start or demobilisation end, excluded from quarterly figures"})
		}
		out.Projects = append(out.Projects, p)
	}
	return out, nil
}

var projectHeader = []string{
	ColVessel, ColSurveyName, ColClient, ColCountry, ColActivity,
	ColMobilisationStart, ColDeploymentStart, ColProductionStart,
	ColProductionEnd, ColRetrievalEnd, ColDemobilisationEnd,
	ColDayRate, ColRevenue,
}

func projectRow(p fleet.Project) []string {
	return []string{
		p.Vessel, p.Name, p.Client, p.Country, p.Activity,
		formatDate(p.MobilisationStart), formatDate(p.DeploymentStart), formatDate(p.ProductionStart),
		formatDate(p.ProductionEnd), formatDate(p.RetrievalEnd), formatDate(p.DemobilisationEnd),
		FormatAmount(p.DayRate), FormatAmount(p.Revenue),
	}
}

// ProjectsTable is the normalised roster: ISO dates and plain numbers.
func ProjectsTable(projects []fleet.Project) Table {
	t := Table{Header: projectHeader}
	for _, p := range projects {
		t.Rows = append(t.Rows, projectRow(p))
	}
	return t
}

// Derived duration headers of the enhanced roster.
const (
	ColMobilizationDays   = "Mobilization (days)"
	ColDeploymentDays     = "Deployment (days)"
	ColProductionDays     = "Production (days)"
	ColRecoveryDays       = "Recovery (days)"
	ColDemobilizationDays = "Demobilization (days)"
	ColProjectDuration    = "Project Duration"
)

var DurationColumns = []string{
	ColMobilizationDays, ColDeploymentDays, ColProductionDays,
	ColRecoveryDays, ColDemobilizationDays, ColProjectDuration,
}

// EnhancedTable is the normalised roster plus phase durations.
func EnhancedTable(projects []fleet.Project) Table {
	t := Table{Header: append(append([]string{}, projectHeader...), DurationColumns...)}
	for _, p := range projects {
		d := p.Durations()
		row := append(projectRow(p),
			formatInt(d.Mobilization), formatInt(d.Deployment), formatInt(d.Production),
			formatInt(d.Recovery), formatInt(d.Demobilization), formatInt(d.Total))
		t.Rows = append(t.Rows, row)
	}
	return t
}

// WarningsTable lists import warnings.
func WarningsTable(warnings []Warning) Table {
	t := Table{Header: []string{"row", "column", "value", "reason"}}
	for _, w := range warnings {
		t.Rows = append(t.Rows, []string{strconv.Itoa(w.Row), w.Column, w.Value, w.Reason})
	}
	return t
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func (w Warning) String() string {
	return fmt.Sprintf("row %d %s %q: %s", w.Row, w.Column, w.Value, w.Reason)
}
