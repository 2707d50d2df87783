package calculate

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"vessel-stats/connectors/config"
	ccsv "vessel-stats/connectors/csv"
	"vessel-stats/domain/fleet"
)

// Result holds everything derived from one roster snapshot.
type Result struct {
	Projects  []fleet.Project
	Skipped   []fleet.Project
	Vessels   []fleet.VesselRow
	Breakdown []fleet.BreakdownRecord
	Timeline  []fleet.Segment
}

// Compute runs the whole derivation over projects. It is pure: nothing is
// read or written.
func Compute(projects []fleet.Project, period fleet.Period, roster fleet.Roster) Result {
	projects = roster.Normalize(projects)
	_, skipped := fleet.SplitScheduled(projects)
	metrics := fleet.Aggregate(projects, period, roster)
	return Result{
		Projects:  projects,
		Skipped:   skipped,
		Vessels:   fleet.Pivot(metrics, period, roster.Order(projects)),
		Breakdown: fleet.Breakdown(projects, period),
		Timeline:  fleet.Timeline(projects, period, roster),
	}
}

// Run executes the calculate command.
//
// Usage:
//
//	vessel-stats calculate [-in <data>/project.csv] [-data ./data]
//
// Reads the normalised roster written by import and writes, as dated
// snapshots plus undated latest copies:
//
//	enhanced_project            roster + phase durations
//	vessel_quarterly_pivot_<y>  one row per vessel, merged days/rate/cost/revenue per quarter
//	quarterly_breakdown         one row per project and quarter, not merged
//	vessel_timeline             phase segments per project
func Run(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("calculate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	dataDir := fs.String("data", cfg.Data.Dir, "directory for CSV inputs and outputs")
	in := fs.String("in", "", "normalised roster (default <data>/project.csv)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("calculate: unexpected arguments %v", fs.Args())
	}
	if *in == "" {
		*in = filepath.Join(*dataDir, "project.csv")
	}

	period, err := cfg.Period()
	if err != nil {
		return err
	}
	roster := cfg.Roster()
	runID := uuid.NewString()
	log := slog.With("run_id", runID)
	log.Info("calculate.start", "in", *in, "year", period.Year, "quarters", len(period.Quarters), "vessels", len(roster.Vessels))

	pt, err := ccsv.ReadProjects(*in, ccsv.DefaultColumns())
	if err != nil {
		log.Error("calculate.read.error", "in", *in, "error", err)
		return fmt.Errorf("read %s: %w", *in, err)
	}

	res := Compute(pt.Projects, period, roster)
	for _, p := range res.Skipped {
		log.Debug("calculate.project.skipped", "project", p.Name, "vessel", p.Vessel)
	}
	if extras := roster.Extras(res.Projects); len(roster.Vessels) > 0 && len(extras) > 0 {
		log.Warn("calculate.vessels.unlisted", "vessels", extras)
	}

	today := time.Now()
	keep := cfg.Data.KeepSnapshots
	outputs := []struct {
		base  string
		table ccsv.Table
	}{
		{ccsv.EnhancedBase, ccsv.EnhancedTable(res.Projects)},
		{ccsv.PivotBase(period.Year), ccsv.PivotTable(res.Vessels, period)},
		{ccsv.BreakdownBase, ccsv.BreakdownTable(res.Breakdown)},
		{ccsv.TimelineBase, ccsv.TimelineTable(res.Timeline)},
	}
	for _, o := range outputs {
		if err := ccsv.WriteSnapshot(*dataDir, o.base, today, keep, o.table); err != nil {
			log.Error("calculate.write.error", "file", o.base, "error", err)
			return fmt.Errorf("write %s: %w", o.base, err)
		}
		log.Info("calculate.write", "file", o.base, "rows", len(o.table.Rows))
	}

	log.Info("calculate.done",
		"projects", len(res.Projects),
		"skipped", len(res.Skipped),
		"warnings", len(pt.Warnings),
		"vessels", len(res.Vessels),
		"breakdown", len(res.Breakdown),
	)
	return nil
}
