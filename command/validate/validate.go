package validate

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	lo "github.com/samber/lo"

	"vessel-stats/connectors/config"
	ccsv "vessel-stats/connectors/csv"
	"vessel-stats/domain/fleet"
)

// Report collects the outcome of a check. Errors fail the run, warnings
// don't.
type Report struct {
	Errors   []string
	Warnings []string
}

func (r *Report) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Report) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Check verifies that the artifacts in dataDir were derived from the
// current project.csv and carry the columns consumers rely on.
func Check(dataDir string, period fleet.Period, today time.Time) Report {
	var rep Report

	source, err := ccsv.ReadTable(filepath.Join(dataDir, "project.csv"))
	if err != nil {
		rep.errorf("project.csv: %v", err)
		return rep
	}

	bases := []string{ccsv.EnhancedBase, ccsv.PivotBase(period.Year), ccsv.BreakdownBase}
	checks := map[string]func(ccsv.Table){
		ccsv.EnhancedBase: func(t ccsv.Table) {
			if len(t.Rows) != len(source.Rows) {
				rep.errorf("%s has %d rows, project.csv has %d", ccsv.EnhancedBase, len(t.Rows), len(source.Rows))
			}
			requireColumns(&rep, t, ccsv.EnhancedBase, ccsv.DurationColumns)
		},
		ccsv.PivotBase(period.Year): func(t ccsv.Table) {
			requireColumns(&rep, t, ccsv.PivotBase(period.Year), lo.Map(period.Quarters, func(q fleet.Quarter, _ int) string {
				return ccsv.QuarterDaysColumn(q)
			}))
		},
		ccsv.BreakdownBase: func(t ccsv.Table) {
			requireColumns(&rep, t, ccsv.BreakdownBase, ccsv.BreakdownColumns)
		},
	}
	for _, base := range bases {
		t, err := ccsv.ReadTable(filepath.Join(dataDir, base+".csv"))
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				rep.errorf("%s.csv not found", base)
			} else {
				rep.errorf("%s.csv: %v", base, err)
			}
			continue
		}
		checks[base](t)
	}

	dated := lo.Filter(bases, func(base string, _ int) bool {
		_, err := os.Stat(filepath.Join(dataDir, ccsv.SnapshotName(base, today)))
		return err == nil
	})
	if len(dated) == 0 {
		rep.warnf("no dated files for %s, outputs may be from a previous run", today.Format("20060102"))
	} else if len(dated) < len(bases) {
		rep.warnf("only %d/%d dated files for %s", len(dated), len(bases), today.Format("20060102"))
	}
	return rep
}

func requireColumns(rep *Report, t ccsv.Table, name string, cols []string) {
	if err := t.Require(name, cols...); err != nil {
		rep.errorf("%v", err)
	}
}

// Run executes the validate command.
func Run(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	dataDir := fs.String("data", cfg.Data.Dir, "directory containing CSV files")
	if err := fs.Parse(args); err != nil {
		return err
	}
	period, err := cfg.Period()
	if err != nil {
		return err
	}

	rep := Check(*dataDir, period, time.Now())
	for _, w := range rep.Warnings {
		slog.Warn("validate.warning", "detail", w)
	}
	if len(rep.Errors) > 0 {
		for _, e := range rep.Errors {
			slog.Error("validate.error", "detail", e)
		}
		return fmt.Errorf("validation failed (run import then calculate):\n  - %s", strings.Join(rep.Errors, "\n  - "))
	}
	slog.Info("validate.done", "data", *dataDir, "warnings", len(rep.Warnings))
	return nil
}
