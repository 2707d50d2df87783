package cmdimport

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"vessel-stats/connectors/config"
	ccsv "vessel-stats/connectors/csv"
)

// Run executes the import subcommand: it sanitizes the raw project roster
// into <data>/project.csv and lists every row-level problem in
// <data>/import_warning.csv. Bad cells never abort the import; a missing
// required column does.
func Run(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	src := fs.String("src", cfg.Source.Path, "raw roster CSV export")
	dataDir := fs.String("data", cfg.Data.Dir, "output directory")
	dayRateCol := fs.String("day-rate-column", cfg.Source.DayRateColumn, "column holding the day rate")
	revenueCol := fs.String("revenue-column", cfg.Source.RevenueColumn, "column holding revenue (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := os.Stat(*src); err != nil {
		fmt.Fprintf(os.Stderr, "source file %q not found (set source.path in the config or pass -src)\n", *src)
		slog.Error("import.validation.error", "reason", "missing source", "src", *src)
		return fmt.Errorf("source roster: %w", err)
	}

	slog.Info("import.start", "src", *src, "data", *dataDir)
	pt, err := ccsv.ReadProjects(*src, ccsv.Columns{DayRate: *dayRateCol, Revenue: *revenueCol})
	if err != nil {
		slog.Error("import.read.error", "src", *src, "error", err)
		return err
	}
	for _, w := range pt.Warnings {
		slog.Warn("import.row.warning", "row", w.Row, "column", w.Column, "value", w.Value, "reason", w.Reason)
	}

	projects := cfg.Roster().Normalize(pt.Projects)
	if err := ccsv.WriteTable(filepath.Join(*dataDir, "project.csv"), ccsv.ProjectsTable(projects)); err != nil {
		slog.Error("import.csv.write.error", "error", err)
		return fmt.Errorf("write project.csv: %w", err)
	}
	if err := ccsv.WriteTable(filepath.Join(*dataDir, "import_warning.csv"), ccsv.WarningsTable(pt.Warnings)); err != nil {
		slog.Warn("import.warnings.write.error", "error", err)
	}

	slog.Info("import.done", "projects", len(projects), "warnings", len(pt.Warnings))
	return nil
}
