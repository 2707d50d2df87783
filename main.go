package main

import (
	"fmt"
	"log/slog"
	"os"

	cmdcalculate "vessel-stats/command/calculate"
	cmdimport "vessel-stats/command/import"
	cmdvalidate "vessel-stats/command/validate"
	cmdweb "vessel-stats/command/web"
	"vessel-stats/connectors/config"
)

// Vessel utilisation analytics over a survey project roster.
// Usage:
//   vessel-stats import [-src roster.csv]   sanitize the raw roster into data/project.csv
//   vessel-stats calculate                  derive phase durations, the vessel quarterly pivot,
//                                           the per-project quarterly breakdown and the timeline
//   vessel-stats validate                   check the derived files are in sync
//   vessel-stats web [-addr :8080]          serve the derived files as JSON
// Notes:
// - Quarterly days merge overlapping or back-to-back projects per vessel; the breakdown does not.
// - Set CONFIG_PATH to a YAML config (default ./config.yml); a .env file is honoured.

type command func(cfg *config.Config, args []string) error

var commands = map[string]command{
	"import":    cmdimport.Run,
	"calculate": cmdcalculate.Run,
	"validate":  cmdvalidate.Run,
	"web":       cmdweb.Run,
}

func main() {
	args := os.Args
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(h))

	if len(args) > 1 {
		if run, ok := commands[args[1]]; ok {
			cfg, err := config.Resolve()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: config.ParseLogLevel(cfg.Log.Level)})
			slog.SetDefault(slog.New(h))

			rest := append([]string{}, args[2:]...)
			if err := run(cfg, rest); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		}
	}
	fmt.Fprintln(os.Stderr, "usage: vessel-stats import [-src <roster.csv>] | calculate [-in <project.csv>] | validate | web [-addr :8080] [-data ./data]\nENV: set CONFIG_PATH to point to a YAML config file (default ./config.yml)")
	os.Exit(2)
}
