package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"vessel-stats/domain/fleet"
)

// Config represents the structure of config.yml used by the tool.
type Config struct {
	Report struct {
		Year     int   `yaml:"year"`
		Quarters []int `yaml:"quarters"`
	} `yaml:"report"`
	Fleet struct {
		Vessels []string          `yaml:"vessels"`
		Aliases map[string]string `yaml:"aliases"`
	} `yaml:"fleet"`
	Source struct {
		Path          string `yaml:"path"`
		DayRateColumn string `yaml:"day_rate_column"`
		RevenueColumn string `yaml:"revenue_column"`
	} `yaml:"source"`
	Data struct {
		Dir           string `yaml:"dir"`
		KeepSnapshots bool   `yaml:"keep_snapshots"`
	} `yaml:"data"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Default is used as is when no config file exists and as the base a file
// is decoded over.
func Default() *Config {
	c := &Config{}
	c.Report.Year = 2025
	c.Report.Quarters = []int{1, 2, 3, 4}
	c.Source.Path = "Streamer Projects - SWG - AI.csv"
	c.Source.DayRateColumn = "Day Rate"
	c.Source.RevenueColumn = "Total Revenue"
	c.Data.Dir = "data"
	c.Data.KeepSnapshots = true
	c.Log.Level = "info"
	return c
}

// Load parses the YAML configuration file at path over the defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	slog.Info("config.loaded", "path", path)
	return c, nil
}

// Resolve loads an optional .env file, then the YAML file named by
// CONFIG_PATH (default ./config.yml, defaults when absent), then applies
// VESSEL_STATS_* environment overrides.
func Resolve() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "./config.yml"
	}
	c, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("config.default", "path", path)
		c, err = Default(), nil
	}
	if err != nil {
		return nil, err
	}
	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("VESSEL_STATS_YEAR"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid VESSEL_STATS_YEAR: %w", err)
		}
		c.Report.Year = year
	}
	if v := os.Getenv("VESSEL_STATS_DATA_DIR"); v != "" {
		c.Data.Dir = v
	}
	if v := os.Getenv("VESSEL_STATS_SOURCE"); v != "" {
		c.Source.Path = v
	}
	if v := os.Getenv("VESSEL_STATS_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

// Period is the reporting window configured under report.
func (c *Config) Period() (fleet.Period, error) {
	p := fleet.Period{Year: c.Report.Year}
	for _, q := range c.Report.Quarters {
		p.Quarters = append(p.Quarters, fleet.Quarter(q))
	}
	if err := p.Validate(); err != nil {
		return fleet.Period{}, err
	}
	return p, nil
}

// Roster is the fleet configured under fleet. An empty vessel list means the
// roster is taken from the data.
func (c *Config) Roster() fleet.Roster {
	return fleet.Roster{Vessels: c.Fleet.Vessels, Aliases: c.Fleet.Aliases}
}

func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
