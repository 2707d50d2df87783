package web

import (
	"errors"
	"flag"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"vessel-stats/connectors/config"
	ccsv "vessel-stats/connectors/csv"
)

// Run starts a small Echo web server exposing CSV-as-JSON APIs and an optional SPA dashboard.
//
// Usage:
//
//	vessel-stats web [-addr :8080] [-data ./data] [-ui ./ui/dist]
//
// Endpoints:
//
//	GET /api/projects           -> <data>/enhanced_project.csv
//	GET /api/vessels/quarterly  -> <data>/vessel_quarterly_pivot_<year>.csv
//	GET /api/breakdown          -> <data>/quarterly_breakdown.csv
//	GET /api/timeline           -> <data>/vessel_timeline.csv
//	GET /api/warnings           -> <data>/import_warning.csv
//
// When -ui points to a built Vite app (index.html exists), static files are served at / and
// unknown routes fall back to index.html for SPA routing.
func Run(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	addr := fs.String("addr", ":8080", "http listen address (host:port)")
	dataDir := fs.String("data", cfg.Data.Dir, "directory containing CSV files")
	uiDir := fs.String("ui", "./ui/dist", "directory containing built UI (Vite dist)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	e := NewServer(*dataDir, *uiDir, cfg.Report.Year)
	return e.Start(*addr)
}

// NewServer wires the API routes and, when uiDir holds a build, the SPA.
func NewServer(dataDir, uiDir string, year int) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Helper to register a GET endpoint serving a specific CSV file
	serveCSV := func(route string, filename string) {
		e.GET(route, func(c echo.Context) error {
			path := filepath.Join(dataDir, filename)
			tbl, err := ccsv.ReadTable(path)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return c.JSON(http.StatusNotFound, map[string]any{
						"error":   "file not found",
						"path":    path,
						"message": "CSV file is missing, run import and calculate",
					})
				}
				return c.JSON(http.StatusInternalServerError, map[string]any{
					"error":   err.Error(),
					"path":    path,
					"message": "failed to read CSV",
				})
			}
			return c.JSON(http.StatusOK, tbl.Objects())
		})
	}

	serveCSV("/api/projects", ccsv.EnhancedBase+".csv")
	serveCSV("/api/vessels/quarterly", ccsv.PivotBase(year)+".csv")
	serveCSV("/api/breakdown", ccsv.BreakdownBase+".csv")
	serveCSV("/api/timeline", ccsv.TimelineBase+".csv")
	serveCSV("/api/warnings", "import_warning.csv")

	indexPath := filepath.Join(uiDir, "index.html")
	if fi, err := os.Stat(indexPath); err == nil && !fi.IsDir() {
		e.Static("/", uiDir)
		e.GET("/", func(c echo.Context) error { return c.File(indexPath) })

		// Fallback to index.html for non-API 404s (SPA routing) while keeping static assets working
		e.HTTPErrorHandler = func(err error, c echo.Context) {
			if he, ok := err.(*echo.HTTPError); ok && he.Code == http.StatusNotFound {
				if !strings.HasPrefix(c.Request().URL.Path, "/api") {
					_ = c.File(indexPath)
					return
				}
			}
			e.DefaultHTTPErrorHandler(err, c)
		}
	}
	return e
}
