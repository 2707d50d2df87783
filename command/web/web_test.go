package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ccsv "vessel-stats/connectors/csv"
)

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestNewServer_ServesCSVAsJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, ccsv.WriteTable(filepath.Join(dir, "quarterly_breakdown.csv"), ccsv.Table{
		Header: ccsv.BreakdownColumns,
		Rows:   [][]string{{"P", "A", "3D", "Q1-2025", "42"}},
	}))
	e := NewServer(dir, filepath.Join(dir, "no-ui"), 2025)

	rec := get(t, e, "/api/breakdown")
	require.Equal(t, http.StatusOK, rec.Code)
	var rows []map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "42", rows[0]["Duration"])

	rec = get(t, e, "/api/vessels/quarterly")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "vessel_quarterly_pivot_2025.csv")
}

func TestNewServer_SPAFallback(t *testing.T) {
	dir := t.TempDir()
	ui := filepath.Join(dir, "dist")
	require.NoError(t, os.MkdirAll(ui, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(ui, "index.html"), []byte("<html>fleet</html>"), 0o644))
	e := NewServer(dir, ui, 2025)

	rec := get(t, e, "/vessels/SW%20Bly")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fleet")

	rec = get(t, e, "/api/unknown")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
