package cmdimport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vessel-stats/connectors/config"
	ccsv "vessel-stats/connectors/csv"
)

const raw = `Vessel,Survey Name,Client,Country,Activity,Mobilisation Start,Deployment Start,Production Start,Production End,Retrieval End,Demobilisation End,Day Rate
Island Pride,Tano 2D,Tullow,Ghana,2D,1/10/2025,,,,,2/20/2025,"$ 45,000 "
SW Bly,Broken,ENI,Egypt,4D,,,,,,2025-05-01,n/a
`

func TestRun(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "roster.csv")
	require.NoError(t, os.WriteFile(src, []byte(raw), 0o644))

	cfg := config.Default()
	cfg.Fleet.Aliases = map[string]string{"Island Pride": "Island Pride (Charter)"}
	out := filepath.Join(dir, "data")
	require.NoError(t, Run(cfg, []string{"-src", src, "-data", out}))

	projects, err := ccsv.ReadTable(filepath.Join(out, "project.csv"))
	require.NoError(t, err)
	rows := projects.Objects()
	require.Len(t, rows, 2)
	assert.Equal(t, "Island Pride (Charter)", rows[0][ccsv.ColVessel])
	assert.Equal(t, "2025-01-10", rows[0][ccsv.ColMobilisationStart])
	assert.Equal(t, "45000", rows[0][ccsv.ColDayRate])
	assert.Equal(t, "0", rows[1][ccsv.ColDayRate])

	warnings, err := ccsv.ReadTable(filepath.Join(out, "import_warning.csv"))
	require.NoError(t, err)
	require.Len(t, warnings.Rows, 2)
	assert.Equal(t, "3", warnings.Rows[0][0])
}

func TestRun_MissingSource(t *testing.T) {
	cfg := config.Default()
	err := Run(cfg, []string{"-src", filepath.Join(t.TempDir(), "nope.csv")})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_MissingColumn(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "roster.csv")
	require.NoError(t, os.WriteFile(src, []byte("Vessel,Survey Name\nA,B\n"), 0o644))
	err := Run(config.Default(), []string{"-src", src, "-data", dir})
	require.ErrorIs(t, err, ccsv.ErrMissingColumn)
}
