package csv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rawRoster = `Vessel,Survey Name,Client,Country,Activity,Mobilisation Start,Deployment Start,Production Start,Production End,Retrieval End,Demobilisation End,Day Rate
SW Tasman,Pelotas 3D,Multi-Client,Brazil,3D,1/1/2025,1/4/2025,1/10/2025,3/10/2025,3/14/2025,3/16/2025,"$ 45,000"
Island Pride,Tano 2D,Tullow,Ghana,2D,2025-02-01,,,,,2025-02-20,#DIV/0!
Amazon Warrior,Broken,ENI,Egypt,4D,,,,,,2025-05-01,TBC
Oceanic Vega,Bad date,ENI,Egypt,4D,someday,,,,,2025-05-01,
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadProjects(t *testing.T) {
	pt, err := ReadProjects(writeFile(t, rawRoster), DefaultColumns())
	require.NoError(t, err)
	require.Len(t, pt.Projects, 4)

	p := pt.Projects[0]
	assert.Equal(t, "Pelotas 3D", p.Name)
	assert.True(t, p.IsMultiClient())
	assert.Equal(t, 45000.0, p.DayRate)
	assert.Zero(t, p.Revenue)
	require.NotNil(t, p.ProductionEnd)
	assert.Equal(t, "2025-03-10", p.ProductionEnd.Format(DateLayout))

	assert.Zero(t, pt.Projects[1].DayRate)
	assert.Nil(t, pt.Projects[1].DeploymentStart)

	reasons := map[int][]string{}
	for _, w := range pt.Warnings {
		reasons[w.Row] = append(reasons[w.Row], w.Column)
	}
	assert.Empty(t, reasons[2])
	assert.Empty(t, reasons[3], "#DIV/0! is an empty cell, not a warning")
	assert.Contains(t, reasons[4], ColDayRate)
	assert.Contains(t, reasons[5], ColMobilisationStart)
	assert.Len(t, reasons[5], 2)
}

func TestReadProjects_MissingColumn(t *testing.T) {
	_, err := ReadProjects(writeFile(t, "Vessel,Survey Name,Mobilisation Start\nA,B,2025-01-01\n"), DefaultColumns())
	require.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), ColDemobilisationEnd)
}

func TestReadProjects_CustomColumnsAndShortRows(t *testing.T) {
	content := "vessel,survey name,mobilisation start,demobilisation end,Rate USD,Revenue USD\nA,P,2025-01-01,2025-01-31,\"1,000\",\"$2,500\"\nB,Q,2025-02-01\n"
	pt, err := ReadProjects(writeFile(t, content), Columns{DayRate: "Rate USD", Revenue: "Revenue USD"})
	require.NoError(t, err)
	require.Len(t, pt.Projects, 2)
	assert.Equal(t, 1000.0, pt.Projects[0].DayRate)
	assert.Equal(t, 2500.0, pt.Projects[0].Revenue)
	assert.Nil(t, pt.Projects[1].DemobilisationEnd)
}

func TestEnhancedTable(t *testing.T) {
	pt, err := ReadProjects(writeFile(t, rawRoster), DefaultColumns())
	require.NoError(t, err)
	tbl := EnhancedTable(pt.Projects)

	require.Len(t, tbl.Rows, 4)
	require.NoError(t, tbl.Require("enhanced", DurationColumns...))
	obj := tbl.Objects()
	assert.Equal(t, "3", obj[0][ColMobilizationDays])
	assert.Equal(t, "74", obj[0][ColProjectDuration])
	assert.Equal(t, "", obj[1][ColProductionDays])
	assert.Equal(t, "19", obj[1][ColProjectDuration])
	assert.Equal(t, "2025-01-01", obj[0][ColMobilisationStart])
	assert.Equal(t, "45000", obj[0][ColDayRate])
}

func TestProjectsTable_RoundTrip(t *testing.T) {
	pt, err := ReadProjects(writeFile(t, rawRoster), DefaultColumns())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "project.csv")
	require.NoError(t, WriteTable(path, ProjectsTable(pt.Projects)))
	again, err := ReadProjects(path, DefaultColumns())
	require.NoError(t, err)
	assert.Equal(t, pt.Projects, again.Projects)
}

func TestWarningsTable(t *testing.T) {
	tbl := WarningsTable([]Warning{{Row: 4, Column: ColDayRate, Value: "TBC", Reason: "not a number, using 0"}})
	require.Equal(t, []string{"4", ColDayRate, "TBC", "not a number, using 0"}, tbl.Rows[0])
	assert.True(t, strings.HasPrefix(Warning{Row: 4}.String(), "row 4"))
}
