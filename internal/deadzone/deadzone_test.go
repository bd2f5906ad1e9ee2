package deadzone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamco-admin/netkit/internal/heatmap"
)

func uniformGrid(n int, rssi float64) heatmap.Grid {
	cells := make([][]heatmap.Cell, n)
	for r := range cells {
		cells[r] = make([]heatmap.Cell, n)
		for c := range cells[r] {
			cells[r][c] = heatmap.Cell{RSSIDBm: rssi, Known: true}
		}
	}
	return heatmap.Grid{
		Bounds:      heatmap.Bounds{MinX: 0, MinY: 0, MaxX: float64(n - 1), MaxY: float64(n - 1)},
		Width:       n,
		Height:      n,
		ResolutionM: 1,
		Cells:       cells,
	}
}

func TestDetectZones_UniformGridScenario(t *testing.T) {
	grid := uniformGrid(10, -95)
	tier := Tier{Severity: SeverityHigh, UpperDBm: -85}

	zones := DetectZones(grid, tier, 4)
	require.Len(t, zones, 1)

	zone := zones[0]
	assert.Equal(t, SeverityHigh, zone.Severity)
	assert.Equal(t, 100, zone.AreaCells)
	assert.InDelta(t, 4.5, zone.Centroid.X, 1e-9)
	assert.InDelta(t, 4.5, zone.Centroid.Y, 1e-9)
	assert.True(t, zone.HasAvgSignal)
	assert.Equal(t, -95.0, zone.AvgSignalDBm)
}

func TestDetectZones_BelowMinSizeIsDropped(t *testing.T) {
	grid := uniformGrid(3, 0)
	grid.Cells[0][0] = heatmap.Cell{RSSIDBm: -95, Known: true}
	tier := Tier{Severity: SeverityCritical, UpperDBm: -90}

	zones := DetectZones(grid, tier, 4)
	assert.Empty(t, zones)
}

func TestDetectZones_UnknownCellCountsAsWeak(t *testing.T) {
	grid := uniformGrid(2, 0)
	grid.Cells[0][0] = heatmap.Cell{Known: false}
	grid.Cells[0][1] = heatmap.Cell{Known: false}
	grid.Cells[1][0] = heatmap.Cell{Known: false}
	grid.Cells[1][1] = heatmap.Cell{Known: false}
	tier := Tier{Severity: SeverityCritical, UpperDBm: -90}

	zones := DetectZones(grid, tier, 4)
	require.Len(t, zones, 1)
	assert.False(t, zones[0].HasAvgSignal)
}

func TestDetectZones_StableUnderCroppingThatDoesNotTouchZone(t *testing.T) {
	grid := uniformGrid(10, 0)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			grid.Cells[r][c] = heatmap.Cell{RSSIDBm: -95, Known: true}
		}
	}
	tier := Tier{Severity: SeverityCritical, UpperDBm: -90}
	full := DetectZones(grid, tier, 4)
	require.Len(t, full, 1)

	cropped := grid
	cropped.Width = 8
	cropped.Height = 8
	cropped.Cells = make([][]heatmap.Cell, 8)
	for r := 0; r < 8; r++ {
		cropped.Cells[r] = grid.Cells[r][:8]
	}
	reduced := DetectZones(cropped, tier, 4)
	require.Len(t, reduced, 1)
	assert.Equal(t, full[0].AreaCells, reduced[0].AreaCells)
}

func TestGenerateReport_CountsAndCriticalFlag(t *testing.T) {
	zones := []DeadZone{
		{Severity: SeverityCritical},
		{Severity: SeverityHigh},
		{Severity: SeverityHigh},
	}
	report := GenerateReport(zones)
	assert.Equal(t, 3, report.TotalZones)
	assert.Equal(t, 1, report.CountBySeverity[SeverityCritical])
	assert.Equal(t, 2, report.CountBySeverity[SeverityHigh])
	assert.True(t, report.HasCriticalZones)
}

func TestSuggestImprovements_OnlyCriticalAndHigh(t *testing.T) {
	zones := []DeadZone{
		{Severity: SeverityCritical},
		{Severity: SeverityMedium},
		{Severity: SeverityLow},
		{Severity: SeverityHigh},
	}
	suggestions := SuggestImprovements(zones)
	require.Len(t, suggestions, 2)
	assert.Equal(t, SeverityCritical.Priority(), suggestions[0].Priority)
	assert.Equal(t, SeverityHigh.Priority(), suggestions[1].Priority)
}
