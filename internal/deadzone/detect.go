package deadzone

import (
	"github.com/lamco-admin/netkit/internal/heatmap"
	"github.com/lamco-admin/netkit/internal/survey"
)

// BBox is a cell-index bounding box: inclusive min/max row and column.
type BBox struct {
	MinRow, MaxRow, MinCol, MaxCol int
}

// DeadZone is one connected region of weak-signal cells at a single
// severity tier.
type DeadZone struct {
	Severity      Severity
	AreaCells     int
	Centroid      survey.Location
	BBox          BBox
	AvgSignalDBm  float64
	HasAvgSignal  bool
	AffectedBSSID string
}

// isWeak reports whether cell counts as weak at tier: either unknown
// (treated as signal -infinity) or at/below the tier's RSSI upper bound.
func isWeak(cell heatmap.Cell, tier Tier) bool {
	return !cell.Known || cell.RSSIDBm <= tier.UpperDBm
}

// DetectZones runs 4-neighborhood connected-component labeling over grid's
// cells that are weak at tier, emitting a DeadZone for each component whose
// area meets minDeadZoneSize.
func DetectZones(grid heatmap.Grid, tier Tier, minDeadZoneSize int) []DeadZone {
	visited := make([][]bool, grid.Height)
	for r := range visited {
		visited[r] = make([]bool, grid.Width)
	}

	var zones []DeadZone
	for r := 0; r < grid.Height; r++ {
		for c := 0; c < grid.Width; c++ {
			if visited[r][c] || !isWeak(grid.Cells[r][c], tier) {
				continue
			}
			cells := floodFill(grid, tier, visited, r, c)
			if len(cells) < minDeadZoneSize {
				continue
			}
			zones = append(zones, buildZone(grid, tier.Severity, cells))
		}
	}
	return zones
}

// DetectAll runs DetectZones for every tier and concatenates the results.
func DetectAll(grid heatmap.Grid, tiers []Tier, minDeadZoneSize int) []DeadZone {
	var all []DeadZone
	for _, tier := range tiers {
		all = append(all, DetectZones(grid, tier, minDeadZoneSize)...)
	}
	return all
}

type cellCoord struct{ row, col int }

func floodFill(grid heatmap.Grid, tier Tier, visited [][]bool, startRow, startCol int) []cellCoord {
	queue := []cellCoord{{startRow, startCol}}
	visited[startRow][startCol] = true
	var component []cellCoord

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		component = append(component, cur)

		for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			nr, nc := cur.row+d[0], cur.col+d[1]
			if nr < 0 || nr >= grid.Height || nc < 0 || nc >= grid.Width {
				continue
			}
			if visited[nr][nc] || !isWeak(grid.Cells[nr][nc], tier) {
				continue
			}
			visited[nr][nc] = true
			queue = append(queue, cellCoord{nr, nc})
		}
	}
	return component
}

func buildZone(grid heatmap.Grid, severity Severity, cells []cellCoord) DeadZone {
	bbox := BBox{MinRow: cells[0].row, MaxRow: cells[0].row, MinCol: cells[0].col, MaxCol: cells[0].col}
	var sumX, sumY, sumSignal float64
	knownSignals := 0

	for _, cc := range cells {
		if cc.row < bbox.MinRow {
			bbox.MinRow = cc.row
		}
		if cc.row > bbox.MaxRow {
			bbox.MaxRow = cc.row
		}
		if cc.col < bbox.MinCol {
			bbox.MinCol = cc.col
		}
		if cc.col > bbox.MaxCol {
			bbox.MaxCol = cc.col
		}

		pos := heatmap.CellWorldPosition(grid.Bounds, grid.ResolutionM, cc.row, cc.col)
		sumX += pos.X
		sumY += pos.Y

		cell := grid.Cells[cc.row][cc.col]
		if cell.Known {
			sumSignal += cell.RSSIDBm
			knownSignals++
		}
	}

	zone := DeadZone{
		Severity:  severity,
		AreaCells: len(cells),
		Centroid: survey.Location{
			X: sumX / float64(len(cells)),
			Y: sumY / float64(len(cells)),
		},
		BBox: bbox,
	}
	if knownSignals > 0 {
		zone.AvgSignalDBm = sumSignal / float64(knownSignals)
		zone.HasAvgSignal = true
	}
	return zone
}
