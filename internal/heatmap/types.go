// Package heatmap builds a rectangular signal-strength grid from a sparse
// set of geotagged RSSI samples, by nearest-neighbor, inverse-distance-
// weighted, or bilinear interpolation.
package heatmap

import (
	"math"

	"github.com/lamco-admin/netkit/internal/netkiterr"
	"github.com/lamco-admin/netkit/internal/survey"
)

// Method selects the interpolation strategy used to fill a grid cell.
type Method int

const (
	MethodNearest Method = iota
	MethodIDW
	MethodBilinear
)

// DefaultIDWPower is the default exponent p in the inverse-distance weight
// 1 / d^p.
const DefaultIDWPower = 2.0

// Bounds is a rectangular survey area: min_x, min_y, max_x, max_y.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns MaxX - MinX.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Sample is one geotagged RSSI reading for a single AP.
type Sample struct {
	Location survey.Location
	RSSIDBm  float64
}

// Cell holds an interpolated value, or Known=false when no sample was
// within range.
type Cell struct {
	RSSIDBm float64
	Known   bool
}

// Grid is a 2D array of cells over a rectangular area.
type Grid struct {
	Bounds           Bounds
	Width, Height    int
	ResolutionM      float64
	Cells            [][]Cell // [row][col], row-major from MinY upward
	MeasurementCount int
}

// Dimensions computes the grid's column/row counts for bounds at
// resolutionM: floor(width/res)+1, floor(height/res)+1.
func Dimensions(bounds Bounds, resolutionM float64) (w, h int, err error) {
	if resolutionM <= 0 {
		return 0, 0, netkiterr.Invalid("resolution_m", "must be positive")
	}
	width, height := bounds.Width(), bounds.Height()
	if width < 0 || height < 0 {
		return 0, 0, netkiterr.Invalid("bounds", "must not be inverted")
	}
	w = int(math.Floor(width/resolutionM)) + 1
	h = int(math.Floor(height/resolutionM)) + 1
	return w, h, nil
}

// CellWorldPosition returns the world-space coordinate of grid cell (row,
// col): (min_x + col*res, min_y + row*res).
func CellWorldPosition(bounds Bounds, resolutionM float64, row, col int) survey.Location {
	return survey.Location{
		X: bounds.MinX + float64(col)*resolutionM,
		Y: bounds.MinY + float64(row)*resolutionM,
	}
}
