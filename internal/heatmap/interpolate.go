package heatmap

import "math"

// Interpolate estimates the RSSI at target from samples within
// maxInterpolationDistM, using method. Returns Known=false when no sample
// qualifies.
func Interpolate(samples []Sample, target CellTarget, maxInterpolationDistM float64, method Method) Cell {
	switch method {
	case MethodNearest:
		return interpolateNearest(samples, target, maxInterpolationDistM)
	case MethodBilinear:
		return interpolateBilinear(samples, target, maxInterpolationDistM)
	default:
		return interpolateIDW(samples, target, maxInterpolationDistM, DefaultIDWPower)
	}
}

// CellTarget is a query point for interpolation: plain X/Y, distinct from
// survey.Location so this package does not need a Label field.
type CellTarget struct {
	X, Y float64
}

func distance(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return math.Sqrt(dx*dx + dy*dy)
}

func withinRange(samples []Sample, target CellTarget, maxDist float64) []Sample {
	in := make([]Sample, 0, len(samples))
	for _, s := range samples {
		if distance(s.Location.X, s.Location.Y, target.X, target.Y) <= maxDist {
			in = append(in, s)
		}
	}
	return in
}

func interpolateNearest(samples []Sample, target CellTarget, maxDist float64) Cell {
	candidates := withinRange(samples, target, maxDist)
	if len(candidates) == 0 {
		return Cell{}
	}
	best := candidates[0]
	bestDist := distance(best.Location.X, best.Location.Y, target.X, target.Y)
	for _, s := range candidates[1:] {
		d := distance(s.Location.X, s.Location.Y, target.X, target.Y)
		if d < bestDist {
			best, bestDist = s, d
		}
	}
	return Cell{RSSIDBm: best.RSSIDBm, Known: true}
}

func interpolateIDW(samples []Sample, target CellTarget, maxDist, power float64) Cell {
	candidates := withinRange(samples, target, maxDist)
	if len(candidates) == 0 {
		return Cell{}
	}

	var weightSum, valueSum float64
	for _, s := range candidates {
		d := distance(s.Location.X, s.Location.Y, target.X, target.Y)
		if d == 0 {
			return Cell{RSSIDBm: s.RSSIDBm, Known: true}
		}
		w := 1 / math.Pow(d, power)
		weightSum += w
		valueSum += w * s.RSSIDBm
	}
	return Cell{RSSIDBm: valueSum / weightSum, Known: true}
}

// interpolateBilinear looks for one nearest sample in each quadrant around
// target (NE, NW, SE, SW); if all four are present within maxDist, it
// interpolates across the bounding rectangle they form. Otherwise it falls
// back to IDW, per the documented fallback rule.
func interpolateBilinear(samples []Sample, target CellTarget, maxDist float64) Cell {
	candidates := withinRange(samples, target, maxDist)
	ne, nw, se, sw := nearestPerQuadrant(candidates, target)
	if ne == nil || nw == nil || se == nil || sw == nil {
		return interpolateIDW(samples, target, maxDist, DefaultIDWPower)
	}

	x0 := math.Min(nw.Location.X, sw.Location.X)
	x1 := math.Max(ne.Location.X, se.Location.X)
	y0 := math.Min(sw.Location.Y, se.Location.Y)
	y1 := math.Max(nw.Location.Y, ne.Location.Y)
	if x1 == x0 || y1 == y0 {
		return interpolateIDW(samples, target, maxDist, DefaultIDWPower)
	}

	tx := (target.X - x0) / (x1 - x0)
	ty := (target.Y - y0) / (y1 - y0)
	tx = clamp01(tx)
	ty = clamp01(ty)

	bottom := sw.RSSIDBm*(1-tx) + se.RSSIDBm*tx
	top := nw.RSSIDBm*(1-tx) + ne.RSSIDBm*tx
	return Cell{RSSIDBm: bottom*(1-ty) + top*ty, Known: true}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func nearestPerQuadrant(samples []Sample, target CellTarget) (ne, nw, se, sw *Sample) {
	var neDist, nwDist, seDist, swDist float64
	for i := range samples {
		s := &samples[i]
		dx := s.Location.X - target.X
		dy := s.Location.Y - target.Y
		d := distance(s.Location.X, s.Location.Y, target.X, target.Y)
		switch {
		case dx >= 0 && dy >= 0:
			if ne == nil || d < neDist {
				ne, neDist = s, d
			}
		case dx < 0 && dy >= 0:
			if nw == nil || d < nwDist {
				nw, nwDist = s, d
			}
		case dx >= 0 && dy < 0:
			if se == nil || d < seDist {
				se, seDist = s, d
			}
		default:
			if sw == nil || d < swDist {
				sw, swDist = s, d
			}
		}
	}
	return
}
