package heatmap

// Build constructs a per-AP signal heatmap over bounds at resolutionM,
// interpolating samples with method within maxInterpolationDistM of each
// cell.
func Build(bounds Bounds, resolutionM float64, samples []Sample, maxInterpolationDistM float64, method Method) (Grid, error) {
	w, h, err := Dimensions(bounds, resolutionM)
	if err != nil {
		return Grid{}, err
	}

	cells := make([][]Cell, h)
	for row := 0; row < h; row++ {
		cells[row] = make([]Cell, w)
		for col := 0; col < w; col++ {
			pos := CellWorldPosition(bounds, resolutionM, row, col)
			cells[row][col] = Interpolate(samples, CellTarget{X: pos.X, Y: pos.Y}, maxInterpolationDistM, method)
		}
	}

	return Grid{
		Bounds:           bounds,
		Width:            w,
		Height:           h,
		ResolutionM:      resolutionM,
		Cells:            cells,
		MeasurementCount: len(samples),
	}, nil
}

// BuildCombined builds one heatmap per BSSID in samplesByAP and folds them
// into a single grid holding, per cell, the maximum RSSI across every AP
// (the strongest signal wins).
func BuildCombined(bounds Bounds, resolutionM float64, samplesByAP map[string][]Sample, maxInterpolationDistM float64, method Method) (Grid, error) {
	w, h, err := Dimensions(bounds, resolutionM)
	if err != nil {
		return Grid{}, err
	}

	combined := make([][]Cell, h)
	for row := range combined {
		combined[row] = make([]Cell, w)
	}

	total := 0
	for _, samples := range samplesByAP {
		total += len(samples)
		grid, err := Build(bounds, resolutionM, samples, maxInterpolationDistM, method)
		if err != nil {
			return Grid{}, err
		}
		for row := 0; row < h; row++ {
			for col := 0; col < w; col++ {
				candidate := grid.Cells[row][col]
				if !candidate.Known {
					continue
				}
				current := combined[row][col]
				if !current.Known || candidate.RSSIDBm > current.RSSIDBm {
					combined[row][col] = candidate
				}
			}
		}
	}

	return Grid{
		Bounds:           bounds,
		Width:            w,
		Height:           h,
		ResolutionM:      resolutionM,
		Cells:            combined,
		MeasurementCount: total,
	}, nil
}
