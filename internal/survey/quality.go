package survey

// QualityCategory ranks how thoroughly a survey covers its target SSID.
type QualityCategory int

const (
	QualityInsufficient QualityCategory = iota
	QualityPoor
	QualityFair
	QualityGood
	QualityExcellent
)

func (q QualityCategory) String() string {
	switch q {
	case QualityExcellent:
		return "Excellent"
	case QualityGood:
		return "Good"
	case QualityFair:
		return "Fair"
	case QualityPoor:
		return "Poor"
	default:
		return "Insufficient"
	}
}

// AssessQuality ranks session by the tuple (#locations, average
// measurement count). Fewer than minPerLocation measurements is always
// Insufficient regardless of the tuple.
func AssessQuality(session SurveySession, minPerLocation int) QualityCategory {
	locations := len(session.Measurements)
	if locations < minPerLocation {
		return QualityInsufficient
	}

	avgCount := averageMeasurementCount(session.Measurements)

	switch {
	case locations >= 30 && avgCount >= 3:
		return QualityExcellent
	case locations >= 15 && avgCount >= 2:
		return QualityGood
	case locations >= 8 && avgCount >= 1:
		return QualityFair
	default:
		return QualityPoor
	}
}

func averageMeasurementCount(measurements []SurveyMeasurement) float64 {
	if len(measurements) == 0 {
		return 0
	}
	total := 0
	for _, m := range measurements {
		total += m.MeasurementCount
	}
	return float64(total) / float64(len(measurements))
}

// Bounds is the survey's planar extent: (minX, minY, maxX, maxY).
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// SurveyBounds returns the bounding box of every measurement location. A
// session with no measurements returns a zero-value Bounds.
func SurveyBounds(session SurveySession) Bounds {
	if len(session.Measurements) == 0 {
		return Bounds{}
	}
	first := session.Measurements[0].Location
	b := Bounds{MinX: first.X, MaxX: first.X, MinY: first.Y, MaxY: first.Y}
	for _, m := range session.Measurements[1:] {
		loc := m.Location
		if loc.X < b.MinX {
			b.MinX = loc.X
		}
		if loc.X > b.MaxX {
			b.MaxX = loc.X
		}
		if loc.Y < b.MinY {
			b.MinY = loc.Y
		}
		if loc.Y > b.MaxY {
			b.MaxY = loc.Y
		}
	}
	return b
}

// APStats summarizes one BSSID's visibility across a survey.
type APStats struct {
	Count       int
	AvgRSSI     float64
	CoveragePct float64
}

// PerAPStats computes, per BSSID, how many measurements saw it, its mean
// RSSI, and the fraction of all measurements in which it was visible.
func PerAPStats(session SurveySession) map[string]APStats {
	total := len(session.Measurements)
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, m := range session.Measurements {
		for bssid, rssi := range m.VisibleBSSIDs {
			sums[bssid] += rssi
			counts[bssid]++
		}
	}

	stats := make(map[string]APStats, len(counts))
	for bssid, count := range counts {
		coverage := 0.0
		if total > 0 {
			coverage = float64(count) / float64(total) * 100
		}
		stats[bssid] = APStats{
			Count:       count,
			AvgRSSI:     sums[bssid] / float64(count),
			CoveragePct: coverage,
		}
	}
	return stats
}
