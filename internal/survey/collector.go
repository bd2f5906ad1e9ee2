package survey

import (
	"time"

	"github.com/google/uuid"

	"github.com/lamco-admin/netkit/internal/netkiterr"
)

// CreateSurvey starts a new InProgress session. name and ssid must both be
// non-blank.
func CreateSurvey(name, ssid, description string) (SurveySession, error) {
	if blank(name) {
		return SurveySession{}, netkiterr.Invalid("name", "must not be blank")
	}
	if blank(ssid) {
		return SurveySession{}, netkiterr.Invalid("ssid", "must not be blank")
	}
	return SurveySession{
		ID:      uuid.NewString(),
		Name:    name,
		SSID:    ssid,
		Description: description,
		Status:  StatusInProgress,
		StartTS: time.Now(),
	}, nil
}

// AddMeasurement folds a snapshot taken at location into session, returning
// a new session. The snapshot must contain at least one observation whose
// SSID equals the session's target SSID. If an existing measurement lies
// within spatialResolutionM of location, the closest one is merged
// (midpoint location, mean RSSI per BSSID); otherwise the reading is
// appended as a new measurement.
func AddMeasurement(session SurveySession, snapshot Snapshot, location Location, spatialResolutionM float64) (SurveySession, error) {
	if session.Status != StatusInProgress {
		return SurveySession{}, netkiterr.Invalid("session", "must be InProgress to add a measurement")
	}
	if !hasMatchingSSID(snapshot, session.SSID) {
		return SurveySession{}, netkiterr.Invalid("snapshot", "must contain at least one BSS matching the session ssid")
	}

	reading := newMeasurement(snapshot, location)

	closest, idx := findClosestWithin(session.Measurements, location, spatialResolutionM)
	next := session
	next.Measurements = append([]SurveyMeasurement(nil), session.Measurements...)
	if idx >= 0 {
		next.Measurements[idx] = mergeMeasurements(closest, reading)
	} else {
		next.Measurements = append(next.Measurements, reading)
	}
	return next, nil
}

// CompleteSurvey transitions session to Completed and stamps EndTS.
func CompleteSurvey(session SurveySession) (SurveySession, error) {
	if session.Status != StatusInProgress {
		return SurveySession{}, netkiterr.Invalid("session", "must be InProgress to complete")
	}
	next := session
	next.Status = StatusCompleted
	next.EndTS = time.Now()
	next.HasEndTS = true
	return next, nil
}

func blank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' {
			return false
		}
	}
	return true
}

func hasMatchingSSID(snapshot Snapshot, ssid string) bool {
	for _, obs := range snapshot.Observations {
		if obs.SSID == ssid {
			return true
		}
	}
	return false
}

func newMeasurement(snapshot Snapshot, location Location) SurveyMeasurement {
	visible := make(map[string]float64, len(snapshot.Observations))
	for _, obs := range snapshot.Observations {
		visible[obs.BSSID] = obs.RSSI
	}
	return SurveyMeasurement{
		ID:               uuid.NewString(),
		Timestamp:        time.Now(),
		Location:         location,
		VisibleBSSIDs:    visible,
		ConnectedBSSID:   snapshot.ConnectedBSSID,
		HasConnection:    snapshot.HasConnection,
		ConnectedRSSI:    snapshot.ConnectedRSSI,
		MeasurementCount: 1,
	}
}

// findClosestWithin returns the nearest measurement to location within
// maxDist (inclusive), and its index; idx is -1 if none qualifies.
func findClosestWithin(measurements []SurveyMeasurement, location Location, maxDist float64) (SurveyMeasurement, int) {
	best := -1
	bestDist := 0.0
	for i, m := range measurements {
		d := m.Location.DistanceTo(location)
		if d <= maxDist && (best == -1 || d < bestDist) {
			best = i
			bestDist = d
		}
	}
	if best == -1 {
		return SurveyMeasurement{}, -1
	}
	return measurements[best], best
}

// mergeMeasurements combines an existing measurement with a new reading:
// midpoint location, mean RSSI per BSSID, and an incremented count.
func mergeMeasurements(existing, incoming SurveyMeasurement) SurveyMeasurement {
	merged := existing
	merged.Location = Location{
		X:     (existing.Location.X + incoming.Location.X) / 2,
		Y:     (existing.Location.Y + incoming.Location.Y) / 2,
		Label: existing.Location.Label,
	}
	merged.VisibleBSSIDs = meanRSSIPerBSSID(existing.VisibleBSSIDs, incoming.VisibleBSSIDs)
	merged.MeasurementCount = existing.MeasurementCount + 1
	merged.Timestamp = incoming.Timestamp
	if incoming.HasConnection {
		merged.ConnectedBSSID = incoming.ConnectedBSSID
		merged.ConnectedRSSI = incoming.ConnectedRSSI
		merged.HasConnection = true
	}
	return merged
}

func meanRSSIPerBSSID(a, b map[string]float64) map[string]float64 {
	merged := make(map[string]float64, len(a)+len(b))
	for bssid, rssi := range a {
		merged[bssid] = rssi
	}
	for bssid, rssi := range b {
		if existing, ok := merged[bssid]; ok {
			merged[bssid] = (existing + rssi) / 2
		} else {
			merged[bssid] = rssi
		}
	}
	return merged
}
