package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/lamco-admin/netkit/internal/deadzone"
	"github.com/lamco-admin/netkit/internal/heatmap"
	"github.com/lamco-admin/netkit/internal/netkiterr"
	"github.com/lamco-admin/netkit/internal/placement"
	"github.com/lamco-admin/netkit/internal/reporting"
	"github.com/lamco-admin/netkit/internal/rftables"
	"github.com/lamco-admin/netkit/internal/storage"
	"github.com/lamco-admin/netkit/internal/survey"
	"github.com/lamco-admin/netkit/internal/telemetry"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, netkiterr.ErrInvalidInput):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}
	slog.Error("api.request_failed", "error", err.Error(), "status", status)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

type createSurveyRequest struct {
	Name        string `json:"name"`
	SSID        string `json:"ssid"`
	Description string `json:"description"`
}

func (s *Server) handleCreateSurvey(w http.ResponseWriter, r *http.Request) {
	var req createSurveyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, netkiterr.Invalid("body", "malformed JSON"))
		return
	}

	session, err := survey.CreateSurvey(req.Name, req.SSID, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.Store.SaveSession(r.Context(), session); err != nil {
		writeError(w, err)
		return
	}
	slog.Info("survey.created", "session_id", session.ID, "ssid", session.SSID)
	writeJSON(w, http.StatusCreated, session)
}

func (s *Server) handleListSurveys(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.Store.ListSessions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (s *Server) handleGetSurvey(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	session, err := s.Store.GetSession(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

type addMeasurementRequest struct {
	Observations []survey.BSSObservation `json:"observations"`
	Connected    *survey.BSSObservation  `json:"connected,omitempty"`
	Location     survey.Location         `json:"location"`
}

func (s *Server) handleAddMeasurement(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	session, err := s.Store.GetSession(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	var req addMeasurementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, netkiterr.Invalid("body", "malformed JSON"))
		return
	}

	ctx, span := telemetry.StartSpan(r.Context(), "survey.add_measurement")
	defer span.End()

	snapshot := survey.Snapshot{Observations: req.Observations}
	if req.Connected != nil {
		snapshot.ConnectedBSSID = req.Connected.BSSID
		snapshot.ConnectedRSSI = req.Connected.RSSI
		snapshot.HasConnection = true
	}

	updated, err := survey.AddMeasurement(session, snapshot, req.Location, s.Cfg.SpatialResolutionM)
	if err != nil {
		telemetry.SurveyMeasurementsTotal.WithLabelValues("rejected").Inc()
		writeError(w, err)
		return
	}
	if err := s.Store.SaveSession(ctx, updated); err != nil {
		writeError(w, err)
		return
	}

	outcome := "appended"
	if len(updated.Measurements) == len(session.Measurements) {
		outcome = "merged"
	}
	telemetry.SurveyMeasurementsTotal.WithLabelValues(outcome).Inc()
	s.WS.Broadcast(WSMessage{Type: "measurement_added", Payload: updated})

	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleCompleteSurvey(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	session, err := s.Store.GetSession(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	updated, err := survey.CompleteSurvey(session)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.Store.SaveSession(r.Context(), updated); err != nil {
		writeError(w, err)
		return
	}
	slog.Info("survey.completed", "session_id", updated.ID, "measurements", len(updated.Measurements))
	writeJSON(w, http.StatusOK, updated)
}

// buildHeatmap loads session and interpolates the combined (max-across-AP)
// heatmap over its bounds at the daemon's configured resolution.
func (s *Server) buildHeatmap(r *http.Request, id string) (survey.SurveySession, heatmap.Grid, error) {
	ctx, span := telemetry.StartSpan(r.Context(), "heatmap.compute")
	defer span.End()

	session, err := s.Store.GetSession(ctx, id)
	if err != nil {
		return survey.SurveySession{}, heatmap.Grid{}, err
	}

	bounds := survey.SurveyBounds(session)
	samplesByAP := map[string][]heatmap.Sample{}
	for _, m := range session.Measurements {
		for bssid, rssi := range m.VisibleBSSIDs {
			samplesByAP[bssid] = append(samplesByAP[bssid], heatmap.Sample{Location: m.Location, RSSIDBm: rssi})
		}
	}

	method := parseMethod(s.Cfg.InterpolationMethod)
	timer := time.Now()
	grid, err := heatmap.BuildCombined(
		heatmap.Bounds{MinX: bounds.MinX, MinY: bounds.MinY, MaxX: bounds.MaxX, MaxY: bounds.MaxY},
		s.Cfg.HeatmapResolutionM, samplesByAP, s.Cfg.MaxInterpolationDistM, method,
	)
	telemetry.HeatmapCellDuration.WithLabelValues(s.Cfg.InterpolationMethod).Observe(time.Since(timer).Seconds())
	if err != nil {
		return session, heatmap.Grid{}, err
	}

	_ = s.Store.SaveHeatmapSnapshot(ctx, id, grid)
	return session, grid, nil
}

func parseMethod(name string) heatmap.Method {
	switch name {
	case "nearest":
		return heatmap.MethodNearest
	case "bilinear":
		return heatmap.MethodBilinear
	default:
		return heatmap.MethodIDW
	}
}

func (s *Server) handleGetHeatmap(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	_, grid, err := s.buildHeatmap(r, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, grid)
}

func (s *Server) handleGetDeadZones(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	_, grid, err := s.buildHeatmap(r, id)
	if err != nil {
		writeError(w, err)
		return
	}

	zones := deadzone.DetectAll(grid, deadzone.DefaultTiers(), s.Cfg.MinDeadZoneSizeCells)
	for _, z := range zones {
		telemetry.DeadZoneCount.WithLabelValues(z.Severity.String()).Inc()
	}
	writeJSON(w, http.StatusOK, zones)
}

func (s *Server) handleGetRecommendation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	session, grid, err := s.buildHeatmap(r, id)
	if err != nil {
		writeError(w, err)
		return
	}

	zones := deadzone.DetectAll(grid, deadzone.DefaultTiers(), s.Cfg.MinDeadZoneSizeCells)
	apStats := survey.PerAPStats(session)

	planning := placement.PlanningInput{
		Domain:           regulatoryDomain(s.Cfg.RegulatoryDomain),
		SupportsDFS:      s.Cfg.SupportsDFS,
		MaxAPsPerChannel: s.Cfg.MaxAPsPerChannel,
		Power: placement.PowerPlanConfig{
			Band:            rftables.Band5,
			MaxInterference: 0.5,
			StartPowerDBm:   20.0,
			EdgeDistanceM:   15.0,
			MinRSSIDBm:      -70.0,
		},
	}

	currentCoverage := coveragePctFromGrid(grid)
	rec := placement.Recommend(currentCoverage, 95.0, zones, apStats, session, planning)

	if err := s.Store.SaveRecommendation(r.Context(), id, rec); err != nil {
		writeError(w, err)
		return
	}
	telemetry.PlannerRunsTotal.WithLabelValues(s.Cfg.RegulatoryDomain).Inc()
	writeJSON(w, http.StatusOK, rec)
}

func coveragePctFromGrid(grid heatmap.Grid) float64 {
	total, known := 0, 0
	for _, row := range grid.Cells {
		for _, cell := range row {
			total++
			if cell.Known && cell.RSSIDBm > -85 {
				known++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(known) / float64(total) * 100
}

func (s *Server) handleDownloadReport(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	session, err := s.Store.GetSession(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	rec, err := s.Store.LatestRecommendation(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	exporter := reporting.NewPDFExporter()
	pdfBytes, err := exporter.Export(reporting.ReportMeta{
		SurveyName:  session.Name,
		SSID:        session.SSID,
		GeneratedAt: time.Now(),
	}, rec)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"site-survey.pdf\"")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}
