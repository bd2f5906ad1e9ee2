package storage

import (
	"encoding/json"

	"github.com/lamco-admin/netkit/internal/heatmap"
	"github.com/lamco-admin/netkit/internal/placement"
	"github.com/lamco-admin/netkit/internal/survey"
)

func sessionToModel(s survey.SurveySession) SessionModel {
	model := SessionModel{
		ID:          s.ID,
		Name:        s.Name,
		SSID:        s.SSID,
		Description: s.Description,
		Status:      s.Status.String(),
		StartTS:     s.StartTS,
		EndTS:       s.EndTS,
		HasEndTS:    s.HasEndTS,
	}
	for i, m := range s.Measurements {
		model.Measurements = append(model.Measurements, measurementToModel(s.ID, i, m))
	}
	return model
}

func measurementToModel(sessionID string, seq int, m survey.SurveyMeasurement) MeasurementModel {
	visibleJSON, _ := json.Marshal(m.VisibleBSSIDs)
	return MeasurementModel{
		ID:                m.ID,
		SessionID:         sessionID,
		Seq:               seq,
		Timestamp:         m.Timestamp,
		LocX:              m.Location.X,
		LocY:              m.Location.Y,
		LocLabel:          m.Location.Label,
		VisibleBSSIDsJSON: string(visibleJSON),
		ConnectedBSSID:    m.ConnectedBSSID,
		HasConnection:     m.HasConnection,
		ConnectedRSSI:     m.ConnectedRSSI,
		MeasurementCount:  m.MeasurementCount,
	}
}

func modelToSession(model SessionModel) survey.SurveySession {
	s := survey.SurveySession{
		ID:          model.ID,
		Name:        model.Name,
		SSID:        model.SSID,
		Description: model.Description,
		Status:      statusFromString(model.Status),
		StartTS:     model.StartTS,
		EndTS:       model.EndTS,
		HasEndTS:    model.HasEndTS,
	}
	for _, mm := range model.Measurements {
		s.Measurements = append(s.Measurements, modelToMeasurement(mm))
	}
	return s
}

func modelToMeasurement(model MeasurementModel) survey.SurveyMeasurement {
	var visible map[string]float64
	_ = json.Unmarshal([]byte(model.VisibleBSSIDsJSON), &visible)
	return survey.SurveyMeasurement{
		ID:        model.ID,
		Timestamp: model.Timestamp,
		Location: survey.Location{
			X:     model.LocX,
			Y:     model.LocY,
			Label: model.LocLabel,
		},
		VisibleBSSIDs:    visible,
		ConnectedBSSID:   model.ConnectedBSSID,
		HasConnection:    model.HasConnection,
		ConnectedRSSI:    model.ConnectedRSSI,
		MeasurementCount: model.MeasurementCount,
	}
}

func statusFromString(s string) survey.Status {
	switch s {
	case "Completed":
		return survey.StatusCompleted
	case "Aborted":
		return survey.StatusAborted
	default:
		return survey.StatusInProgress
	}
}

func heatmapToModel(sessionID string, g heatmap.Grid) HeatmapSnapshotModel {
	cellsJSON, _ := json.Marshal(g.Cells)
	return HeatmapSnapshotModel{
		SessionID:        sessionID,
		MinX:             g.Bounds.MinX,
		MinY:             g.Bounds.MinY,
		MaxX:             g.Bounds.MaxX,
		MaxY:             g.Bounds.MaxY,
		GridWidth:        g.Width,
		GridHeight:       g.Height,
		ResolutionM:      g.ResolutionM,
		MeasurementCount: g.MeasurementCount,
		CellsJSON:        string(cellsJSON),
	}
}

func modelToHeatmap(model HeatmapSnapshotModel) heatmap.Grid {
	var cells [][]heatmap.Cell
	_ = json.Unmarshal([]byte(model.CellsJSON), &cells)
	return heatmap.Grid{
		Bounds: heatmap.Bounds{
			MinX: model.MinX,
			MinY: model.MinY,
			MaxX: model.MaxX,
			MaxY: model.MaxY,
		},
		Width:            model.GridWidth,
		Height:           model.GridHeight,
		ResolutionM:      model.ResolutionM,
		Cells:            cells,
		MeasurementCount: model.MeasurementCount,
	}
}

func recommendationToModel(sessionID string, r placement.PlacementRecommendation) (RecommendationModel, error) {
	payload, err := json.Marshal(r)
	if err != nil {
		return RecommendationModel{}, err
	}
	return RecommendationModel{
		SessionID:          sessionID,
		CurrentCoveragePct: r.CurrentCoveragePct,
		TargetCoveragePct:  r.TargetCoveragePct,
		Score:              r.Score,
		CostLevel:          r.CostLevel.String(),
		PayloadJSON:        string(payload),
	}, nil
}

func modelToRecommendation(model RecommendationModel) (placement.PlacementRecommendation, error) {
	var r placement.PlacementRecommendation
	err := json.Unmarshal([]byte(model.PayloadJSON), &r)
	return r, err
}
