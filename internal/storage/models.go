// Package storage persists SurveySession/SurveyMeasurement state, heatmap
// snapshots, and PlacementRecommendation history with GORM over SQLite,
// following the teacher's internal/adapters/storage/sqlite.go shape: a
// thin adapter struct wrapping *gorm.DB, auto-migrated models, WAL mode,
// and upsert-on-conflict writes. The core packages never import this
// package; it exists purely for cmd/netkitd's consuming orchestrator.
package storage

import "time"

// SessionModel is the GORM row for one SurveySession. Measurements live in
// a separate table keyed by SessionID; status is stored as its string
// form so the schema stays human-readable under sqlite3 CLI inspection.
type SessionModel struct {
	ID          string `gorm:"primaryKey"`
	Name        string
	SSID        string `gorm:"index"`
	Description string
	Status      string `gorm:"index"`
	StartTS     time.Time
	EndTS       time.Time
	HasEndTS    bool

	Measurements []MeasurementModel `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
}

// MeasurementModel is the GORM row for one (possibly merged)
// SurveyMeasurement. VisibleBSSIDsJSON holds the bssid->rssi map encoded
// as JSON, matching the teacher's pattern of JSON-encoding small maps
// into a single text column (wmap's DeviceModel.ActiveHours).
type MeasurementModel struct {
	ID                string `gorm:"primaryKey"`
	SessionID         string `gorm:"index"`
	Seq               int    `gorm:"index"` // preserves insertion order across a merge-in-place update
	Timestamp         time.Time
	LocX              float64
	LocY              float64
	LocLabel          string
	VisibleBSSIDsJSON string
	ConnectedBSSID    string
	HasConnection     bool
	ConnectedRSSI     float64
	MeasurementCount  int
}

// HeatmapSnapshotModel records one computed SignalHeatmap for a session,
// so the last heatmap a planning run saw can be replayed without
// recomputing it from raw measurements.
type HeatmapSnapshotModel struct {
	ID               uint `gorm:"primaryKey;autoIncrement"`
	SessionID        string `gorm:"index"`
	CreatedAt        time.Time
	MinX, MinY       float64
	MaxX, MaxY       float64
	GridWidth        int
	GridHeight       int
	ResolutionM      float64
	MeasurementCount int
	CellsJSON        string // [][]heatmap.Cell, row-major
}

// RecommendationModel stores one PlacementRecommendation snapshot for a
// session, preserving history so a planning UI can diff successive runs.
type RecommendationModel struct {
	ID                 uint `gorm:"primaryKey;autoIncrement"`
	SessionID          string `gorm:"index"`
	CreatedAt          time.Time
	CurrentCoveragePct float64
	TargetCoveragePct  float64
	Score              float64
	CostLevel          string
	PayloadJSON        string // full placement.PlacementRecommendation, JSON-encoded
}
