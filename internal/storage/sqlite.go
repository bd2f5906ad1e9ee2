package storage

import (
	"context"
	"errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/lamco-admin/netkit/internal/heatmap"
	"github.com/lamco-admin/netkit/internal/placement"
	"github.com/lamco-admin/netkit/internal/survey"
)

// ErrNotFound is returned when a lookup by ID matches no row.
var ErrNotFound = errors.New("storage: not found")

// Store persists survey sessions, heatmap snapshots, and placement
// recommendations over GORM/SQLite.
type Store struct {
	db *gorm.DB
}

// Open initializes the database at path and migrates the schema, following
// the teacher's NewSQLiteAdapter: WAL mode, a busy timeout, and
// NORMAL synchronous durability.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&SessionModel{},
		&MeasurementModel{},
		&HeatmapSnapshotModel{},
		&RecommendationModel{},
	); err != nil {
		return nil, err
	}

	if err := db.Use(tracing.NewPlugin()); err != nil {
		return nil, err
	}

	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA busy_timeout=5000;")
	db.Exec("PRAGMA synchronous=NORMAL;")

	db.Exec("CREATE INDEX IF NOT EXISTS idx_measurements_session ON measurement_models(session_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_heatmaps_session ON heatmap_snapshot_models(session_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_recommendations_session ON recommendation_models(session_id)")

	return &Store{db: db}, nil
}

// SaveSession upserts session and replaces its measurement rows wholesale
// inside one transaction, matching the value-typed "mutation returns a new
// session" semantics of internal/survey: the persisted row always reflects
// the session as a whole, never a partial patch.
func (s *Store) SaveSession(ctx context.Context, session survey.SurveySession) error {
	model := sessionToModel(session)
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).
			Omit("Measurements").Create(&model).Error; err != nil {
			return err
		}
		if err := tx.Where("session_id = ?", session.ID).Delete(&MeasurementModel{}).Error; err != nil {
			return err
		}
		if len(model.Measurements) == 0 {
			return nil
		}
		return tx.CreateInBatches(model.Measurements, 100).Error
	})
}

// GetSession loads a session and its measurements in insertion order.
func (s *Store) GetSession(ctx context.Context, id string) (survey.SurveySession, error) {
	var model SessionModel
	err := s.db.WithContext(ctx).
		Preload("Measurements", func(db *gorm.DB) *gorm.DB { return db.Order("seq asc") }).
		First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return survey.SurveySession{}, ErrNotFound
	}
	if err != nil {
		return survey.SurveySession{}, err
	}
	return modelToSession(model), nil
}

// ListSessions returns every stored session's metadata (without
// measurements, for a lightweight index view).
func (s *Store) ListSessions(ctx context.Context) ([]survey.SurveySession, error) {
	var models []SessionModel
	if err := s.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	sessions := make([]survey.SurveySession, len(models))
	for i, m := range models {
		sessions[i] = modelToSession(m)
	}
	return sessions, nil
}

// SaveHeatmapSnapshot records one computed heatmap for sessionID.
func (s *Store) SaveHeatmapSnapshot(ctx context.Context, sessionID string, grid heatmap.Grid) error {
	model := heatmapToModel(sessionID, grid)
	return s.db.WithContext(ctx).Create(&model).Error
}

// LatestHeatmap returns the most recently saved heatmap for sessionID.
func (s *Store) LatestHeatmap(ctx context.Context, sessionID string) (heatmap.Grid, error) {
	var model HeatmapSnapshotModel
	err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id desc").
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return heatmap.Grid{}, ErrNotFound
	}
	if err != nil {
		return heatmap.Grid{}, err
	}
	return modelToHeatmap(model), nil
}

// SaveRecommendation records one PlacementRecommendation snapshot for
// sessionID, preserving history of prior runs.
func (s *Store) SaveRecommendation(ctx context.Context, sessionID string, rec placement.PlacementRecommendation) error {
	model, err := recommendationToModel(sessionID, rec)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Create(&model).Error
}

// LatestRecommendation returns the most recently saved recommendation for
// sessionID.
func (s *Store) LatestRecommendation(ctx context.Context, sessionID string) (placement.PlacementRecommendation, error) {
	var model RecommendationModel
	err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id desc").
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return placement.PlacementRecommendation{}, ErrNotFound
	}
	if err != nil {
		return placement.PlacementRecommendation{}, err
	}
	return modelToRecommendation(model)
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
