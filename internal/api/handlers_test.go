package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamco-admin/netkit/internal/config"
	"github.com/lamco-admin/netkit/internal/storage"
	"github.com/lamco-admin/netkit/internal/survey"
)

func setupTestServer(t *testing.T) *Server {
	store, err := storage.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg := &config.Config{
		SpatialResolutionM:    2.0,
		HeatmapResolutionM:    2.0,
		MaxInterpolationDistM: 20.0,
		InterpolationMethod:   "idw",
		MinDeadZoneSizeCells:  1,
		RegulatoryDomain:      "FCC",
	}
	return NewServer(":0", store, cfg)
}

func TestCreateAndGetSurvey(t *testing.T) {
	s := setupTestServer(t)
	router := s.Router()

	body, _ := json.Marshal(createSurveyRequest{Name: "Floor 2", SSID: "CorpNet"})
	req := httptest.NewRequest(http.MethodPost, "/surveys", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created survey.SurveySession
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, "Floor 2", created.Name)

	getReq := httptest.NewRequest(http.MethodGet, "/surveys/"+created.ID, nil)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, getReq)
	require.Equal(t, http.StatusOK, getRec.Code)
}

func TestCreateSurveyRejectsBlankSSID(t *testing.T) {
	s := setupTestServer(t)
	router := s.Router()

	body, _ := json.Marshal(createSurveyRequest{Name: "Floor 2", SSID: ""})
	req := httptest.NewRequest(http.MethodPost, "/surveys", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddMeasurementAndHeatmap(t *testing.T) {
	s := setupTestServer(t)
	router := s.Router()

	body, _ := json.Marshal(createSurveyRequest{Name: "Floor 2", SSID: "CorpNet"})
	createReq := httptest.NewRequest(http.MethodPost, "/surveys", bytes.NewReader(body))
	createRec := httptest.NewRecorder()
	router.ServeHTTP(createRec, createReq)
	var session survey.SurveySession
	require.NoError(t, json.NewDecoder(createRec.Body).Decode(&session))

	measBody, _ := json.Marshal(addMeasurementRequest{
		Observations: []survey.BSSObservation{{BSSID: "aa:bb:cc:00:00:01", SSID: "CorpNet", RSSI: -55}},
		Location:     survey.Location{X: 0, Y: 0},
	})
	measReq := httptest.NewRequest(http.MethodPost, "/surveys/"+session.ID+"/measurements", bytes.NewReader(measBody))
	measRec := httptest.NewRecorder()
	router.ServeHTTP(measRec, measReq)
	require.Equal(t, http.StatusOK, measRec.Code)

	heatmapReq := httptest.NewRequest(http.MethodGet, "/surveys/"+session.ID+"/heatmap", nil)
	heatmapRec := httptest.NewRecorder()
	router.ServeHTTP(heatmapRec, heatmapReq)
	assert.Equal(t, http.StatusOK, heatmapRec.Code)
}

func TestGetSurveyNotFound(t *testing.T) {
	s := setupTestServer(t)
	router := s.Router()

	req := httptest.NewRequest(http.MethodGet, "/surveys/missing-id", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
