package reporting

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamco-admin/netkit/internal/deadzone"
	"github.com/lamco-admin/netkit/internal/placement"
	"github.com/lamco-admin/netkit/internal/survey"
)

func TestPDFExporterExportProducesValidPDF(t *testing.T) {
	exporter := NewPDFExporter()

	rec := placement.PlacementRecommendation{
		CurrentCoveragePct: 68,
		TargetCoveragePct:  95,
		Score:              58,
		CostLevel:          placement.CostMedium,
		DeadZones: []deadzone.DeadZone{
			{Severity: deadzone.SeverityCritical, AreaCells: 12, Centroid: survey.Location{X: 10, Y: 5}, HasAvgSignal: true, AvgSignalDBm: -94},
		},
		NewAPSuggestions: []placement.NewAPSuggestion{
			{Location: survey.Location{X: 10, Y: 5}, Severity: deadzone.SeverityCritical},
		},
		RepositionSuggestions: []placement.RepositionSuggestion{
			{BSSID: "aa:bb:cc:00:00:01", CoveragePct: 22},
		},
		PowerAdjustments: []placement.PowerAdjustment{
			{APID: "ap-1", FromDBm: 23, ToDBm: 20, WasReduced: true},
		},
		ChannelAssignments: []placement.ChannelAssignment{
			{APID: "ap-1", Channel: 6},
		},
	}

	data, err := exporter.Export(ReportMeta{
		SurveyName:  "Office Floor 2",
		SSID:        "CorpNet",
		GeneratedAt: time.Now(),
	}, rec)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Greater(t, len(data), 500)
}

func TestPDFExporterHandlesNoFindings(t *testing.T) {
	exporter := NewPDFExporter()

	data, err := exporter.Export(ReportMeta{SurveyName: "Empty", SSID: "none", GeneratedAt: time.Now()}, placement.PlacementRecommendation{
		Score:     100,
		CostLevel: placement.CostMinimal,
	})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}
