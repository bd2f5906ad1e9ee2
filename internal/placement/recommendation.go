// Package placement combines the survey, heatmap, dead-zone, and planner
// components into one actionable PlacementRecommendation.
package placement

import (
	"github.com/lamco-admin/netkit/internal/deadzone"
	"github.com/lamco-admin/netkit/internal/planner"
	"github.com/lamco-admin/netkit/internal/survey"
)

// CostLevel buckets a recommendation's rough remediation cost by how many
// new access points it proposes.
type CostLevel int

const (
	CostMinimal CostLevel = iota
	CostLow
	CostMedium
	CostHigh
)

func (c CostLevel) String() string {
	switch c {
	case CostLow:
		return "Low"
	case CostMedium:
		return "Medium"
	case CostHigh:
		return "High"
	default:
		return "Minimal"
	}
}

// costFromNewAPCount derives CostLevel from how many new APs are
// suggested: 0 is Minimal, 1 is Low, 2-3 is Medium, 4+ is High.
func costFromNewAPCount(count int) CostLevel {
	switch {
	case count == 0:
		return CostMinimal
	case count == 1:
		return CostLow
	case count <= 3:
		return CostMedium
	default:
		return CostHigh
	}
}

// NewAPSuggestion proposes installing an access point at a dead zone's
// centroid.
type NewAPSuggestion struct {
	Location survey.Location
	Severity deadzone.Severity
}

// RepositionSuggestion flags an existing AP whose observed coverage is too
// low across the survey.
type RepositionSuggestion struct {
	BSSID       string
	CoveragePct float64
}

// PowerAdjustment is a recommended EIRP change for one AP.
type PowerAdjustment struct {
	APID       string
	FromDBm    float64
	ToDBm      float64
	WasReduced bool
}

// ChannelAssignment is a recommended channel for one AP.
type ChannelAssignment struct {
	APID    string
	Channel int
}

// PlacementRecommendation is the synthesized output of the coverage and
// planning pipeline.
type PlacementRecommendation struct {
	CurrentCoveragePct    float64
	TargetCoveragePct     float64
	DeadZones             []deadzone.DeadZone
	NewAPSuggestions      []NewAPSuggestion
	RepositionSuggestions []RepositionSuggestion
	PowerAdjustments      []PowerAdjustment
	ChannelAssignments    []ChannelAssignment
	Score                 float64
	CostLevel             CostLevel
}

// RepositionCoverageThresholdPct is the coverage percentage below which an
// AP is flagged for repositioning.
const RepositionCoverageThresholdPct = 40.0

// Recommend synthesizes a PlacementRecommendation from a completed
// survey's per-AP coverage stats and detected dead zones, running the
// channel and power planner itself against the survey's observed APs.
func Recommend(
	currentCoveragePct, targetCoveragePct float64,
	zones []deadzone.DeadZone,
	apStats map[string]survey.APStats,
	session survey.SurveySession,
	planning PlanningInput,
) PlacementRecommendation {
	var newAPs []NewAPSuggestion
	criticalOrHigh := 0
	for _, z := range zones {
		if z.Severity == deadzone.SeverityCritical || z.Severity == deadzone.SeverityHigh {
			newAPs = append(newAPs, NewAPSuggestion{Location: z.Centroid, Severity: z.Severity})
			criticalOrHigh++
		}
	}

	var repositions []RepositionSuggestion
	for bssid, stats := range apStats {
		if stats.CoveragePct < RepositionCoverageThresholdPct {
			repositions = append(repositions, RepositionSuggestion{BSSID: bssid, CoveragePct: stats.CoveragePct})
		}
	}

	aps := coOccurrenceAPs(session, apStats, planning.Power.Band)
	channelAssignments := planner.PlanChannels(aps, planning.Domain, planning.SupportsDFS, planning.MaxAPsPerChannel)
	powerAdjustments := optimizePowerAdjustments(apStats, planning.Power)

	var channels []ChannelAssignment
	for apID, ch := range channelAssignments {
		channels = append(channels, ChannelAssignment{APID: apID, Channel: ch})
	}

	criticalCount := 0
	for _, z := range zones {
		if z.Severity == deadzone.SeverityCritical {
			criticalCount++
		}
	}
	score := clamp(currentCoveragePct-float64(criticalCount)*10, 0, 100)

	return PlacementRecommendation{
		CurrentCoveragePct:    currentCoveragePct,
		TargetCoveragePct:     targetCoveragePct,
		DeadZones:             zones,
		NewAPSuggestions:      newAPs,
		RepositionSuggestions: repositions,
		PowerAdjustments:      powerAdjustments,
		ChannelAssignments:    channels,
		Score:                 score,
		CostLevel:             costFromNewAPCount(len(newAPs)),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
