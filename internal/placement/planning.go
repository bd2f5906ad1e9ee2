package placement

import (
	"github.com/lamco-admin/netkit/internal/planner"
	"github.com/lamco-admin/netkit/internal/rftables"
	"github.com/lamco-admin/netkit/internal/survey"
)

// PowerPlanConfig parametrizes the power step-down search Recommend runs
// per AP via planner.OptimizePower.
type PowerPlanConfig struct {
	Band            rftables.Band
	MaxInterference float64
	StartPowerDBm   float64
	EdgeDistanceM   float64
	MinRSSIDBm      float64
}

// PlanningInput carries the regulatory and power-search parameters
// Recommend needs to invoke planner.PlanChannels and planner.OptimizePower
// against the survey's observed APs.
type PlanningInput struct {
	Domain           planner.Domain
	SupportsDFS      bool
	MaxAPsPerChannel int
	Power            PowerPlanConfig
}

// coOccurrenceAPs builds one planner.AP per observed BSSID, treating two
// APs as neighbors whenever a single measurement saw both: without a
// per-BSSID band tag in the survey model, simultaneous visibility from one
// vantage point is the best available proxy for "could interfere." Every
// AP is scored against band, the caller's configured planning band; a
// deployment that needs per-band planning would extend
// survey.BSSObservation with a band field and thread it through here.
func coOccurrenceAPs(session survey.SurveySession, apStats map[string]survey.APStats, band rftables.Band) []planner.AP {
	neighbors := map[string]map[string]bool{}
	for _, m := range session.Measurements {
		bssids := make([]string, 0, len(m.VisibleBSSIDs))
		for bssid := range m.VisibleBSSIDs {
			bssids = append(bssids, bssid)
		}
		for i := range bssids {
			for j := range bssids {
				if i == j {
					continue
				}
				if neighbors[bssids[i]] == nil {
					neighbors[bssids[i]] = map[string]bool{}
				}
				neighbors[bssids[i]][bssids[j]] = true
			}
		}
	}

	aps := make([]planner.AP, 0, len(apStats))
	for bssid, stats := range apStats {
		var ids []string
		for n := range neighbors[bssid] {
			ids = append(ids, n)
		}
		aps = append(aps, planner.AP{
			ID:          bssid,
			Band:        band,
			Utilization: 1 - stats.CoveragePct/100,
			NeighborIDs: ids,
		})
	}
	return aps
}

// optimizePowerAdjustments runs planner.OptimizePower for each AP, assuming
// cfg.StartPowerDBm EIRP at cfg.EdgeDistanceM from the coverage edge, and
// keeps the result whenever the search reduced power or the AP's average
// observed RSSI already falls below cfg.MinRSSIDBm.
func optimizePowerAdjustments(apStats map[string]survey.APStats, cfg PowerPlanConfig) []PowerAdjustment {
	var adjustments []PowerAdjustment
	neighborCount := len(apStats) - 1
	for bssid, stats := range apStats {
		power, reduced := planner.OptimizePower(cfg.StartPowerDBm, cfg.Band, neighborCount, cfg.MaxInterference, cfg.EdgeDistanceM, cfg.MinRSSIDBm)
		if !reduced && stats.AvgRSSI >= cfg.MinRSSIDBm {
			continue
		}
		adjustments = append(adjustments, PowerAdjustment{
			APID:       bssid,
			FromDBm:    cfg.StartPowerDBm,
			ToDBm:      power,
			WasReduced: reduced,
		})
	}
	return adjustments
}
