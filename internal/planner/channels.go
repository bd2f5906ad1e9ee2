package planner

import (
	"math"
	"sort"

	"github.com/lamco-admin/netkit/internal/rftables"
)

// AP is one access point's inputs to channel planning.
type AP struct {
	ID          string
	Band        rftables.Band
	Utilization float64 // 0..1 fraction of airtime in use
	// NeighborIDs are the other APs this one can interfere with
	// (co-channel or adjacent-channel), e.g. by proximity in a heatmap.
	NeighborIDs []string
}

func riskPenalty(risk DFSRisk) int {
	switch risk {
	case DFSRiskHigh:
		return 15
	case DFSRiskMedium:
		return 10
	case DFSRiskLow:
		return 5
	default:
		return 0
	}
}

// ScoreChannel scores candidate channel for ap given the current
// assignment of every AP (including ap itself, if already assigned):
// score = 100 - 20*co_channel_neighbors - 10*adjacent_channel_neighbors
//   - {15|10|5}*dfs_risk - round(utilization*20).
func ScoreChannel(domain Domain, ap AP, candidate int, assignments map[string]int, byID map[string]AP) int {
	co, adjacent := 0, 0
	for _, neighborID := range ap.NeighborIDs {
		assigned, ok := assignments[neighborID]
		if !ok {
			continue
		}
		switch {
		case assigned == candidate:
			co++
		case abs(assigned-candidate) <= 2:
			adjacent++
		}
	}

	score := 100
	score -= 20 * co
	score -= 10 * adjacent
	score -= riskPenalty(ChannelDFSRisk(domain, candidate))
	score -= int(math.Round(ap.Utilization * 20))
	return score
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// PlanChannels runs the greedy global optimizer: APs are ordered by
// descending neighbor count, and each is assigned the legal channel with
// the highest score, breaking ties by the lowest channel number. A
// domain's legal channel set (band-appropriate, DFS-gated) is never
// exceeded, and no channel is assigned to more than maxAPsPerChannel APs.
func PlanChannels(aps []AP, domain Domain, supportsDFS bool, maxAPsPerChannel int) map[string]int {
	byID := make(map[string]AP, len(aps))
	for _, ap := range aps {
		byID[ap.ID] = ap
	}

	ordered := append([]AP(nil), aps...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].NeighborIDs) > len(ordered[j].NeighborIDs)
	})

	assignments := make(map[string]int, len(aps))
	channelLoad := map[int]int{}

	for _, ap := range ordered {
		legal := AllowedChannels(domain, ap.Band, supportsDFS)
		best := -1
		bestScore := math.MinInt32
		for _, candidate := range legal {
			if channelLoad[candidate] >= maxAPsPerChannel {
				continue
			}
			score := ScoreChannel(domain, ap, candidate, assignments, byID)
			if score > bestScore || (score == bestScore && candidate < best) {
				best, bestScore = candidate, score
			}
		}
		if best == -1 {
			continue
		}
		assignments[ap.ID] = best
		channelLoad[best]++
	}

	return assignments
}
