package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lamco-admin/netkit/internal/rftables"
)

func TestAllowedChannels_ExcludesDFSWithoutSupport(t *testing.T) {
	withoutDFS := AllowedChannels(DomainFCC, rftables.Band5, false)
	withDFS := AllowedChannels(DomainFCC, rftables.Band5, true)
	assert.NotContains(t, withoutDFS, 52)
	assert.Contains(t, withDFS, 52)
}

func TestChannelDFSRisk(t *testing.T) {
	assert.Equal(t, DFSRiskNone, ChannelDFSRisk(DomainFCC, 36))
	assert.Equal(t, DFSRiskHigh, ChannelDFSRisk(DomainFCC, 120))
	assert.Equal(t, DFSRiskMedium, ChannelDFSRisk(DomainFCC, 52))
}

func TestScoreChannel_PenalizesCoChannelNeighbors(t *testing.T) {
	byID := map[string]AP{}
	ap := AP{ID: "ap1", Band: rftables.Band24, NeighborIDs: []string{"ap2"}}
	assignments := map[string]int{"ap2": 6}

	clean := ScoreChannel(DomainFCC, ap, 1, assignments, byID)
	conflicting := ScoreChannel(DomainFCC, ap, 6, assignments, byID)
	assert.Equal(t, 20, clean-conflicting)
}

func TestPlanChannels_NeverAssignsOutsideDomain(t *testing.T) {
	aps := []AP{
		{ID: "a", Band: rftables.Band24, NeighborIDs: []string{"b"}},
		{ID: "b", Band: rftables.Band24, NeighborIDs: []string{"a"}},
	}
	assignments := PlanChannels(aps, DomainFCC, false, 10)
	legal := AllowedChannels(DomainFCC, rftables.Band24, false)
	for _, ch := range assignments {
		assert.Contains(t, legal, ch)
	}
}

func TestPlanChannels_RespectsMaxAPsPerChannel(t *testing.T) {
	aps := []AP{
		{ID: "a", Band: rftables.Band5},
		{ID: "b", Band: rftables.Band5},
		{ID: "c", Band: rftables.Band5},
	}
	assignments := PlanChannels(aps, DomainFCC, false, 1)
	seen := map[int]int{}
	for _, ch := range assignments {
		seen[ch]++
	}
	for _, count := range seen {
		assert.LessOrEqual(t, count, 1)
	}
}

func TestPathLossDB_IncreasesWithDistance(t *testing.T) {
	near := PathLossDB(rftables.Band5, 1)
	far := PathLossDB(rftables.Band5, 100)
	assert.Less(t, near, far)
}

func TestInterferenceLevel_ClampsToUnitRange(t *testing.T) {
	assert.GreaterOrEqual(t, InterferenceLevel(30, rftables.Band24, 50), 0.0)
	assert.LessOrEqual(t, InterferenceLevel(30, rftables.Band24, 50), 1.0)
}

func TestOptimizePower_ReducesUntilInterferenceOrFloor(t *testing.T) {
	power, reduced := OptimizePower(23, rftables.Band24, 20, 0.3, 20, -70)
	assert.True(t, reduced)
	assert.Less(t, power, 23.0)
	assert.GreaterOrEqual(t, power, RequiredEIRPDBm(rftables.Band24, 20, -70))
}

func TestOptimizePower_NoReductionWhenAlreadyBelowThreshold(t *testing.T) {
	_, reduced := OptimizePower(10, rftables.Band6, 0, 0.9, 20, -80)
	assert.False(t, reduced)
}
