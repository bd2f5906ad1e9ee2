package rftables

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseRateMbps_WiFi6MCS9(t *testing.T) {
	rate, ok := BaseRateMbps(WiFi6, 9)
	assert.True(t, ok)
	assert.Equal(t, 114.7, rate)
}

func TestBaseRateMbps_OutOfRange(t *testing.T) {
	_, ok := BaseRateMbps(WiFi4, 8)
	assert.False(t, ok)
	_, ok = BaseRateMbps(WiFi4, -1)
	assert.False(t, ok)
}

func TestRequiredSNRBaseDB_WiFi6Anchors(t *testing.T) {
	mcs4, ok := RequiredSNRBaseDB(WiFi6, 4)
	assert.True(t, ok)
	assert.Equal(t, 11.0, mcs4)

	mcs5, ok := RequiredSNRBaseDB(WiFi6, 5)
	assert.True(t, ok)
	assert.Equal(t, 14.0, mcs5)

	mcs11, ok := RequiredSNRBaseDB(WiFi6, 11)
	assert.True(t, ok)
	assert.Equal(t, 33.0, mcs11)
}

func TestWidthAllowed(t *testing.T) {
	assert.True(t, WidthAllowed(WiFi4, Width40))
	assert.False(t, WidthAllowed(WiFi4, Width80))
	assert.True(t, WidthAllowed(WiFi6, Width160))
	assert.False(t, WidthAllowed(WiFi6, Width320))
	assert.True(t, WidthAllowed(WiFi7, Width320))
}

func TestWidthMultiplier(t *testing.T) {
	assert.Equal(t, 1.0, WidthMultiplier(Width20))
	assert.Equal(t, 4.0, WidthMultiplier(Width80))
	assert.Equal(t, 16.0, WidthMultiplier(Width320))
}

func TestWidthPenaltyDB(t *testing.T) {
	assert.Equal(t, 0.0, WidthPenaltyDB(Width20))
	assert.Equal(t, 9.0, WidthPenaltyDB(Width160))
	assert.Equal(t, 12.0, WidthPenaltyDB(Width320))
}

func TestNSSPenaltyDB(t *testing.T) {
	assert.Equal(t, 0.0, NSSPenaltyDB(1))
	assert.Equal(t, 1.5, NSSPenaltyDB(2))
	assert.Equal(t, 3.0, NSSPenaltyDB(4))
	assert.Equal(t, 4.5, NSSPenaltyDB(8))
	assert.Equal(t, 6.0, NSSPenaltyDB(16))
}

func TestNoiseFloorVariants(t *testing.T) {
	def := DefaultNoiseFloor()
	assert.Equal(t, -92.0, def.NoiseFloorDBm(Band24))
	assert.Equal(t, -95.0, def.NoiseFloorDBm(Band5))
	assert.Equal(t, -96.0, def.NoiseFloorDBm(Band6))

	cons := ConservativeNoiseFloor()
	assert.Equal(t, -89.0, cons.NoiseFloorDBm(Band24))

	opt := OptimisticNoiseFloor()
	assert.Equal(t, -95.0, opt.NoiseFloorDBm(Band24))
}

func TestNoiseFloorDBm_UnknownBandFallsBackToDefault(t *testing.T) {
	m := DefaultNoiseFloor()
	assert.Equal(t, -95.0, m.NoiseFloorDBm(Band(99)))
}

func TestMaxMCS(t *testing.T) {
	assert.Equal(t, 7, MaxMCS(WiFi4))
	assert.Equal(t, 9, MaxMCS(WiFi5))
	assert.Equal(t, 11, MaxMCS(WiFi6))
	assert.Equal(t, 13, MaxMCS(WiFi7))
}
