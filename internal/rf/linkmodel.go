// Package rf implements the RF link model: SNR, required SNR, link margin,
// maximum-achievable MCS search, PHY rate, and effective throughput. Every
// function is a pure computation over internal/rftables' static tables; a
// combination that has no valid answer returns ok=false rather than an
// error, matching the "no result" convention for unsupported configurations
// and unrepresentable results.
package rf

import (
	"github.com/lamco-admin/netkit/internal/netkiterr"
	"github.com/lamco-admin/netkit/internal/rftables"
)

// DefaultMinMarginDB is the link margin max_achievable_mcs requires before
// accepting an MCS as achievable.
const DefaultMinMarginDB = 3.0

// SNR computes rssi - noise_floor(band) using model's noise floor. rssi
// must lie in [-120, 0] dBm; callers outside that range get InvalidInput.
func SNR(rssiDBm float64, band rftables.Band, model rftables.NoiseFloorModel) (float64, error) {
	if rssiDBm < -120 || rssiDBm > 0 {
		return 0, netkiterr.Invalid("rssi_dbm", "must lie in [-120, 0]")
	}
	return rssiDBm - model.NoiseFloorDBm(band), nil
}

// RequiredSNR is the SNR needed to sustain mcs at (standard, width, nss):
// base(standard, mcs) + width_penalty(width) + nss_penalty(nss). ok is
// false when mcs is out of range for standard or nss is out of [1, 16].
func RequiredSNR(mcs int, standard rftables.WifiStandard, width rftables.ChannelWidth, nss int) (db float64, ok bool) {
	if nss < 1 || nss > 16 {
		return 0, false
	}
	base, known := rftables.RequiredSNRBaseDB(standard, mcs)
	if !known {
		return 0, false
	}
	return base + rftables.WidthPenaltyDB(width) + rftables.NSSPenaltyDB(nss), true
}

// LinkMargin is snr - required_snr(mcs, standard, width, nss).
func LinkMargin(snrDB float64, mcs int, standard rftables.WifiStandard, width rftables.ChannelWidth, nss int) (db float64, ok bool) {
	required, known := RequiredSNR(mcs, standard, width, nss)
	if !known {
		return 0, false
	}
	return snrDB - required, true
}

// MaxAchievableMCS returns the highest MCS in standard's range for which
// link_margin(snr, mcs, ...) >= minMarginDB, or ok=false if no MCS
// qualifies (the SNR is unrepresentable at this standard/width/nss).
func MaxAchievableMCS(snrDB float64, standard rftables.WifiStandard, width rftables.ChannelWidth, nss int, minMarginDB float64) (mcs int, ok bool) {
	for candidate := rftables.MaxMCS(standard); candidate >= 0; candidate-- {
		margin, known := LinkMargin(snrDB, candidate, standard, width, nss)
		if known && margin >= minMarginDB {
			return candidate, true
		}
	}
	return 0, false
}

// PhyRateMbps is base_rate_20mhz(standard, mcs) * width_multiplier(width) *
// nss, with standard-specific width validity enforced via WidthAllowed.
// ok is false when the combination is structurally invalid.
func PhyRateMbps(mcs int, standard rftables.WifiStandard, width rftables.ChannelWidth, nss int) (mbps float64, ok bool) {
	if nss < 1 || nss > 16 {
		return 0, false
	}
	if !rftables.WidthAllowed(standard, width) {
		return 0, false
	}
	base, known := rftables.BaseRateMbps(standard, mcs)
	if !known {
		return 0, false
	}
	return base * rftables.WidthMultiplier(width) * float64(nss), true
}

// efficiency is the fraction of PHY rate realized as effective throughput,
// per Wi-Fi generation: 0.5/0.6/0.7/0.75 for WiFi4/5/6/7, 0.4 otherwise.
func efficiency(standard rftables.WifiStandard) float64 {
	switch standard {
	case rftables.WiFi4:
		return 0.5
	case rftables.WiFi5:
		return 0.6
	case rftables.WiFi6:
		return 0.7
	case rftables.WiFi7:
		return 0.75
	default:
		return 0.4
	}
}

// EffectiveThroughputMbps is phyRateMbps * efficiency(standard).
func EffectiveThroughputMbps(phyRateMbps float64, standard rftables.WifiStandard) float64 {
	return phyRateMbps * efficiency(standard)
}

// QualityCategory is a coarse signal-quality bucket.
type QualityCategory int

const (
	QualityPoor QualityCategory = iota
	QualityFair
	QualityGood
	QualityExcellent
)

func (q QualityCategory) String() string {
	switch q {
	case QualityExcellent:
		return "Excellent"
	case QualityGood:
		return "Good"
	case QualityFair:
		return "Fair"
	default:
		return "Poor"
	}
}

// RSSIQuality buckets a signal strength reading: Excellent >= -50 dBm,
// Good >= -60, Fair >= -70, Poor otherwise.
func RSSIQuality(rssiDBm float64) QualityCategory {
	switch {
	case rssiDBm >= -50:
		return QualityExcellent
	case rssiDBm >= -60:
		return QualityGood
	case rssiDBm >= -70:
		return QualityFair
	default:
		return QualityPoor
	}
}

// SNRQuality buckets a signal-to-noise ratio: Excellent >= 40 dB,
// Good >= 25, Fair >= 15, Poor otherwise.
func SNRQuality(snrDB float64) QualityCategory {
	switch {
	case snrDB >= 40:
		return QualityExcellent
	case snrDB >= 25:
		return QualityGood
	case snrDB >= 15:
		return QualityFair
	default:
		return QualityPoor
	}
}

