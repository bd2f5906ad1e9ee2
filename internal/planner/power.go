package planner

import (
	"math"

	"github.com/lamco-admin/netkit/internal/rftables"
)

// pathLossAt1MDBm is the frequency-dependent free-space path loss at 1
// meter, used as PL(1m) in the log-distance model.
func pathLossAt1MDBm(band rftables.Band) float64 {
	switch band {
	case rftables.Band24:
		return 40.0
	case rftables.Band5:
		return 46.0
	default:
		return 48.0
	}
}

// pathLossExponent is n in PL(d) = PL(1m) + 10*n*log10(d).
func pathLossExponent(band rftables.Band) float64 {
	switch band {
	case rftables.Band24:
		return 2.8
	case rftables.Band5:
		return 3.2
	default:
		return 3.5
	}
}

// PathLossDB computes PL(d) = PL(1m) + 10*n*log10(d) for distanceM >= 1.
func PathLossDB(band rftables.Band, distanceM float64) float64 {
	if distanceM < 1 {
		distanceM = 1
	}
	return pathLossAt1MDBm(band) + 10*pathLossExponent(band)*math.Log10(distanceM)
}

// RequiredEIRPDBm is the transmit EIRP needed to reach targetRSSIDBm at
// distanceM, given the band's path-loss model.
func RequiredEIRPDBm(band rftables.Band, distanceM, targetRSSIDBm float64) float64 {
	return targetRSSIDBm + PathLossDB(band, distanceM)
}

// bandFactor scales the interference model per band: 2.4 GHz is more
// congested than 5/6 GHz in practice.
func bandFactor(band rftables.Band) float64 {
	switch band {
	case rftables.Band24:
		return 1.2
	case rftables.Band5:
		return 1.0
	default:
		return 0.8
	}
}

// InterferenceLevel estimates the 0..1 interference contributed by
// transmitting at powerDBm with neighbors nearby APs on the same band:
// clamp((0.2 + (p-20)/10*0.3 + neighbors/10*0.3) * band_factor, 0, 1).
func InterferenceLevel(powerDBm float64, band rftables.Band, neighbors int) float64 {
	raw := (0.2 + (powerDBm-20)/10*0.3 + float64(neighbors)/10*0.3) * bandFactor(band)
	return clamp01(raw)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// PowerStepDB is the step size the optimizer reduces power by when
// interference exceeds the target.
const PowerStepDB = 3.0

// OptimizePower reduces startPowerDBm in PowerStepDB steps while
// interference exceeds maxInterference, stopping at the lowest power that
// still satisfies the minRSSIDBm coverage floor at distanceM. Returns the
// chosen power and whether any reduction was needed.
func OptimizePower(startPowerDBm float64, band rftables.Band, neighbors int, maxInterference float64, distanceM, minRSSIDBm float64) (powerDBm float64, reduced bool) {
	power := startPowerDBm
	floor := RequiredEIRPDBm(band, distanceM, minRSSIDBm)

	for InterferenceLevel(power, band, neighbors) > maxInterference {
		next := power - PowerStepDB
		if next < floor {
			break
		}
		power = next
		reduced = true
	}
	return power, reduced
}
