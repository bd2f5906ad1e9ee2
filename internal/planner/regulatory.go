// Package planner implements channel selection and TX-power optimization
// under regulatory and interference constraints: per-channel scoring, a
// greedy global optimizer, and a log-distance-path-loss power model.
package planner

import "github.com/lamco-admin/netkit/internal/rftables"

// Domain is a regulatory domain governing which channels and power levels
// are legal.
type Domain int

const (
	DomainFCC Domain = iota
	DomainETSI
	DomainMKK
	DomainCN
	DomainROW
)

func (d Domain) String() string {
	switch d {
	case DomainETSI:
		return "ETSI"
	case DomainMKK:
		return "MKK"
	case DomainCN:
		return "CN"
	case DomainROW:
		return "ROW"
	default:
		return "FCC"
	}
}

// ChannelSet enumerates the legal channels for one regulatory domain,
// classified by band/width the way Brightgate's ChannelLists table does.
type ChannelSet struct {
	Band24      []int
	Band5NonDFS []int
	Band5DFS    []int
	Band6PSC    []int
}

// channelSets is the regulatory domain table: for each domain, the
// channels available in each band. 2.4 GHz non-overlapping channels
// (1/6/11) are common to every domain here; the 5 GHz non-DFS/DFS and
// 6 GHz PSC sets differ per domain (CN and ROW list no 6 GHz channels).
var channelSets = map[Domain]ChannelSet{
	DomainFCC: {
		Band24:      []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		Band5NonDFS: []int{36, 40, 44, 48, 149, 153, 157, 161, 165},
		Band5DFS:    []int{52, 56, 60, 64, 100, 104, 108, 112, 116, 120, 124, 128, 132, 136, 140, 144},
		Band6PSC:    []int{5, 21, 37, 53, 69, 85, 101, 117, 133, 149, 165, 181, 197, 213, 229},
	},
	DomainETSI: {
		Band24:      []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13},
		Band5NonDFS: []int{36, 40, 44, 48},
		Band5DFS:    []int{52, 56, 60, 64, 100, 104, 108, 112, 116, 120, 124, 128, 132, 136, 140},
		Band6PSC:    []int{5, 21, 37, 53, 69, 85, 101, 117, 133},
	},
	DomainMKK: {
		Band24:      []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14},
		Band5NonDFS: []int{36, 40, 44, 48},
		Band5DFS:    []int{52, 56, 60, 64, 100, 104, 108, 112, 116, 120, 124, 128, 132, 136, 140},
		Band6PSC:    []int{5, 21, 37, 53, 69, 85, 101, 117, 133},
	},
	DomainCN: {
		Band24:      []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13},
		Band5NonDFS: []int{36, 40, 44, 48, 149, 153, 157, 161, 165},
		Band5DFS:    []int{52, 56, 60, 64},
		Band6PSC:    nil,
	},
	DomainROW: {
		Band24:      []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13},
		Band5NonDFS: []int{36, 40, 44, 48},
		Band5DFS:    []int{52, 56, 60, 64, 100, 104, 108, 112, 116, 120, 124, 128, 132, 136, 140},
		Band6PSC:    nil,
	},
}

// maxEIRPDBm is the per-domain, per-band maximum permitted EIRP.
var maxEIRPDBm = map[Domain]map[rftables.Band]float64{
	DomainFCC:  {rftables.Band24: 30, rftables.Band5: 36, rftables.Band6: 36},
	DomainETSI: {rftables.Band24: 20, rftables.Band5: 30, rftables.Band6: 23},
	DomainMKK:  {rftables.Band24: 20, rftables.Band5: 24, rftables.Band6: 23},
	DomainCN:   {rftables.Band24: 20, rftables.Band5: 30, rftables.Band6: 0},
	DomainROW:  {rftables.Band24: 20, rftables.Band5: 27, rftables.Band6: 23},
}

// AllowedChannels returns the legal channels for domain in band. DFS
// channels in the 5 GHz band are included only when supportsDFS is true.
func AllowedChannels(domain Domain, band rftables.Band, supportsDFS bool) []int {
	set, ok := channelSets[domain]
	if !ok {
		set = channelSets[DomainFCC]
	}
	switch band {
	case rftables.Band24:
		return append([]int(nil), set.Band24...)
	case rftables.Band6:
		return append([]int(nil), set.Band6PSC...)
	default:
		channels := append([]int(nil), set.Band5NonDFS...)
		if supportsDFS {
			channels = append(channels, set.Band5DFS...)
		}
		return channels
	}
}

// MaxEIRPDBm returns the maximum legal EIRP for domain in band. An
// unrecognized domain falls back to FCC's table.
func MaxEIRPDBm(domain Domain, band rftables.Band) float64 {
	table, ok := maxEIRPDBm[domain]
	if !ok {
		table = maxEIRPDBm[DomainFCC]
	}
	return table[band]
}

// DFSRisk classifies how disruptive a radar-avoidance channel-vacate event
// would be on a given DFS channel.
type DFSRisk int

const (
	DFSRiskNone DFSRisk = iota
	DFSRiskLow
	DFSRiskMedium
	DFSRiskHigh
)

// dfsHighRiskChannels are the TDWR-adjacent channels most likely to trigger
// radar-avoidance channel moves.
var dfsHighRiskChannels = map[int]bool{120: true, 124: true, 128: true}

// ChannelDFSRisk classifies channel's DFS risk. Non-DFS channels (those
// outside domain's DFS set) have no risk.
func ChannelDFSRisk(domain Domain, channel int) DFSRisk {
	set, ok := channelSets[domain]
	if !ok {
		set = channelSets[DomainFCC]
	}
	isDFS := false
	for _, c := range set.Band5DFS {
		if c == channel {
			isDFS = true
			break
		}
	}
	if !isDFS {
		return DFSRiskNone
	}
	if dfsHighRiskChannels[channel] {
		return DFSRiskHigh
	}
	return DFSRiskMedium
}
