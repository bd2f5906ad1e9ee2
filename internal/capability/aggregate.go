// Package capability folds decoded Information Elements into one
// capability model per BSS and derives Wi-Fi generation, WPA3 posture,
// and PMF requirement.
package capability

import "github.com/lamco-admin/netkit/internal/ie"

// WifiGeneration is the highest 802.11 amendment detected for a BSS.
type WifiGeneration int

const (
	GenerationLegacy WifiGeneration = iota
	GenerationWifi4
	GenerationWifi5
	GenerationWifi6
	GenerationWifi6E
	GenerationWifi7
)

func (g WifiGeneration) String() string {
	switch g {
	case GenerationWifi7:
		return "WiFi7"
	case GenerationWifi6E:
		return "WiFi6E"
	case GenerationWifi6:
		return "WiFi6"
	case GenerationWifi5:
		return "WiFi5"
	case GenerationWifi4:
		return "WiFi4"
	default:
		return "Legacy"
	}
}

// ParsedInformationElements is the aggregate capability model for one BSS,
// folded from a multiset of RawIE values.
type ParsedInformationElements struct {
	RSN        *ie.RSNInfo
	RSNExt     *ie.RSNExtension
	HT         *ie.HTCapabilities
	VHT        *ie.VHTCapabilities
	HE         *ie.HECapabilities
	HEOperation *ie.HEOperation
	EHT        *ie.EHTCapabilities
	WPSEnabled bool

	WifiGeneration WifiGeneration
	IsWPA3         bool
	PMFRequired    bool
}

// Is6GHz reports whether the caller has indicated the BSS operates in the
// 6 GHz band, used only to distinguish WiFi6 from WiFi6E since that split
// is not otherwise observable from IEs alone.
type Is6GHz bool

// ParseAll decodes a multiset of RawIE values and aggregates them into one
// ParsedInformationElements record, composing raw IE decoding with
// capability aggregation. is6GHz indicates whether the observing band for
// this BSS is 6 GHz, needed to tell WiFi6 from WiFi6E.
func ParseAll(elements []ie.RawIE, is6GHz bool) ParsedInformationElements {
	decoded := ie.Decode(elements)
	return Aggregate(decoded, is6GHz)
}

// Aggregate folds already-decoded per-IE records into the capability model,
// deriving wifi_generation, is_wpa3, and pmf_required.
func Aggregate(decoded ie.Decoded, is6GHz bool) ParsedInformationElements {
	p := ParsedInformationElements{
		RSN:         decoded.RSN,
		RSNExt:      decoded.RSNExt,
		HT:          decoded.HT,
		VHT:         decoded.VHT,
		HE:          decoded.HE,
		HEOperation: decoded.HEOperation,
		EHT:         decoded.EHT,
		WPSEnabled:  decoded.WPSEnabled,
	}

	p.WifiGeneration = deriveGeneration(decoded, is6GHz)
	p.IsWPA3 = decoded.RSN != nil && decoded.RSN.IsWPA3()
	if decoded.RSN != nil {
		p.PMFRequired = decoded.RSN.PMFRequired
	}

	return p
}

// deriveGeneration returns the highest Wi-Fi generation implied by the
// decoded IEs present: EHT -> WiFi7, HE+6GHz -> WiFi6E, HE -> WiFi6,
// VHT -> WiFi5, HT -> WiFi4, else Legacy.
func deriveGeneration(decoded ie.Decoded, is6GHz bool) WifiGeneration {
	switch {
	case decoded.EHT != nil:
		return GenerationWifi7
	case decoded.HE != nil && is6GHz:
		return GenerationWifi6E
	case decoded.HE != nil:
		return GenerationWifi6
	case decoded.VHT != nil:
		return GenerationWifi5
	case decoded.HT != nil:
		return GenerationWifi4
	default:
		return GenerationLegacy
	}
}
