// Package ie decodes 802.11 management-frame Information Elements into typed
// capability records. Every parser here is bit-exact against IEEE 802.11 but
// fails soft: a truncated or malformed payload yields a default, partially
// populated record rather than an error. No parser in this package returns
// an error — truncated-IE handling is swallowed at this layer by
// construction (see wire.Cursor), never surfaced to callers.
package ie

// RawIE is a single undecoded Information Element lifted from a management
// frame. Payload excludes the 2-byte (id, len) TLV header. ExtID is only
// meaningful when ID == IDExtension.
type RawIE struct {
	ID      uint8
	ExtID   uint8
	Payload []byte
}

// IE tag IDs dispatched by Decode.
const (
	IDRSN          uint8 = 48
	IDHTCaps       uint8 = 45
	IDVHTCaps      uint8 = 191
	IDVendor       uint8 = 221
	IDRSNExtension uint8 = 244
	IDExtension    uint8 = 255
)

// Extension IDs under IDExtension.
const (
	ExtIDHECapabilities  uint8 = 35
	ExtIDHEOperation     uint8 = 36
	ExtIDEHTCapabilities uint8 = 106
)

// Minimum payload sizes below which a parser returns a fully-default record.
const (
	MinSizeRSN       = 2
	MinSizeRSNExt    = 1
	MinSizeHT        = 26
	MinSizeVHT       = 12
	MinSizeVendor    = 4
	MinSizeHECaps    = 18
	MinSizeHEOp      = 5
	MinSizeEHTCaps   = 12
)

// WFAOUI is the Wi-Fi Alliance OUI used for RSN cipher/AKM suites.
var WFAOUI = [3]byte{0x00, 0x0F, 0xAC}

// MicrosoftOUI is Microsoft's vendor OUI, used for the WPS vendor IE.
var MicrosoftOUI = [3]byte{0x00, 0x50, 0xF2}

// WPSVendorType is the vendor-specific type byte identifying a WPS IE under
// the Microsoft OUI.
const WPSVendorType uint8 = 0x04

// Decoded holds the per-IE-kind optional typed records produced by a single
// pass over a multiset of RawIE values, before capability aggregation. A nil
// pointer means that IE kind was never present. When an IE kind repeats,
// last-writer-wins: a later occurrence overwrites the earlier decoded value.
type Decoded struct {
	RSN          *RSNInfo
	RSNExt       *RSNExtension
	HT           *HTCapabilities
	VHT          *VHTCapabilities
	HE           *HECapabilities
	HEOperation  *HEOperation
	EHT          *EHTCapabilities
	WPSEnabled   bool
}

// Decode processes a sequence of RawIE values and returns the typed records
// found, applying last-writer-wins for duplicate IE kinds. Unknown or
// unhandled IDs are ignored. This never fails: malformed per-IE payloads
// degrade to a default record for that IE and processing continues.
func Decode(elements []RawIE) Decoded {
	var d Decoded
	for _, raw := range elements {
		switch raw.ID {
		case IDRSN:
			v := ParseRSN(raw.Payload)
			d.RSN = &v
		case IDRSNExtension:
			v := ParseRSNExtension(raw.Payload)
			d.RSNExt = &v
		case IDHTCaps:
			v := ParseHT(raw.Payload)
			d.HT = &v
		case IDVHTCaps:
			v := ParseVHT(raw.Payload)
			d.VHT = &v
		case IDVendor:
			if ParseVendorWPS(raw.Payload) {
				d.WPSEnabled = true
			}
		case IDExtension:
			switch raw.ExtID {
			case ExtIDHECapabilities:
				v := ParseHE(raw.Payload)
				d.HE = &v
			case ExtIDHEOperation:
				v := ParseHEOperation(raw.Payload)
				d.HEOperation = &v
			case ExtIDEHTCapabilities:
				v := ParseEHT(raw.Payload)
				d.EHT = &v
			}
		default:
			// unrecognized IE id, ignored
		}
	}
	return d
}

// ParseVendorWPS reports whether a vendor-specific IE payload (id 221)
// carries the Microsoft WPS OUI/type marker.
func ParseVendorWPS(payload []byte) bool {
	if len(payload) < MinSizeVendor {
		return false
	}
	if payload[0] == MicrosoftOUI[0] && payload[1] == MicrosoftOUI[1] && payload[2] == MicrosoftOUI[2] && payload[3] == WPSVendorType {
		return true
	}
	return false
}
