package ie

import "github.com/lamco-admin/netkit/internal/wire"

// RSNInfo is the decoded RSN (id 48) Information Element.
type RSNInfo struct {
	Version                  uint16
	GroupCipher              CipherSuite
	PairwiseCiphers          []CipherSuite
	AKMs                     []AKMSuite
	PMFCapable               bool
	PMFRequired              bool
	BeaconProtectionCapable  bool
	BeaconProtectionRequired bool
}

// RSN capability bit positions.
const (
	rsnBitPMFRequired              = 6
	rsnBitPMFCapable               = 7
	rsnBitBeaconProtectionCapable  = 12
	rsnBitBeaconProtectionRequired = 13
)

// ParseRSN decodes an RSN IE payload. Payloads shorter than MinSizeRSN yield
// a zero-value record; fields beyond what fits in the payload (pairwise
// list, AKM list, capabilities) are simply left at their defaults rather
// than failing the whole record.
func ParseRSN(payload []byte) RSNInfo {
	var info RSNInfo
	if len(payload) < MinSizeRSN {
		return info
	}

	c := wire.NewCursor(payload)
	info.Version = c.ReadU16()

	if c.Remaining() >= 4 {
		info.GroupCipher = ResolveCipherSuite(suiteSelector(c))
	}

	if c.Remaining() >= 2 {
		count := int(c.ReadU16())
		for i := 0; i < count && c.Remaining() >= 4; i++ {
			info.PairwiseCiphers = append(info.PairwiseCiphers, ResolveCipherSuite(suiteSelector(c)))
		}
	}

	if c.Remaining() >= 2 {
		count := int(c.ReadU16())
		for i := 0; i < count && c.Remaining() >= 4; i++ {
			info.AKMs = append(info.AKMs, ResolveAKMSuite(suiteSelector(c)))
		}
	}

	if c.Remaining() >= 2 {
		caps := uint32(c.ReadU16())
		info.PMFRequired = wire.Bit(caps, rsnBitPMFRequired)
		info.PMFCapable = wire.Bit(caps, rsnBitPMFCapable)
		info.BeaconProtectionCapable = wire.Bit(caps, rsnBitBeaconProtectionCapable)
		info.BeaconProtectionRequired = wire.Bit(caps, rsnBitBeaconProtectionRequired)
	}

	// Remaining PMKID count/list and group management cipher are optional
	// trailing fields and intentionally not parsed.

	return info
}

// suiteSelector reads the next 4 bytes as an (OUI, type) suite selector.
func suiteSelector(c *wire.Cursor) [4]byte {
	b := c.Bytes(4)
	c.Skip(4)
	var sel [4]byte
	copy(sel[:], b)
	return sel
}

// HasAKM reports whether any decoded AKM matches kind.
func (r RSNInfo) HasAKM(kind AKMKind) bool {
	for _, a := range r.AKMs {
		if a.Kind == kind {
			return true
		}
	}
	return false
}

// IsWPA3 reports whether any AKM is a WPA3 variant (SAE, SAE-PK, FT-over-SAE,
// Suite-B-SHA384).
func (r RSNInfo) IsWPA3() bool {
	for _, a := range r.AKMs {
		if a.IsWPA3 {
			return true
		}
	}
	return false
}

// RSNExtension is the decoded RSN Extension (id 244) Information Element.
type RSNExtension struct {
	H2ESupport bool
	// SAEPKIdentifier is intentionally left unimplemented: the SAE-PK
	// identifier TLV decoding is deferred and always nil here.
	SAEPKIdentifier []byte
}

// ParseRSNExtension decodes an RSN Extension IE payload.
func ParseRSNExtension(payload []byte) RSNExtension {
	var ext RSNExtension
	if len(payload) < MinSizeRSNExt {
		return ext
	}
	ext.H2ESupport = payload[0]&0x01 != 0
	return ext
}
