package ie

import "github.com/lamco-admin/netkit/internal/wire"

// VHT capabilities-info bit positions.
const (
	vhtWidthShift        = 2
	vhtWidthMask         = 0x3
	vhtBitSGI80          = 5
	vhtBitSGI160         = 6
	vhtBitBeamformee     = 11
	vhtBitBeamformer     = 12
	vhtBitMUMIMO         = 19
)

// VHTCapabilities is the decoded VHT Capabilities (id 191, WiFi 5) IE.
type VHTCapabilities struct {
	Supports80MHz bool // always true: VHT mandates at least 80 MHz
	Supports160MHz bool
	Supports80Plus80 bool
	MaxNSS       int // 1..8
	MUMIMO       bool
	Beamforming  bool
	SGI80        bool
	SGI160       bool
	SupportedMCS map[int]VHTMCSRange
}

// VHTMCSRange is the MCS range supported by one spatial stream.
type VHTMCSRange struct {
	MaxMCS int // 7, 8, or 9
}

// ParseVHT decodes a VHT Capabilities IE payload. Payloads shorter than
// MinSizeVHT yield a zero-value record with Supports80MHz still true.
func ParseVHT(payload []byte) VHTCapabilities {
	vht := VHTCapabilities{Supports80MHz: true, MaxNSS: 1}
	if len(payload) < MinSizeVHT {
		return vht
	}

	c := wire.NewCursor(payload)
	capsWord := c.ReadU32()

	switch wire.Field(capsWord, vhtWidthShift, vhtWidthMask) {
	case 0:
		// 80 MHz only (Supports80MHz already true)
	case 1:
		vht.Supports160MHz = true
	case 2:
		vht.Supports80Plus80 = true
	}

	vht.SGI80 = wire.Bit(capsWord, vhtBitSGI80)
	vht.SGI160 = wire.Bit(capsWord, vhtBitSGI160)
	vht.Beamforming = wire.Bit(capsWord, vhtBitBeamformee) || wire.Bit(capsWord, vhtBitBeamformer)
	vht.MUMIMO = wire.Bit(capsWord, vhtBitMUMIMO)

	rxMap := c.ReadU16()
	vht.SupportedMCS = make(map[int]VHTMCSRange)
	maxNSS := 1
	for stream := 1; stream <= 8; stream++ {
		field := wire.Field(uint32(rxMap), uint(2*(stream-1)), 0x3)
		if field == 0x3 {
			continue
		}
		var maxMCS int
		switch field {
		case 0:
			maxMCS = 7
		case 1:
			maxMCS = 8
		case 2:
			maxMCS = 9
		}
		vht.SupportedMCS[stream] = VHTMCSRange{MaxMCS: maxMCS}
		if stream > maxNSS {
			maxNSS = stream
		}
	}
	vht.MaxNSS = maxNSS

	return vht
}
