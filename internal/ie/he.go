package ie

import "github.com/lamco-admin/netkit/internal/wire"

// HE MAC/PHY capabilities bit positions.
const (
	heMacBitTWTReq  = 1
	heMacBitTWTResp = 2

	hePhyBitWidth40_24 = 1
	hePhyBitWidth80_5  = 2
	hePhyBitWidth160   = 3
	hePhyBitWidth80p80 = 4

	hePhyByte3BitBeamformee = 5
	hePhyByte3BitBeamformer = 6

	hePhyByte4BitMUMIMOUL = 0
	hePhyByte4BitMUMIMODL = 1
)

// HEWidths records which channel widths an HE station advertises.
type HEWidths struct {
	W40At24 bool
	W80At5  bool
	W160    bool
	W80Plus80 bool
}

// HECapabilities is the decoded HE Capabilities (id 255, ext 35, WiFi 6) IE.
type HECapabilities struct {
	OFDMA       bool // always true: mandatory for HE
	TWTRequester bool
	TWTResponder bool
	MUMIMODL    bool
	MUMIMOUL    bool
	Widths      HEWidths
	Beamformee  bool
	Beamformer  bool
	MaxNSS      int // 1..8
	DualBand    bool
}

// ParseHE decodes an HE Capabilities IE payload. Payloads shorter than
// MinSizeHECaps yield a zero-value record with OFDMA still true and MaxNSS 1.
func ParseHE(payload []byte) HECapabilities {
	he := HECapabilities{OFDMA: true, MaxNSS: 1}
	if len(payload) < MinSizeHECaps {
		return he
	}

	c := wire.NewCursor(payload)
	c.Skip(1) // extension element id

	macCaps := c.Bytes(6)
	c.Skip(6)
	if len(macCaps) >= 1 {
		b0 := uint32(macCaps[0])
		he.TWTRequester = wire.Bit(b0, heMacBitTWTReq)
		he.TWTResponder = wire.Bit(b0, heMacBitTWTResp)
	}

	phyCaps := c.Bytes(11)
	c.Skip(11)
	if len(phyCaps) >= 11 {
		b0 := uint32(phyCaps[0])
		he.Widths.W40At24 = wire.Bit(b0, hePhyBitWidth40_24)
		he.Widths.W80At5 = wire.Bit(b0, hePhyBitWidth80_5)
		he.Widths.W160 = wire.Bit(b0, hePhyBitWidth160)
		he.Widths.W80Plus80 = wire.Bit(b0, hePhyBitWidth80p80)

		b3 := uint32(phyCaps[3])
		he.Beamformee = wire.Bit(b3, hePhyByte3BitBeamformee)
		he.Beamformer = wire.Bit(b3, hePhyByte3BitBeamformer)

		b4 := uint32(phyCaps[4])
		he.MUMIMOUL = wire.Bit(b4, hePhyByte4BitMUMIMOUL)
		he.MUMIMODL = wire.Bit(b4, hePhyByte4BitMUMIMODL)
	}

	le80RX, has80 := readHEMCSMapPair(c)
	var le160RX uint16
	var has160 bool
	if he.Widths.W160 {
		le160RX, has160 = readHEMCSMapPair(c)
	}
	var le80p80RX uint16
	var has80p80 bool
	if he.Widths.W80Plus80 {
		le80p80RX, has80p80 = readHEMCSMapPair(c)
	}

	he.MaxNSS = heMaxNSSFromMaps(has80, le80RX, has160, le160RX, has80p80, le80p80RX)

	return he
}

// readHEMCSMapPair reads a 2-byte RX map followed by a 2-byte TX map (one
// per-width RX/TX map pair) and returns the RX map plus whether both were
// available.
func readHEMCSMapPair(c *wire.Cursor) (rxMap uint16, ok bool) {
	if c.Remaining() < 4 {
		return 0, false
	}
	rxMap = c.ReadU16()
	c.ReadU16() // tx map, unused for max-NSS computation
	return rxMap, true
}

// heMaxNSSFromMaps implements a non-standard fallback chain: prefer the
// <=80MHz RX map; if it is entirely unsupported, fall through to 160 and
// then 80+80. Final fallback is 1.
func heMaxNSSFromMaps(has80 bool, rx80 uint16, has160 bool, rx160 uint16, has80p80 bool, rx80p80 uint16) int {
	if has80 {
		if nss := highestHENSS(rx80); nss > 0 {
			return nss
		}
	}
	if has160 {
		if nss := highestHENSS(rx160); nss > 0 {
			return nss
		}
	}
	if has80p80 {
		if nss := highestHENSS(rx80p80); nss > 0 {
			return nss
		}
	}
	return 1
}

// highestHENSS scans an 8-slot, 2-bit-per-NSS RX map from NSS 8 down to 1
// and returns the highest NSS whose field is not 3 (unsupported), or 0 if
// every slot is unsupported.
func highestHENSS(rxMap uint16) int {
	for nss := 8; nss >= 1; nss-- {
		field := wire.Field(uint32(rxMap), uint(2*(nss-1)), 0x3)
		if field != 0x3 {
			return nss
		}
	}
	return 0
}
