package ie

import "github.com/lamco-admin/netkit/internal/wire"

const (
	ehtPhyBit320MHzA  = 1
	ehtPhyBit320MHzB  = 2
	ehtPhyBitMultiRU  = 7

	ehtPuncturingMask = 0x1F

	ehtMLOPresentMask  = 0x3
	ehtMLOMaxLinksShift = 4
	ehtMLOMaxLinksMask  = 0xF

	ehtBit4096QAM = 0
)

// EHTCapabilities is the decoded EHT Capabilities (id 255, ext 106, WiFi 7) IE.
type EHTCapabilities struct {
	Supports320MHz  bool
	MLO             bool
	MLOMaxLinks     int // 1..16
	MultiRU         bool
	Puncturing      int // 0..31 raw pattern bits
	Supports4096QAM bool
	MaxNSS          int // 1..16
}

// ParseEHT decodes an EHT Capabilities IE payload. Payloads shorter than
// MinSizeEHTCaps yield a zero-value record with MaxNSS defaulting to 4.
func ParseEHT(payload []byte) EHTCapabilities {
	eht := EHTCapabilities{MaxNSS: 4}
	if len(payload) < MinSizeEHTCaps {
		return eht
	}

	c := wire.NewCursor(payload)
	c.Skip(1) // extension element id
	c.Skip(2) // MAC capabilities, not used by this spec

	phyCaps := c.Bytes(9)
	c.Skip(9)
	if len(phyCaps) >= 9 {
		b0 := uint32(phyCaps[0])
		eht.Supports320MHz = wire.Bit(b0, ehtPhyBit320MHzA) || wire.Bit(b0, ehtPhyBit320MHzB)
		eht.MultiRU = wire.Bit(b0, ehtPhyBitMultiRU)

		eht.Puncturing = int(uint32(phyCaps[1]) & ehtPuncturingMask)

		b2 := uint32(phyCaps[2])
		eht.MLO = (b2 & ehtMLOPresentMask) != 0
		eht.MLOMaxLinks = int((b2>>ehtMLOMaxLinksShift)&ehtMLOMaxLinksMask) + 1

		eht.Supports4096QAM = wire.Bit(uint32(phyCaps[3]), ehtBit4096QAM)
	}

	rxMap, ok := readEHTLe80RXMap(c)
	nss := 4
	if ok {
		if found := highestEHTNSS(rxMap); found > 0 {
			nss = found
		}
	}
	if eht.Supports320MHz && nss >= 2 {
		scaled := nss * 2
		if scaled > 16 {
			scaled = 16
		}
		nss = scaled
	}
	eht.MaxNSS = nss

	return eht
}

// readEHTLe80RXMap reads the 2-byte <=80MHz EHT-MCS/NSS RX map (4 NSS slots,
// 4 bits each).
func readEHTLe80RXMap(c *wire.Cursor) (uint16, bool) {
	if c.Remaining() < 2 {
		return 0, false
	}
	return c.ReadU16(), true
}

// highestEHTNSS scans the 4-slot, 4-bit-per-NSS RX map from NSS 4 down to 1
// and returns the highest NSS whose nibble is not 15 (unsupported), or 0 if
// every slot is unsupported.
func highestEHTNSS(rxMap uint16) int {
	for nss := 4; nss >= 1; nss-- {
		nibble := wire.Field(uint32(rxMap), uint(4*(nss-1)), 0xF)
		if nibble != 0xF {
			return nss
		}
	}
	return 0
}
