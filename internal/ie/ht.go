package ie

import "github.com/lamco-admin/netkit/internal/wire"

// HT capabilities-info bit positions.
const (
	htBit40MHz     = 1
	htBitGreenfield = 4
	htBitSGI20      = 5
	htBitSGI40      = 6
)

// HTCapabilities is the decoded HT Capabilities (id 45, WiFi 4) IE.
type HTCapabilities struct {
	Supports40MHz bool
	SGI20         bool
	SGI40         bool
	Greenfield    bool
	MaxNSS        int           // 1..4
	SupportedMCS  map[int][]int // stream number (1..4) -> sorted MCS indices
}

// ParseHT decodes an HT Capabilities IE payload. Payloads shorter than
// MinSizeHT yield a zero-value record.
func ParseHT(payload []byte) HTCapabilities {
	var ht HTCapabilities
	if len(payload) < MinSizeHT {
		return ht
	}

	c := wire.NewCursor(payload)
	capsWord := uint32(c.ReadU16())
	ht.Supports40MHz = wire.Bit(capsWord, htBit40MHz)
	ht.Greenfield = wire.Bit(capsWord, htBitGreenfield)
	ht.SGI20 = wire.Bit(capsWord, htBitSGI20)
	ht.SGI40 = wire.Bit(capsWord, htBitSGI40)

	c.Skip(1) // A-MPDU parameters

	mcsBitmap := c.Bytes(16)
	ht.SupportedMCS = make(map[int][]int)
	maxNSS := 0
	for stream := 1; stream <= 4; stream++ {
		b := mcsBitmap[stream-1]
		if b == 0 {
			continue
		}
		var indices []int
		for bit := 0; bit < 8; bit++ {
			if b&(1<<uint(bit)) != 0 {
				indices = append(indices, bit)
			}
		}
		ht.SupportedMCS[stream] = indices
		if stream > maxNSS {
			maxNSS = stream
		}
	}
	if maxNSS == 0 {
		maxNSS = 1
	}
	ht.MaxNSS = maxNSS

	return ht
}
