package ie

import "github.com/lamco-admin/netkit/internal/wire"

const (
	heOpBitTWTActive    = 1 // within params byte0
	heOpBitDualBandMode = 6 // within params byte1
	heOpBSSColorMask    = 0x3F
)

// HEOperation is the decoded HE Operation (id 255, ext 36) IE.
type HEOperation struct {
	BSSColor     int // 0..63; 0 = disabled
	DualBandMode bool
	TWTActive    bool
}

// ParseHEOperation decodes an HE Operation IE payload. Payloads shorter than
// MinSizeHEOp yield a zero-value record (BSSColor 0, i.e. disabled).
func ParseHEOperation(payload []byte) HEOperation {
	var op HEOperation
	if len(payload) < MinSizeHEOp {
		return op
	}

	c := wire.NewCursor(payload)
	c.Skip(1) // extension element id

	params := c.Bytes(3)
	c.Skip(3)
	if len(params) >= 2 {
		op.TWTActive = wire.Bit(uint32(params[0]), heOpBitTWTActive)
		op.DualBandMode = wire.Bit(uint32(params[1]), heOpBitDualBandMode)
	}

	colorByte := c.ReadU8()
	op.BSSColor = int(uint32(colorByte) & heOpBSSColorMask)

	return op
}
