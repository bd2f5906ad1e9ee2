package ie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRSN_Scenario(t *testing.T) {
	// WPA3-Personal AP: CCMP pairwise/group, SAE AKM, PMF capable only.
	payload := []byte{
		0x01, 0x00, // version 1
		0x00, 0x0F, 0xAC, 0x04, // group cipher CCMP
		0x01, 0x00, // pairwise count 1
		0x00, 0x0F, 0xAC, 0x04, // pairwise CCMP
		0x01, 0x00, // akm count 1
		0x00, 0x0F, 0xAC, 0x08, // akm SAE
		0x80, 0x00, // capabilities: pmf_capable
	}

	rsn := ParseRSN(payload)

	assert.Equal(t, uint16(1), rsn.Version)
	assert.Equal(t, CipherCCMP, rsn.GroupCipher.Kind)
	assert.Len(t, rsn.PairwiseCiphers, 1)
	assert.Equal(t, CipherCCMP, rsn.PairwiseCiphers[0].Kind)
	assert.Len(t, rsn.AKMs, 1)
	assert.Equal(t, AKMSAE, rsn.AKMs[0].Kind)
	assert.True(t, rsn.PMFCapable)
	assert.False(t, rsn.PMFRequired)
	assert.True(t, rsn.IsWPA3())
}

func TestParseRSN_TruncatedYieldsDefault(t *testing.T) {
	rsn := ParseRSN([]byte{0x01})
	assert.Equal(t, RSNInfo{}, rsn)
}

func TestParseRSN_VendorCipherAndUnknownAKM(t *testing.T) {
	payload := []byte{
		0x01, 0x00,
		0x00, 0x50, 0xF2, 0x02, // non-WFA OUI group cipher -> VendorSpecific
		0x00, 0x00, // no pairwise
		0x01, 0x00,
		0x00, 0x0F, 0xAC, 0xFE, // unrecognized WFA AKM type -> Unknown
		0x00, 0x00,
	}
	rsn := ParseRSN(payload)
	assert.Equal(t, CipherVendorSpecific, rsn.GroupCipher.Kind)
	assert.Equal(t, AKMUnknown, rsn.AKMs[0].Kind)
	assert.False(t, rsn.IsWPA3())
}

func TestParseRSNExtension_H2E(t *testing.T) {
	assert.True(t, ParseRSNExtension([]byte{0x01}).H2ESupport)
	assert.False(t, ParseRSNExtension([]byte{0x00}).H2ESupport)
	assert.False(t, ParseRSNExtension(nil).H2ESupport)
}

func TestParseHT(t *testing.T) {
	payload := make([]byte, MinSizeHT)
	// capabilities word: bit1 (40MHz) + bit5 (SGI20) + bit6 (SGI40)
	payload[0] = (1 << 1) | (1 << 5) | (1 << 6)
	payload[1] = 0
	// offset 3..18 = MCS bitmap; stream1 byte = 0x03 (MCS0,1), stream2 byte nonzero
	payload[3] = 0x03
	payload[4] = 0x01

	ht := ParseHT(payload)
	assert.True(t, ht.Supports40MHz)
	assert.True(t, ht.SGI20)
	assert.True(t, ht.SGI40)
	assert.False(t, ht.Greenfield)
	assert.Equal(t, 2, ht.MaxNSS)
	assert.Equal(t, []int{0, 1}, ht.SupportedMCS[1])
	assert.Equal(t, []int{0}, ht.SupportedMCS[2])
}

func TestParseHT_TooShort(t *testing.T) {
	ht := ParseHT(make([]byte, MinSizeHT-1))
	assert.Equal(t, HTCapabilities{}, ht)
}

func TestParseVHT_Scenario(t *testing.T) {
	// VHT AP advertising MU-MIMO with a single spatial stream.
	payload := make([]byte, MinSizeVHT)
	copy(payload[0:4], []byte{0x00, 0x00, 0x08, 0x00}) // MU-MIMO bit19 set, width=0
	copy(payload[4:6], []byte{0xFE, 0xFF})             // RX map

	vht := ParseVHT(payload)
	assert.True(t, vht.MUMIMO)
	assert.Equal(t, 1, vht.MaxNSS)
	assert.True(t, vht.Supports80MHz)
	assert.False(t, vht.Supports160MHz)
	assert.False(t, vht.Supports80Plus80)
}

func TestParseVHT_Width160And80p80(t *testing.T) {
	p160 := make([]byte, MinSizeVHT)
	p160[0] = 1 << 2 // width field = 1 -> 160
	vht160 := ParseVHT(p160)
	assert.True(t, vht160.Supports160MHz)

	p8080 := make([]byte, MinSizeVHT)
	p8080[0] = 2 << 2 // width field = 2 -> 80+80
	vht8080 := ParseVHT(p8080)
	assert.True(t, vht8080.Supports80Plus80)
}

func TestParseHE(t *testing.T) {
	payload := make([]byte, MinSizeHECaps)
	payload[0] = 0x23 // ext id, not inspected
	payload[1] = (1 << heMacBitTWTReq) | (1 << heMacBitTWTResp)
	phyOff := 7
	payload[phyOff] = (1 << hePhyBitWidth40_24) | (1 << hePhyBitWidth80_5)
	payload[phyOff+3] = (1 << hePhyByte3BitBeamformee) | (1 << hePhyByte3BitBeamformer)
	payload[phyOff+4] = (1 << hePhyByte4BitMUMIMOUL) | (1 << hePhyByte4BitMUMIMODL)

	he := ParseHE(payload)
	assert.True(t, he.OFDMA)
	assert.True(t, he.TWTRequester)
	assert.True(t, he.TWTResponder)
	assert.True(t, he.Widths.W40At24)
	assert.True(t, he.Widths.W80At5)
	assert.True(t, he.Beamformee)
	assert.True(t, he.Beamformer)
	assert.True(t, he.MUMIMOUL)
	assert.True(t, he.MUMIMODL)
	assert.Equal(t, 1, he.MaxNSS) // no MCS map present -> fallback
}

func TestParseHE_MaxNSSFromLe80Map(t *testing.T) {
	payload := make([]byte, MinSizeHECaps+4)
	// RX map: NSS1 field=0 (supported), NSS2 field=3 (unsupported), rest 3
	payload[18] = 0xFC // binary 11111100: nss1=00, nss2=11, nss3=11, nss4=11
	payload[19] = 0xFF

	he := ParseHE(payload)
	assert.Equal(t, 1, he.MaxNSS)
}

func TestParseHEOperation(t *testing.T) {
	payload := make([]byte, MinSizeHEOp)
	payload[1] = 1 << heOpBitTWTActive
	payload[2] = 1 << heOpBitDualBandMode
	payload[4] = 0x2A // color = 0x2A & 0x3F
	op := ParseHEOperation(payload)
	assert.True(t, op.TWTActive)
	assert.True(t, op.DualBandMode)
	assert.Equal(t, 0x2A, op.BSSColor)
}

func TestParseHEOperation_ColorZeroMeansDisabled(t *testing.T) {
	op := ParseHEOperation(make([]byte, MinSizeHEOp))
	assert.Equal(t, 0, op.BSSColor)
}

func TestParseEHT(t *testing.T) {
	payload := make([]byte, MinSizeEHTCaps+2)
	phyOff := 3
	payload[phyOff] = 1 << ehtPhyBit320MHzA
	payload[phyOff+1] = 0x1F // puncturing all bits set
	payload[phyOff+2] = (1) | (3 << ehtMLOMaxLinksShift)
	payload[phyOff+3] = 1 << ehtBit4096QAM
	// RX map: nss1 nibble=0 supported, nss2 nibble=0xF unsupported
	payload[12] = 0xF0
	payload[13] = 0xFF

	eht := ParseEHT(payload)
	assert.True(t, eht.Supports320MHz)
	assert.True(t, eht.MLO)
	assert.Equal(t, 4, eht.MLOMaxLinks)
	assert.True(t, eht.Supports4096QAM)
	// nss=1 from map; 320MHz is supported but nss>=2 fails (1<2), so no scaling
	assert.Equal(t, 1, eht.MaxNSS)
}

func TestParseEHT_NSSScalingWith320MHz(t *testing.T) {
	payload := make([]byte, MinSizeEHTCaps+2)
	payload[3] = 1 << ehtPhyBit320MHzA
	// nss1 nibble (low byte low nibble) = 0xF unsupported; nss2 nibble
	// (low byte high nibble) = 0 supported; nss3/nss4 unsupported.
	payload[12] = 0x0F
	payload[13] = 0xFF

	eht := ParseEHT(payload)
	// raw max_nss from the map is 2; 320MHz supported and nss>=2 scales to
	// min(2*2, 16) = 4.
	assert.Equal(t, 4, eht.MaxNSS)
}

func TestParseEHT_TooShortFallsBackToFour(t *testing.T) {
	eht := ParseEHT(make([]byte, MinSizeEHTCaps-1))
	assert.Equal(t, 4, eht.MaxNSS)
}

func TestParseVendorWPS(t *testing.T) {
	assert.True(t, ParseVendorWPS([]byte{0x00, 0x50, 0xF2, 0x04, 0x10, 0x4A}))
	assert.False(t, ParseVendorWPS([]byte{0x00, 0x50, 0xF2, 0x05}))
	assert.False(t, ParseVendorWPS([]byte{0x00, 0x50}))
}

func TestDecode_LastWriterWins(t *testing.T) {
	first := RawIE{ID: IDRSN, Payload: []byte{0x01, 0x00}}
	second := RawIE{ID: IDRSN, Payload: []byte{0x02, 0x00}}

	decoded := Decode([]RawIE{first, second})
	assert.Equal(t, uint16(2), decoded.RSN.Version)
}

func TestDecode_UnknownIDIgnored(t *testing.T) {
	decoded := Decode([]RawIE{{ID: 7, Payload: []byte{0x01}}})
	assert.Nil(t, decoded.RSN)
	assert.Nil(t, decoded.HT)
	assert.False(t, decoded.WPSEnabled)
}

func TestDecode_DispatchesExtensionIDs(t *testing.T) {
	elements := []RawIE{
		{ID: IDExtension, ExtID: ExtIDHECapabilities, Payload: make([]byte, MinSizeHECaps)},
		{ID: IDExtension, ExtID: ExtIDHEOperation, Payload: make([]byte, MinSizeHEOp)},
		{ID: IDExtension, ExtID: ExtIDEHTCapabilities, Payload: make([]byte, MinSizeEHTCaps)},
	}
	decoded := Decode(elements)
	assert.NotNil(t, decoded.HE)
	assert.NotNil(t, decoded.HEOperation)
	assert.NotNil(t, decoded.EHT)
}
