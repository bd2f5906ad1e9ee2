package ie

import "fmt"

// CipherKind enumerates RSN cipher suite variants keyed by WFA OUI type
// byte. Behavior that would traditionally live on enum methods (name,
// deprecated, security level) instead lives in the cipherTable below, kept
// simple to extend and to unit test.
type CipherKind int

const (
	CipherUnknown CipherKind = iota
	CipherWEP40
	CipherTKIP
	CipherCCMP
	CipherWEP104
	CipherGCMP128
	CipherGCMP256
	CipherCCMP256
	CipherVendorSpecific
)

type cipherMeta struct {
	name          string
	deprecated    bool
	securityLevel int
	bits          int
}

var cipherTable = map[CipherKind]cipherMeta{
	CipherUnknown:        {"Unknown", true, 0, 0},
	CipherWEP40:          {"WEP-40", true, 5, 40},
	CipherTKIP:           {"TKIP", true, 40, 128},
	CipherCCMP:           {"CCMP", false, 85, 128},
	CipherWEP104:         {"WEP-104", true, 5, 104},
	CipherGCMP128:        {"GCMP-128", false, 85, 128},
	CipherGCMP256:        {"GCMP-256", false, 100, 256},
	CipherCCMP256:        {"CCMP-256", false, 100, 256},
	CipherVendorSpecific: {"Vendor-Specific", false, 50, 0},
}

var wfaCipherByType = map[uint8]CipherKind{
	1:  CipherWEP40,
	2:  CipherTKIP,
	4:  CipherCCMP,
	5:  CipherWEP104,
	8:  CipherGCMP128,
	9:  CipherGCMP256,
	10: CipherCCMP256,
}

// CipherSuite is a resolved RSN cipher suite selector: (OUI, type) plus
// table-driven metadata (display name, deprecated flag, nominal security
// level 0-100).
type CipherSuite struct {
	Kind          CipherKind
	OUI           [3]byte
	Type          uint8
	Name          string
	Deprecated    bool
	SecurityLevel int
	Bits          int
}

// ResolveCipherSuite decodes a 4-byte (OUI + type) cipher suite selector.
// A non-WFA OUI resolves to VendorSpecific; an unrecognized type within the
// WFA OUI resolves to Unknown.
func ResolveCipherSuite(selector [4]byte) CipherSuite {
	oui := [3]byte{selector[0], selector[1], selector[2]}
	typ := selector[3]

	kind := CipherVendorSpecific
	if oui == WFAOUI {
		if k, ok := wfaCipherByType[typ]; ok {
			kind = k
		} else {
			kind = CipherUnknown
		}
	}

	meta := cipherTable[kind]
	name := meta.name
	if kind == CipherUnknown {
		name = fmt.Sprintf("Unknown(%d)", typ)
	} else if kind == CipherVendorSpecific {
		name = fmt.Sprintf("VendorSpecific(%02X:%02X:%02X,%d)", oui[0], oui[1], oui[2], typ)
	}

	return CipherSuite{
		Kind:          kind,
		OUI:           oui,
		Type:          typ,
		Name:          name,
		Deprecated:    meta.deprecated,
		SecurityLevel: meta.securityLevel,
		Bits:          meta.bits,
	}
}

// Is256Bit reports whether the cipher suite uses a 256-bit key, as required
// by the WPA3-Enterprise 192-bit mode (at least one cipher must be
// 256-bit).
func (c CipherSuite) Is256Bit() bool { return c.Bits >= 256 }

// AKMKind enumerates RSN Authentication and Key Management suite variants.
type AKMKind int

const (
	AKMUnknown AKMKind = iota
	AKM8021X
	AKMPSK
	AKMFT8021X
	AKMFTPSK
	AKM8021XSHA256
	AKMPSKSHA256
	AKMSAE
	AKMFTSAE
	AKMSuiteBSHA384
	AKMOWE
	AKMSAEPK
	AKMVendorSpecific
)

type akmMeta struct {
	name       string
	deprecated bool
	level      int
	isWPA3     bool
}

var akmTable = map[AKMKind]akmMeta{
	AKMUnknown:        {"Unknown", true, 0, false},
	AKM8021X:          {"802.1X", false, 60, false},
	AKMPSK:            {"PSK", false, 50, false},
	AKMFT8021X:        {"FT-802.1X", false, 60, false},
	AKMFTPSK:          {"FT-PSK", false, 50, false},
	AKM8021XSHA256:    {"802.1X-SHA256", false, 65, false},
	AKMPSKSHA256:      {"PSK-SHA256", false, 55, false},
	AKMSAE:            {"SAE", false, 90, true},
	AKMFTSAE:          {"FT-SAE", false, 90, true},
	AKMSuiteBSHA384:   {"Suite-B-SHA384", false, 100, true},
	AKMOWE:            {"OWE", false, 45, false},
	AKMSAEPK:          {"SAE-PK", false, 92, true},
	AKMVendorSpecific: {"Vendor-Specific", false, 50, false},
}

var wfaAKMByType = map[uint8]AKMKind{
	1:  AKM8021X,
	2:  AKMPSK,
	3:  AKMFT8021X,
	4:  AKMFTPSK,
	5:  AKM8021XSHA256,
	6:  AKMPSKSHA256,
	8:  AKMSAE,
	9:  AKMFTSAE,
	12: AKMSuiteBSHA384,
	18: AKMOWE,
	24: AKMSAEPK,
}

// AKMSuite is a resolved RSN AKM suite selector with table-driven metadata.
type AKMSuite struct {
	Kind          AKMKind
	OUI           [3]byte
	Type          uint8
	Name          string
	Deprecated    bool
	SecurityLevel int
	IsWPA3        bool
}

// ResolveAKMSuite decodes a 4-byte (OUI + type) AKM suite selector.
func ResolveAKMSuite(selector [4]byte) AKMSuite {
	oui := [3]byte{selector[0], selector[1], selector[2]}
	typ := selector[3]

	kind := AKMVendorSpecific
	if oui == WFAOUI {
		if k, ok := wfaAKMByType[typ]; ok {
			kind = k
		} else {
			kind = AKMUnknown
		}
	}

	meta := akmTable[kind]
	name := meta.name
	if kind == AKMUnknown {
		name = fmt.Sprintf("Unknown(%d)", typ)
	} else if kind == AKMVendorSpecific {
		name = fmt.Sprintf("VendorSpecific(%02X:%02X:%02X,%d)", oui[0], oui[1], oui[2], typ)
	}

	return AKMSuite{
		Kind:          kind,
		OUI:           oui,
		Type:          typ,
		Name:          name,
		Deprecated:    meta.deprecated,
		SecurityLevel: meta.level,
		IsWPA3:        meta.isWPA3,
	}
}
