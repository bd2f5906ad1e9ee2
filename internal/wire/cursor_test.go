package wire

import "testing"

func TestCursorReadsLittleEndian(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08})
	if got := c.ReadU8(); got != 0x01 {
		t.Fatalf("ReadU8 = %x, want 0x01", got)
	}
	if got := c.ReadU16(); got != 0x0302 {
		t.Fatalf("ReadU16 = %x, want 0x0302", got)
	}
	if got := c.ReadU32(); got != 0x07060504 {
		t.Fatalf("ReadU32 = %x, want 0x07060504", got)
	}
}

func TestCursorReadU64LittleEndian(t *testing.T) {
	c := NewCursor([]byte{1, 0, 0, 0, 0, 0, 0, 0})
	if got := c.ReadU64(); got != 1 {
		t.Fatalf("ReadU64 = %d, want 1", got)
	}
}

func TestCursorShortReadsPinAtEnd(t *testing.T) {
	c := NewCursor([]byte{0xAA})
	if got := c.ReadU16(); got != 0 {
		t.Fatalf("ReadU16 on short buffer = %x, want 0", got)
	}
	if c.Remaining() != 0 {
		t.Fatalf("Remaining() = %d, want 0 (pinned at end)", c.Remaining())
	}
	// further reads continue to return zero, never panic
	if got := c.ReadU32(); got != 0 {
		t.Fatalf("ReadU32 after pin = %x, want 0", got)
	}
}

func TestCursorEmptyBuffer(t *testing.T) {
	c := NewCursor(nil)
	if got := c.ReadU8(); got != 0 {
		t.Fatalf("ReadU8 on empty = %x, want 0", got)
	}
}

func TestCursorBytes(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3, 4})
	if b := c.Bytes(2); len(b) != 2 || b[0] != 1 || b[1] != 2 {
		t.Fatalf("Bytes(2) = %v", b)
	}
	if b := c.Bytes(10); b != nil {
		t.Fatalf("Bytes(10) on 4-byte buffer should be nil, got %v", b)
	}
}

func TestBitAndField(t *testing.T) {
	word := uint32(0b1010_0110)
	if !Bit(word, 1) {
		t.Fatal("bit 1 should be set")
	}
	if Bit(word, 0) {
		t.Fatal("bit 0 should be clear")
	}
	if got := Field(word, 1, 0x3); got != 0b11 {
		t.Fatalf("Field = %b, want 11", got)
	}
}

func TestOUIEqual(t *testing.T) {
	wfa := [3]byte{0x00, 0x0F, 0xAC}
	if !OUIEqual([]byte{0x00, 0x0F, 0xAC, 0x04}, wfa) {
		t.Fatal("expected OUI match")
	}
	if OUIEqual([]byte{0x00, 0x0F, 0xAD, 0x04}, wfa) {
		t.Fatal("expected OUI mismatch")
	}
	if OUIEqual([]byte{0x00}, wfa) {
		t.Fatal("short buffer should not match")
	}
}
