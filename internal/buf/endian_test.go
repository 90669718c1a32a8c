package buf

import "testing"

func TestEndianHelpers(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67}

	if got := U16LE(data); got != 0x2301 {
		t.Fatalf("U16LE = 0x%x, want 0x2301", got)
	}
	if got := U32LE(data); got != 0x67452301 {
		t.Fatalf("U32LE = 0x%x, want 0x67452301", got)
	}

	short := []byte{0xAA}
	if U16LE(short) != 0 || U32LE(short) != 0 {
		t.Fatalf("short reads should return 0")
	}
}

func TestAppendHelpers(t *testing.T) {
	var out []byte
	out = AppendU16LE(out, 0x0402)
	out = AppendU32LE(out, 0x2C)
	out = AppendZeros(out, 2)
	out = AppendZeros(out, -1)

	want := []byte{0x02, 0x04, 0x2C, 0x00, 0x00, 0x00, 0x00, 0x00}
	if string(out) != string(want) {
		t.Fatalf("append = % x, want % x", out, want)
	}
}
