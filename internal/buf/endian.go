// Package buf contains helpers for endian-safe decoding and encoding routines.
package buf

import "encoding/binary"

// U16LE reads a little-endian uint16 from b. Returns 0 when b is too short.
func U16LE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// U32LE reads a little-endian uint32 from b. Returns 0 when b is too short.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// AppendU16LE appends v to dst in little-endian order.
func AppendU16LE(dst []byte, v uint16) []byte {
	return binary.LittleEndian.AppendUint16(dst, v)
}

// AppendU32LE appends v to dst in little-endian order.
func AppendU32LE(dst []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(dst, v)
}

// AppendZeros appends n zero bytes to dst.
func AppendZeros(dst []byte, n int) []byte {
	if n <= 0 {
		return dst
	}
	for range n {
		dst = append(dst, 0)
	}
	return dst
}
