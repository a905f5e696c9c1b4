package jep106

import "math/bits"

// WithParity returns code with bit 7 set or cleared so that the byte has odd
// parity, which is how JEP106 codes appear on the wire.
func WithParity(code uint8) uint8 {
	code &= 0x7F
	if bits.OnesCount8(code)%2 == 0 {
		code |= 0x80
	}
	return code
}

// StripParity returns the low seven bits of b and whether b carried odd parity.
func StripParity(b byte) (uint8, bool) {
	return b & 0x7F, bits.OnesCount8(b)%2 == 1
}
