package idcode

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseIDCode parses a raw 32-bit IDCODE into its component fields
func ParseIDCode(raw uint32) IDCode {
	return IDCode{
		Raw:              raw,
		Version:          uint8((raw >> 28) & 0xF),
		PartNumber:       uint16((raw >> 12) & 0xFFFF),
		ManufacturerCode: uint16((raw >> 1) & 0x7FF),
		HasIDCode:        (raw & 0x1) == 0x1,
	}
}

// Compose builds a raw IDCODE from its fields. Bit 0 is always set.
func Compose(version uint8, part uint16, bank, code uint8) uint32 {
	mfg := uint32(bank&0x0F)<<7 | uint32(code&0x7F)
	return uint32(version&0xF)<<28 | uint32(part)<<12 | mfg<<1 | 1
}

// ParseHex parses a 32-bit IDCODE written in hex, with or without 0x.
func ParseHex(s string) (uint32, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimPrefix(strings.TrimPrefix(t, "0x"), "0X")
	v, err := strconv.ParseUint(t, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid IDCODE format: %s (expected hex like 0x12345678)", s)
	}
	return uint32(v), nil
}
