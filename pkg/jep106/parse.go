package jep106

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseByte parses a bank or code argument. Decimal ("66"), hex ("0x42"),
// octal ("0o102") and binary ("0b1000010") forms are accepted.
func ParseByte(s string) (uint8, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 8)
	if err != nil {
		return 0, fmt.Errorf("%q is not a value between 0 and 255", s)
	}
	return uint8(v), nil
}
