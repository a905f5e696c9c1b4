package jtag

import (
	"fmt"

	"github.com/OpenTraceLab/jep106/pkg/idcode"
)

// IDCodeInfo contains decoded IDCODE information.
type IDCodeInfo struct {
	Raw          uint32
	Version      uint8
	PartNumber   uint16
	Bank         uint8
	Code         uint8
	Manufacturer string // empty when the JEP106 slot is unknown
}

// DecodeIDCode decodes a 32-bit IDCODE into its components.
func DecodeIDCode(raw uint32) IDCodeInfo {
	id := idcode.ParseIDCode(raw)
	m, _ := idcode.LookupManufacturer(id.ManufacturerCode)

	return IDCodeInfo{
		Raw:          id.Raw,
		Version:      id.Version,
		PartNumber:   id.PartNumber,
		Bank:         id.Bank(),
		Code:         id.Code(),
		Manufacturer: m.Name,
	}
}

// ManufacturerLabel returns the manufacturer name or an "Unknown" placeholder
// that still shows where the code was looked up.
func (i IDCodeInfo) ManufacturerLabel() string {
	if i.Manufacturer != "" {
		return i.Manufacturer
	}
	return fmt.Sprintf("Unknown (bank %d, 0x%02X)", int(i.Bank)+1, i.Code)
}

// String returns a formatted string representation of the IDCODE.
func (i IDCodeInfo) String() string {
	return fmt.Sprintf("0x%08X (Mfg: %s, Part: 0x%04X, Ver: %d)",
		i.Raw, i.ManufacturerLabel(), i.PartNumber, i.Version)
}

// GetManufacturerName returns the manufacturer name for an 11-bit JTAG
// manufacturer field, or "" if the slot is unknown.
func GetManufacturerName(id uint16) string {
	m, _ := idcode.LookupManufacturer(id)
	return m.Name
}
