package idcode

import "github.com/OpenTraceLab/jep106/pkg/jep106"

// IDCode represents a parsed IEEE 1149.1 JTAG IDCODE
type IDCode struct {
	Raw              uint32 // full IDCODE
	Version          uint8  // [31:28]
	PartNumber       uint16 // [27:12]
	ManufacturerCode uint16 // [11:1] JEP106 bank and code
	HasIDCode        bool   // bit 0 == 1
}

// Bank returns the JEP106 continuation count held in bits [11:8].
func (id IDCode) Bank() uint8 {
	return uint8(id.ManufacturerCode>>7) & 0x0F
}

// Code returns the JEP106 code held in bits [7:1], without parity.
func (id IDCode) Code() uint8 {
	return uint8(id.ManufacturerCode & 0x7F)
}

// JEP106 returns the manufacturer identifier carried by the IDCODE.
func (id IDCode) JEP106() jep106.ID {
	return jep106.ID{Bank: id.Bank(), Code: id.Code()}
}

// Valid reports whether the IDCODE names a manufacturer. IEEE 1149.1 reserves
// code 0x7F in bank 0 (raw 0x0FF) to mark the end of a chain, and devices
// without an IDCODE register shift out a single zero bit instead.
func (id IDCode) Valid() bool {
	if !id.HasIDCode {
		return false
	}
	code := id.Code()
	return code != 0 && code != jep106.Continuation
}

// Manufacturer represents a JEP106 manufacturer entry
type Manufacturer struct {
	ID   jep106.ID
	Name string // "NXP (Philips)"
}

// Known reports whether the manufacturer was found in the JEP106 table.
func (m Manufacturer) Known() bool {
	return m.Name != ""
}
