package idcode

import (
	"fmt"

	"github.com/OpenTraceLab/jep106/pkg/jep106"
)

// LookupManufacturer resolves an 11-bit JTAG manufacturer field against the
// JEP106 table. Unknown codes get a printable placeholder name and false.
func LookupManufacturer(code uint16) (Manufacturer, bool) {
	id := jep106.ID{Bank: uint8(code>>7) & 0x0F, Code: uint8(code & 0x7F)}
	if name, ok := jep106.Lookup(id.Code, id.Bank); ok {
		return Manufacturer{ID: id, Name: name}, true
	}
	return Manufacturer{ID: id}, false
}

// ManufacturerName returns the manufacturer of the IDCODE, or a formatted
// "Unknown (bank N, 0xCC)" string when the table has no entry.
func (id IDCode) ManufacturerName() string {
	m, ok := LookupManufacturer(id.ManufacturerCode)
	if !ok {
		return fmt.Sprintf("Unknown (%s)", m.ID)
	}
	return m.Name
}
