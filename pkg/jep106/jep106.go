// Package jep106 resolves JEDEC JEP106 manufacturer identification codes to
// manufacturer names.
//
// A JEP106 identifier is read from hardware as a run of 0x7F continuation
// bytes followed by a single code byte. The number of continuation bytes
// selects the bank and the code selects one of the 126 slots in that bank.
// The table is compiled in and never modified, so every function in this
// package is safe for concurrent use without synchronisation.
package jep106

import "fmt"

//go:generate go run ../../cmd/jep106gen --source "edk2 ${JEP106_EDK2_REV}" -o table.go ${JEP106_EDK2_SRC}

const (
	// BankSize is the number of manufacturer codes in every bank (0x01-0x7E).
	BankSize = 126

	// Continuation is the byte that advances a JEP106 read to the next bank.
	Continuation = 0x7F

	// MinCode and MaxCode bound the codes that index into a bank.
	MinCode = 0x01
	MaxCode = 0x7E
)

// ID identifies a manufacturer slot by bank and code. Bank is the zero-based
// continuation count, Code the terminating byte without its parity bit.
type ID struct {
	Bank uint8
	Code uint8
}

// String formats the identifier with the one-based bank number used by the
// published JEP106 tables, e.g. "bank 1, 0x09" for ID{Bank: 0, Code: 0x09}.
func (id ID) String() string {
	return fmt.Sprintf("bank %d, 0x%02X", int(id.Bank)+1, id.Code)
}

// Valid reports whether the identifier falls inside the compiled-in table.
// A valid identifier can still name an unassigned slot.
func (id ID) Valid() bool {
	return int(id.Bank) < len(banks) && id.Code >= MinCode && id.Code <= MaxCode
}

// Name returns the manufacturer name, or "" when the slot is unknown.
func (id ID) Name() string {
	return GetManufacturerName(id.Code, id.Bank)
}

// GetManufacturerName returns the manufacturer assigned to code in bank.
// Out-of-range banks, the reserved codes 0x00 and 0x7F, codes above 0x7E and
// unassigned slots all yield the empty string.
func GetManufacturerName(code, bank uint8) string {
	if int(bank) >= len(banks) || code < MinCode || code > MaxCode {
		return ""
	}
	return banks[bank][code-1]
}

// GetBankLimit returns the number of banks in the compiled-in table. Valid
// bank arguments to GetManufacturerName are 0 through GetBankLimit()-1.
func GetBankLimit() int {
	return len(banks)
}

// Lookup is GetManufacturerName with an explicit found flag.
func Lookup(code, bank uint8) (string, bool) {
	name := GetManufacturerName(code, bank)
	return name, name != ""
}
