package jtag

import "fmt"

// AdapterInfo is what an adapter reports about itself. MinSpeedHz and
// MaxSpeedHz bound the TCK rate accepted by SetSpeed; a zero MaxSpeedHz leaves
// the rate unchecked.
type AdapterInfo struct {
	Name       string
	Vendor     string
	Model      string
	Serial     string
	Firmware   string
	MinSpeedHz int
	MaxSpeedHz int
}

// CheckSpeed returns an error if hz is not a TCK rate the adapter can run.
func (i AdapterInfo) CheckSpeed(hz int) error {
	if hz <= 0 {
		return fmt.Errorf("jtag: invalid speed %d Hz", hz)
	}
	if i.MaxSpeedHz > 0 && (hz < i.MinSpeedHz || hz > i.MaxSpeedHz) {
		return fmt.Errorf("jtag: speed %d Hz outside %d-%d Hz", hz, i.MinSpeedHz, i.MaxSpeedHz)
	}
	return nil
}

// Adapter drives a JTAG TAP. ShiftIR and ShiftDR each perform a complete scan:
// the adapter walks the TAP from Run-Test/Idle to the shift state, clocks bits
// LSB-first and returns to Run-Test/Idle.
type Adapter interface {
	Info() (AdapterInfo, error)
	ShiftIR(tms, tdi []byte, bits int) (tdo []byte, err error)
	ShiftDR(tms, tdi []byte, bits int) (tdo []byte, err error)
	ResetTAP(hard bool) error
	SetSpeed(hz int) error
}

// checkShift rejects a non-positive bit count and TMS or TDI buffers that end
// before bits. An empty buffer stands for all zeros.
func checkShift(tms, tdi []byte, bits int) error {
	if bits <= 0 {
		return fmt.Errorf("jtag: bits must be positive, got %d", bits)
	}
	n := (bits + 7) / 8
	if len(tms) > 0 && len(tms) < n {
		return fmt.Errorf("jtag: %d-bit shift needs %d TMS bytes, got %d", bits, n, len(tms))
	}
	if len(tdi) > 0 && len(tdi) < n {
		return fmt.Errorf("jtag: %d-bit shift needs %d TDI bytes, got %d", bits, n, len(tdi))
	}
	return nil
}
