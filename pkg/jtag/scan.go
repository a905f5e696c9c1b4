package jtag

import (
	"context"
	"errors"
	"fmt"

	"github.com/OpenTraceLab/jep106/pkg/idcode"
)

// MaxChainLength bounds the number of devices Scan will look for.
const MaxChainLength = 64

// endOfChain is what TDO delivers once the ones shifted in at TDI arrive.
const endOfChain = 0xFFFFFFFF

var (
	// ErrNoDevices is returned when TDO reads back only ones.
	ErrNoDevices = errors.New("jtag: no devices in chain")
	// ErrChainTooLong is returned together with the devices found so far when
	// the chain did not terminate within the requested device count.
	ErrChainTooLong = errors.New("jtag: chain longer than expected")
)

// ChainDevice is one TAP found while scanning the chain.
type ChainDevice struct {
	Position int // 0 is the device nearest TDO
	IDCode   idcode.IDCode
	Bypass   bool // no IDCODE register; the device selected BYPASS after reset
}

// Manufacturer returns the JEP106 name for the device, or "" if it is unknown
// or bypassed.
func (d ChainDevice) Manufacturer() string {
	if d.Bypass {
		return ""
	}
	m, _ := idcode.LookupManufacturer(d.IDCode.ManufacturerCode)
	return m.Name
}

// Scan resets the TAP and reads the IDCODE register of every device in the
// chain. After Test-Logic-Reset each device either loads its IDCODE, whose
// bit 0 is always one, or selects BYPASS, which captures a single zero, so the
// stream can be decoded without knowing IR lengths. Ones are shifted in at
// TDI; reading 0xFFFFFFFF where an IDCODE would start ends the chain.
func Scan(ctx context.Context, adapter Adapter, maxDevices int) ([]ChainDevice, error) {
	if adapter == nil {
		return nil, fmt.Errorf("jtag: adapter is nil")
	}
	if maxDevices <= 0 || maxDevices > MaxChainLength {
		return nil, fmt.Errorf("jtag: maxDevices must be between 1 and %d, got %d", MaxChainLength, maxDevices)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := adapter.ResetTAP(false); err != nil {
		return nil, fmt.Errorf("jtag: reset: %w", err)
	}

	bits := (maxDevices + 1) * 32
	tdi := make([]byte, (bits+7)/8)
	for i := range tdi {
		tdi[i] = 0xFF
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tdo, err := adapter.ShiftDR(nil, tdi, bits)
	if err != nil {
		return nil, fmt.Errorf("jtag: shift DR: %w", err)
	}
	if len(tdo)*8 < bits {
		return nil, fmt.Errorf("jtag: short TDO read, got %d bytes for %d bits", len(tdo), bits)
	}

	var devices []ChainDevice
	pos := 0
	for pos+32 <= bits {
		if bitAt(tdo, pos) == 0 {
			if len(devices) == maxDevices {
				return devices, ErrChainTooLong
			}
			devices = append(devices, ChainDevice{Position: len(devices), Bypass: true})
			pos++
			continue
		}

		raw := wordAt(tdo, pos)
		if raw == endOfChain {
			break
		}
		if len(devices) == maxDevices {
			return devices, ErrChainTooLong
		}
		devices = append(devices, ChainDevice{Position: len(devices), IDCode: idcode.ParseIDCode(raw)})
		pos += 32
	}

	if len(devices) == 0 {
		return nil, ErrNoDevices
	}
	return devices, nil
}

func bitAt(buf []byte, pos int) byte {
	return (buf[pos/8] >> (pos % 8)) & 1
}

func wordAt(buf []byte, pos int) uint32 {
	var v uint32
	for j := 0; j < 32; j++ {
		v |= uint32(bitAt(buf, pos+j)) << j
	}
	return v
}
