package jtag

import (
	"context"
	"errors"
	"testing"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name       string
		chain      []uint32
		maxDevices int
		wantMfg    []string
		wantErr    error
	}{
		{
			name:       "single STM32",
			chain:      []uint32{0x06438041},
			maxDevices: 4,
			wantMfg:    []string{"STMicroelectronics"},
		},
		{
			name:       "mixed chain",
			chain:      []uint32{0x4BA00477, 0x06438041, 0x41111043},
			maxDevices: 3,
			wantMfg:    []string{"ARM Ltd", "STMicroelectronics", "Lattice Semi."},
		},
		{
			name:       "bypassed device in the middle",
			chain:      []uint32{0x10002927, 0, 0x028200CB},
			maxDevices: 8,
			wantMfg:    []string{"Raspberry Pi Trading Ltd", "", "Analog Devices"},
		},
		{
			name:       "unknown bank",
			chain:      []uint32{0x00000F03},
			maxDevices: 1,
			wantMfg:    []string{""},
		},
		{
			name:       "chain longer than expected",
			chain:      []uint32{0x06438041, 0x41111043},
			maxDevices: 1,
			wantMfg:    []string{"STMicroelectronics"},
			wantErr:    ErrChainTooLong,
		},
		{
			name:       "empty chain",
			chain:      nil,
			maxDevices: 2,
			wantErr:    ErrNoDevices,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := NewChainSimulator(AdapterInfo{Name: "sim"}, tt.chain)
			devices, err := Scan(context.Background(), sim, tt.maxDevices)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Scan error = %v, want %v", err, tt.wantErr)
			}
			if len(devices) != len(tt.wantMfg) {
				t.Fatalf("found %d devices, want %d", len(devices), len(tt.wantMfg))
			}
			for i, dev := range devices {
				if dev.Position != i {
					t.Errorf("device %d has position %d", i, dev.Position)
				}
				if got := dev.Manufacturer(); got != tt.wantMfg[i] {
					t.Errorf("device %d manufacturer = %q, want %q", i, got, tt.wantMfg[i])
				}
				if dev.Bypass != (tt.chain[i] == 0) {
					t.Errorf("device %d bypass = %v", i, dev.Bypass)
				}
				if !dev.Bypass && dev.IDCode.Raw != tt.chain[i] {
					t.Errorf("device %d IDCODE = 0x%08X, want 0x%08X", i, dev.IDCode.Raw, tt.chain[i])
				}
			}

			if soft, _ := sim.ResetCounts(); soft != 1 {
				t.Errorf("expected one TAP reset, got %d", soft)
			}
		})
	}
}

func TestScanStuckLow(t *testing.T) {
	sim := NewSimAdapter(AdapterInfo{})
	sim.OnShift = func(_ ShiftRegion, _, _ []byte, bits int) ([]byte, error) {
		return make([]byte, (bits+7)/8), nil
	}

	devices, err := Scan(context.Background(), sim, 2)
	if !errors.Is(err, ErrChainTooLong) {
		t.Fatalf("Scan error = %v, want ErrChainTooLong", err)
	}
	if len(devices) != 2 || !devices[0].Bypass || !devices[1].Bypass {
		t.Fatalf("unexpected devices: %+v", devices)
	}
}

func TestScanArguments(t *testing.T) {
	sim := NewChainSimulator(AdapterInfo{}, []uint32{0x06438041})

	if _, err := Scan(context.Background(), nil, 1); err == nil {
		t.Errorf("expected error for nil adapter")
	}
	if _, err := Scan(context.Background(), sim, 0); err == nil {
		t.Errorf("expected error for zero maxDevices")
	}
	if _, err := Scan(context.Background(), sim, MaxChainLength+1); err == nil {
		t.Errorf("expected error for oversized maxDevices")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Scan(ctx, sim, 1); !errors.Is(err, context.Canceled) {
		t.Errorf("Scan error = %v, want context.Canceled", err)
	}
}

func TestDecodeIDCode(t *testing.T) {
	info := DecodeIDCode(0x4BA00477)
	if info.Bank != 4 || info.Code != 0x3B || info.Manufacturer != "ARM Ltd" {
		t.Fatalf("unexpected decode: %+v", info)
	}
	if got := info.String(); got != "0x4BA00477 (Mfg: ARM Ltd, Part: 0xBA00, Ver: 4)" {
		t.Errorf("String() = %q", got)
	}

	unknown := DecodeIDCode(0x00000F03)
	if got := unknown.ManufacturerLabel(); got != "Unknown (bank 16, 0x01)" {
		t.Errorf("ManufacturerLabel() = %q", got)
	}
	if GetManufacturerName(0x020) != "STMicroelectronics" {
		t.Errorf("GetManufacturerName(0x020) = %q", GetManufacturerName(0x020))
	}
}
