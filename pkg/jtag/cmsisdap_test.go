package jtag

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/OpenTraceLab/jep106/pkg/tap"
)

// fakeProbe answers CMSIS-DAP commands and clocks a TAP whose data register
// is the concatenated IDCODE (or BYPASS) registers of ids.
type fakeProbe struct {
	ids        []uint32
	packetSize int

	state   tap.State
	dr      []byte // one bit per entry, TDO end first
	clockHz uint32
	cmds    [][]byte
	closed  bool
	failCmd byte
}

func newFakeProbe(ids ...uint32) *fakeProbe {
	return &fakeProbe{ids: ids, packetSize: 64, state: tap.StateTestLogicReset, failCmd: 0xFF}
}

func (f *fakeProbe) capture() {
	f.dr = f.dr[:0]
	for _, id := range f.ids {
		if id == 0 {
			f.dr = append(f.dr, 0)
			continue
		}
		for j := 0; j < 32; j++ {
			f.dr = append(f.dr, byte(id>>j)&1)
		}
	}
}

func (f *fakeProbe) clock(tms bool, tdi byte) byte {
	var tdo byte
	switch f.state {
	case tap.StateCaptureDR:
		f.capture()
	case tap.StateShiftDR:
		tdo = f.dr[0]
		f.dr = append(f.dr[1:], tdi)
	}
	f.state = tap.NextState(f.state, tms)
	return tdo
}

func (f *fakeProbe) Transact(cmd []byte) ([]byte, error) {
	if len(cmd) > f.packetSize {
		return nil, fmt.Errorf("command of %d bytes exceeds packet size", len(cmd))
	}
	f.cmds = append(f.cmds, append([]byte(nil), cmd...))
	if cmd[0] == f.failCmd {
		return []byte{cmd[0], 0xFF}, nil
	}

	switch cmd[0] {
	case dapInfo:
		s := map[byte]string{infoVendor: "Raspberry Pi\x00", infoProduct: "Debug Probe", infoSerial: "E6614C311B", infoFirmware: "2.0.0"}[cmd[1]]
		return append([]byte{dapInfo, byte(len(s))}, s...), nil
	case dapConnect:
		return []byte{dapConnect, cmd[1]}, nil
	case dapDisconnect, dapResetTarget, dapSWJClock:
		if cmd[0] == dapSWJClock {
			f.clockHz = uint32(cmd[1]) | uint32(cmd[2])<<8 | uint32(cmd[3])<<16 | uint32(cmd[4])<<24
		}
		return []byte{cmd[0], dapOK}, nil
	case dapJTAGSequence:
		resp := []byte{dapJTAGSequence, dapOK}
		off := 2
		for n := int(cmd[1]); n > 0; n-- {
			info := cmd[off]
			off++
			bits := int(info & seqTCKMask)
			if bits == 0 {
				bits = 64
			}
			nbytes := (bits + 7) / 8
			tdi := cmd[off : off+nbytes]
			off += nbytes
			tdo := make([]byte, nbytes)
			for j := 0; j < bits; j++ {
				if f.clock(info&seqTMS != 0, (tdi[j/8]>>(j%8))&1) != 0 {
					tdo[j/8] |= 1 << (j % 8)
				}
			}
			if info&seqTDO != 0 {
				resp = append(resp, tdo...)
			}
		}
		if len(resp) > f.packetSize {
			return nil, fmt.Errorf("response of %d bytes exceeds packet size", len(resp))
		}
		return resp, nil
	}
	return nil, fmt.Errorf("unexpected command 0x%02X", cmd[0])
}

func (f *fakeProbe) PacketSize() int { return f.packetSize }

func (f *fakeProbe) Close() error {
	f.closed = true
	return nil
}

func TestCMSISDAPOpen(t *testing.T) {
	probe := newFakeProbe()
	a, err := newCMSISDAP(probe)
	if err != nil {
		t.Fatalf("newCMSISDAP: %v", err)
	}

	info, _ := a.Info()
	if info.Vendor != "Raspberry Pi" || info.Model != "Debug Probe" || info.Serial != "E6614C311B" {
		t.Errorf("unexpected info %+v", info)
	}

	if err := a.SetSpeed(2_000_000); err != nil {
		t.Fatalf("SetSpeed: %v", err)
	}
	if probe.clockHz != 2_000_000 {
		t.Errorf("probe clock = %d, want 2000000", probe.clockHz)
	}
	if err := a.SetSpeed(50_000_000); err == nil {
		t.Error("expected out of range speed to fail")
	}

	if err := a.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	last := probe.cmds[len(probe.cmds)-1]
	if last[0] != dapDisconnect || !probe.closed {
		t.Errorf("Close did not disconnect and release the probe")
	}
}

func TestCMSISDAPOpenFailures(t *testing.T) {
	for _, cmd := range []byte{dapConnect, dapInfo} {
		probe := newFakeProbe()
		probe.failCmd = cmd
		if _, err := newCMSISDAP(probe); err == nil {
			t.Errorf("expected failure when command 0x%02X fails", cmd)
		}
	}
}

func TestCMSISDAPScan(t *testing.T) {
	tests := []struct {
		name       string
		ids        []uint32
		maxDevices int
		want       []uint32 // 0 marks BYPASS
	}{
		{name: "single", ids: []uint32{0x4BA00477}, maxDevices: 8, want: []uint32{0x4BA00477}},
		{name: "with bypass", ids: []uint32{0x10002927, 0, 0x06438041}, maxDevices: 8, want: []uint32{0x10002927, 0, 0x06438041}},
		{name: "longest chain", ids: []uint32{0x41111043, 0x028200CB}, maxDevices: MaxChainLength, want: []uint32{0x41111043, 0x028200CB}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe := newFakeProbe(tt.ids...)
			a, err := newCMSISDAP(probe)
			if err != nil {
				t.Fatalf("newCMSISDAP: %v", err)
			}

			devices, err := Scan(context.Background(), a, tt.maxDevices)
			if err != nil {
				t.Fatalf("Scan: %v", err)
			}
			if len(devices) != len(tt.want) {
				t.Fatalf("got %d devices, want %d", len(devices), len(tt.want))
			}
			for i, d := range devices {
				if tt.want[i] == 0 {
					if !d.Bypass {
						t.Errorf("device %d: expected BYPASS", i)
					}
					continue
				}
				if d.IDCode.Raw != tt.want[i] {
					t.Errorf("device %d: IDCODE 0x%08X, want 0x%08X", i, d.IDCode.Raw, tt.want[i])
				}
			}
			if probe.state != tap.StateRunTestIdle {
				t.Errorf("TAP left in %s, want RunTestIdle", probe.state)
			}
		})
	}
}

func TestCMSISDAPShiftIR(t *testing.T) {
	probe := newFakeProbe(0x4BA00477)
	a, err := newCMSISDAP(probe)
	if err != nil {
		t.Fatalf("newCMSISDAP: %v", err)
	}
	if err := a.ResetTAP(true); err != nil {
		t.Fatalf("ResetTAP: %v", err)
	}

	if _, err := a.ShiftIR(nil, []byte{0x0F}, 4); err != nil {
		t.Fatalf("ShiftIR: %v", err)
	}
	if probe.state != tap.StateRunTestIdle {
		t.Errorf("TAP left in %s, want RunTestIdle", probe.state)
	}

	if _, err := a.ShiftDR([]byte{0x01}, []byte{0x00}, 8); !errors.Is(err, ErrPerBitTMS) {
		t.Errorf("expected ErrPerBitTMS, got %v", err)
	}
}

func TestBatchSequences(t *testing.T) {
	seqs := append(tmsSequences([]bool{true, false, false}), dataSequences(nil, 65*32)...)
	seqs = append(seqs, tmsSequences([]bool{true, false})...)

	batches := batchSequences(seqs, 64)
	total := 0
	for i, b := range batches {
		req, resp := 2, 2
		for _, s := range b {
			r, w := s.cost()
			req += r
			resp += w
		}
		if req > 64 || resp > 64 {
			t.Errorf("batch %d needs %d/%d bytes, packet size is 64", i, req, resp)
		}
		total += len(b)
	}
	if total != len(seqs) {
		t.Errorf("batched %d sequences, want %d", total, len(seqs))
	}
}

func TestTMSSequences(t *testing.T) {
	seqs := tmsSequences([]bool{true, true, false, false, true})
	want := []dapSequence{{bits: 2, tms: true}, {bits: 2}, {bits: 1, tms: true}}
	if len(seqs) != len(want) {
		t.Fatalf("got %d sequences, want %d", len(seqs), len(want))
	}
	for i := range want {
		if seqs[i].bits != want[i].bits || seqs[i].tms != want[i].tms || seqs[i].capture {
			t.Errorf("sequence %d = %+v, want %+v", i, seqs[i], want[i])
		}
	}
}

func TestBitSlice(t *testing.T) {
	buf := []byte{0xF0, 0x0F}
	got := bitSlice(buf, 4, 8)
	if len(got) != 1 || got[0] != 0xFF {
		t.Errorf("bitSlice = %x, want ff", got)
	}
	if got := bitSlice(nil, 0, 9); len(got) != 2 || got[0] != 0 || got[1] != 0 {
		t.Errorf("bitSlice(nil) = %x, want 0000", got)
	}
}

func TestParseUSBID(t *testing.T) {
	vid, pid, err := ParseUSBID("2e8a:000c")
	if err != nil || vid != 0x2e8a || pid != 0x000c {
		t.Errorf("ParseUSBID = %04x:%04x, %v", vid, pid, err)
	}
	if _, _, err := ParseUSBID("0x0d28:0x0204"); err != nil {
		t.Errorf("ParseUSBID with 0x prefixes: %v", err)
	}
	for _, bad := range []string{"", "2e8a", "2e8a:zz", "12345:0001"} {
		if _, _, err := ParseUSBID(bad); err == nil {
			t.Errorf("ParseUSBID(%q) should fail", bad)
		}
	}
	if got := (Probe{VendorID: 0x0d28, ProductID: 0x0204}).USBID(); got != "0d28:0204" {
		t.Errorf("USBID = %s", got)
	}
}
