package jtag

import (
	"errors"
	"fmt"
	"sync"

	"github.com/OpenTraceLab/jep106/pkg/tap"
)

// ErrPerBitTMS is returned when a caller passes a TMS buffer to a CMSIS-DAP
// shift. The adapter drives TMS itself to walk the TAP around the scan.
var ErrPerBitTMS = errors.New("jtag: cmsis-dap: per-bit TMS is not supported")

// CMSISDAP drives a JTAG chain through a CMSIS-DAP debug probe.
type CMSISDAP struct {
	mu        sync.Mutex
	t         dapTransport
	tap       *tap.StateMachine
	info      AdapterInfo
	connected bool
}

// OpenCMSISDAP opens the probe with the given USB IDs and switches it to JTAG.
func OpenCMSISDAP(vid, pid uint16) (*CMSISDAP, error) {
	t, err := openUSBTransport(vid, pid)
	if err != nil {
		return nil, err
	}
	a, err := newCMSISDAP(t)
	if err != nil {
		t.Close()
		return nil, err
	}
	return a, nil
}

func newCMSISDAP(t dapTransport) (*CMSISDAP, error) {
	a := &CMSISDAP{t: t, tap: tap.NewStateMachine()}
	if err := a.queryInfo(); err != nil {
		return nil, err
	}

	resp, err := t.Transact([]byte{dapConnect, dapPortJTAG})
	if err != nil {
		return nil, fmt.Errorf("cmsis-dap: connect: %w", err)
	}
	if err := decodeConnect(resp); err != nil {
		return nil, err
	}
	a.connected = true
	return a, nil
}

func (a *CMSISDAP) queryInfo() error {
	vendor, err := a.infoString(infoVendor)
	if err != nil {
		return fmt.Errorf("cmsis-dap: query vendor: %w", err)
	}
	// Optional strings; older firmware leaves some empty.
	product, _ := a.infoString(infoProduct)
	serial, _ := a.infoString(infoSerial)
	firmware, _ := a.infoString(infoFirmware)

	a.info = AdapterInfo{
		Name:       "CMSIS-DAP Probe",
		Vendor:     vendor,
		Model:      product,
		Serial:     serial,
		Firmware:   firmware,
		MinSpeedHz: 1_000,
		MaxSpeedHz: 10_000_000,
	}
	return nil
}

func (a *CMSISDAP) infoString(id byte) (string, error) {
	resp, err := a.t.Transact([]byte{dapInfo, id})
	if err != nil {
		return "", err
	}
	return decodeInfo(resp)
}

// Info returns the strings reported by the probe.
func (a *CMSISDAP) Info() (AdapterInfo, error) {
	return a.info, nil
}

func (a *CMSISDAP) ShiftIR(tms, tdi []byte, bits int) ([]byte, error) {
	return a.shift(tap.StateShiftIR, tms, tdi, bits)
}

func (a *CMSISDAP) ShiftDR(tms, tdi []byte, bits int) ([]byte, error) {
	return a.shift(tap.StateShiftDR, tms, tdi, bits)
}

func (a *CMSISDAP) shift(state tap.State, tms, tdi []byte, bits int) ([]byte, error) {
	if len(tms) > 0 {
		return nil, ErrPerBitTMS
	}
	if err := checkShift(tms, tdi, bits); err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	enter, err := a.tap.GoTo(state)
	if err != nil {
		return nil, err
	}
	seqs := tmsSequences(enter)
	seqs = append(seqs, dataSequences(tdi, bits)...)
	a.tap.Clock(true)
	leave, err := a.tap.GoTo(tap.StateRunTestIdle)
	if err != nil {
		return nil, err
	}
	seqs = append(seqs, tmsSequences(leave)...)

	tdo, err := a.run(seqs, bits)
	if err != nil {
		// The probe may have stopped mid-walk; ResetTAP resynchronises.
		a.tap.Reset()
		return nil, err
	}
	return tdo, nil
}

// tmsSequences run-length encodes a TMS pattern into non-capturing sequences.
func tmsSequences(tms []bool) []dapSequence {
	var seqs []dapSequence
	for i := 0; i < len(tms); {
		n := 1
		for i+n < len(tms) && tms[i+n] == tms[i] && n < maxSeqBits {
			n++
		}
		seqs = append(seqs, dapSequence{bits: n, tms: tms[i]})
		i += n
	}
	return seqs
}

// dataSequences splits a shift into capturing chunks. The last bit is
// clocked with TMS high so the TAP leaves the shift state with it.
func dataSequences(tdi []byte, bits int) []dapSequence {
	var seqs []dapSequence
	body := bits - 1
	for pos := 0; pos < body; pos += maxSeqBits {
		n := min(maxSeqBits, body-pos)
		seqs = append(seqs, dapSequence{bits: n, capture: true, tdi: bitSlice(tdi, pos, n)})
	}
	return append(seqs, dapSequence{bits: 1, tms: true, capture: true, tdi: bitSlice(tdi, body, 1)})
}

// run sends seqs in as many DAP_JTAG_Sequence commands as the packet size
// requires and returns the captured TDO bits packed LSB-first.
func (a *CMSISDAP) run(seqs []dapSequence, bits int) ([]byte, error) {
	tdo := make([]byte, (bits+7)/8)
	pos := 0
	for _, batch := range batchSequences(seqs, a.t.PacketSize()) {
		resp, err := a.t.Transact(encodeSequences(batch))
		if err != nil {
			return nil, fmt.Errorf("cmsis-dap: JTAG sequence: %w", err)
		}
		captured, err := decodeSequences(resp, batch)
		if err != nil {
			return nil, err
		}
		i := 0
		for _, s := range batch {
			if !s.capture {
				continue
			}
			for j := 0; j < s.bits && pos < bits; j++ {
				if captured[i][j/8]&(1<<(j%8)) != 0 {
					tdo[pos/8] |= 1 << (pos % 8)
				}
				pos++
			}
			i++
		}
	}
	return tdo, nil
}

func batchSequences(seqs []dapSequence, packetSize int) [][]dapSequence {
	var batches [][]dapSequence
	var cur []dapSequence
	req, resp := 2, 2
	for _, s := range seqs {
		r, w := s.cost()
		if len(cur) > 0 && (req+r > packetSize || resp+w > packetSize || len(cur) == 255) {
			batches = append(batches, cur)
			cur, req, resp = nil, 2, 2
		}
		cur = append(cur, s)
		req += r
		resp += w
	}
	if len(cur) > 0 {
		batches = append(batches, cur)
	}
	return batches
}

// bitSlice copies n bits of buf starting at bit pos into a new LSB-first
// buffer. A nil buf reads as zeros.
func bitSlice(buf []byte, pos, n int) []byte {
	out := make([]byte, (n+7)/8)
	for j := 0; j < n; j++ {
		p := pos + j
		if p/8 < len(buf) && buf[p/8]&(1<<(p%8)) != 0 {
			out[j/8] |= 1 << (j % 8)
		}
	}
	return out
}

// ResetTAP clocks the TAP through Test-Logic-Reset into Run-Test/Idle. A hard
// reset first asks the probe to reset the target.
func (a *CMSISDAP) ResetTAP(hard bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if hard {
		resp, err := a.t.Transact([]byte{dapResetTarget})
		if err != nil {
			return fmt.Errorf("cmsis-dap: reset target: %w", err)
		}
		if err := checkStatus(resp, dapResetTarget); err != nil {
			return err
		}
	}

	walk := a.tap.Reset()
	idle, err := a.tap.GoTo(tap.StateRunTestIdle)
	if err != nil {
		return err
	}
	seqs := tmsSequences(append(walk, idle...))

	resp, err := a.t.Transact(encodeSequences(seqs))
	if err != nil {
		return fmt.Errorf("cmsis-dap: TAP reset: %w", err)
	}
	_, err = decodeSequences(resp, seqs)
	return err
}

// SetSpeed sets the TCK frequency.
func (a *CMSISDAP) SetSpeed(hz int) error {
	if err := a.info.CheckSpeed(hz); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	resp, err := a.t.Transact(encodeClock(uint32(hz)))
	if err != nil {
		return fmt.Errorf("cmsis-dap: set clock: %w", err)
	}
	return checkStatus(resp, dapSWJClock)
}

// Close disconnects from the target and releases the probe.
func (a *CMSISDAP) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.connected {
		_, _ = a.t.Transact([]byte{dapDisconnect})
		a.connected = false
	}
	return a.t.Close()
}
