package jtag

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// CMSIS-DAP command IDs used by the chain scan.
const (
	dapInfo         = 0x00
	dapConnect      = 0x02
	dapDisconnect   = 0x03
	dapResetTarget  = 0x0A
	dapSWJClock     = 0x11
	dapJTAGSequence = 0x14
)

// DAP_Info IDs
const (
	infoVendor   = 0x01
	infoProduct  = 0x02
	infoSerial   = 0x03
	infoFirmware = 0x04
)

const (
	dapPortJTAG = 2
	dapOK       = 0x00
)

// Sequence info byte: bits [5:0] TCK count (0 means 64), bit 6 TMS, bit 7
// capture TDO.
const (
	seqTCKMask = 0x3F
	seqTMS     = 0x40
	seqTDO     = 0x80

	maxSeqBits = 64
)

// dapSequence is one entry of a DAP_JTAG_Sequence command: up to 64 clocks
// with a constant TMS level.
type dapSequence struct {
	bits    int
	tms     bool
	capture bool
	tdi     []byte
}

func (s dapSequence) info() byte {
	b := byte(s.bits & seqTCKMask)
	if s.tms {
		b |= seqTMS
	}
	if s.capture {
		b |= seqTDO
	}
	return b
}

func (s dapSequence) bytes() int {
	return (s.bits + 7) / 8
}

// request and response sizes of s inside a DAP_JTAG_Sequence exchange
func (s dapSequence) cost() (req, resp int) {
	req = 1 + s.bytes()
	if s.capture {
		resp = s.bytes()
	}
	return req, resp
}

func encodeSequences(seqs []dapSequence) []byte {
	cmd := []byte{dapJTAGSequence, byte(len(seqs))}
	for _, s := range seqs {
		cmd = append(cmd, s.info())
		tdi := make([]byte, s.bytes())
		copy(tdi, s.tdi)
		cmd = append(cmd, tdi...)
	}
	return cmd
}

// decodeSequences returns the TDO bytes of every capturing sequence, in order.
func decodeSequences(resp []byte, seqs []dapSequence) ([][]byte, error) {
	if err := checkStatus(resp, dapJTAGSequence); err != nil {
		return nil, err
	}
	var out [][]byte
	off := 2
	for _, s := range seqs {
		if !s.capture {
			continue
		}
		n := s.bytes()
		if off+n > len(resp) {
			return nil, fmt.Errorf("cmsis-dap: short JTAG sequence response (%d bytes)", len(resp))
		}
		out = append(out, resp[off:off+n])
		off += n
	}
	return out, nil
}

func encodeClock(hz uint32) []byte {
	cmd := make([]byte, 5)
	cmd[0] = dapSWJClock
	binary.LittleEndian.PutUint32(cmd[1:], hz)
	return cmd
}

// decodeInfo parses a DAP_Info string response. Probes may include the
// terminating NUL in the length.
func decodeInfo(resp []byte) (string, error) {
	if len(resp) < 2 || resp[0] != dapInfo {
		return "", fmt.Errorf("cmsis-dap: bad DAP_Info response")
	}
	n := int(resp[1])
	if len(resp) < 2+n {
		return "", fmt.Errorf("cmsis-dap: truncated DAP_Info response")
	}
	return strings.TrimRight(string(resp[2:2+n]), "\x00"), nil
}

func decodeConnect(resp []byte) error {
	if len(resp) < 2 || resp[0] != dapConnect {
		return fmt.Errorf("cmsis-dap: bad DAP_Connect response")
	}
	if resp[1] != dapPortJTAG {
		return fmt.Errorf("cmsis-dap: probe refused JTAG (port %d)", resp[1])
	}
	return nil
}

// checkStatus validates the common [cmd, status] response header.
func checkStatus(resp []byte, cmd byte) error {
	if len(resp) < 2 {
		return fmt.Errorf("cmsis-dap: response to 0x%02X too short", cmd)
	}
	if resp[0] != cmd {
		return fmt.Errorf("cmsis-dap: response ID 0x%02X for command 0x%02X", resp[0], cmd)
	}
	if resp[1] != dapOK {
		return fmt.Errorf("cmsis-dap: command 0x%02X failed with status 0x%02X", cmd, resp[1])
	}
	return nil
}
