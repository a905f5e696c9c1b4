package jtag

// ShiftRegion identifies whether a shift operation targets the instruction or
// data register.
type ShiftRegion uint8

const (
	ShiftRegionIR ShiftRegion = iota
	ShiftRegionDR
)

// ShiftHook allows the simulator to emulate device-specific TDO behavior.
type ShiftHook func(region ShiftRegion, tms, tdi []byte, bits int) ([]byte, error)

// ShiftOp captures the last shift invocation for inspection within tests.
type ShiftOp struct {
	Region ShiftRegion
	TMS    []byte
	TDI    []byte
	Bits   int
}

// SimAdapter is an in-memory adapter useful for unit tests. It records the last
// shift request and can optionally provide deterministic TDO data via OnShift.
type SimAdapter struct {
	InfoData AdapterInfo
	SpeedHz  int

	OnShift ShiftHook

	lastShift ShiftOp
	resets    int
	hardReset int
}

// NewSimAdapter constructs a simulator configured with the provided AdapterInfo.
func NewSimAdapter(info AdapterInfo) *SimAdapter {
	return &SimAdapter{InfoData: info}
}

// NewChainSimulator returns a SimAdapter that behaves like a chain of devices
// just after Test-Logic-Reset. Each entry of ids is one device, nearest TDO
// first; a zero entry models a device without an IDCODE register, which
// selects BYPASS and contributes a single zero bit.
func NewChainSimulator(info AdapterInfo, ids []uint32) *SimAdapter {
	sim := NewSimAdapter(info)
	chain := append([]uint32(nil), ids...)

	sim.OnShift = func(region ShiftRegion, _, tdi []byte, bits int) ([]byte, error) {
		if region != ShiftRegionDR {
			return make([]byte, (bits+7)/8), nil
		}

		tdo := make([]byte, (bits+7)/8)
		pos := 0
		for _, id := range chain {
			width := 32
			if id == 0 {
				width = 1
			}
			for j := 0; j < width && pos < bits; j++ {
				if id&(1<<j) != 0 {
					tdo[pos/8] |= 1 << (pos % 8)
				}
				pos++
			}
		}
		// Whatever was shifted in at TDI emerges after the last register.
		for j := 0; pos < bits; j++ {
			if j/8 < len(tdi) && tdi[j/8]&(1<<(j%8)) != 0 {
				tdo[pos/8] |= 1 << (pos % 8)
			}
			pos++
		}
		return tdo, nil
	}
	return sim
}

// LastShift returns a copy of the most recent shift request.
func (s *SimAdapter) LastShift() ShiftOp {
	return ShiftOp{
		Region: s.lastShift.Region,
		TMS:    append([]byte(nil), s.lastShift.TMS...),
		TDI:    append([]byte(nil), s.lastShift.TDI...),
		Bits:   s.lastShift.Bits,
	}
}

// ResetCounts reports how many resets have been requested (soft as total,
// hardReset as subset).
func (s *SimAdapter) ResetCounts() (soft, hard int) {
	return s.resets, s.hardReset
}

func (s *SimAdapter) Info() (AdapterInfo, error) {
	return s.InfoData, nil
}

func (s *SimAdapter) ShiftIR(tms, tdi []byte, bits int) ([]byte, error) {
	return s.shift(ShiftRegionIR, tms, tdi, bits)
}

func (s *SimAdapter) ShiftDR(tms, tdi []byte, bits int) ([]byte, error) {
	return s.shift(ShiftRegionDR, tms, tdi, bits)
}

func (s *SimAdapter) ResetTAP(hard bool) error {
	s.resets++
	if hard {
		s.hardReset++
	}
	return nil
}

func (s *SimAdapter) SetSpeed(hz int) error {
	if err := s.InfoData.CheckSpeed(hz); err != nil {
		return err
	}
	s.SpeedHz = hz
	return nil
}

func (s *SimAdapter) shift(region ShiftRegion, tms, tdi []byte, bits int) ([]byte, error) {
	if err := checkShift(tms, tdi, bits); err != nil {
		return nil, err
	}

	s.lastShift = ShiftOp{
		Region: region,
		TMS:    append([]byte(nil), tms...),
		TDI:    append([]byte(nil), tdi...),
		Bits:   bits,
	}

	if s.OnShift != nil {
		return s.OnShift(region, tms, tdi, bits)
	}

	// Default: echo TDI to TDO to keep tests predictable.
	required := (bits + 7) / 8
	tdo := make([]byte, required)
	copy(tdo, tdi)
	return tdo, nil
}
