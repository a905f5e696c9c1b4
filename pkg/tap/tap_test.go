package tap

import "testing"

func TestNextStateTable(t *testing.T) {
	cases := []struct {
		start State
		tms   bool
		end   State
	}{
		{StateTestLogicReset, false, StateRunTestIdle},
		{StateTestLogicReset, true, StateTestLogicReset},
		{StateRunTestIdle, true, StateSelectDRScan},
		{StateSelectDRScan, false, StateCaptureDR},
		{StateShiftDR, true, StateExit1DR},
		{StateExit2DR, false, StateShiftDR},
		{StateSelectIRScan, true, StateTestLogicReset},
		{StateCaptureIR, false, StateShiftIR},
		{StatePauseIR, true, StateExit2IR},
		{StateExit2IR, true, StateUpdateIR},
	}

	for _, tc := range cases {
		got := NextState(tc.start, tc.tms)
		if got != tc.end {
			t.Fatalf("NextState(%s, %v) = %s, want %s", tc.start, tc.tms, got, tc.end)
		}
	}
}

func TestResetFromEveryState(t *testing.T) {
	for s := StateTestLogicReset; s < numStates; s++ {
		m := &StateMachine{state: s}
		cur := s
		for _, tms := range m.Reset() {
			cur = NextState(cur, tms)
		}
		if cur != StateTestLogicReset || m.State() != StateTestLogicReset {
			t.Errorf("reset from %s ended in %s", s, cur)
		}
	}
}

func TestPath(t *testing.T) {
	cases := []struct {
		from, to State
		want     []bool
	}{
		{StateRunTestIdle, StateShiftDR, []bool{true, false, false}},
		{StateRunTestIdle, StateShiftIR, []bool{true, true, false, false}},
		{StateExit1DR, StateRunTestIdle, []bool{true, false}},
		{StateExit1IR, StateRunTestIdle, []bool{true, false}},
		{StateTestLogicReset, StateRunTestIdle, []bool{false}},
		{StateShiftDR, StateShiftDR, nil},
	}

	for _, tc := range cases {
		got, err := Path(tc.from, tc.to)
		if err != nil {
			t.Fatalf("Path(%s, %s): %v", tc.from, tc.to, err)
		}
		if len(got) != len(tc.want) {
			t.Fatalf("Path(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("Path(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
			}
		}
	}

	if _, err := Path(numStates, StateRunTestIdle); err == nil {
		t.Error("expected error for invalid state")
	}
}

func TestPathReachesEveryState(t *testing.T) {
	for from := StateTestLogicReset; from < numStates; from++ {
		for to := StateTestLogicReset; to < numStates; to++ {
			path, err := Path(from, to)
			if err != nil {
				t.Fatalf("Path(%s, %s): %v", from, to, err)
			}
			cur := from
			for _, tms := range path {
				cur = NextState(cur, tms)
			}
			if cur != to {
				t.Errorf("Path(%s, %s) ends in %s", from, to, cur)
			}
		}
	}
}

func TestGoTo(t *testing.T) {
	m := NewStateMachine()
	m.Clock(false)

	if _, err := m.GoTo(StateShiftIR); err != nil {
		t.Fatalf("GoTo: %v", err)
	}
	if m.State() != StateShiftIR {
		t.Fatalf("State() = %s, want %s", m.State(), StateShiftIR)
	}
	if got := m.Clock(true); got != StateExit1IR {
		t.Fatalf("Clock(true) = %s, want %s", got, StateExit1IR)
	}
	if _, err := m.GoTo(StateRunTestIdle); err != nil {
		t.Fatalf("GoTo: %v", err)
	}
	if m.State() != StateRunTestIdle {
		t.Fatalf("State() = %s, want %s", m.State(), StateRunTestIdle)
	}
}
