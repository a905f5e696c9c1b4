// Package tap models the IEEE 1149.1 TAP controller so adapters can compute
// the TMS patterns that move it between states.
package tap

import "fmt"

// State is one of the 16 TAP controller states.
type State uint8

const (
	StateTestLogicReset State = iota
	StateRunTestIdle
	StateSelectDRScan
	StateCaptureDR
	StateShiftDR
	StateExit1DR
	StatePauseDR
	StateExit2DR
	StateUpdateDR
	StateSelectIRScan
	StateCaptureIR
	StateShiftIR
	StateExit1IR
	StatePauseIR
	StateExit2IR
	StateUpdateIR

	numStates
)

var stateNames = [numStates]string{
	"TestLogicReset", "RunTestIdle",
	"SelectDRScan", "CaptureDR", "ShiftDR", "Exit1DR", "PauseDR", "Exit2DR", "UpdateDR",
	"SelectIRScan", "CaptureIR", "ShiftIR", "Exit1IR", "PauseIR", "Exit2IR", "UpdateIR",
}

func (s State) String() string {
	if s < numStates {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", s)
}

// transitions[s] holds the next state for TMS=0 and TMS=1.
var transitions = [numStates][2]State{
	StateTestLogicReset: {StateRunTestIdle, StateTestLogicReset},
	StateRunTestIdle:    {StateRunTestIdle, StateSelectDRScan},
	StateSelectDRScan:   {StateCaptureDR, StateSelectIRScan},
	StateCaptureDR:      {StateShiftDR, StateExit1DR},
	StateShiftDR:        {StateShiftDR, StateExit1DR},
	StateExit1DR:        {StatePauseDR, StateUpdateDR},
	StatePauseDR:        {StatePauseDR, StateExit2DR},
	StateExit2DR:        {StateShiftDR, StateUpdateDR},
	StateUpdateDR:       {StateRunTestIdle, StateSelectDRScan},
	StateSelectIRScan:   {StateCaptureIR, StateTestLogicReset},
	StateCaptureIR:      {StateShiftIR, StateExit1IR},
	StateShiftIR:        {StateShiftIR, StateExit1IR},
	StateExit1IR:        {StatePauseIR, StateUpdateIR},
	StatePauseIR:        {StatePauseIR, StateExit2IR},
	StateExit2IR:        {StateShiftIR, StateUpdateIR},
	StateUpdateIR:       {StateRunTestIdle, StateSelectDRScan},
}

// NextState returns the state after one TCK with the given TMS level. It
// panics on an out-of-range state.
func NextState(current State, tms bool) State {
	if current >= numStates {
		panic(fmt.Sprintf("tap: unhandled state %d", current))
	}
	if tms {
		return transitions[current][1]
	}
	return transitions[current][0]
}

// Path returns the shortest TMS pattern that moves the controller from one
// state to another. It is empty when from == to.
func Path(from, to State) ([]bool, error) {
	if from >= numStates || to >= numStates {
		return nil, fmt.Errorf("tap: invalid path %d -> %d", from, to)
	}
	if from == to {
		return nil, nil
	}

	// Breadth-first search; prev records how each state was first reached.
	type edge struct {
		from State
		tms  bool
	}
	var prev [numStates]*edge
	queue := []State{from}
	for len(queue) > 0 && prev[to] == nil {
		cur := queue[0]
		queue = queue[1:]
		for _, tms := range []bool{false, true} {
			n := NextState(cur, tms)
			if n == from || prev[n] != nil {
				continue
			}
			prev[n] = &edge{from: cur, tms: tms}
			queue = append(queue, n)
		}
	}

	var path []bool
	for s := to; s != from; s = prev[s].from {
		path = append(path, prev[s].tms)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// StateMachine tracks the controller state on the host side. It performs no
// I/O; callers forward the returned TMS patterns to an adapter.
type StateMachine struct {
	state State
}

// NewStateMachine returns a machine in Test-Logic-Reset.
func NewStateMachine() *StateMachine {
	return &StateMachine{state: StateTestLogicReset}
}

// State reports the tracked state.
func (m *StateMachine) State() State {
	return m.state
}

// Clock advances one TCK and returns the new state.
func (m *StateMachine) Clock(tms bool) State {
	m.state = NextState(m.state, tms)
	return m.state
}

// Reset returns five TMS=1 clocks, which reach Test-Logic-Reset from any
// state, and records the result.
func (m *StateMachine) Reset() []bool {
	m.state = StateTestLogicReset
	return []bool{true, true, true, true, true}
}

// GoTo returns the TMS pattern to reach target and records the move.
func (m *StateMachine) GoTo(target State) ([]bool, error) {
	path, err := Path(m.state, target)
	if err != nil {
		return nil, err
	}
	m.state = target
	return path, nil
}
