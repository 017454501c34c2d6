package machine

import (
	"slices"

	"github.com/ezrec/xbtm/table"
)

// Trace is the complete record of a simulation run.
type Trace struct {
	Steps []Step // Executed steps, in order.

	Halt  Halt           // Reason the run stopped.
	Tape  []table.Symbol // Final tape.
	Head  int            // Final head position.
	State table.StateId  // Final state.
}

// Trace runs the machine until it halts, collecting every step.
func (m *Machine) Trace(maxSteps int) (trace *Trace) {
	trace = &Trace{}

	for step := range m.Run(maxSteps) {
		trace.Steps = append(trace.Steps, step)
	}

	trace.Halt = m.Halt
	trace.Tape = slices.Clone(m.Tape)
	trace.Head = m.Head
	trace.State = m.State

	return
}

// Simulate runs a blank tape of the given length from the initial state,
// for at most maxSteps steps.
func Simulate(tbl *table.Table, length int, initial table.StateId, maxSteps int) (trace *Trace, err error) {
	m, err := NewMachine(tbl, length)
	if err != nil {
		return
	}

	m.Reset(initial)
	trace = m.Trace(maxSteps)

	return
}
