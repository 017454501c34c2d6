// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"iter"
	"log"
	"slices"
	"strings"

	"github.com/ezrec/xbtm/table"
)

const (
	TAPE_MIN = 2 // Shortest tape where the left wrap lands on a cell.
)

// Step is the record of one executed transition.
type Step struct {
	Index       int               // Step number, starting at 1.
	Tape        []table.Symbol    // Tape before the write.
	Head        int               // Head before the move.
	Key         table.Key         // Matched key.
	Instruction table.Instruction // Applied instruction.
}

// Machine is the simulation context for a single run over one tape.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Table *table.Table // Transition table; read only.
	Blank table.Symbol // Symbol the tape is filled with on Reset.

	Tape  []table.Symbol // Tape cells.
	Head  int            // Head position, 0 <= Head < len(Tape).
	State table.StateId  // Current state.

	Ticks int  // Steps executed since Reset.
	Halt  Halt // Halt reason, HALT_NONE while running.
}

// NewMachine creates a machine with a blank tape of the given length.
// The machine must be Reset to an initial state before running.
func NewMachine(tbl *table.Table, length int) (m *Machine, err error) {
	if tbl == nil {
		err = ErrNoTable
		return
	}

	if length < TAPE_MIN {
		err = ErrTapeLength(length)
		return
	}

	m = &Machine{
		Table: tbl,
		Blank: table.SYMBOL_BLANK,
		Tape:  make([]table.Symbol, length),
	}

	return
}

// Reset blanks the tape, homes the head and enters the initial state.
func (m *Machine) Reset(state table.StateId) {
	for n := range m.Tape {
		m.Tape[n] = m.Blank
	}

	m.Head = 0
	m.State = state
	m.Ticks = 0
	m.Halt = HALT_NONE

	if m.Verbose {
		log.Printf("machine: reset %v, %d cells", state, len(m.Tape))
	}
}

// Next returns the transition the next tick would apply.
func (m *Machine) Next() (key table.Key, inst table.Instruction, ok bool) {
	key = table.Key{Symbol: m.Tape[m.Head], State: m.State}
	inst, ok = m.Table.Get(key.Symbol, key.State)
	return
}

// wrap corrects a head position that moved off the tape.
func (m *Machine) wrap(head int) int {
	if head < 0 {
		return 1
	}

	if head > len(m.Tape)-1 {
		return 0
	}

	return head
}

// Tick performs a single step of the machine.
// When no transition matches, the machine halts and done is set.
func (m *Machine) Tick() (step Step, done bool) {
	if m.Halt.Halted() {
		done = true
		return
	}

	key, inst, ok := m.Next()
	if !ok {
		m.Halt = HALT_NO_TRANSITION
		if m.Verbose {
			log.Printf("machine: %v: halt, %v", key, m.Halt)
		}
		done = true
		return
	}

	step = Step{
		Index:       m.Ticks + 1,
		Tape:        slices.Clone(m.Tape),
		Head:        m.Head,
		Key:         key,
		Instruction: inst,
	}

	m.Tape[m.Head] = inst.Symbol
	m.Head = m.wrap(m.Head + int(inst.Direction))
	m.State = inst.Next
	m.Ticks++

	if m.Verbose {
		log.Printf("machine: %d: %v -> %v", step.Index, key, inst)
	}

	return
}

// Run returns an iterator over the steps of the machine. At most maxSteps
// steps are taken; when the budget is spent while a transition still
// matches, the machine halts with HALT_STEP_BUDGET.
//
// Halt is only set once the iterator is drained.
func (m *Machine) Run(maxSteps int) iter.Seq[Step] {
	return func(yield func(step Step) bool) {
		for steps := 0; ; steps++ {
			if m.Halt.Halted() {
				return
			}

			_, _, ok := m.Next()
			if ok && steps >= maxSteps {
				m.Halt = HALT_STEP_BUDGET
				if m.Verbose {
					log.Printf("machine: halt, %v after %d steps", m.Halt, steps)
				}
				return
			}

			step, done := m.Tick()
			if done {
				return
			}

			if !yield(step) {
				return
			}
		}
	}
}

// String returns the machine state, with the head cell in brackets.
func (m *Machine) String() string {
	cells := make([]string, len(m.Tape))
	for n, sym := range m.Tape {
		if n == m.Head {
			cells[n] = "[" + sym.String() + "]"
		} else {
			cells[n] = " " + sym.String() + " "
		}
	}

	return f("%v: %v (%v)", m.State, strings.Join(cells, ""), m.Halt)
}
