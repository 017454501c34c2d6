package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/xbtm/table"
)

func TestSimulateXB(t *testing.T) {
	assert := assert.New(t)

	trace, err := Simulate(xbTable(t), 2, "s1", 3)
	assert.NoError(err)

	assert.Equal(HALT_STEP_BUDGET, trace.Halt)
	assert.Equal(3, len(trace.Steps))
	assert.Equal([]table.Symbol{B, B}, trace.Tape)
	assert.Equal(1, trace.Head)
	assert.Equal(table.StateId("s4"), trace.State)

	keys := []table.Key{}
	for _, step := range trace.Steps {
		keys = append(keys, step.Key)
	}
	assert.Equal([]table.Key{{Symbol: B, State: "s1"}, {Symbol: B, State: "s2"}, {Symbol: X, State: "s3"}}, keys)
}

func TestSimulateFullCycle(t *testing.T) {
	assert := assert.New(t)

	trace, err := Simulate(xbTable(t), 2, "s1", 4)
	assert.NoError(err)

	assert.Equal(HALT_STEP_BUDGET, trace.Halt)
	assert.Equal([]table.Symbol{B, B}, trace.Tape)
	assert.Equal(0, trace.Head)
	assert.Equal(table.StateId("s1"), trace.State)

	tapes := [][]table.Symbol{}
	for _, step := range trace.Steps {
		tapes = append(tapes, step.Tape)
	}
	assert.Equal([][]table.Symbol{{B, B}, {X, B}, {X, B}, {B, B}}, tapes)
}

func TestSimulateNoTransition(t *testing.T) {
	assert := assert.New(t)

	trace, err := Simulate(xbTable(t), 2, "s9", 10)
	assert.NoError(err)
	assert.Empty(trace.Steps)
	assert.Equal(HALT_NO_TRANSITION, trace.Halt)
	assert.Equal([]table.Symbol{B, B}, trace.Tape)
	assert.Equal(table.StateId("s9"), trace.State)
}

func TestSimulateErrors(t *testing.T) {
	assert := assert.New(t)

	trace, err := Simulate(xbTable(t), 1, "s1", 10)
	assert.Nil(trace)
	assert.Equal(ErrTapeLength(1), err)

	_, err = Simulate(nil, 2, "s1", 10)
	assert.Equal(ErrNoTable, err)
}

func TestSimulateDeterministic(t *testing.T) {
	assert := assert.New(t)

	tbl := xbTable(t)

	a, err := Simulate(tbl, 5, "s1", 50)
	assert.NoError(err)
	b, err := Simulate(tbl, 5, "s1", 50)
	assert.NoError(err)
	assert.Equal(a, b)
}

func TestTraceSnapshots(t *testing.T) {
	assert := assert.New(t)

	m, err := NewMachine(xbTable(t), 2)
	assert.NoError(err)
	m.Reset("s1")

	trace := m.Trace(2)
	trace.Steps[0].Tape[0] = 'Q'
	trace.Tape[1] = 'Q'

	assert.Equal([]table.Symbol{X, B}, trace.Steps[1].Tape)
	assert.Equal([]table.Symbol{X, B}, m.Tape)
}
