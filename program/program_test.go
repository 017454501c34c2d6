package program

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/xbtm/machine"
	"github.com/ezrec/xbtm/table"
)

func TestNewProgram(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram()
	assert.Equal(table.SYMBOL_BLANK, prog.Blank)
	assert.Equal(DEFAULT_LENGTH, prog.Length)
	assert.Equal(DEFAULT_START, prog.Start)
	assert.Equal(DEFAULT_STEPS, prog.Steps)
	assert.Empty(prog.Rules)
}

func TestExample(t *testing.T) {
	assert := assert.New(t)

	prog := Example()
	tbl, err := prog.Table()
	assert.NoError(err)
	assert.Equal(4, tbl.Len())
	assert.Empty(tbl.Terminals())

	trace, err := prog.Simulate()
	assert.NoError(err)
	assert.Equal(8, len(trace.Steps))
	assert.Equal(machine.HALT_STEP_BUDGET, trace.Halt)
	assert.Equal([]table.Symbol{'B', 'B'}, trace.Tape)
	assert.Equal(0, trace.Head)
	assert.Equal(table.StateId("s1"), trace.State)
}

func TestProgramMachine(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram()
	prog.Blank = '_'
	prog.Length = 3
	prog.Start = "go"
	prog.Rules = []Rule{
		{0, table.Key{Symbol: '_', State: "go"}, table.Instruction{Symbol: '1', Direction: table.RIGHT, Next: "go"}},
	}

	m, err := prog.Machine()
	assert.NoError(err)
	assert.Equal([]table.Symbol{'_', '_', '_'}, m.Tape)
	assert.Equal(table.StateId("go"), m.State)

	trace, err := prog.Simulate()
	assert.NoError(err)
	assert.Equal(machine.HALT_NO_TRANSITION, trace.Halt)
	assert.Equal([]table.Symbol{'1', '1', '1'}, trace.Tape)
	assert.Equal(0, trace.Head)
	assert.Equal(3, len(trace.Steps))

	prog.Length = 1
	_, err = prog.Simulate()
	assert.True(errors.Is(err, machine.ErrTapeLength(1)))
}
