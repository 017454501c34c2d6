// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package program

import (
	"github.com/ezrec/xbtm/machine"
	"github.com/ezrec/xbtm/table"
)

const (
	DEFAULT_BLANK  = table.SYMBOL_BLANK // Blank symbol.
	DEFAULT_LENGTH = 2                  // Tape length.
	DEFAULT_START  = table.StateId("s1")
	DEFAULT_STEPS  = 16 // Step budget.
)

// Rule is a single transition of a program.
type Rule struct {
	LineNo      int               // Source line, 0 if unknown.
	Key         table.Key         // Matched symbol and state.
	Instruction table.Instruction // Action taken.
}

// Program is a transition table and the parameters to run it with.
type Program struct {
	Name   string
	Blank  table.Symbol
	Length int
	Start  table.StateId
	Steps  int
	Rules  []Rule
}

// NewProgram returns an empty program with default run parameters.
func NewProgram() *Program {
	return &Program{
		Blank:  DEFAULT_BLANK,
		Length: DEFAULT_LENGTH,
		Start:  DEFAULT_START,
		Steps:  DEFAULT_STEPS,
	}
}

// Table builds the transition table from the program rules.
// Later rules replace earlier rules with the same key.
func (prog *Program) Table() (tbl *table.Table, err error) {
	states := make([]table.Key, 0, len(prog.Rules))
	instructions := make([]table.Instruction, 0, len(prog.Rules))

	for _, rule := range prog.Rules {
		states = append(states, rule.Key)
		instructions = append(instructions, rule.Instruction)
	}

	return table.Build(states, instructions)
}

// Machine returns a machine loaded with the program, reset to its start state.
func (prog *Program) Machine() (m *machine.Machine, err error) {
	tbl, err := prog.Table()
	if err != nil {
		return
	}

	m, err = machine.NewMachine(tbl, prog.Length)
	if err != nil {
		return
	}

	m.Blank = prog.Blank
	m.Reset(prog.Start)

	return
}

// Simulate runs the program to completion.
func (prog *Program) Simulate() (trace *machine.Trace, err error) {
	m, err := prog.Machine()
	if err != nil {
		return
	}

	trace = m.Trace(prog.Steps)

	return
}

// Example returns the two cell XB program. It marks the first cell with an
// X and then reverts it to B, forever.
func Example() *Program {
	prog := NewProgram()
	prog.Name = "xb"
	prog.Steps = 8
	prog.Rules = []Rule{
		{0, table.Key{Symbol: 'B', State: "s1"}, table.Instruction{Symbol: 'X', Direction: table.RIGHT, Next: "s2"}},
		{0, table.Key{Symbol: 'B', State: "s2"}, table.Instruction{Symbol: 'B', Direction: table.LEFT, Next: "s3"}},
		{0, table.Key{Symbol: 'X', State: "s3"}, table.Instruction{Symbol: 'B', Direction: table.RIGHT, Next: "s4"}},
		{0, table.Key{Symbol: 'B', State: "s4"}, table.Instruction{Symbol: 'B', Direction: table.LEFT, Next: "s1"}},
	}

	return prog
}
