// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package table

import (
	"cmp"
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Key selects a transition: the symbol under the head and the current state.
type Key struct {
	Symbol Symbol  // Symbol under the head.
	State  StateId // Current state.
}

func (key Key) String() string {
	return fmt.Sprintf("%v, %v", key.Symbol, key.State)
}

// Instruction is the action taken for a matched Key.
type Instruction struct {
	Symbol    Symbol    // Symbol to write.
	Direction Direction // Head movement after the write.
	Next      StateId   // State to enter.
}

func (inst Instruction) String() string {
	return fmt.Sprintf("%v, %v, %v", inst.Symbol, inst.Direction, inst.Next)
}

// Table is an immutable transition table.
type Table struct {
	entries map[Key]Instruction
}

// Build creates a table from parallel lists; the n-th key maps to the n-th
// instruction. A key given more than once keeps its last instruction.
func Build(states []Key, instructions []Instruction) (tbl *Table, err error) {
	if len(states) != len(instructions) {
		err = ErrLengthMismatch{States: len(states), Instructions: len(instructions)}
		return
	}

	tbl = &Table{
		entries: make(map[Key]Instruction, len(states)),
	}

	for n, key := range states {
		tbl.entries[key] = instructions[n]
	}

	return
}

// Get returns the instruction for a symbol and state.
func (tbl *Table) Get(symbol Symbol, state StateId) (inst Instruction, ok bool) {
	inst, ok = tbl.entries[Key{Symbol: symbol, State: state}]
	return
}

// Len returns the number of distinct keys.
func (tbl *Table) Len() int {
	return len(tbl.entries)
}

func compareKey(a, b Key) int {
	return cmp.Or(cmp.Compare(a.State, b.State), cmp.Compare(a.Symbol, b.Symbol))
}

// All returns the table entries ordered by state, then symbol.
func (tbl *Table) All() iter.Seq2[Key, Instruction] {
	keys := slices.SortedFunc(maps.Keys(tbl.entries), compareKey)

	return func(yield func(key Key, inst Instruction) bool) {
		for _, key := range keys {
			if !yield(key, tbl.entries[key]) {
				return
			}
		}
	}
}

// Terminals returns, sorted, the next states that have no outgoing
// transition for any symbol.
func (tbl *Table) Terminals() (states []StateId) {
	from := map[StateId]bool{}
	for key := range tbl.entries {
		from[key.State] = true
	}

	for _, inst := range tbl.entries {
		if !from[inst.Next] && !slices.Contains(states, inst.Next) {
			states = append(states, inst.Next)
		}
	}

	slices.Sort(states)

	return
}
