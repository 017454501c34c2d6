// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package report renders machine traces as text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/xbtm/machine"
	"github.com/ezrec/xbtm/table"
	"github.com/ezrec/xbtm/translate"
)

var f = translate.From

// Tape formats a tape as '[B, X]'.
func Tape(tape []table.Symbol) string {
	cells := make([]string, len(tape))
	for n, sym := range tape {
		cells[n] = sym.String()
	}

	return "[" + strings.Join(cells, ", ") + "]"
}

// Step formats the transition of a step as 'B, s1 -> X, R, s2'.
func Step(step machine.Step) string {
	return fmt.Sprintf("%v -> %v", step.Key, step.Instruction)
}

// Summary formats the outcome of a trace.
func Summary(trace *machine.Trace) string {
	return f("halt: %v after %d steps, state %v, head %d, tape %v",
		trace.Halt, len(trace.Steps), trace.State, trace.Head, Tape(trace.Tape))
}

// Text writes every step of a trace, each as the tape before the write
// followed by the applied transition, then the summary line.
func Text(output io.Writer, trace *machine.Trace) (err error) {
	for _, step := range trace.Steps {
		_, err = fmt.Fprintf(output, "%v\n%v\n", Tape(step.Tape), Step(step))
		if err != nil {
			return
		}
	}

	_, err = fmt.Fprintln(output, Summary(trace))
	return
}

// Table writes a transition table, one rule per line, in the order of
// table.All.
func Table(output io.Writer, tbl *table.Table) (err error) {
	for key, inst := range tbl.All() {
		_, err = fmt.Fprintf(output, "%v -> %v\n", key, inst)
		if err != nil {
			return
		}
	}

	for _, state := range tbl.Terminals() {
		_, err = fmt.Fprintln(output, f("; %v halts", state))
		if err != nil {
			return
		}
	}

	return
}
