// Package machine implements the execution engine of the xbtm tape machine.
//
// A Machine owns a fixed length tape, a head position and the current state.
// Each tick reads the symbol under the head, looks up the (symbol, state) key
// in a transition table, writes the instruction's symbol, moves the head and
// enters the next state. The machine halts when no transition matches, or
// when the caller's step budget is used up.
//
// Head movement off either end of the tape is corrected with an asymmetric
// rule: moving left of cell 0 lands on cell 1, and moving right of the last
// cell lands on cell 0.
package machine
