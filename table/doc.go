// Package table implements the transition table of the xbtm tape machine.
//
// A table maps a (symbol, state) key to the instruction to execute: the
// symbol to write, the direction to move the head, and the next state. A
// table is built once from two parallel lists and is read-only afterwards,
// so it may be shared between any number of concurrently running machines.
//
// A state that appears only as a next state has no outgoing transitions.
// Entering it halts the machine; this is the designed halting condition.
package table
