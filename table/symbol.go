// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package table

import (
	"strings"
	"unicode/utf8"
)

// Symbol is a single tape symbol.
type Symbol rune

const (
	SYMBOL_BLANK = Symbol('B') // Blank cell.
	SYMBOL_X     = Symbol('X') // Marked cell.
)

func (sym Symbol) String() string {
	return string(sym)
}

// ParseSymbol parses a single character symbol.
func ParseSymbol(text string) (sym Symbol, err error) {
	text = strings.TrimSpace(text)
	r, size := utf8.DecodeRuneInString(text)
	if size == 0 || size != len(text) || r == utf8.RuneError {
		err = ErrSymbol(text)
		return
	}

	sym = Symbol(r)
	return
}

// StateId is the label of a machine state.
type StateId string

func (id StateId) String() string {
	return string(id)
}

// ParseState parses a state label. Labels are single words.
func ParseState(text string) (id StateId, err error) {
	text = strings.TrimSpace(text)
	if len(text) == 0 || strings.ContainsAny(text, " \t,;") {
		err = ErrState(text)
		return
	}

	id = StateId(text)
	return
}

// Direction is the head movement after a write.
type Direction int

const (
	LEFT  = Direction(-1) // L
	RIGHT = Direction(1)  // R
)

func (dir Direction) String() string {
	switch dir {
	case LEFT:
		return "L"
	case RIGHT:
		return "R"
	}

	return "?"
}

// ParseDirection parses 'L' or 'R', in either case.
func ParseDirection(text string) (dir Direction, err error) {
	switch strings.ToUpper(strings.TrimSpace(text)) {
	case "L":
		dir = LEFT
	case "R":
		dir = RIGHT
	default:
		err = ErrDirection(text)
	}

	return
}
