// Package program loads xbtm machine programs.
//
// A program is a list of transition rules plus the parameters of a run: the
// blank symbol, the tape length, the start state and the step budget. Programs
// are written either as assembler text or as YAML.
//
// Assembler text has one rule or directive per line. Text after ';' is a
// comment. Rules read as
//
//	B, s1 -> X, R, s2
//
// meaning "with B under the head in state s1, write X, move right and enter
// s2". Directives are
//
//	.name  TEXT...     ; Program name.
//	.equ   NAME VALUE  ; Replace the word NAME with VALUE from here on.
//	.blank SYMBOL      ; Symbol a fresh tape is filled with.
//	.length N          ; Tape length; also defines LENGTH.
//	.start STATE       ; Initial state.
//	.steps N           ; Step budget; also defines STEPS.
//
// Anywhere on a line, $(...) is evaluated as a Starlark expression over the
// integer equates and replaced by its integer value.
package program
