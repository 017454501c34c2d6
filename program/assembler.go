// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package program

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/xbtm/table"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":         "0",
	"DEFAULT_LENGTH": fmt.Sprintf("%d", DEFAULT_LENGTH),
	"DEFAULT_STEPS":  fmt.Sprintf("%d", DEFAULT_STEPS),
}

var (
	reComment = regexp.MustCompile(`;.*$`)
	reParen   = regexp.MustCompile(`\$\([^\$]*\)`)
)

// Assembler parses program text.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	predefine map[string]string // Predefines
	Equate    map[string]string // Map of equates.
}

// Predefine defines an equate visible to every subsequent Parse.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// equate replaces a word by its equate, if any.
func (asm *Assembler) equate(word string) string {
	word = strings.TrimSpace(word)
	value, ok := asm.Equate[word]
	if ok {
		return value
	}

	return word
}

// number parses a directive argument as a non-negative integer.
func (asm *Assembler) number(word string) (value int, err error) {
	value, err = strconv.Atoi(asm.equate(word))
	if err != nil || value < 0 {
		err = ErrParseNumber(word)
	}

	return
}

// parenEval does $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "program"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, _err := strconv.ParseInt(str, 0, 64)
		if _err != nil {
			// Symbols and state names are not integers.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	return
}

// parseRule parses 'SYMBOL, STATE -> SYMBOL, DIR, STATE'.
func (asm *Assembler) parseRule(line string) (rule Rule, err error) {
	lhs, rhs, ok := strings.Cut(line, "->")
	if !ok {
		err = ErrRuleSyntax
		return
	}

	from := strings.Split(lhs, ",")
	to := strings.Split(rhs, ",")
	if len(from) != 2 || len(to) != 3 {
		err = ErrRuleSyntax
		return
	}

	rule.Key.Symbol, err = table.ParseSymbol(asm.equate(from[0]))
	if err != nil {
		return
	}
	rule.Key.State, err = table.ParseState(asm.equate(from[1]))
	if err != nil {
		return
	}
	rule.Instruction.Symbol, err = table.ParseSymbol(asm.equate(to[0]))
	if err != nil {
		return
	}
	rule.Instruction.Direction, err = table.ParseDirection(asm.equate(to[1]))
	if err != nil {
		return
	}
	rule.Instruction.Next, err = table.ParseState(asm.equate(to[2]))
	if err != nil {
		return
	}

	return
}

// parseDirective applies a '.' directive to the program.
func (asm *Assembler) parseDirective(prog *Program, words []string) (err error) {
	if words[0] == ".name" {
		prog.Name = strings.Join(words[1:], " ")
		return
	}

	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		return
	}

	if len(words) != 2 {
		err = ErrDirectiveSyntax
		return
	}

	arg := words[1]
	switch words[0] {
	case ".blank":
		prog.Blank, err = table.ParseSymbol(asm.equate(arg))
	case ".start":
		prog.Start, err = table.ParseState(asm.equate(arg))
	case ".length":
		prog.Length, err = asm.number(arg)
		asm.Equate["LENGTH"] = fmt.Sprintf("%d", prog.Length)
	case ".steps":
		prog.Steps, err = asm.number(arg)
		asm.Equate["STEPS"] = fmt.Sprintf("%d", prog.Steps)
	default:
		err = ErrDirectiveUnknown
	}

	return
}

// parseLine parses a single line into the program.
func (asm *Assembler) parseLine(prog *Program, line string, lineno int) (err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%d", lineno)

	// Do $() evaluations
	line = reParen.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		return
	}

	if strings.HasPrefix(line, ".") {
		err = asm.parseDirective(prog, strings.Fields(line))
		return
	}

	rule, err := asm.parseRule(line)
	if err != nil {
		return
	}

	rule.LineNo = lineno
	prog.Rules = append(prog.Rules, rule)

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			prog = nil
		}
	}()

	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	prog = NewProgram()

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line = strings.TrimSpace(reComment.ReplaceAllString(text, ""))
		if len(line) == 0 {
			continue
		}

		err = asm.parseLine(prog, line, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if asm.Verbose {
		log.Printf("program: %v, %d rules", prog.Name, len(prog.Rules))
	}

	return
}
