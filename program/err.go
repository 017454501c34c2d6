package program

import (
	"errors"

	"github.com/ezrec/xbtm/translate"
)

var f = translate.From

var (
	ErrEquateSyntax     = errors.New(f(".equ syntax"))
	ErrEquateDuplicate  = errors.New(f(".equ duplicated"))
	ErrDirectiveSyntax  = errors.New(f("directive syntax"))
	ErrDirectiveUnknown = errors.New(f("directive unknown"))
	ErrRuleSyntax       = errors.New(f("rule syntax, expected 'SYMBOL, STATE -> SYMBOL, L|R, STATE'"))
)

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrRule locates an invalid rule in a YAML program.
type ErrRule struct {
	Index int
	Err   error
}

func (err ErrRule) Error() string {
	return f("rule %d %v", err.Index, err.Err)
}

func (err ErrRule) Unwrap() error {
	return err.Err
}
