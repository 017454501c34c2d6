package table

import (
	"errors"

	"github.com/ezrec/xbtm/translate"
)

var f = translate.From

var (
	// ErrConstruction is matched by every table construction failure.
	ErrConstruction = errors.New(f("table construction"))
)

// ErrLengthMismatch is returned by Build when the state and instruction
// lists differ in length.
type ErrLengthMismatch struct {
	States       int
	Instructions int
}

func (err ErrLengthMismatch) Error() string {
	return f("%v: %d states, %d instructions", ErrConstruction, err.States, err.Instructions)
}

func (err ErrLengthMismatch) Is(target error) bool {
	if target == ErrConstruction {
		return true
	}
	_, ok := target.(ErrLengthMismatch)
	return ok
}

type ErrSymbol string

func (err ErrSymbol) Error() string {
	return f("'%v' is not a symbol", string(err))
}

type ErrState string

func (err ErrState) Error() string {
	return f("'%v' is not a state", string(err))
}

type ErrDirection string

func (err ErrDirection) Error() string {
	return f("'%v' is not a direction", string(err))
}
