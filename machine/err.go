package machine

import (
	"errors"

	"github.com/ezrec/xbtm/translate"
)

var f = translate.From

var (
	ErrNoTable = errors.New(f("no transition table"))
)

// ErrTapeLength is returned for tapes too short to hold the head.
type ErrTapeLength int

func (err ErrTapeLength) Error() string {
	return f("tape length %d is less than %d", int(err), TAPE_MIN)
}
