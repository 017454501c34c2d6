package machine

// Halt is the reason a machine stopped.
type Halt int

const (
	HALT_NONE          = Halt(0) // running
	HALT_NO_TRANSITION = Halt(1) // no transition
	HALT_STEP_BUDGET   = Halt(2) // step budget exceeded
)

func (h Halt) String() string {
	switch h {
	case HALT_NONE:
		return "running"
	case HALT_NO_TRANSITION:
		return "no transition"
	case HALT_STEP_BUDGET:
		return "step budget exceeded"
	}

	return f("halt(%d)", int(h))
}

// Halted is true for every reason other than HALT_NONE.
func (h Halt) Halted() bool {
	return h != HALT_NONE
}
