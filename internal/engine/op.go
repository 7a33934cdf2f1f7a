package engine

import (
	"math"

	"github.com/cockroachdb/errors"
)

// ErrOverflow is returned when an addition would push the palindrome
// register past the uint64 range. The search assumes every value of
// interest fits in 64 bits, so this is not recoverable; callers are
// expected to log it and stop.
var ErrOverflow = errors.New("palindrome register exceeds 64-bit range")

// Operation is one node of a palindrome stepping machine. Step advances
// the register by exactly one addition and reports whether more calls are
// needed to finish the current cycle: true means not yet complete, false
// means the cycle just finished and the operation has reset itself, ready
// to run another full cycle.
type Operation interface {
	Step(p *uint64) (bool, error)
}

// Increment adds a fixed constant to the register a fixed number of times
// per cycle.
type Increment struct {
	adder   uint64
	repeat  uint64
	counter uint64
}

// NewIncrement returns an Increment that completes after repeat additions
// of adder. repeat must be at least 1.
func NewIncrement(repeat, adder uint64) *Increment {
	return &Increment{adder: adder, repeat: repeat}
}

func (op *Increment) Step(p *uint64) (bool, error) {
	if *p > math.MaxUint64-op.adder {
		return false, errors.Wrapf(ErrOverflow, "adding %d to %d", op.adder, *p)
	}
	*p += op.adder
	op.counter++
	if op.counter == op.repeat {
		op.counter = 0
		return false, nil
	}
	return true, nil
}

// Paired composes a sub-operation S with a constant addend I as the
// sequence n:[S,I],S — n cycles of "run S to completion, then add I",
// followed by one trailing run of S with no addend. S itself usually
// takes several steps per cycle.
type Paired struct {
	sub     Operation
	addend  uint64
	repeat  uint64
	counter uint64
	onSub   bool
}

// NewPaired returns a Paired over sub. sub is owned by the returned
// operation for its lifetime. repeat must be at least 1.
func NewPaired(repeat uint64, sub Operation, addend uint64) *Paired {
	return &Paired{sub: sub, addend: addend, repeat: repeat, onSub: true}
}

func (op *Paired) Step(p *uint64) (bool, error) {
	if op.counter < op.repeat {
		if op.onSub {
			more, err := op.sub.Step(p)
			if err != nil {
				return false, err
			}
			if !more {
				op.onSub = false
			}
			return true, nil
		}
		if *p > math.MaxUint64-op.addend {
			return false, errors.Wrapf(ErrOverflow, "adding %d to %d", op.addend, *p)
		}
		*p += op.addend
		op.counter++
		op.onSub = true
		return true, nil
	}
	// Trailing S cycle; the completing step also resets this node.
	// onSub is already true here: the last addend step set it.
	more, err := op.sub.Step(p)
	if err != nil {
		return false, err
	}
	if !more {
		op.counter = 0
		return false, nil
	}
	return true, nil
}
