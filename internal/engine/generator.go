package engine

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Generator enumerates every base-n palindrome with exactly `length`
// digits, in increasing order, by stepping an operation tree over the
// register. Its final step adds 2, rolling the register into the smallest
// (length+1)-digit palindrome (1 0...0 1 in base n); after that the
// generator is spent and the caller builds a fresh one for the next
// length.
//
// The tree is derived from how a palindrome's mirrored kernel rolls over.
// With m = n-1 (largest digit) and q = n-2, write M(x) for "add the place
// value x" and I(x) likewise. For length 2k+1 or 2k+2:
//
//	S0 = m : M("1" or "11" shifted k digits)
//	Si = m : [S(i-1), I("11" shifted k-i digits)], S(i-1)   for i < k
//	root = q : [S(k-1), I(last)], S(k-1)
//
// Length 2 is irregular: the register is seeded one palindrome early (at
// 11, which never appears as a candidate), so the whole run is q plain
// additions of 11, stepping 22 up to mm.
type Generator struct {
	root Operation
	done bool
}

// NewGenerator builds the operation tree for the given base (>2) and
// digit length (>=2).
func NewGenerator(base, length uint64) *Generator {
	m := base - 1
	q := m - 1

	if length == 2 {
		return &Generator{root: NewIncrement(q, base+1)}
	}

	k := (length+1)/2 - 1
	odd := length%2 == 1

	// mstep is the place value of the kernel's innermost digit(s); istep
	// carries into the next kernel digit outward.
	mstep := base
	if !odd {
		mstep = base * (base + 1)
	}
	istep := base + 1
	for i := uint64(0); i+1 < k; i++ {
		mstep *= base
		istep *= base
	}

	var s Operation = NewIncrement(m, mstep)
	for i := uint64(1); i < k; i++ {
		s = NewPaired(m, s, istep)
		istep /= base
	}
	return &Generator{root: NewPaired(q, s, istep)}
}

// Step advances the register to the next palindrome. It returns true
// while the register holds a candidate of the current length; the call
// that returns false has just performed the +2 roll-over into the next
// length and the new value is not a candidate of this generator.
func (g *Generator) Step(p *uint64) (bool, error) {
	if g.done {
		g.done = false
		if *p > math.MaxUint64-2 {
			return false, errors.Wrap(ErrOverflow, "length roll-over")
		}
		*p += 2
		return false, nil
	}
	more, err := g.root.Step(p)
	if err != nil {
		return false, err
	}
	// Delay completion by one step so the last palindrome of this length
	// is still reported as a candidate before the roll-over.
	g.done = !more
	return true, nil
}
