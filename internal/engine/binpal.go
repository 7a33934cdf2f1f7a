package engine

// BinaryPalindrome tests whether values are palindromic in base 2. It is
// stateful: the tracked most-significant bit only ever grows, so it gives
// correct answers only when fed a non-decreasing sequence of inputs. That
// is exactly the access pattern of a palindrome search, and it saves
// rescanning all 64 bit positions for the top bit on every call.
type BinaryPalindrome struct {
	msb  uint64 // power of two marking the highest set bit seen
	mask uint64 // every bit strictly above msb
}

// NewBinaryPalindrome returns a detector primed for inputs >= 1.
func NewBinaryPalindrome() *BinaryPalindrome {
	return &BinaryPalindrome{msb: 1, mask: ^uint64(1)}
}

// Test reports whether p's binary representation reads the same in both
// directions. Leading zeros are not allowed, so the top bit must mirror
// the bottom bit; an even p can never qualify.
func (d *BinaryPalindrome) Test(p uint64) bool {
	if p%2 == 0 {
		return false
	}

	// Grow msb forward until no bit of p lies above it.
	for p&d.mask != 0 {
		d.mask <<= 1
		d.msb <<= 1
	}

	// Compare bit pairs working inward from the two ends.
	a, b := d.msb, uint64(1)
	for a > b {
		pair := a | b
		got := p & pair
		if got != 0 && got != pair {
			return false
		}
		a >>= 1
		b <<= 1
	}
	return true
}
