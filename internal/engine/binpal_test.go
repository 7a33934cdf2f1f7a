package engine

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func isBinaryPalindromeRef(v uint64) bool {
	s := strconv.FormatUint(v, 2)
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if s[i] != s[j] {
			return false
		}
	}
	return true
}

func TestBinaryPalindromeMatchesReference(t *testing.T) {
	det := NewBinaryPalindrome()
	// Ascending odd probes across many bit widths.
	for v := uint64(1); v < 1<<15; v += 2 {
		require.Equal(t, isBinaryPalindromeRef(v), det.Test(v), "value %d", v)
	}
}

func TestBinaryPalindromeRejectsEven(t *testing.T) {
	det := NewBinaryPalindrome()
	for v := uint64(2); v < 1<<12; v += 2 {
		require.False(t, det.Test(v), "value %d", v)
	}
}

func TestBinaryPalindromeWideJump(t *testing.T) {
	// The tracked msb must catch up across a large gap in one call.
	det := NewBinaryPalindrome()
	require.True(t, det.Test(5))                        // 101
	require.False(t, det.Test(uint64(1)<<40|3))         // 1 0..0 11
	require.True(t, det.Test(uint64(1)<<40|1<<20|1))    // 1 0..0 1 0..0 1
	require.True(t, det.Test(uint64(1)<<62|1<<31|1<<0)) // 63-bit palindrome
}
