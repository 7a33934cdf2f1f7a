// Package engine finds, for each integer base n > 2, the smallest integer
// P(n) exceeding 2n that is palindromic both in base n and in base 2.
//
// Rather than converting candidates to digit arrays, the engine generates
// base-n palindromes directly through strategic sequences of additions to
// a single uint64 register. A small algebra of steppable operations
// (Increment, Paired) composes into a per-digit-length tree that advances
// the register one palindrome at a time; a stateful detector exploits the
// monotonically increasing candidates to test base-2 palindromicity
// without rescanning all bits.
//
// Everything here is single-threaded; per-base searches are independent
// and run sequentially.
package engine
