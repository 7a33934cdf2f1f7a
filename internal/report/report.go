// Package report renders scan results for the terminal: elapsed
// wall-clock time, comma-grouped decimals, and digit strings in
// arbitrary bases.
package report

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	humanize "github.com/dustin/go-humanize"
)

// Elapsed formats a duration as HH:MM:SS, hours unbounded.
func Elapsed(d time.Duration) string {
	s := int64(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s%3600)/60, s%60)
}

// Commas renders v with comma-grouped thousands. humanize.Comma takes an
// int64, which the register can exceed, so values go through the big-int
// variant.
func Commas(v uint64) string {
	return humanize.BigComma(new(big.Int).SetUint64(v))
}

// BaseDigits renders v's digits in the given base, most significant
// first. Digits above 9 are parenthesized so bases over 10 stay
// unambiguous: 255 in base 16 is "(15)(15)".
func BaseDigits(v, base uint64) string {
	if v == 0 {
		return "0"
	}
	var digits []uint64
	for v > 0 {
		digits = append(digits, v%base)
		v /= base
	}
	var b strings.Builder
	for i := len(digits) - 1; i >= 0; i-- {
		if base <= 10 {
			fmt.Fprintf(&b, "%d", digits[i])
		} else {
			fmt.Fprintf(&b, "(%d)", digits[i])
		}
	}
	return b.String()
}

// Line formats one sequence entry the way the scanner prints it:
// elapsed time, base, comma-grouped value, then the value's digits in
// that base and in base 2.
func Line(elapsed time.Duration, base, value uint64) string {
	return fmt.Sprintf("%s  %d: %s: %s %s",
		Elapsed(elapsed), base, Commas(value), BaseDigits(value, base), BaseDigits(value, 2))
}
