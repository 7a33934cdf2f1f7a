package engine

import (
	"context"

	"github.com/cockroachdb/errors"
)

// Result is one entry of the emitted sequence: a P(n) larger than every
// previously found P value.
type Result struct {
	Index uint64 // 1-based position in the emitted sequence
	Base  uint64
	Value uint64
}

// ScanConfig bounds a Scan run.
type ScanConfig struct {
	// StartBase is the first base examined. Values below 3 are raised to 3.
	StartBase uint64
	// Target stops the scan once a reported value reaches it.
	Target uint64
	// MaxBase defensively bounds the base loop. Zero means Target, which
	// is never reached in practice.
	MaxBase uint64
}

// BaseFunc observes every completed per-base search, whether or not it
// produced a new maximum. candidates is the number of palindromes offered
// to the binary detector for that base.
type BaseFunc func(base, pn, candidates uint64)

// ReportFunc receives each newly-maximal P(n). Returning an error aborts
// the scan.
type ReportFunc func(Result) error

// SearchBase returns P(base): the smallest integer exceeding 2*base that
// is palindromic both in the given base and in base 2.
func SearchBase(ctx context.Context, base uint64) (uint64, error) {
	pn, _, err := searchBase(ctx, base)
	return pn, err
}

func searchBase(ctx context.Context, base uint64) (pn, candidates uint64, err error) {
	det := NewBinaryPalindrome()

	// Seed one palindrome early: the length-2 generator's first addition
	// lands on 22 (base n), the smallest value exceeding 2n. 11 itself is
	// never offered to the detector.
	p := base + 1
	for length := uint64(2); ; length++ {
		if err := ctx.Err(); err != nil {
			return 0, candidates, err
		}
		g := NewGenerator(base, length)
		for {
			more, err := g.Step(&p)
			if err != nil {
				return 0, candidates, errors.Wrapf(err, "base %d length %d", base, length)
			}
			if !more {
				break
			}
			candidates++
			if det.Test(p) {
				return p, candidates, nil
			}
		}
	}
}

// Scan iterates bases upward from cfg.StartBase, reporting each P(n) that
// exceeds all previously found values, and returns once a reported value
// reaches cfg.Target. onBase and report may be nil.
func Scan(ctx context.Context, cfg ScanConfig, onBase BaseFunc, report ReportFunc) error {
	start := cfg.StartBase
	if start < 3 {
		start = 3
	}
	maxBase := cfg.MaxBase
	if maxBase == 0 {
		maxBase = cfg.Target
	}

	var maxSeen, index uint64
	for n := start; n <= maxBase; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		pn, cand, err := searchBase(ctx, n)
		if err != nil {
			return err
		}
		if onBase != nil {
			onBase(n, pn, cand)
		}
		if pn <= maxSeen {
			continue
		}
		maxSeen = pn
		index++
		if report != nil {
			if err := report(Result{Index: index, Base: n, Value: pn}); err != nil {
				return err
			}
		}
		if pn >= cfg.Target {
			return nil
		}
	}
	return nil
}
