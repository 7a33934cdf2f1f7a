package report

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestElapsed(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{59 * time.Second, "00:00:59"},
		{61 * time.Second, "00:01:01"},
		{3661 * time.Second, "01:01:01"},
		{100*time.Hour + 30*time.Minute, "100:30:00"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Elapsed(c.d))
	}
}

func TestCommas(t *testing.T) {
	cases := []struct {
		v    uint64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{6643, "6,643"},
		{1_000_000_000_000_000, "1,000,000,000,000,000"},
		{math.MaxUint64, "18,446,744,073,709,551,615"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Commas(c.v))
	}
}

func TestBaseDigits(t *testing.T) {
	cases := []struct {
		v, base uint64
		want    string
	}{
		{0, 10, "0"},
		{15, 4, "33"},
		{15, 2, "1111"},
		{6643, 3, "100010001"},
		{6643, 2, "1100111110011"},
		{255, 16, "(15)(15)"},
		{131, 11, "(1)(0)(10)"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, BaseDigits(c.v, c.base), "%d base %d", c.v, c.base)
	}
}

func TestLine(t *testing.T) {
	got := Line(3*time.Second, 3, 6643)
	require.Equal(t, "00:00:03  3: 6,643: 100010001 1100111110011", got)
}
