package stability

import (
	"fmt"
	"math"
	"sort"
)

type tauKind int

const (
	tauOctave tauKind = iota
	tauAll
	tauDecade
	tauHalfDecade
	tauHalfOctave
	tauQuarterOctave
	tauBase
	tauList
)

// TauSpec selects the set of averaging intervals a deviation sweep
// evaluates. The zero value is TauOctave.
type TauSpec struct {
	kind tauKind
	base float64
	list []float64
}

// TauAll evaluates every integer cluster size 1..n-2.
func TauAll() TauSpec { return TauSpec{kind: tauAll} }

// TauDecade evaluates powers of 10.
func TauDecade() TauSpec { return TauSpec{kind: tauDecade} }

// TauHalfDecade evaluates powers of 5.
func TauHalfDecade() TauSpec { return TauSpec{kind: tauHalfDecade} }

// TauOctave evaluates powers of 2. This is the default.
func TauOctave() TauSpec { return TauSpec{kind: tauOctave} }

// TauHalfOctave evaluates powers of 1.5, floored to integers.
func TauHalfOctave() TauSpec { return TauSpec{kind: tauHalfOctave} }

// TauQuarterOctave evaluates powers of 1.25, floored to integers.
func TauQuarterOctave() TauSpec { return TauSpec{kind: tauQuarterOctave} }

// TauBase evaluates powers of a custom log base b, floored to integers.
// The base must be greater than 1.0.
func TauBase(b float64) TauSpec { return TauSpec{kind: tauBase, base: b} }

// TauList evaluates an explicit list of averaging intervals expressed in
// seconds. Intervals are converted to cluster sizes at the series rate;
// duplicates and intervals shorter than one sample are discarded.
func TauList(seconds []float64) TauSpec { return TauSpec{kind: tauList, list: seconds} }

// clusters generates the ordered, duplicate-free cluster sizes for a
// series of n phase samples. Power-law generators are over-inclusive near
// n on purpose; the sweep's early-exhaustion rule trims unsupported sizes
// at evaluation time.
func (t TauSpec) clusters(n int, rate float64) ([]int, error) {
	switch t.kind {
	case tauAll:
		var ms []int
		for m := 1; m <= n-2; m++ {
			ms = append(ms, m)
		}
		return ms, nil
	case tauDecade:
		return intPowers(10, n), nil
	case tauHalfDecade:
		return intPowers(5, n), nil
	case tauOctave:
		return intPowers(2, n), nil
	case tauHalfOctave:
		return flooredPowers(1.5, n), nil
	case tauQuarterOctave:
		return flooredPowers(1.25, n), nil
	case tauBase:
		if t.base <= 1.0 {
			return nil, fmt.Errorf("%w: tau base must be greater than 1.0, got %g", ErrInvalidArgument, t.base)
		}
		return flooredPowers(t.base, n), nil
	case tauList:
		ms := make([]int, 0, len(t.list))
		for _, sec := range t.list {
			m := int(math.Floor(sec * rate))
			if m >= 1 {
				ms = append(ms, m)
			}
		}
		sort.Ints(ms)
		return dedup(ms), nil
	}
	return nil, fmt.Errorf("%w: unknown tau specification", ErrInvalidArgument)
}

// intPowers returns base^k for k = 0,1,... while base^k <= n. Repeated
// multiplication keeps the boundary exact where a float log would not.
func intPowers(base, n int) []int {
	var ms []int
	for p := 1; p <= n; p *= base {
		ms = append(ms, p)
	}
	return ms
}

// flooredPowers returns floor(base^k) for k = 0,1,... while the floored
// value stays within n. Successive powers of a fractional base can floor
// to the same integer at small k, so consecutive duplicates are dropped.
func flooredPowers(base float64, n int) []int {
	var ms []int
	last := 0
	for k := 0; ; k++ {
		m := int(math.Floor(math.Pow(base, float64(k))))
		if m > n {
			break
		}
		if m != last {
			ms = append(ms, m)
			last = m
		}
	}
	return ms
}

func dedup(sorted []int) []int {
	out := sorted[:0]
	last := 0
	for _, m := range sorted {
		if m != last {
			out = append(out, m)
			last = m
		}
	}
	return out
}
