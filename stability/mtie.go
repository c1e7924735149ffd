package stability

import (
	"github.com/sartorproj/goallan/timeseries"
)

// MTIE computes the maximum time interval error: for each averaging
// interval of m samples, the largest peak-to-peak phase excursion within
// any window of m+1 consecutive samples. The result is in phase units
// (seconds for clock data).
//
// Window extrema are maintained incrementally. When a departing sample
// equals the current extremum the new window is rescanned in full, which
// is O(m) for that slide; otherwise only incoming samples are compared,
// O(1) amortized over a sweep. Inputs whose window extremum recurs at
// every slide degrade the sweep to O(n*m) per interval; the rescan is
// kept because it reproduces the reference results exactly.
//
// MTIE is defined for overlapping windows; calling it with
// Overlapping=false logs an advisory and proceeds.
func MTIE(s *timeseries.Series, opts *Options) (*Report, error) {
	x, opts, err := prepare(s, opts, "mtie", 2)
	if err != nil {
		return nil, err
	}
	if !opts.Overlapping {
		opts.logger().Warn("mtie: non-overlapping windows are not statistically meaningful for maximum time interval error")
	}

	n := len(x)
	return sweep(n, s.Rate, opts, func(m, stride int) (float64, int, bool) {
		if n-m < 2 {
			return 0, n - m, true
		}

		curMax, curMin := x[0], x[0]
		for j := 1; j <= m; j++ {
			if x[j] > curMax {
				curMax = x[j]
			}
			if x[j] < curMin {
				curMin = x[j]
			}
		}
		best := curMax - curMin
		terms := 1

		i := 0
		for i+stride+m <= n-1 {
			rescanMax, rescanMin := false, false
			for j := i; j < i+stride; j++ {
				if x[j] == curMax {
					rescanMax = true
				}
				if x[j] == curMin {
					rescanMin = true
				}
			}

			incoming := i + m + 1
			i += stride
			hi := i + m

			if rescanMax {
				curMax = x[i]
				for j := i + 1; j <= hi; j++ {
					if x[j] > curMax {
						curMax = x[j]
					}
				}
			} else {
				for j := incoming; j <= hi; j++ {
					if x[j] > curMax {
						curMax = x[j]
					}
				}
			}
			if rescanMin {
				curMin = x[i]
				for j := i + 1; j <= hi; j++ {
					if x[j] < curMin {
						curMin = x[j]
					}
				}
			} else {
				for j := incoming; j <= hi; j++ {
					if x[j] < curMin {
						curMin = x[j]
					}
				}
			}

			if d := curMax - curMin; d > best {
				best = d
			}
			terms++
		}
		return best, terms, true
	})
}
