package stability

import (
	"math"

	"github.com/sartorproj/goallan/timeseries"
)

// TOTDEV computes the total deviation: the Allan second-difference
// recurrence evaluated on a private copy of the phase data reflected
// about both endpoints, which removes the bias of the plain estimator at
// averaging intervals approaching the record length.
//
// The extended array has length 3n-4; every second difference is centered
// on the original data region, so each interval is supported by n-2 terms
// in overlapping mode. Intervals longer than n-1 samples stop the sweep.
//
// Total deviation is defined for overlapping windows; calling it with
// Overlapping=false logs an advisory and proceeds.
func TOTDEV(s *timeseries.Series, opts *Options) (*Report, error) {
	x, opts, err := prepare(s, opts, "totdev", 3)
	if err != nil {
		return nil, err
	}
	if !opts.Overlapping {
		opts.logger().Warn("totdev: non-overlapping windows are not statistically meaningful for total deviation")
	}

	n := len(x)
	ext := reflectBothEnds(x)
	off := n - 2
	return sweep(n, s.Rate, opts, func(m, stride int) (float64, int, bool) {
		if n-m < 1 {
			return 0, 0, false
		}
		sum := 0.0
		terms := 0
		for i := 1; i <= n-2; i += stride {
			v := ext[off+i-m] - 2*ext[off+i] + ext[off+i+m]
			sum += v * v
			terms++
		}
		if terms < 2 {
			return 0, terms, true
		}
		dev := math.Sqrt(sum/(2*float64(terms))) / float64(m) * s.Rate
		return dev, terms, true
	})
}

// reflectBothEnds builds the length 3n-4 extension of x: n-2 samples
// reflected about the first point, the original data, then n-2 samples
// reflected about the last point.
//
//	ext[j]      = 2*x[0]   - x[n-2-j]   j = 0..n-3
//	ext[n-2+k]  = x[k]                  k = 0..n-1
//	ext[2n-2+j] = 2*x[n-1] - x[n-2-j]   j = 0..n-3
func reflectBothEnds(x []float64) []float64 {
	n := len(x)
	ext := make([]float64, 3*n-4)
	left := 2 * x[0]
	right := 2 * x[n-1]
	for j := 0; j < n-2; j++ {
		ext[j] = left - x[n-2-j]
		ext[2*n-2+j] = right - x[n-2-j]
	}
	copy(ext[n-2:], x)
	return ext
}
