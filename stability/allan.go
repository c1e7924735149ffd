package stability

import (
	"math"

	"github.com/sartorproj/goallan/timeseries"
)

// ADEV computes the Allan deviation of a series at the averaging
// intervals selected by opts. Each term is a second difference of the
// phase data at distance m samples:
//
//	v = x[i] - 2*x[i+m] + x[i+2m]
//	ADEV(tau) = sqrt(sum(v^2) / (2*terms)) / m * rate
//
// A nil opts is equivalent to DefaultOptions().
func ADEV(s *timeseries.Series, opts *Options) (*Report, error) {
	x, opts, err := prepare(s, opts, "adev", 3)
	if err != nil {
		return nil, err
	}
	n := len(x)
	return sweep(n, s.Rate, opts, func(m, stride int) (float64, int, bool) {
		sum := 0.0
		terms := 0
		for i := 0; i+2*m < n; i += stride {
			v := x[i] - 2*x[i+m] + x[i+2*m]
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

// MDEV computes the modified Allan deviation. Each term is the sum of m
// consecutive second differences; the window sum is maintained
// incrementally, so sliding by one sample costs O(1) instead of O(m):
//
//	v' = v + x[i+3m] - 3*x[i+2m] + 3*x[i+m] - x[i]
//	MDEV(tau) = sqrt(sum(v^2) / (2*terms)) / m^2 * rate
//
// In non-overlapping mode the accumulator still advances one sample at a
// time (the increment identity only holds for unit slides); terms are
// taken at stride-aligned window starts.
func MDEV(s *timeseries.Series, opts *Options) (*Report, error) {
	x, opts, err := prepare(s, opts, "mdev", 4)
	if err != nil {
		return nil, err
	}
	n := len(x)
	return sweep(n, s.Rate, opts, func(m, stride int) (float64, int, bool) {
		v := 0.0
		for i := 0; i < m && i+2*m < n; i++ {
			v += x[i] - 2*x[i+m] + x[i+2*m]
		}
		sum := v * v
		terms := 1
		for i := 0; i+3*m < n; i++ {
			v += x[i+3*m] - 3*x[i+2*m] + 3*x[i+m] - x[i]
			if (i+1)%stride == 0 {
				sum += v * v
				terms++
			}
		}
		if terms < 2 {
			return 0, terms, true
		}
		mf := float64(m)
		dev := math.Sqrt(sum/(2*float64(terms))) / (mf * mf) * s.Rate
		return dev, terms, true
	})
}

// TDEV computes the time deviation: the modified Allan deviation rescaled
// by tau/sqrt(3), expressing stability as a time error in seconds.
func TDEV(s *timeseries.Series, opts *Options) (*Report, error) {
	if _, _, err := prepare(s, opts, "tdev", 4); err != nil {
		return nil, err
	}
	rep, err := MDEV(s, opts)
	if err != nil {
		return nil, err
	}
	k := 1 / math.Sqrt(3)
	for i, tau := range rep.Taus {
		rep.Devs[i] *= tau * k
		rep.Errs[i] *= tau * k
	}
	return rep, nil
}
