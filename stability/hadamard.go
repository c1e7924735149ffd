package stability

import (
	"math"

	"github.com/sartorproj/goallan/timeseries"
)

// HDEV computes the Hadamard deviation. Each term is a third difference
// of the phase data, which makes the estimator insensitive to linear
// frequency drift:
//
//	v = x[i+3m] - 3*x[i+2m] + 3*x[i+m] - x[i]
//	HDEV(tau) = sqrt(sum(v^2) / (6*terms)) / m * rate
func HDEV(s *timeseries.Series, opts *Options) (*Report, error) {
	x, opts, err := prepare(s, opts, "hdev", 5)
	if err != nil {
		return nil, err
	}
	n := len(x)
	return sweep(n, s.Rate, opts, func(m, stride int) (float64, int, bool) {
		sum := 0.0
		terms := 0
		for i := 0; i+3*m < n; i += stride {
			v := x[i+3*m] - 3*x[i+2*m] + 3*x[i+m] - x[i]
			sum += v * v
			terms++
		}
		if terms < 2 {
			return 0, terms, true
		}
		dev := math.Sqrt(sum/(6*float64(terms))) / float64(m) * s.Rate
		return dev, terms, true
	})
}
