package stability

import (
	"fmt"
	"math"

	"github.com/sartorproj/goallan/timeseries"
)

// NoiseIDResult represents the result of lag-1 autocorrelation noise
// identification.
type NoiseIDResult struct {
	Alpha int     // power-law exponent of S_y(f), -2..+2
	Rho   float64 // final lag-1 autocorrelation ratio r1/(1+r1)
	Diffs int     // differencing passes applied before classification
	Name  string  // conventional noise-type name
}

// noiseNames maps the power-law exponent to its conventional name.
var noiseNames = map[int]string{
	2:  "white PM",
	1:  "flicker PM",
	0:  "white FM",
	-1: "flicker FM",
	-2: "random-walk FM",
}

// NoiseID identifies the dominant power-law noise type of a series at the
// given averaging factor using the lag-1 autocorrelation method: the
// phase data is decimated by af, then first-differenced until the
// autocorrelation ratio r1/(1+r1) falls below 0.25 (at most twice), and
// the exponent is read off the final ratio.
//
// At least 16 samples must remain after decimation.
func NoiseID(s *timeseries.Series, af int) (*NoiseIDResult, error) {
	if af < 1 {
		return nil, fmt.Errorf("%w: noiseid: averaging factor must be at least 1, got %d", ErrInvalidArgument, af)
	}
	x, _, err := prepare(s, nil, "noiseid", 2)
	if err != nil {
		return nil, err
	}

	z := decimate(x, af)
	if len(z) < 16 {
		return nil, fmt.Errorf("%w: noiseid requires at least 16 samples after decimation, got %d", ErrInvalidArgument, len(z))
	}

	const (
		dmax      = 2
		threshold = 0.25
	)
	d := 0
	var rho float64
	for {
		r1 := lag1(z)
		rho = r1 / (1 + r1)
		if d >= dmax || rho < threshold {
			break
		}
		z = firstDiff(z)
		d++
	}

	// Exponent of the phase spectrum is -2*(rho+d); +2 converts to the
	// frequency-noise convention.
	alpha := int(math.Round(-2*(rho+float64(d)))) + 2
	if alpha > 2 {
		alpha = 2
	}
	if alpha < -2 {
		alpha = -2
	}

	return &NoiseIDResult{
		Alpha: alpha,
		Rho:   rho,
		Diffs: d,
		Name:  noiseNames[alpha],
	}, nil
}

// lag1 calculates the lag-1 autocorrelation of v about its mean.
func lag1(v []float64) float64 {
	n := len(v)
	mean := 0.0
	for _, x := range v {
		mean += x
	}
	mean /= float64(n)

	variance := 0.0
	for _, x := range v {
		diff := x - mean
		variance += diff * diff
	}
	if variance == 0 {
		return 0
	}

	sum := 0.0
	for i := 1; i < n; i++ {
		sum += (v[i] - mean) * (v[i-1] - mean)
	}
	return sum / variance
}

func decimate(v []float64, af int) []float64 {
	if af == 1 {
		return v
	}
	out := make([]float64, 0, len(v)/af+1)
	for i := 0; i < len(v); i += af {
		out = append(out, v[i])
	}
	return out
}

func firstDiff(v []float64) []float64 {
	if len(v) < 2 {
		return nil
	}
	out := make([]float64, len(v)-1)
	for i := 1; i < len(v); i++ {
		out[i-1] = v[i] - v[i-1]
	}
	return out
}
