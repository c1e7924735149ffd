package stability

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/sartorproj/goallan/timeseries"
)

// ErrInvalidArgument is returned for malformed input: a series too short
// for the chosen estimator, a non-positive sample rate, or a custom tau
// base of 1.0 or less. It is always raised before any computation begins.
var ErrInvalidArgument = errors.New("invalid argument")

// Report holds the result of a deviation sweep as four index-aligned
// sequences, ordered by strictly increasing averaging interval.
type Report struct {
	Taus   []float64 // averaging intervals in seconds
	Devs   []float64 // deviation at each interval, estimator-specific units
	Errs   []float64 // standard error: deviation / sqrt(count)
	Counts []int     // supporting terms at each interval, always >= 2
}

// Len returns the number of reported averaging intervals.
func (r *Report) Len() int {
	return len(r.Taus)
}

// Options configures a deviation sweep.
type Options struct {
	// Overlapping selects a window stride of one sample; when false,
	// windows advance by the cluster size and share no samples.
	Overlapping bool
	// Taus selects the averaging intervals to evaluate.
	Taus TauSpec
	// Logger receives advisory warnings. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the default sweep configuration: overlapping
// windows at octave-spaced averaging intervals.
func DefaultOptions() *Options {
	return &Options{
		Overlapping: true,
		Taus:        TauOctave(),
	}
}

func (o *Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// tauEval computes one sweep entry for cluster size m: the deviation and
// the number of supporting terms. Returning ok=false stops the sweep
// (the window left the valid data region).
type tauEval func(m, stride int) (dev float64, terms int, ok bool)

// prepare validates the series for an estimator and returns its
// phase-domain samples. Length minimums apply to the phase data, after
// any frequency conversion.
func prepare(s *timeseries.Series, opts *Options, name string, minLen int) ([]float64, *Options, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if s == nil {
		return nil, nil, fmt.Errorf("%w: %s: nil series", ErrInvalidArgument, name)
	}
	if s.Rate <= 0 {
		return nil, nil, fmt.Errorf("%w: %s: sample rate must be positive, got %g", ErrInvalidArgument, name, s.Rate)
	}
	x := s.Values
	if s.Kind == timeseries.Frequency {
		x = timeseries.PhaseFromFrequencies(s.Values, s.Rate)
	}
	if len(x) < minLen {
		return nil, nil, fmt.Errorf("%w: %s requires at least %d phase samples, got %d", ErrInvalidArgument, name, minLen, len(x))
	}
	return x, opts, nil
}

// sweep evaluates eval at each cluster size in increasing order. The
// sweep stops, rather than skips, at the first size with fewer than two
// supporting terms: larger sizes can only have fewer windows.
func sweep(n int, rate float64, opts *Options, eval tauEval) (*Report, error) {
	ms, err := opts.Taus.clusters(n, rate)
	if err != nil {
		return nil, err
	}

	rep := &Report{}
	for _, m := range ms {
		stride := 1
		if !opts.Overlapping {
			stride = m
		}
		dev, terms, ok := eval(m, stride)
		if !ok || terms < 2 {
			break
		}
		rep.Taus = append(rep.Taus, float64(m)/rate)
		rep.Devs = append(rep.Devs, dev)
		rep.Errs = append(rep.Errs, dev/math.Sqrt(float64(terms)))
		rep.Counts = append(rep.Counts, terms)
	}
	return filterSupported(rep), nil
}

// filterSupported drops entries backed by one supporting term or fewer.
func filterSupported(r *Report) *Report {
	out := &Report{}
	for i, c := range r.Counts {
		if c <= 1 {
			continue
		}
		out.Taus = append(out.Taus, r.Taus[i])
		out.Devs = append(out.Devs, r.Devs[i])
		out.Errs = append(out.Errs, r.Errs[i])
		out.Counts = append(out.Counts, c)
	}
	return out
}
