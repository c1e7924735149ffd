// Package timeseries provides fixed-rate time series data structures and operations.
package timeseries

import (
	"math"
	"sort"
)

// DataKind identifies the domain of a series.
type DataKind int

const (
	// Phase data is a cumulative time-error series, in seconds.
	Phase DataKind = iota
	// Frequency data is the rate of change of phase, dimensionless
	// (fractional frequency).
	Frequency
)

// Series represents a series sampled at a fixed rate.
type Series struct {
	Values []float64
	Rate   float64 // samples per second
	Kind   DataKind
	Name   string
}

// New creates a phase-domain series sampled at rate samples per second.
// A rate of 0 or less defaults to 1.0.
func New(values []float64, rate float64) *Series {
	if rate <= 0 {
		rate = 1.0
	}
	return &Series{
		Values: values,
		Rate:   rate,
		Kind:   Phase,
	}
}

// NewFrequency creates a frequency-domain series sampled at rate samples
// per second.
func NewFrequency(values []float64, rate float64) *Series {
	s := New(values, rate)
	s.Kind = Frequency
	return s
}

// Len returns the number of samples in the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Interval returns the sampling interval in seconds (1/rate).
func (s *Series) Interval() float64 {
	return 1.0 / s.Rate
}

// Duration returns the time span covered by the series in seconds.
func (s *Series) Duration() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return float64(len(s.Values)-1) / s.Rate
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.Values {
		sum += v
	}
	return sum / float64(len(s.Values))
}

// Variance calculates the sample variance of the series.
func (s *Series) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	mean := s.Mean()
	sumSq := 0.0
	for _, v := range s.Values {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(s.Values)-1)
}

// Std calculates the standard deviation of the series.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	min := s.Values[0]
	for _, v := range s.Values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	max := s.Values[0]
	for _, v := range s.Values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Median returns the median value of the series.
func (s *Series) Median() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// PhaseFromFrequencies converts a frequency series into a phase series via
// a zero-seeded cumulative sum scaled by the sampling interval. The result
// has length len(freq)+1 and its first element is exactly zero.
func PhaseFromFrequencies(freq []float64, rate float64) []float64 {
	phase := make([]float64, len(freq)+1)
	interval := 1.0 / rate
	for i, f := range freq {
		phase[i+1] = phase[i] + f*interval
	}
	return phase
}

// Phase returns the phase-domain form of the series. Frequency data is
// converted by cumulative summation; phase data is returned as a copy.
func (s *Series) Phase() *Series {
	out := &Series{Rate: s.Rate, Kind: Phase, Name: s.Name}
	if s.Kind == Frequency {
		out.Values = PhaseFromFrequencies(s.Values, s.Rate)
		return out
	}
	out.Values = make([]float64, len(s.Values))
	copy(out.Values, s.Values)
	return out
}

// Frequencies returns the frequency-domain form of the series: the first
// difference of the phase data scaled by the sample rate. The result has
// one sample fewer than the phase data. Frequency data is returned as a
// copy.
func (s *Series) Frequencies() *Series {
	out := &Series{Rate: s.Rate, Kind: Frequency, Name: s.Name}
	if s.Kind == Frequency {
		out.Values = make([]float64, len(s.Values))
		copy(out.Values, s.Values)
		return out
	}
	if len(s.Values) < 2 {
		out.Values = []float64{}
		return out
	}
	result := make([]float64, len(s.Values)-1)
	for i := 1; i < len(s.Values); i++ {
		result[i-1] = (s.Values[i] - s.Values[i-1]) * s.Rate
	}
	out.Values = result
	return out
}

// Slice returns a slice of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Values: []float64{}, Rate: s.Rate, Kind: s.Kind, Name: s.Name}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	return &Series{
		Values: values,
		Rate:   s.Rate,
		Kind:   s.Kind,
		Name:   s.Name,
	}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	return &Series{
		Values: values,
		Rate:   s.Rate,
		Kind:   s.Kind,
		Name:   s.Name,
	}
}
