// Package goallan provides frequency-stability analysis for clocks and
// oscillators.
//
// GoAllan computes the statistics used in time and frequency metrology to
// characterize oscillator noise at different averaging intervals: the
// Allan deviation and its modified, time, Hadamard, and total variants,
// plus the maximum time interval error (MTIE). It follows the estimator
// definitions in NIST SP 1065 (Riley, "Handbook of Frequency Stability
// Analysis").
//
// # Features
//
//   - Allan, modified Allan, time, Hadamard, and total deviations
//   - Maximum time interval error with amortized sliding-window extrema
//   - Overlapping and non-overlapping window modes
//   - Octave, decade, custom-base, and explicit averaging-interval sets
//   - Phase and fractional-frequency input with automatic conversion
//   - Power-law noise identification via lag-1 autocorrelation
//
// # Quick Start
//
// Compute the overlapping Allan deviation of a phase record:
//
//	series := timeseries.New(phaseData, 1.0) // 1 Hz sampling
//	rep, err := stability.ADEV(series, nil)
//
// Frequency data is converted internally:
//
//	series := timeseries.NewFrequency(freqData, 10.0)
//	rep, err := stability.TDEV(series, nil)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - stability: deviation estimators, averaging-interval generation,
//     and noise identification
//   - timeseries: series data structures, domain conversion, and CSV
//     loading
//
// # References
//
//   - Riley, W.J. (2008). Handbook of Frequency Stability Analysis,
//     NIST Special Publication 1065
//   - Allan, D.W. (1966). Statistics of Atomic Frequency Standards
package goallan
