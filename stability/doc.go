// Package stability provides frequency-stability statistics for clock and
// oscillator data.
//
// This package implements the Allan family of deviations, the maximum
// time interval error, and power-law noise identification, computed over
// a fixed-rate phase or fractional-frequency series.
//
// # Estimators
//
// Every estimator has the same shape: it takes a timeseries.Series and an
// Options value and returns a Report of aligned slices (averaging
// interval in seconds, deviation, standard error, supporting-term count):
//
//	series := timeseries.New(phaseData, 1.0)
//	rep, err := stability.ADEV(series, nil)
//	for i := range rep.Taus {
//	    fmt.Printf("tau=%gs adev=%g ±%g (n=%d)\n",
//	        rep.Taus[i], rep.Devs[i], rep.Errs[i], rep.Counts[i])
//	}
//
// Available estimators:
//
//   - ADEV: Allan deviation (second difference)
//   - MDEV: modified Allan deviation (windowed second difference)
//   - TDEV: time deviation (MDEV rescaled by tau/sqrt(3))
//   - HDEV: Hadamard deviation (third difference, drift-insensitive)
//   - TOTDEV: total deviation (reflection-extended second difference)
//   - MTIE: maximum time interval error (sliding window peak-to-peak)
//
// Frequency-domain input is converted to phase internally:
//
//	series := timeseries.NewFrequency(freqData, 10.0)
//	rep, err := stability.HDEV(series, nil)
//
// # Averaging Intervals
//
// The intervals a sweep evaluates are selected by a TauSpec:
//
//	opts := stability.DefaultOptions()
//	opts.Taus = stability.TauDecade()           // powers of 10
//	opts.Taus = stability.TauBase(1.1)          // custom log spacing
//	opts.Taus = stability.TauList([]float64{1, 10, 100}) // explicit, in seconds
//
// The sweep stops at the first interval supported by fewer than two
// windows; longer intervals can only have fewer, so none after it are
// reported.
//
// # Overlapping Windows
//
// By default windows advance one sample at a time, reusing samples across
// terms. Options.Overlapping = false advances windows by the full
// interval instead. TOTDEV and MTIE are only statistically meaningful
// with overlapping windows and log an advisory when used otherwise.
//
// # Noise Identification
//
// Classify the dominant power-law noise type before choosing bias or
// confidence corrections:
//
//	id, err := stability.NoiseID(series, 1)
//	fmt.Printf("alpha=%d (%s)\n", id.Alpha, id.Name)
package stability
