// Package timeseries provides fixed-rate time series data structures and utilities.
//
// This package includes the Series type for representing uniformly sampled
// phase or fractional-frequency data, along with data loading, domain
// conversion, and summary statistics.
//
// # Creating a Series
//
// Create a phase series sampled at 1 Hz:
//
//	values := []float64{0, 1.2e-9, 2.1e-9, 3.4e-9}
//	series := timeseries.New(values, 1.0)
//
// Create a fractional-frequency series:
//
//	series := timeseries.NewFrequency(freqValues, 10.0)
//
// # Domain Conversion
//
// Phase data is the cumulative time error of a clock; frequency data is
// its derivative. Convert between the two:
//
//	phase := series.Phase()        // cumulative sum scaled by interval
//	freq := series.Frequencies()   // first difference scaled by rate
//
// Converting a frequency series of length n yields a phase series of
// length n+1 whose first element is exactly zero.
//
// # Loading from CSV
//
// Load series data from CSV files:
//
//	opts := timeseries.DefaultCSVOptions()
//	opts.ValueColumn = "phase"
//	opts.Rate = 1.0
//	series, err := timeseries.LoadCSV("clock.csv", opts)
//
// # Basic Statistics
//
// Calculate summary statistics:
//
//	mean := series.Mean()
//	std := series.Std()
//	min := series.Min()
//	max := series.Max()
//	median := series.Median()
package timeseries
