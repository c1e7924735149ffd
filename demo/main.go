// Package main demonstrates frequency-stability analysis on synthetic
// oscillator noise.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"github.com/sartorproj/goallan/stability"
	"github.com/sartorproj/goallan/timeseries"
)

// Dataset defines a synthetic noise record to analyze
type Dataset struct {
	Name        string
	Description string
	Values      []float64
	Rate        float64
	Kind        timeseries.DataKind
}

// EstimatorResult holds one estimator's sweep for JSON export
type EstimatorResult struct {
	Estimator string    `json:"estimator"`
	Taus      []float64 `json:"taus"`
	Devs      []float64 `json:"devs"`
	Errs      []float64 `json:"errs"`
	Counts    []int     `json:"counts"`
}

// DatasetResult holds analysis results for a dataset
type DatasetResult struct {
	Name       string            `json:"name"`
	NObs       int               `json:"n_obs"`
	NoiseType  string            `json:"noise_type"`
	NoiseAlpha int               `json:"noise_alpha"`
	Estimators []EstimatorResult `json:"estimators"`
}

func main() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level: slog.LevelInfo,
		}),
	))

	datasets := buildDatasets(4096)
	var results []DatasetResult

	estimators := []struct {
		name string
		fn   func(*timeseries.Series, *stability.Options) (*stability.Report, error)
	}{
		{"ADEV", stability.ADEV},
		{"MDEV", stability.MDEV},
		{"TDEV", stability.TDEV},
		{"HDEV", stability.HDEV},
		{"TOTDEV", stability.TOTDEV},
		{"MTIE", stability.MTIE},
	}

	for _, ds := range datasets {
		fmt.Printf("\n=== %s ===\n%s\n", ds.Name, ds.Description)

		series := &timeseries.Series{
			Values: ds.Values,
			Rate:   ds.Rate,
			Kind:   ds.Kind,
			Name:   ds.Name,
		}

		dr := DatasetResult{Name: ds.Name, NObs: series.Len()}

		if id, err := stability.NoiseID(series, 1); err == nil {
			dr.NoiseType = id.Name
			dr.NoiseAlpha = id.Alpha
			fmt.Printf("identified noise: %s (alpha=%d, rho=%.3f)\n", id.Name, id.Alpha, id.Rho)
		} else {
			slog.Warn("noise identification failed", "dataset", ds.Name, "err", err)
		}

		for _, est := range estimators {
			rep, err := est.fn(series, nil)
			if err != nil {
				slog.Error("estimator failed", "estimator", est.name, "dataset", ds.Name, "err", err)
				continue
			}
			printReport(est.name, rep)
			dr.Estimators = append(dr.Estimators, EstimatorResult{
				Estimator: est.name,
				Taus:      rep.Taus,
				Devs:      rep.Devs,
				Errs:      rep.Errs,
				Counts:    rep.Counts,
			})
		}

		results = append(results, dr)
	}

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		slog.Error("marshal results", "err", err)
		os.Exit(1)
	}
	if err := os.WriteFile("stability_results.json", out, 0644); err != nil {
		slog.Error("write results", "err", err)
		os.Exit(1)
	}
	slog.Info("results written", "file", "stability_results.json")
}

func printReport(name string, rep *stability.Report) {
	fmt.Printf("%-7s", name)
	for i := range rep.Taus {
		if i >= 6 {
			fmt.Printf(" ...")
			break
		}
		fmt.Printf("  tau=%-6g %.3e", rep.Taus[i], rep.Devs[i])
	}
	fmt.Println()
}

// buildDatasets synthesizes the three canonical noise types from a
// deterministic generator so runs are reproducible.
func buildDatasets(n int) []Dataset {
	white := lcgNormals(n, 1)

	// White PM: the phase samples themselves are uncorrelated.
	whitePM := make([]float64, n)
	copy(whitePM, white)

	// White FM: fractional frequency is uncorrelated.
	whiteFM := lcgNormals(n, 2)

	// Random-walk FM: fractional frequency integrates white noise.
	rwFM := make([]float64, n)
	sum := 0.0
	for i, w := range lcgNormals(n, 3) {
		sum += w * 0.01
		rwFM[i] = sum
	}

	return []Dataset{
		{
			Name:        "white-pm",
			Description: "White phase noise, 1 Hz phase record",
			Values:      whitePM,
			Rate:        1.0,
			Kind:        timeseries.Phase,
		},
		{
			Name:        "white-fm",
			Description: "White frequency noise, 1 Hz fractional-frequency record",
			Values:      whiteFM,
			Rate:        1.0,
			Kind:        timeseries.Frequency,
		},
		{
			Name:        "rw-fm",
			Description: "Random-walk frequency noise, 1 Hz fractional-frequency record",
			Values:      rwFM,
			Rate:        1.0,
			Kind:        timeseries.Frequency,
		},
	}
}

// lcgNormals produces deterministic approximately normal samples by
// summing twelve uniform draws from a linear congruential generator.
func lcgNormals(n int, seed uint64) []float64 {
	state := seed*6364136223846793005 + 1442695040888963407
	next := func() float64 {
		state = state*6364136223846793005 + 1442695040888963407
		return float64(state>>11) / float64(1<<53)
	}
	out := make([]float64, n)
	for i := range out {
		sum := 0.0
		for j := 0; j < 12; j++ {
			sum += next()
		}
		out[i] = (sum - 6) * 1e-9
	}
	return out
}
