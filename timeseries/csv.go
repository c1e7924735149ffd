package timeseries

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	ValueColumn string   // Column name for samples (default: "phase")
	Rate        float64  // Sample rate in samples per second (default: 1.0)
	Kind        DataKind // Domain of the loaded samples (default: Phase)
	HasHeader   bool     // Whether CSV has a header row (default: true)
	Delimiter   rune     // Field delimiter (default: ',')
	SkipRows    int      // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "phase",
		Rate:        1.0,
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV loads a series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	s, err := LoadCSVFromReader(file, opts)
	if err != nil {
		return nil, err
	}
	if s.Name == "" {
		s.Name = filename
	}
	return s, nil
}

// LoadCSVFromReader loads a series from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	valueIdx := 0
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		valueIdx = -1
		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			switch {
			case opts.ValueColumn != "" && h == opts.ValueColumn:
				valueIdx = i
			case opts.ValueColumn == "" && (h == "phase" || h == "x" || h == "value"):
				valueIdx = i
			}
		}
		if valueIdx == -1 {
			return nil, errors.New("value column not found in CSV header")
		}
	}

	var values []float64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if valueIdx >= len(record) {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(record[valueIdx]), 64)
		if err != nil {
			// Skip rows with non-numeric values.
			continue
		}
		values = append(values, v)
	}

	if len(values) == 0 {
		return nil, errors.New("no valid data found in CSV")
	}

	rate := opts.Rate
	if rate <= 0 {
		rate = 1.0
	}
	return &Series{
		Values: values,
		Rate:   rate,
		Kind:   opts.Kind,
	}, nil
}
