package timeseries

import (
	"strings"
	"testing"
)

func TestLoadCSVFromReader(t *testing.T) {
	csvData := `t,phase
0,100
1,101
2,102
3,103
4,104`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()

	series, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if series.Len() != 5 {
		t.Errorf("Expected 5 observations, got %d", series.Len())
	}

	expected := []float64{100, 101, 102, 103, 104}
	for i, v := range expected {
		if series.Values[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, series.Values[i])
		}
	}

	if series.Rate != 1.0 || series.Kind != Phase {
		t.Errorf("Expected default rate 1.0 and phase kind, got %f %v", series.Rate, series.Kind)
	}
}

func TestLoadCSVColumnSelection(t *testing.T) {
	csvData := `t,phase,freq
0,100,1.0
1,110,1.1
2,120,1.2`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()
	opts.ValueColumn = "freq"
	opts.Kind = Frequency
	opts.Rate = 10

	series, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	expected := []float64{1.0, 1.1, 1.2}
	if series.Len() != len(expected) {
		t.Fatalf("Expected %d observations, got %d", len(expected), series.Len())
	}
	for i, v := range expected {
		if series.Values[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, series.Values[i])
		}
	}
	if series.Kind != Frequency || series.Rate != 10 {
		t.Errorf("Options not applied: rate %f kind %v", series.Rate, series.Kind)
	}
}

func TestLoadCSVMissingColumn(t *testing.T) {
	csvData := `t,y
0,100`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()
	opts.ValueColumn = "phase"

	if _, err := LoadCSVFromReader(reader, opts); err == nil {
		t.Fatal("Expected error for missing value column")
	}
}

func TestLoadCSVNonNumericRows(t *testing.T) {
	csvData := `t,phase
0,100
1,NA
2,102
3,NaN-ish
4,104`

	reader := strings.NewReader(csvData)
	series, err := LoadCSVFromReader(reader, DefaultCSVOptions())
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	expected := []float64{100, 102, 104}
	if series.Len() != len(expected) {
		t.Fatalf("Expected %d observations (bad rows skipped), got %d", len(expected), series.Len())
	}
	for i, v := range expected {
		if series.Values[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, series.Values[i])
		}
	}
}

func TestLoadCSVNoHeader(t *testing.T) {
	csvData := `1.5
2.5
3.5`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()
	opts.HasHeader = false

	series, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	expected := []float64{1.5, 2.5, 3.5}
	for i, v := range expected {
		if series.Values[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, series.Values[i])
		}
	}
}

func TestLoadCSVSkipRows(t *testing.T) {
	csvData := `# clock log
t,phase
0,5
1,6`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()
	opts.SkipRows = 1

	series, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}
	if series.Len() != 2 || series.Values[0] != 5 {
		t.Errorf("Unexpected series: %v", series.Values)
	}
}

func TestLoadCSVEmpty(t *testing.T) {
	csvData := `t,phase`

	reader := strings.NewReader(csvData)
	if _, err := LoadCSVFromReader(reader, DefaultCSVOptions()); err == nil {
		t.Fatal("Expected error for CSV with no data rows")
	}
}
