// Package testutil provides shared test infrastructure for the scheduling simulator:
// golden dataset loading and assertion helpers.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one scenario file with its expected report and metrics.
// Input and Output are relative to testdata/.
type GoldenTestCase struct {
	Name    string        `json:"name"`
	Input   string        `json:"input"`
	Output  string        `json:"output"`
	Metrics GoldenMetrics `json:"metrics"`
}

// GoldenMetrics represents the expected metrics from a golden test case.
type GoldenMetrics struct {
	// Exact match counts
	Finished   int `json:"finished"`
	Unfinished int `json:"unfinished"`
	IdleTicks  int `json:"idle_ticks"`

	MeanWait       float64 `json:"mean_wait"`
	MeanTurnaround float64 `json:"mean_turnaround"`
	MeanResponse   float64 `json:"mean_response"`
	Utilization    float64 `json:"utilization"`
}

// TestdataDir returns the absolute path of the repo root testdata/ directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func TestdataDir(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata")
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(TestdataDir(t), "goldendataset.json"))
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	if len(dataset.Tests) == 0 {
		t.Fatal("golden dataset has no test cases")
	}
	return &dataset
}

// InputPath returns the absolute path of the case's scenario file.
func (tc GoldenTestCase) InputPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(TestdataDir(t), tc.Input)
}

// ExpectedOutput reads the case's expected text report.
func (tc GoldenTestCase) ExpectedOutput(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(TestdataDir(t), tc.Output))
	if err != nil {
		t.Fatalf("Failed to read golden output for %s: %v", tc.Name, err)
	}
	return string(data)
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
