package nist

import (
	"path/filepath"
	"testing"
)

func TestSummarizeTestResultPicksWorstCasePValue(t *testing.T) {
	pvals := []float64{0.9, 0.02, NonPValue, 0.5}
	r := summarizeTestResult("Serial", pvals, 0.01)
	if r.PValue != 0.02 {
		t.Errorf("PValue = %f, want 0.02 (the worst-case valid p-value)", r.PValue)
	}
	if !r.Passed {
		t.Errorf("expected Passed = true, since 0.02 >= alpha(0.01)")
	}
}

func TestSummarizeTestResultAllNonPValuesIsSkipped(t *testing.T) {
	r := summarizeTestResult("RandomExcursions", []float64{NonPValue, NonPValue}, 0.01)
	if r.PValue != -1 {
		t.Errorf("PValue = %f, want -1 for an all-NonPValue result", r.PValue)
	}
	if r.Warning == "" {
		t.Error("expected a warning explaining why no p-value was produced")
	}
}

func TestRunAllTestsDisablesShortInputTests(t *testing.T) {
	bits := repeatBits([]byte{1, 0, 1, 1, 0, 0, 1, 0}, 2000)
	results, err := RunAllTests(bits)
	if err != nil {
		t.Fatalf("RunAllTests: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected at least one result")
	}

	var sawDisabled bool
	for _, r := range results {
		if r.PValue < 0 {
			sawDisabled = true
			if r.Warning == "" {
				t.Errorf("test %s: disabled result should carry a warning", r.Name)
			}
		}
	}
	if !sawDisabled {
		t.Error("expected at least one test to be disabled for a 2000-bit input (e.g. Universal needs 387840 bits)")
	}
}

func TestAssessPValueDirMissingFilesAreSkipped(t *testing.T) {
	dir := t.TempDir()
	if err := WritePValueFile(filepath.Join(dir, "Frequency.pval"), []float64{0.5, 0.6}); err != nil {
		t.Fatalf("WritePValueFile: %v", err)
	}

	results, err := AssessPValueDir(dir)
	if err != nil {
		t.Fatalf("AssessPValueDir: %v", err)
	}

	var sawFrequency, sawMissing bool
	for _, r := range results {
		if r.Name == "Frequency" {
			sawFrequency = true
			if r.PValue != 0.5 {
				t.Errorf("Frequency PValue = %f, want 0.5 (worst of [0.5, 0.6])", r.PValue)
			}
		} else if r.PValue < 0 {
			sawMissing = true
		}
	}
	if !sawFrequency {
		t.Error("expected a Frequency result derived from the written p-value file")
	}
	if !sawMissing {
		t.Error("expected other tests with no p-value file to be reported as skipped")
	}
}
