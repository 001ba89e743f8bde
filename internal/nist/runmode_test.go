package nist

import (
	"os"
	"path/filepath"
	"testing"
)

func onlyFrequencyConfig(n int64, mode RunMode) RunConfig {
	cfg := DefaultRunConfig()
	cfg.N = n
	cfg.NumOfBitStreams = 1
	cfg.Mode = mode
	cfg.ResultsFile = false
	for i := range cfg.TestVector {
		cfg.TestVector[i] = false
	}
	cfg.TestVector[Frequency] = true
	return cfg
}

func TestRunIterateAndAssess(t *testing.T) {
	bits := repeatBits([]byte{1, 0}, 1000)
	cfg := onlyFrequencyConfig(int64(len(bits))*8, ModeIterateAndAssess)

	report, err := Run(cfg, NewBitAccessor(bits), "")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.TotalPartitions != 1 {
		t.Errorf("TotalPartitions = %d, want 1", report.TotalPartitions)
	}
}

func TestRunIterateOnlyThenAssessOnly(t *testing.T) {
	bits := repeatBits([]byte{1, 0}, 1000)
	n := int64(len(bits)) * 8
	dir := t.TempDir()

	iterCfg := onlyFrequencyConfig(n, ModeIterateOnly)
	report, err := Run(iterCfg, NewBitAccessor(bits), dir)
	if err != nil {
		t.Fatalf("Run (iterate-only): %v", err)
	}
	if report.TotalPartitions != 0 {
		t.Errorf("iterate-only report should carry no metrics, got %d partitions", report.TotalPartitions)
	}
	if _, err := os.Stat(filepath.Join(dir, "Frequency.pval")); err != nil {
		t.Fatalf("expected Frequency.pval to be written: %v", err)
	}

	assessCfg := onlyFrequencyConfig(n, ModeAssessOnly)
	assessReport, err := Run(assessCfg, nil, dir)
	if err != nil {
		t.Fatalf("Run (assess-only): %v", err)
	}
	if assessReport.TotalPartitions != 1 {
		t.Errorf("TotalPartitions = %d, want 1", assessReport.TotalPartitions)
	}
}

func TestRunAssessOnlyMissingDirReturnsError(t *testing.T) {
	cfg := onlyFrequencyConfig(100, ModeAssessOnly)
	if _, err := Run(cfg, nil, t.TempDir()); err == nil {
		t.Fatal("expected an error when no p-value files are present")
	}
}
