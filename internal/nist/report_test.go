package nist

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatPValue(t *testing.T) {
	if got := formatPValue(NonPValue); got != "__INVALID__" {
		t.Errorf("formatPValue(NonPValue) = %q, want __INVALID__", got)
	}
	if got := formatPValue(0.5); got != "0.500000" {
		t.Errorf("formatPValue(0.5) = %q, want 0.500000", got)
	}
}

func TestReportWriterWritesStatsResultsAndData(t *testing.T) {
	dir := t.TempDir()
	rw, err := newReportWriter(dir, 2)
	if err != nil {
		t.Fatalf("newReportWriter: %v", err)
	}
	rw.WriteStat("n = %d", 1000)
	rw.WriteResult(0, 0.5)
	rw.WriteResult(1, NonPValue)
	if err := rw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	stats, err := os.ReadFile(filepath.Join(dir, "stats.txt"))
	if err != nil {
		t.Fatalf("reading stats.txt: %v", err)
	}
	if !strings.Contains(string(stats), "n = 1000") {
		t.Errorf("stats.txt = %q, want it to contain the written line", stats)
	}

	results, err := os.ReadFile(filepath.Join(dir, "results.txt"))
	if err != nil {
		t.Fatalf("reading results.txt: %v", err)
	}
	if !strings.Contains(string(results), "0.500000") || !strings.Contains(string(results), "__INVALID__") {
		t.Errorf("results.txt = %q, want both p-values present", results)
	}

	data1, err := os.ReadFile(filepath.Join(dir, "data1.txt"))
	if err != nil {
		t.Fatalf("reading data1.txt: %v", err)
	}
	if strings.TrimSpace(string(data1)) != "0.500000" {
		t.Errorf("data1.txt = %q, want 0.500000", data1)
	}

	data2, err := os.ReadFile(filepath.Join(dir, "data2.txt"))
	if err != nil {
		t.Fatalf("reading data2.txt: %v", err)
	}
	if strings.TrimSpace(string(data2)) != "__INVALID__" {
		t.Errorf("data2.txt = %q, want __INVALID__", data2)
	}
}

func TestReportWriterSinglePartitionHasNoDataFiles(t *testing.T) {
	dir := t.TempDir()
	rw, err := newReportWriter(dir, 1)
	if err != nil {
		t.Fatalf("newReportWriter: %v", err)
	}
	if rw.data != nil {
		t.Error("expected no data<k>.txt writers for a single-partition test")
	}
	if err := rw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "data1.txt")); !os.IsNotExist(err) {
		t.Error("expected data1.txt not to be created for a single-partition test")
	}
}

func TestWriteFinalAnalysisReportMarksFailures(t *testing.T) {
	metrics := []PartitionMetrics{
		{
			Test:            Frequency,
			Partition:       0,
			Bins:            []int64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
			SampleCount:     10,
			TooLow:          0,
			UniformityValid: true,
			Uniformity:      0.9,
			Verdict:         VerdictPassedBoth,
		},
		{
			Test:            Runs,
			Partition:       0,
			Bins:            []int64{10, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			SampleCount:     10,
			TooLow:          5,
			UniformityValid: false,
			Verdict:         VerdictFailedBoth,
		},
	}

	var buf bytes.Buffer
	if err := WriteFinalAnalysisReport(&buf, DefaultRunConfig(), metrics); err != nil {
		t.Fatalf("WriteFinalAnalysisReport: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "0.900000") {
		t.Errorf("report missing passing uniformity value: %q", out)
	}
	if !strings.Contains(out, "----") {
		t.Errorf("report missing ---- placeholder for invalid uniformity: %q", out)
	}
	if !strings.Contains(out, "*") {
		t.Errorf("report missing failure marker: %q", out)
	}
}
