package distributed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AmmannChristian/nist-sp800-22-rev1a/internal/nist"
)

func writeTestInput(t *testing.T, blocks int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.bin")
	data := make([]byte, blocks*IterationBytes)
	for i := range data {
		data[i] = 0xAA // alternating 10101010 bits, well-behaved input
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing test input: %v", err)
	}
	return path
}

func TestMmapRangeReadsExpectedBytes(t *testing.T) {
	path := writeTestInput(t, 2)
	data, unmap, err := mmapRange(path, 0, IterationBytes)
	if err != nil {
		t.Fatalf("mmapRange: %v", err)
	}
	defer unmap()

	if len(data) != IterationBytes {
		t.Fatalf("len(data) = %d, want %d", len(data), IterationBytes)
	}
	if data[0] != 0xAA {
		t.Errorf("data[0] = %x, want 0xAA", data[0])
	}
}

func TestMmapRangeRejectsEmptyRange(t *testing.T) {
	path := writeTestInput(t, 1)
	if _, _, err := mmapRange(path, 0, 0); err == nil {
		t.Fatal("expected an error for an empty byte range")
	}
}

func TestRunWorkerRangeWritesPValueFiles(t *testing.T) {
	path := writeTestInput(t, 2)
	pvalDir := t.TempDir()

	cfg := nist.DefaultRunConfig()
	if err := RunWorkerRange(path, IterationBytes, 2*IterationBytes, 1, pvalDir, cfg); err != nil {
		t.Fatalf("RunWorkerRange: %v", err)
	}

	if _, err := os.Stat(filepath.Join(pvalDir, "Frequency.pval")); err != nil {
		t.Errorf("expected Frequency.pval to be written: %v", err)
	}
}

func TestRunWorkerWritesPValueFiles(t *testing.T) {
	path := writeTestInput(t, 1)
	plan := JobPlan{NumWorkers: 1, PerWorker: 1}
	pvalDir := t.TempDir()

	cfg := nist.DefaultRunConfig()
	if err := RunWorker(path, plan, 0, pvalDir, cfg); err != nil {
		t.Fatalf("RunWorker: %v", err)
	}

	if _, err := os.Stat(filepath.Join(pvalDir, "Frequency.pval")); err != nil {
		t.Errorf("expected Frequency.pval to be written: %v", err)
	}
}
