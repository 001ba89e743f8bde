package nist

import (
	"bytes"
	"math"
	"path/filepath"
	"testing"
)

func TestWriteReadPValueFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pvals.bin")
	want := []float64{0.5, 0.0001, 0.999999, NonPValue}

	if err := WritePValueFile(path, want); err != nil {
		t.Fatalf("WritePValueFile: %v", err)
	}

	got, err := ReadPValueFile(path)
	if err != nil {
		t.Fatalf("ReadPValueFile: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Float64bits(got[i]) != math.Float64bits(want[i]) {
			t.Errorf("pval[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReadPValueFileMissing(t *testing.T) {
	if _, err := ReadPValueFile(filepath.Join(t.TempDir(), "missing.bin")); err == nil {
		t.Fatal("expected error opening a nonexistent p-value file")
	}
}

func TestAppendPValueFile(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "worker0.bin")
	if err := WritePValueFile(srcPath, []float64{0.1, 0.2}); err != nil {
		t.Fatalf("WritePValueFile: %v", err)
	}

	var dst bytes.Buffer
	if err := AppendPValueFile(&dst, srcPath); err != nil {
		t.Fatalf("AppendPValueFile: %v", err)
	}
	if dst.Len() != 16 {
		t.Fatalf("merged buffer len = %d, want 16", dst.Len())
	}
}
