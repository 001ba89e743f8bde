package nist

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// WritePValueFile persists one test's p-value array as a sequence of
// IEEE-754 doubles in iteration-major order (spec §6). It is the only
// place p-values leave the process, used at the true distributed
// boundary (worker -> rank 0) and by iterate-only mode.
func WritePValueFile(path string, pvals []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("nist: creating p-value file %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, 8)
	for _, p := range pvals {
		binary.LittleEndian.PutUint64(buf, math.Float64bits(p))
		if _, err := f.Write(buf); err != nil {
			return fmt.Errorf("nist: writing p-value file %s: %w", path, err)
		}
	}
	return nil
}

// ReadPValueFile reads back a p-value array written by WritePValueFile.
func ReadPValueFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("nist: opening p-value file %s: %w", path, err)
	}
	defer f.Close()

	var out []float64
	buf := make([]byte, 8)
	for {
		_, err := io.ReadFull(f, buf)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("nist: reading p-value file %s: %w", path, err)
		}
		out = append(out, math.Float64frombits(binary.LittleEndian.Uint64(buf)))
	}
	return out, nil
}

// AppendPValueFile concatenates src's contents onto dst in place,
// matching rank 0's "concatenate per-worker files in rank order" step
// (spec §4.5).
func AppendPValueFile(dst io.Writer, srcPath string) error {
	f, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("nist: opening worker p-value file %s: %w", srcPath, err)
	}
	defer f.Close()
	if _, err := io.Copy(dst, f); err != nil {
		return fmt.Errorf("nist: merging worker p-value file %s: %w", srcPath, err)
	}
	return nil
}
