package distributed

import (
	"fmt"
	"os"
	"syscall"

	"github.com/AmmannChristian/nist-sp800-22-rev1a/internal/nist"
)

// mmapRange memory-maps [start, end) of the file at path read-only,
// replacing the launcher-to-worker shared-memory file handoff with a
// direct memory-mapped view (spec §9, "Shared-memory staging -> mmap").
func mmapRange(path string, start, end int64) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("distributed: opening input %s: %w", path, err)
	}
	defer f.Close()

	length := int(end - start)
	if length <= 0 {
		return nil, nil, fmt.Errorf("distributed: empty worker byte range [%d,%d)", start, end)
	}

	data, err := syscall.Mmap(int(f.Fd()), start, length, syscall.PROT_READ, syscall.MAP_SHARED)
	if err != nil {
		return nil, nil, fmt.Errorf("distributed: mmap input %s[%d:%d]: %w", path, start, end, err)
	}
	return data, func() error { return syscall.Munmap(data) }, nil
}

// RunWorkerRange memory-maps [start, end) of inputPath and runs the
// Iteration Driver over it via the iterate-only run mode, writing
// numBitStreams iteration blocks' worth of p-value files under
// pValueDir. This is the single-process form of a worker rank (spec §9):
// cmd/sts calls it directly for a -offset/-length invocation instead of
// reading the whole input file into memory.
func RunWorkerRange(inputPath string, start, end, numBitStreams int64, pValueDir string, cfg nist.RunConfig) error {
	data, unmap, err := mmapRange(inputPath, start, end)
	if err != nil {
		return err
	}
	defer unmap()

	cfg.N = IterationBytes * 8
	cfg.NumOfBitStreams = numBitStreams
	cfg.Mode = nist.ModeIterateOnly
	cfg.ResultsFile = false

	if _, err := nist.Run(cfg, nist.NewBitAccessor(data), pValueDir); err != nil {
		return fmt.Errorf("distributed: worker byte range [%d,%d): %w", start, end, err)
	}
	return nil
}

// RunWorker is the worker-rank path of the distributed job: it
// memory-maps its byte range of the shared input, runs the Iteration
// Driver over it via the iterate-only run mode, and writes its
// per-worker p-value files under pValueDir (spec §4.5).
func RunWorker(inputPath string, plan JobPlan, rank int, pValueDir string, cfg nist.RunConfig) error {
	start, end := plan.WorkerByteRange(rank)
	if err := RunWorkerRange(inputPath, start, end, int64(plan.PerWorker), pValueDir, cfg); err != nil {
		return fmt.Errorf("distributed: worker rank %d: %w", rank, err)
	}
	return nil
}
