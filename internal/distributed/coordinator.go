package distributed

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/AmmannChristian/nist-sp800-22-rev1a/internal/nist"
)

// workerBinary is the worker executable reinvoked for each rank, matching
// the original launcher's "mpirun -n num_procs ./mpi_sts" pattern minus the
// MPI runtime: each rank is a plain subprocess of cmd/sts (spec §4.5).
const workerBinary = "sts"

// RunDistributed splits inputPath across worker subprocesses per PlanJob,
// runs each worker's share in iterate-only mode, concatenates their
// p-value output in rank order, and aggregates metrics over the union
// (spec §4.5's rank-0 role). It writes the final human-readable report to
// w and returns the job's RunReport.
func RunDistributed(inputPath string, w io.Writer) (*nist.RunReport, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("distributed: stat input %s: %w", inputPath, err)
	}

	plan, err := PlanJob(info.Size())
	if err != nil {
		return nil, err
	}
	if plan.Discarded > 0 {
		fmt.Fprintf(os.Stderr, "distributed: cutting off last %d bytes\n", plan.Discarded*IterationBytes)
	}

	stagingDir, err := os.MkdirTemp("", "nist-sts-staging-*")
	if err != nil {
		return nil, fmt.Errorf("distributed: creating staging dir: %w", err)
	}
	defer os.RemoveAll(stagingDir)

	for rank := 0; rank < plan.NumWorkers; rank++ {
		if err := runWorkerSubprocess(inputPath, plan, rank, stagingDir); err != nil {
			return nil, fmt.Errorf("distributed: rank %d aborted: %w", rank, err)
		}
	}

	mergedDir, err := mergeWorkerOutputs(stagingDir, plan.NumWorkers)
	if err != nil {
		return nil, err
	}

	cfg := nist.DefaultRunConfig()
	cfg.Mode = nist.ModeAssessOnly
	report, err := nist.Run(cfg, nil, mergedDir)
	if err != nil {
		return nil, err
	}
	if err := nist.WriteFinalAnalysisReport(w, cfg, report.Metrics); err != nil {
		return nil, err
	}
	return report, nil
}

// runWorkerSubprocess reinvokes the worker binary against inputPath with
// its rank's byte range passed as -offset/-length, so the worker mmaps
// its own slice directly (spec §9's "shared-memory staging -> mmap")
// rather than having the coordinator copy that slice into a temp file
// first. This replicates the original's per-rank scatter without
// requiring an MPI runtime or a full-input byte copy per rank.
func runWorkerSubprocess(inputPath string, plan JobPlan, rank int, stagingDir string) error {
	if _, err := exec.LookPath(workerBinary); err != nil {
		return fmt.Errorf("distributed: worker binary %q not found on PATH: %w", workerBinary, err)
	}

	start, end := plan.WorkerByteRange(rank)

	rankDir := filepath.Join(stagingDir, fmt.Sprintf("rank%d", rank))
	if err := os.MkdirAll(rankDir, 0o755); err != nil {
		return fmt.Errorf("distributed: creating rank directory %s: %w", rankDir, err)
	}

	cmd := exec.Command(workerBinary,
		"-m", "i",
		"-i", strconv.FormatInt(int64(plan.PerWorker), 10),
		"-d", rankDir,
		"-offset", strconv.FormatInt(start, 10),
		"-length", strconv.FormatInt(end-start, 10),
		inputPath,
	)
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("distributed: running worker: %w", err)
	}
	return nil
}

// mergeWorkerOutputs concatenates each enabled test's per-rank p-value
// file, in rank order, into a single shared directory that runAssessOnly
// can read back as one run (spec §4.5's "concatenate per-worker files in
// rank order into a shared directory").
func mergeWorkerOutputs(stagingDir string, numWorkers int) (string, error) {
	mergedDir := filepath.Join(stagingDir, "merged")
	if err := os.MkdirAll(mergedDir, 0o755); err != nil {
		return "", fmt.Errorf("distributed: creating merged directory: %w", err)
	}

	tests := nist.AllTestNames()
	for _, name := range tests {
		dstPath := filepath.Join(mergedDir, name+".pval")
		dst, err := os.Create(dstPath)
		if err != nil {
			return "", fmt.Errorf("distributed: creating merged p-value file %s: %w", dstPath, err)
		}

		for rank := 0; rank < numWorkers; rank++ {
			srcPath := filepath.Join(stagingDir, fmt.Sprintf("rank%d", rank), name+".pval")
			if _, err := os.Stat(srcPath); os.IsNotExist(err) {
				continue // test disabled for this worker's share; skip its contribution
			}
			if err := nist.AppendPValueFile(dst, srcPath); err != nil {
				dst.Close()
				return "", err
			}
		}
		dst.Close()
	}
	return mergedDir, nil
}
