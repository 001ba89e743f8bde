// Package distributed splits a large bitstream across worker subprocesses
// and reassembles their p-value output, mirroring the launcher/worker split
// of the original MPI-based tool without requiring an MPI runtime.
package distributed

import "fmt"

// IterationBytes is the default iteration size: 2^20 bits = 131072 bytes
// (spec §4.5, §6).
const IterationBytes = 131072

// MaxWorkers bounds the worker fan-out regardless of input size, matching
// call_sts.c's hardcoded cap.
const MaxWorkers = 32

// JobPlan is the result of sizing a job: how many workers to launch and how
// many iteration-blocks each gets, with any trailing blocks discarded.
type JobPlan struct {
	NumWorkers      int
	IterationBlocks int // 131072-byte blocks actually consumed, num_workers*per_group
	PerWorker       int // iteration-blocks handed to each worker
	Discarded       int // trailing iteration-blocks dropped (uneven split)
}

// PlanJob sizes a job of inputSize bytes the way call_sts.c does:
// num_procs = min(inputSize/131072, 32), then splits the resulting
// iteration-block count evenly across workers, discarding the remainder.
// It returns an error ("not enough bytes") if inputSize yields zero workers.
func PlanJob(inputSize int64) (JobPlan, error) {
	totalBlocks := inputSize / IterationBytes
	numWorkers := totalBlocks
	if numWorkers > MaxWorkers {
		numWorkers = MaxWorkers
	}
	if numWorkers == 0 {
		return JobPlan{}, fmt.Errorf("distributed: not enough bytes to analyze (min: %d, given: %d)", IterationBytes, inputSize)
	}

	perWorker := totalBlocks / numWorkers
	used := perWorker * numWorkers
	return JobPlan{
		NumWorkers:      int(numWorkers),
		IterationBlocks: int(used),
		PerWorker:       int(perWorker),
		Discarded:       int(totalBlocks - used),
	}, nil
}

// WorkerByteRange returns the [start, end) byte offsets worker rank (0-based)
// should memory-map out of the shared input, per JobPlan's uniform split.
func (p JobPlan) WorkerByteRange(rank int) (start, end int64) {
	blockBytes := int64(IterationBytes)
	start = int64(rank) * int64(p.PerWorker) * blockBytes
	end = start + int64(p.PerWorker)*blockBytes
	return start, end
}
