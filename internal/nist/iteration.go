package nist

import (
	"fmt"
	"sync"
)

// RunIterations is the Iteration Driver (spec §4.4): for each iteration,
// extract the bit window, then dispatch every enabled test in parallel
// across a bounded worker pool. The pool size is the number of threads
// the run was built with (runtime.GOMAXPROCS at NewRunState time); each
// worker owns one epsilon buffer for its lifetime, so no synchronization
// is needed on the input itself -- only the per-test counters at the end
// of Iterate are serialized (spec §5).
func (rs *RunState) RunIterations() error {
	numIterations := rs.Config.NumOfBitStreams
	if numIterations == 0 {
		return nil
	}

	numWorkers := len(rs.epsilon)
	jobs := make(chan int64)
	errs := make(chan error, numWorkers)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(threadID int) {
			defer wg.Done()
			for iteration := range jobs {
				if err := rs.runOneIteration(threadID, iteration); err != nil {
					select {
					case errs <- err:
					default:
					}
				}
			}
		}(w)
	}

	for i := int64(0); i < numIterations; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// runOneIteration extracts the bit window for iteration into the
// calling thread's epsilon buffer, then dispatches every enabled test's
// Iterate against it (spec §4.4 steps 1-2).
func (rs *RunState) runOneIteration(threadID int, iteration int64) error {
	n := rs.Config.N
	offset := iteration * n
	if offset+n > rs.input.Len() {
		return fmt.Errorf("nist: iteration %d out of range of input (have %d bits, need offset %d+%d)",
			iteration, rs.input.Len(), offset, n)
	}
	buf := rs.ThreadBuffer(threadID)
	rs.input.Extract(offset, n, buf)

	for id := TestID(0); id < NumTests; id++ {
		if !rs.Enabled(id) {
			continue
		}
		if err := rs.tests[id].Iterate(rs, threadID, iteration); err != nil {
			return fmt.Errorf("nist: %s iteration %d: %w", rs.tests[id].Name(), iteration, err)
		}
	}
	return nil
}
