package nist

import (
	"fmt"
	"runtime"
)

// RunState is the run owned by a single engine invocation: configuration,
// derived constants, per-test state, and the per-thread epsilon buffers
// (spec §2, §3).
type RunState struct {
	Config RunConfig
	Const  DerivedConstants

	tests [NumTests]Test
	state [NumTests]*TestState

	epsilon [][]byte // one bit buffer per thread, recycled across iterations
	input   *BitAccessor

	// SuccessfulTests is incremented once per test-partition that
	// achieves VerdictPassedBoth (spec §4.3).
	SuccessfulTests int64
}

func allTests() [NumTests]Test {
	return [NumTests]Test{
		Frequency:               &frequencyTest{},
		BlockFrequency:          &blockFrequencyTest{},
		Runs:                    &runsTest{},
		LongestRun:              &longestRunTest{},
		Rank:                    &rankTest{},
		FFT:                     &fftTest{},
		NonOverlappingTemplate:  &nonOverlappingTemplateTest{},
		OverlappingTemplate:     &overlappingTemplateTest{},
		Universal:               &universalTest{},
		LinearComplexity:        &linearComplexityTest{},
		Serial:                  &serialTest{},
		ApproximateEntropy:      &approximateEntropyTest{},
		CumulativeSums:          &cumulativeSumsTest{},
		RandomExcursions:        &randomExcursionsTest{},
		RandomExcursionsVariant: &randomExcursionsVariantTest{},
	}
}

// NewRunState builds a run against input, validating cfg and running
// Init on every enabled test (spec §4.6: "parse_args -> init"). A test
// whose precondition fails disables itself (cfg.TestVector[id] = false)
// with a warning rather than aborting the run (spec §4.1).
func NewRunState(cfg RunConfig, input *BitAccessor) (*RunState, error) {
	if cfg.N <= 0 {
		return nil, fmt.Errorf("nist: invalid iteration length n=%d", cfg.N)
	}
	if cfg.NumOfBitStreams < 0 {
		return nil, fmt.Errorf("nist: invalid numOfBitStreams=%d", cfg.NumOfBitStreams)
	}

	rs := &RunState{
		Config: cfg,
		tests:  allTests(),
		input:  input,
	}
	rs.Const.compute(cfg.N)

	numThreads := runtime.GOMAXPROCS(0)
	if numThreads < 1 {
		numThreads = 1
	}
	rs.epsilon = make([][]byte, numThreads)
	for i := range rs.epsilon {
		rs.epsilon[i] = make([]byte, cfg.N)
	}

	for id := TestID(0); id < NumTests; id++ {
		if !rs.Config.TestVector[id] {
			rs.state[id] = &TestState{Enabled: false}
			continue
		}
		t := rs.tests[id]
		if cfg.N < t.MinLength() {
			warnf(t.Name(), "disabling test: requires bitcount(n): %d >= %d", cfg.N, t.MinLength())
			rs.Config.TestVector[id] = false
			rs.state[id] = &TestState{Enabled: false}
			continue
		}

		partitionCount := t.PartitionCount(cfg)
		ts := &TestState{
			Enabled:        true,
			PartitionCount: partitionCount,
			IsExcursion:    id == RandomExcursions || id == RandomExcursionsVariant,
			PVal:           NewDynArray[float64](int(cfg.NumOfBitStreams) * partitionCount),
		}
		if cfg.ResultsFile {
			ts.Stats = NewDynArray[any](int(cfg.NumOfBitStreams))
			if partitionCount > 1 {
				ts.DataFmt = dataFilenameFormat(partitionCount)
			}
		}
		rs.state[id] = ts

		if err := t.Init(rs); err != nil {
			return nil, err
		}
	}

	return rs, nil
}

// AllTestNames returns every test's Name() in TestID order, for callers
// outside this package that need to enumerate per-test artifacts (e.g.
// the distributed coordinator's per-rank p-value file merge) without
// constructing a RunState.
func AllTestNames() []string {
	tests := allTests()
	names := make([]string, len(tests))
	for id, t := range tests {
		names[id] = t.Name()
	}
	return names
}

// ThreadBuffer returns the epsilon buffer owned by threadID.
func (rs *RunState) ThreadBuffer(threadID int) []byte {
	return rs.epsilon[threadID%len(rs.epsilon)]
}

// State returns the per-test bookkeeping state for id.
func (rs *RunState) State(id TestID) *TestState {
	return rs.state[id]
}

// Enabled reports whether test id is enabled for this run.
func (rs *RunState) Enabled(id TestID) bool {
	return rs.Config.TestVector[id]
}

// Destroy releases all storage owned by every enabled test (spec §4.1).
func (rs *RunState) Destroy() {
	for id := TestID(0); id < NumTests; id++ {
		if rs.Enabled(id) {
			rs.tests[id].Destroy(rs)
		}
	}
}

func dataFilenameFormat(partitionCount int) string {
	return fmt.Sprintf("data%%0%dd.txt", len(fmt.Sprintf("%d", partitionCount)))
}
