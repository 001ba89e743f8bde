package nist

import (
	"fmt"
	"path/filepath"
)

// MinBits and MaxBits bound a single-shot RunAllTests invocation: below
// MinBits the Universal test cannot run at all (the two random-excursion
// tests need 1,000,000 bits and are reported as skipped below that);
// above MaxBits a single request would hold an
// unreasonable amount of memory for one RPC call.
const (
	MinBits = 387840
	MaxBits = 10_000_000
)

// TestResult is the one-shot outcome of a single test against a single
// bitstream: a test that could not run at all (input too short for its
// minimum length) reports a negative PValue so callers can distinguish
// "skipped" from "ran and failed".
type TestResult struct {
	Name       string
	PValue     float64
	Passed     bool
	Proportion float64
	Warning    string
}

// RunAllTests runs every registered test exactly once against bitstream
// and returns one TestResult per test, in test-ID order. It is the
// single-shot counterpart to Run: one bitstream through the same
// iteration pool, no result files, no multi-partition uniformity
// analysis — just the immediate verdict a
// caller needs for one sample.
func RunAllTests(bitstream []byte) ([]TestResult, error) {
	cfg := DefaultRunConfig()
	cfg.N = int64(len(bitstream)) * 8
	cfg.NumOfBitStreams = 1
	cfg.Mode = ModeIterateAndAssess
	cfg.ResultsFile = false

	input := NewBitAccessor(bitstream)

	rs, err := NewRunState(cfg, input)
	if err != nil {
		return nil, fmt.Errorf("initializing test run: %w", err)
	}
	defer rs.Destroy()

	if err := rs.RunIterations(); err != nil {
		return nil, fmt.Errorf("running iterations: %w", err)
	}

	all := allTests()
	results := make([]TestResult, 0, NumTests)
	for id := TestID(0); id < NumTests; id++ {
		name := all[id].Name()

		if !rs.Enabled(id) {
			results = append(results, TestResult{
				Name:    name,
				PValue:  -1,
				Warning: fmt.Sprintf("test disabled: input shorter than the %d bits required", all[id].MinLength()),
			})
			continue
		}

		results = append(results, summarizeTestResult(name, rs.State(id).PVal.Slice(), cfg.Alpha))
	}

	return results, nil
}

// AssessPValueDir reads each test's binary p-value file out of dir (named
// "<testName>.pval", the format WritePValueFile produces) and summarizes
// each test's worst-case p-value, the read-back counterpart to
// RunAllTests for callers that already have iterated output on hand (the
// distributed coordinator's rank-0 step, or a caller relaying merged
// worker output over RPC). A missing or empty file is reported as a
// skipped test rather than a fatal error, matching runAssessOnly's
// tolerance of a partial directory.
func AssessPValueDir(dir string) ([]TestResult, error) {
	all := allTests()
	results := make([]TestResult, 0, NumTests)

	for id := TestID(0); id < NumTests; id++ {
		name := all[id].Name()
		path := filepath.Join(dir, name+".pval")

		pvals, err := ReadPValueFile(path)
		if err != nil {
			results = append(results, TestResult{
				Name:    name,
				PValue:  -1,
				Warning: fmt.Sprintf("no p-value file found for %s: %v", name, err),
			})
			continue
		}

		results = append(results, summarizeTestResult(name, pvals, DefaultRunConfig().Alpha))
	}

	return results, nil
}

// summarizeTestResult reduces a test's per-partition p-values (one
// iteration's worth) to a single reportable result. Multi-partition
// tests (Serial, the template-matching tests, the excursion tests) are
// summarized by their worst-case (minimum) p-value, since a single
// failing sub-statistic should not be masked by the others passing.
func summarizeTestResult(name string, pvals []float64, alpha float64) TestResult {
	minP := -1.0
	found := false
	for _, p := range pvals {
		if IsNonPValue(p) {
			continue
		}
		if !found || p < minP {
			minP = p
			found = true
		}
	}

	if !found {
		return TestResult{
			Name:    name,
			PValue:  -1,
			Warning: "no applicable p-value produced for this sample",
		}
	}

	return TestResult{
		Name:   name,
		PValue: minP,
		Passed: minP >= alpha,
	}
}
