package nist

import (
	"fmt"
	"math"
	"sync"
)

// TestID enumerates the fifteen independent NIST SP 800-22 Rev 1a tests
// (spec §2 item 5).
type TestID int

const (
	Frequency TestID = iota
	BlockFrequency
	Runs
	LongestRun
	Rank
	FFT
	NonOverlappingTemplate
	OverlappingTemplate
	Universal
	LinearComplexity
	Serial
	ApproximateEntropy
	CumulativeSums
	RandomExcursions
	RandomExcursionsVariant

	NumTests
)

var testIDNames = [NumTests]string{
	Frequency:               "Frequency",
	BlockFrequency:          "BlockFrequency",
	Runs:                    "Runs",
	LongestRun:              "LongestRun",
	Rank:                    "Rank",
	FFT:                     "FFT",
	NonOverlappingTemplate:  "NonOverlappingTemplate",
	OverlappingTemplate:     "OverlappingTemplate",
	Universal:               "Universal",
	LinearComplexity:        "LinearComplexity",
	Serial:                  "Serial",
	ApproximateEntropy:      "ApproximateEntropy",
	CumulativeSums:          "CumulativeSums",
	RandomExcursions:        "RandomExcursions",
	RandomExcursionsVariant: "RandomExcursionsVariant",
}

func (id TestID) String() string {
	if id < 0 || int(id) >= len(testIDNames) {
		return fmt.Sprintf("TestID(%d)", int(id))
	}
	return testIDNames[id]
}

// nonPValueBits is a quiet NaN with a payload that cannot arise from any
// arithmetic NaN the tests themselves might produce, so that it survives
// a binary round-trip distinguishably from "the math blew up" (spec §3,
// §6, §9 Open Question #3).
const nonPValueBits uint64 = 0x7FF8000000000001

// NonPValue is the distinguished "no result possible" marker (spec's
// NON_P_VALUE). It is not a failure, it is an absence.
var NonPValue = math.Float64frombits(nonPValueBits)

// IsNonPValue reports whether p is the NON_P_VALUE sentinel. Equality
// must be bitwise: IEEE-754 NaN is never equal to itself under ==.
func IsNonPValue(p float64) bool {
	return math.Float64bits(p) == nonPValueBits
}

// RunMode selects among the three sequencing modes (spec §4.6).
type RunMode int

const (
	ModeIterateAndAssess RunMode = iota
	ModeIterateOnly
	ModeAssessOnly
)

func (m RunMode) String() string {
	switch m {
	case ModeIterateAndAssess:
		return "iterate-and-assess"
	case ModeIterateOnly:
		return "iterate-only"
	case ModeAssessOnly:
		return "assess-only"
	default:
		return "unknown"
	}
}

// RunConfig is the run configuration, immutable after Init (spec §3).
type RunConfig struct {
	N               int64 // iteration bit length
	NumOfBitStreams int64
	Alpha           float64
	UniformityBins  int
	UniformityLevel float64
	Mode            RunMode
	LegacyOutput    bool
	ResultsFile     bool
	ResultsDir      string
	TestVector      [NumTests]bool
}

// DefaultRunConfig mirrors the original tool's defaults: 2^20-bit
// iterations, alpha=0.01, 10 uniformity bins, all tests enabled.
func DefaultRunConfig() RunConfig {
	cfg := RunConfig{
		N:               1 << 20,
		NumOfBitStreams: 100,
		Alpha:           0.01,
		UniformityBins:  10,
		UniformityLevel: 0.0001,
		Mode:            ModeIterateAndAssess,
	}
	for i := range cfg.TestVector {
		cfg.TestVector[i] = true
	}
	return cfg
}

// DerivedConstants are computed once from RunConfig.N and frozen for the
// run (spec §3). Marked valid by Setup; tests must assert Setup before
// iterating.
type DerivedConstants struct {
	SqrtN  float64
	Sqrt2N float64
	Log2   float64
	Setup  bool
}

func (c *DerivedConstants) compute(n int64) {
	c.SqrtN = math.Sqrt(float64(n))
	c.Sqrt2N = math.Sqrt(2 * float64(n))
	c.Log2 = math.Log(2)
	c.Setup = true
}

// Verdict is a test-partition's pass/fail classification (spec §4.3).
type Verdict int

const (
	VerdictPassedBoth Verdict = iota
	VerdictFailedUniformity
	VerdictFailedProportion
	VerdictFailedBoth
)

func (v Verdict) String() string {
	switch v {
	case VerdictPassedBoth:
		return "PASSED_BOTH"
	case VerdictFailedUniformity:
		return "FAILED_UNIFORMITY"
	case VerdictFailedProportion:
		return "FAILED_PROPORTION"
	case VerdictFailedBoth:
		return "FAILED_BOTH"
	default:
		return "UNKNOWN"
	}
}

// PartitionMetrics is the per-test, per-partition output of the Metrics
// Aggregator (spec §4.3).
type PartitionMetrics struct {
	Test            TestID
	Partition       int
	SampleCount     int64
	TooLow          int64
	Bins            []int64
	Uniformity      float64
	UniformityValid bool
	ExpectedCount   float64
	ProportionPass  bool
	ProportionMin   float64
	ProportionMax   float64
	Verdict         Verdict
}

// TestState is the per-test state owned by the run (spec §3): dynamic
// arrays for private stats and p-values, and the count/valid/success/
// failure counters.
type TestState struct {
	Enabled        bool
	PartitionCount int
	IsExcursion    bool // random-excursion-family tests exclude p==0 from sampleCount (spec §4.3)

	Stats *DynArray[any]
	PVal  *DynArray[float64]

	SubDir  string
	DataFmt string

	mu        sync.Mutex
	Count     int64
	Valid     int64
	ValidPVal int64
	Success   int64
	Failure   int64
}

// RecordPValue implements the shared per-iteration bookkeeping every
// test's Iterate performs after computing a p-value (spec §3 invariants,
// §4.1, §4.2 step 5, §7): classify into bogus/failure/success, update the
// shared counters under the test's own mutex (held only for this
// critical section, per spec §5), and write the value into its pre-sized
// slot so that final ordering matches iteration order regardless of
// which goroutine finished first.
func (ts *TestState) RecordPValue(slot int, p float64, alpha float64, testName string, iteration int64) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	ts.Count++
	ts.Valid++

	switch {
	case IsNonPValue(p):
		// Absence, not a failure or a bogus value; ignored by sample counts.
	case isNegative(p):
		ts.Failure++
		warnf(testName, "iteration %d produced bogus p_value: %f < 0.0", iteration+1, p)
	case isGreaterThanOne(p):
		ts.Failure++
		warnf(testName, "iteration %d produced bogus p_value: %f > 1.0", iteration+1, p)
	case p < alpha:
		ts.ValidPVal++
		ts.Failure++
	default:
		ts.ValidPVal++
		ts.Success++
	}

	ts.PVal.Set(slot, p)
}

// RecordStat appends a private per-iteration stat record at its
// pre-assigned slot (kept in iteration order for stats.txt).
func (ts *TestState) RecordStat(slot int, stat any) {
	if ts.Stats == nil {
		return
	}
	ts.Stats.Set(slot, stat)
}

// Test is the contract every test implements (spec §4.1): four
// descriptors plus Init, Iterate, Print and Destroy. The metrics step is
// the shared AggregateMetrics rather than a per-test method.
type Test interface {
	ID() TestID
	Name() string
	PartitionCount(cfg RunConfig) int
	MinLength() int64

	Init(rs *RunState) error
	Iterate(rs *RunState, threadID int, iteration int64) error
	Print(rs *RunState, w *reportWriter) error
	Destroy(rs *RunState)
}
