package nist

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// FatalError is a precondition violation or unrecoverable run error (spec
// §7). Each origin carries its own exit-code band, matching the original
// tool's per-test exit code reservations (spec §6): 30-39 for
// CumulativeSums, disjoint bands for the other tests.
type FatalError struct {
	Code int
	Test string
	Msg  string
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("%s: %s (exit %d)", e.Test, e.Msg, e.Code)
}

func fatalf(code int, test, format string, args ...any) *FatalError {
	return &FatalError{Code: code, Test: test, Msg: fmt.Sprintf(format, args...)}
}

// exitCodeBase reserves a disjoint ten-code band per test. CumulativeSums
// keeps the 30-39 band the original tool used for it; the rest are
// assigned in test-table order starting above the maximum reserved band.
var exitCodeBase = map[TestID]int{
	CumulativeSums:             30,
	Frequency:                  100,
	BlockFrequency:             110,
	Runs:                       120,
	LongestRun:                 130,
	Rank:                       140,
	FFT:                        150,
	NonOverlappingTemplate:     160,
	OverlappingTemplate:        170,
	Universal:                  180,
	LinearComplexity:           190,
	Serial:                     200,
	ApproximateEntropy:         210,
	RandomExcursions:           220,
	RandomExcursionsVariant:    230,
}

// WarnHook receives every warning-severity event (spec §7's second
// severity tier: bogus p-value, disabled-for-insufficient-n, etc).
// Execution always continues after a warning. Tests substitute this hook
// to capture warnings instead of writing them to the log.
var WarnHook = func(test, msg string) {
	log.Warn().Str("test", test).Msg(msg)
}

func warnf(test, format string, args ...any) {
	WarnHook(test, fmt.Sprintf(format, args...))
}
