package nist

import (
	"strings"
	"testing"
)

func TestFatalErrorMessage(t *testing.T) {
	err := fatalf(30, "CumulativeSums", "derived constants not set up for n=%d", 1000)
	if err.Code != 30 {
		t.Errorf("Code = %d, want 30", err.Code)
	}
	if err.Test != "CumulativeSums" {
		t.Errorf("Test = %q, want CumulativeSums", err.Test)
	}
	msg := err.Error()
	if !strings.Contains(msg, "CumulativeSums") || !strings.Contains(msg, "exit 30") {
		t.Errorf("Error() = %q, want it to mention the test name and exit code", msg)
	}
}

func TestExitCodeBaseBandsAreDisjoint(t *testing.T) {
	seen := make(map[int]TestID)
	for id, base := range exitCodeBase {
		for _, other := range seen {
			if d := exitCodeBase[other] - base; d > -10 && d < 10 {
				t.Fatalf("test %v and %v have overlapping exit code bands (bases %d and %d)", id, other, base, exitCodeBase[other])
			}
		}
		seen[base] = id
	}
}

func TestWarnHookSubstitution(t *testing.T) {
	var gotTest, gotMsg string
	prev := WarnHook
	defer func() { WarnHook = prev }()
	WarnHook = func(test, msg string) {
		gotTest, gotMsg = test, msg
	}

	warnf("Frequency", "bogus p-value %f", -1.0)

	if gotTest != "Frequency" {
		t.Errorf("test = %q, want Frequency", gotTest)
	}
	if !strings.Contains(gotMsg, "bogus p-value") {
		t.Errorf("msg = %q, want it to contain the formatted message", gotMsg)
	}
}
