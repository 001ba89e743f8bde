package nist

import "testing"

func TestRunsAlternatingComputesFailingPValue(t *testing.T) {
	// Perfectly alternating bits have pi=0.5 but every bit is its own run,
	// which is as far from the expected run count as possible -- the
	// prerequisite check only screens on pi, so this should still
	// compute, not report an absence.
	bits := repeatBits([]byte{1, 0}, 1000)
	rs := newHarness(bits, 0.01, Runs, 1)

	if err := (runsTest{}).Iterate(rs, 0, 0); err != nil {
		t.Fatalf("Iterate returned error: %v", err)
	}

	p := rs.State(Runs).PVal.At(0)
	if IsNonPValue(p) {
		t.Fatal("expected a computed p-value, got NonPValue")
	}
	if p >= 0.01 {
		t.Errorf("expected maximal run alternation to fail, got p=%f", p)
	}
}

func TestRunsAllOnesSkewedProducesNonPValue(t *testing.T) {
	bits := repeatBits([]byte{1}, 1000)
	rs := newHarness(bits, 0.01, Runs, 1)

	if err := (runsTest{}).Iterate(rs, 0, 0); err != nil {
		t.Fatalf("Iterate returned error: %v", err)
	}

	p := rs.State(Runs).PVal.At(0)
	if !IsNonPValue(p) {
		t.Errorf("expected NonPValue for pi far from 0.5, got p=%f", p)
	}
}
