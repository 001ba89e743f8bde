package nist

import "testing"

func TestLongestRunAllOnesFails(t *testing.T) {
	bits := repeatBits([]byte{1}, 1280)
	rs := newHarness(bits, 0.01, LongestRun, 1)

	if err := (longestRunTest{}).Iterate(rs, 0, 0); err != nil {
		t.Fatalf("Iterate returned error: %v", err)
	}

	p := rs.State(LongestRun).PVal.At(0)
	if p < 0 || p > 1 {
		t.Fatalf("p-value out of range: %f", p)
	}
	if p >= 0.01 {
		t.Errorf("expected all-ones input (every block's longest run = 8) to fail, got p=%f", p)
	}
}

func TestLongestRunMinLength(t *testing.T) {
	if (longestRunTest{}).MinLength() != 128 {
		t.Errorf("MinLength() = %d, want 128", (longestRunTest{}).MinLength())
	}
}
