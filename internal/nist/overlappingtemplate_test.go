package nist

import "testing"

func TestOverlappingTemplateAllOnesMatchesEveryWindow(t *testing.T) {
	bits := repeatBits([]byte{1}, overlappingTemplateM*overlappingTemplateN)
	rs := newHarness(bits, 0.01, OverlappingTemplate, 1)

	if err := (overlappingTemplateTest{}).Iterate(rs, 0, 0); err != nil {
		t.Fatalf("Iterate returned error: %v", err)
	}

	p := rs.State(OverlappingTemplate).PVal.At(0)
	if p < 0 || p > 1 {
		t.Fatalf("p-value out of range: %f", p)
	}
	// An all-ones stream matches the 9-ones template in every overlapping
	// window of every block, far exceeding the expected match counts.
	if p >= 0.01 {
		t.Errorf("expected all-ones input to fail, got p=%f", p)
	}
}

func TestOverlappingTemplateMinLength(t *testing.T) {
	want := int64(overlappingTemplateM * overlappingTemplateN)
	if got := (overlappingTemplateTest{}).MinLength(); got != want {
		t.Errorf("MinLength() = %d, want %d", got, want)
	}
}
