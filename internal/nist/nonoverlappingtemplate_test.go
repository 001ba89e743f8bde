package nist

import "testing"

func TestMatchesTemplate(t *testing.T) {
	window := []byte{0, 1, 0, 1}
	if !matchesTemplate(window, []byte{0, 1, 0, 1}) {
		t.Error("expected exact match")
	}
	if matchesTemplate(window, []byte{0, 1, 1, 1}) {
		t.Error("expected mismatch")
	}
}

func TestNonOverlappingTemplateAllZerosMatchesFirstTemplate(t *testing.T) {
	bits := repeatBits([]byte{0}, 80000)
	rs := newHarness(bits, 0.01, NonOverlappingTemplate, len(nonOverlappingTemplates))

	if err := (nonOverlappingTemplateTest{}).Iterate(rs, 0, 0); err != nil {
		t.Fatalf("Iterate returned error: %v", err)
	}

	ts := rs.State(NonOverlappingTemplate)
	for i, p := range ts.PVal.Slice() {
		if p < 0 || p > 1 {
			t.Errorf("p-value[%d] out of range: %f", i, p)
		}
	}

	// Template 0 (all but last bit zero, last bit one) never matches an
	// all-zero stream; with 10000-bit blocks (about 19.5 expected matches
	// each) the missing matches drive its partition's p-value far below
	// alpha.
	if ts.PVal.At(0) >= 0.01 {
		t.Errorf("expected all-zero input to fail the first template, got p=%f", ts.PVal.At(0))
	}
}
