package nist

import "testing"

func TestFrequencyAllOnes(t *testing.T) {
	bits := repeatBits([]byte{1}, 1000)
	rs := newHarness(bits, 0.01, Frequency, 1)

	if err := (frequencyTest{}).Iterate(rs, 0, 0); err != nil {
		t.Fatalf("Iterate returned error: %v", err)
	}

	p := rs.State(Frequency).PVal.At(0)
	if p < 0 || p > 1 {
		t.Fatalf("p-value out of range: %f", p)
	}
	if p >= 0.01 {
		t.Errorf("expected all-ones input to fail frequency test, got p=%f", p)
	}
}

func TestFrequencyAlternating(t *testing.T) {
	bits := repeatBits([]byte{1, 0}, 1000)
	rs := newHarness(bits, 0.01, Frequency, 1)

	if err := (frequencyTest{}).Iterate(rs, 0, 0); err != nil {
		t.Fatalf("Iterate returned error: %v", err)
	}

	p := rs.State(Frequency).PVal.At(0)
	if p < 0.9 {
		t.Errorf("expected balanced alternating input to pass strongly, got p=%f", p)
	}
}

func TestFrequencyMinLength(t *testing.T) {
	if (frequencyTest{}).MinLength() != 100 {
		t.Errorf("MinLength() = %d, want 100", (frequencyTest{}).MinLength())
	}
}
