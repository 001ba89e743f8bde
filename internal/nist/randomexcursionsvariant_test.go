package nist

import "testing"

func TestRandomExcursionsVariantNoCyclesProducesNonPValue(t *testing.T) {
	bits := repeatBits([]byte{1}, 2000)
	rs := newHarness(bits, 0.01, RandomExcursionsVariant, 18)

	if err := (randomExcursionsVariantTest{}).Iterate(rs, 0, 0); err != nil {
		t.Fatalf("Iterate returned error: %v", err)
	}

	ts := rs.State(RandomExcursionsVariant)
	for i, p := range ts.PVal.Slice() {
		if !IsNonPValue(p) {
			t.Errorf("p-value[%d] = %f, want NonPValue for a zero-cycle walk", i, p)
		}
	}
}

func TestRandomExcursionsVariantWithCycles(t *testing.T) {
	bits := repeatBits([]byte{1, 0}, 4000)
	rs := newHarness(bits, 0.01, RandomExcursionsVariant, 18)

	if err := (randomExcursionsVariantTest{}).Iterate(rs, 0, 0); err != nil {
		t.Fatalf("Iterate returned error: %v", err)
	}

	ts := rs.State(RandomExcursionsVariant)
	for i, p := range ts.PVal.Slice() {
		if IsNonPValue(p) {
			continue
		}
		if p < 0 || p > 1 {
			t.Errorf("p-value[%d] out of range: %f", i, p)
		}
	}
}
