package nist

import "testing"

func TestBerlekampMasseyAllZeros(t *testing.T) {
	seq := make([]byte, 20)
	if got := berlekampMassey(seq); got != 0 {
		t.Errorf("linear complexity of all-zero sequence = %d, want 0", got)
	}
}

func TestBerlekampMasseyAlternating(t *testing.T) {
	seq := repeatBitsSeq([]byte{1, 0}, 20)
	got := berlekampMassey(seq)
	if got == 0 || got > len(seq) {
		t.Errorf("linear complexity of alternating sequence = %d, want a small positive value", got)
	}
}

func TestBerlekampMasseySingleOne(t *testing.T) {
	seq := make([]byte, 10)
	seq[0] = 1
	got := berlekampMassey(seq)
	if got != 1 {
		t.Errorf("linear complexity of a single leading 1 = %d, want 1", got)
	}
}

func TestLinearComplexityAllZerosFails(t *testing.T) {
	bits := repeatBits([]byte{0}, linearComplexityM*10)
	rs := newHarness(bits, 0.01, LinearComplexity, 1)

	if err := (linearComplexityTest{}).Iterate(rs, 0, 0); err != nil {
		t.Fatalf("Iterate returned error: %v", err)
	}

	p := rs.State(LinearComplexity).PVal.At(0)
	if p < 0 || p > 1 {
		t.Fatalf("p-value out of range: %f", p)
	}
	if p >= 0.01 {
		t.Errorf("expected all-zero input to fail, got p=%f", p)
	}
}

// repeatBitsSeq is like repeatBits but returns individual 0/1 bytes
// rather than a packed bit buffer, matching the epsilon-buffer format
// berlekampMassey consumes directly.
func repeatBitsSeq(pattern []byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = pattern[i%len(pattern)]
	}
	return out
}
