package nist

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestRadix2FFTOfConstantSignal(t *testing.T) {
	x := make([]complex128, 8)
	for i := range x {
		x[i] = complex(1, 0)
	}
	spectrum := radix2FFT(x)

	// DC component should equal the sum of the input.
	if math.Abs(real(spectrum[0])-8) > 1e-9 {
		t.Errorf("DC component = %v, want 8", spectrum[0])
	}
	for i := 1; i < len(spectrum); i++ {
		if cmplx.Abs(spectrum[i]) > 1e-9 {
			t.Errorf("spectrum[%d] = %v, want ~0 for a constant signal", i, spectrum[i])
		}
	}
}

func TestRadix2FFTLengthPreserved(t *testing.T) {
	x := make([]complex128, 16)
	out := radix2FFT(x)
	if len(out) != 16 {
		t.Errorf("len(out) = %d, want 16", len(out))
	}
}

func TestFFTAlternatingPValueInRange(t *testing.T) {
	bits := repeatBits([]byte{1, 0}, 2048)
	rs := newHarness(bits, 0.01, FFT, 1)

	if err := (fftTest{}).Iterate(rs, 0, 0); err != nil {
		t.Fatalf("Iterate returned error: %v", err)
	}

	p := rs.State(FFT).PVal.At(0)
	if p < 0 || p > 1 {
		t.Fatalf("p-value out of range: %f", p)
	}
}
