package nist

import "math"

type fftTest struct{}

func (fftTest) ID() TestID             { return FFT }
func (fftTest) Name() string           { return "FFT" }
func (fftTest) MinLength() int64       { return 1000 }
func (fftTest) PartitionCount(RunConfig) int { return 1 }

func (fftTest) Init(*RunState) error { return nil }

func (fftTest) Iterate(rs *RunState, threadID int, iteration int64) error {
	eps := rs.ThreadBuffer(threadID)
	n := rs.Config.N

	// The reference algorithm operates on a power-of-two length; we use
	// the largest power of two not exceeding n rather than zero-padding,
	// which keeps the transform exact for the bits it does cover.
	size := int64(1)
	for size*2 <= n {
		size *= 2
	}

	x := make([]complex128, size)
	for k := int64(0); k < size; k++ {
		if eps[k] != 0 {
			x[k] = complex(1, 0)
		} else {
			x[k] = complex(-1, 0)
		}
	}

	spectrum := radix2FFT(x)

	m := size / 2
	modulus := make([]float64, m)
	for i := int64(0); i < m; i++ {
		modulus[i] = math.Hypot(real(spectrum[i]), imag(spectrum[i]))
	}

	threshold := math.Sqrt(2.995732274 * float64(size)) // sqrt(log(1/0.05)*n)
	var count int64
	for _, mag := range modulus {
		if mag < threshold {
			count++
		}
	}

	n0 := 0.95 * float64(m)
	d := (float64(count) - n0) / math.Sqrt(float64(size)*0.95*0.05/4.0)
	p := math.Erfc(math.Abs(d) / math.Sqrt2)

	ts := rs.State(FFT)
	ts.RecordPValue(int(iteration), p, rs.Config.Alpha, "FFT", iteration)
	ts.RecordStat(int(iteration), count)
	return nil
}

// radix2FFT is an iterative in-place Cooley-Tukey FFT; len(x) must be a
// power of two.
func radix2FFT(x []complex128) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	copy(out, x)

	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; bit&j != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			out[i], out[j] = out[j], out[i]
		}
	}

	for length := 2; length <= n; length <<= 1 {
		angle := -2 * math.Pi / float64(length)
		wlen := complex(math.Cos(angle), math.Sin(angle))
		for i := 0; i < n; i += length {
			w := complex(1, 0)
			for j := 0; j < length/2; j++ {
				u := out[i+j]
				v := out[i+j+length/2] * w
				out[i+j] = u + v
				out[i+j+length/2] = u - v
				w *= wlen
			}
		}
	}

	return out
}

func (fftTest) Print(rs *RunState, w *reportWriter) error {
	ts := rs.State(FFT)
	for _, p := range ts.PVal.Slice() {
		w.WriteResult(0, p)
	}
	return nil
}

func (fftTest) Destroy(*RunState) {}
