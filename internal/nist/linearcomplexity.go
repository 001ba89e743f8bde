package nist

// Linear Complexity test, fixed to the canonical NIST block size M=500.
const (
	linearComplexityM = 500
	linearComplexityK = 6
)

// linearComplexityPi is the asymptotic NIST reference distribution for
// the seven T categories at M=500.
var linearComplexityPi = [7]float64{
	0.01047, 0.03125, 0.12500, 0.50000, 0.25000, 0.06250, 0.02078,
}

const linearComplexityMinLength = linearComplexityM * 200 // headroom for >=200 blocks

type linearComplexityTest struct{}

func (linearComplexityTest) ID() TestID             { return LinearComplexity }
func (linearComplexityTest) Name() string           { return "LinearComplexity" }
func (linearComplexityTest) MinLength() int64       { return linearComplexityMinLength }
func (linearComplexityTest) PartitionCount(RunConfig) int { return 1 }

func (linearComplexityTest) Init(*RunState) error { return nil }

func (linearComplexityTest) Iterate(rs *RunState, threadID int, iteration int64) error {
	eps := rs.ThreadBuffer(threadID)
	n := rs.Config.N
	m := int64(linearComplexityM)
	numBlocks := n / m

	mean := linearComplexityMean(m)

	var nu [7]int64
	for b := int64(0); b < numBlocks; b++ {
		block := eps[b*m : (b+1)*m]
		l := berlekampMassey(block)
		t := sign(int64(l))*(float64(l)-mean) + 2.0/9.0
		bin := classifyLinearComplexity(t)
		nu[bin]++
	}

	var chi2 float64
	for i := 0; i <= linearComplexityK; i++ {
		expected := float64(numBlocks) * linearComplexityPi[i]
		diff := float64(nu[i]) - expected
		chi2 += diff * diff / expected
	}

	p := igamc(float64(linearComplexityK)/2.0, chi2/2.0)

	ts := rs.State(LinearComplexity)
	ts.RecordPValue(int(iteration), p, rs.Config.Alpha, "LinearComplexity", iteration)
	ts.RecordStat(int(iteration), nu)
	return nil
}

// linearComplexityMean implements mean(M) = M/2 + (9+(-1)^(M+1))/36 -
// (M/3+2/9)/2^M from the NIST reference formula.
func linearComplexityMean(m int64) float64 {
	mf := float64(m)
	oddParity := -1.0
	if (m+1)%2 == 0 {
		oddParity = 1.0
	}
	return mf/2.0 + (9.0+oddParity)/36.0 - (mf/3.0+2.0/9.0)/exp2(m)
}

func classifyLinearComplexity(t float64) int {
	switch {
	case t <= -2.5:
		return 0
	case t <= -1.5:
		return 1
	case t <= -0.5:
		return 2
	case t <= 0.5:
		return 3
	case t <= 1.5:
		return 4
	case t <= 2.5:
		return 5
	default:
		return 6
	}
}

func sign(x int64) float64 {
	if x%2 == 0 {
		return 1.0
	}
	return -1.0
}

// berlekampMassey returns the linear complexity (the length of the
// shortest LFSR that generates the given bit sequence).
func berlekampMassey(seq []byte) int {
	n := len(seq)
	c := make([]byte, n)
	b := make([]byte, n)
	c[0] = 1
	b[0] = 1

	l := 0
	m := -1
	var discrepancy byte

	for i := 0; i < n; i++ {
		discrepancy = seq[i]
		for j := 1; j <= l; j++ {
			discrepancy ^= c[j] & seq[i-j]
		}
		if discrepancy == 1 {
			t := append([]byte(nil), c...)
			shift := i - m
			for j := 0; j+shift < n; j++ {
				if b[j] == 1 {
					c[j+shift] ^= 1
				}
			}
			if l <= i/2 {
				l = i + 1 - l
				m = i
				b = t
			}
		}
	}
	return l
}

func (linearComplexityTest) Print(rs *RunState, w *reportWriter) error {
	ts := rs.State(LinearComplexity)
	for _, p := range ts.PVal.Slice() {
		w.WriteResult(0, p)
	}
	return nil
}

func (linearComplexityTest) Destroy(*RunState) {}
