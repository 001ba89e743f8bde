package nist

import "math"

const approximateEntropyM = 2

type approximateEntropyTest struct{}

func (approximateEntropyTest) ID() TestID             { return ApproximateEntropy }
func (approximateEntropyTest) Name() string           { return "ApproximateEntropy" }
func (approximateEntropyTest) MinLength() int64       { return 1000 }
func (approximateEntropyTest) PartitionCount(RunConfig) int { return 1 }

func (approximateEntropyTest) Init(*RunState) error { return nil }

func (approximateEntropyTest) Iterate(rs *RunState, threadID int, iteration int64) error {
	eps := rs.ThreadBuffer(threadID)
	n := rs.Config.N
	m := approximateEntropyM

	phiM := phi(eps, n, m)
	phiM1 := phi(eps, n, m+1)

	apen := phiM - phiM1
	chi2 := 2.0 * float64(n) * (math.Ln2 - apen)

	p := igamc(exp2(int64(m))/2.0, chi2/2.0)

	ts := rs.State(ApproximateEntropy)
	ts.RecordPValue(int(iteration), p, rs.Config.Alpha, "ApproximateEntropy", iteration)
	ts.RecordStat(int(iteration), apen)
	return nil
}

// phi is the ApEn block-frequency statistic: the mean log relative
// frequency of overlapping m-bit patterns over a circular extension of
// the sequence.
func phi(eps []byte, n int64, m int) float64 {
	extended := make([]byte, n+int64(m)-1)
	copy(extended, eps[:n])
	copy(extended[n:], eps[:m-1])

	counts := make([]int64, exp2Int(m))
	for i := int64(0); i < n; i++ {
		v := blockIndex(extended, i, int64(m))
		counts[v]++
	}

	var sum float64
	for _, c := range counts {
		if c == 0 {
			continue
		}
		freq := float64(c) / float64(n)
		sum += freq * math.Log(freq)
	}
	return sum
}

func (approximateEntropyTest) Print(rs *RunState, w *reportWriter) error {
	ts := rs.State(ApproximateEntropy)
	for _, p := range ts.PVal.Slice() {
		w.WriteResult(0, p)
	}
	return nil
}

func (approximateEntropyTest) Destroy(*RunState) {}
