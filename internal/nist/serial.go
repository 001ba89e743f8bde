package nist

const serialM = 3

type serialTest struct{}

func (serialTest) ID() TestID             { return Serial }
func (serialTest) Name() string           { return "Serial" }
func (serialTest) MinLength() int64       { return 1000 }
func (serialTest) PartitionCount(RunConfig) int { return 2 }

func (serialTest) Init(*RunState) error { return nil }

func (serialTest) Iterate(rs *RunState, threadID int, iteration int64) error {
	eps := rs.ThreadBuffer(threadID)
	n := rs.Config.N
	m := serialM

	psiM := psiSquared(eps, n, m)
	psiM1 := psiSquared(eps, n, m-1)
	psiM2 := psiSquared(eps, n, m-2)

	delta1 := psiM - psiM1
	delta2 := psiM - 2*psiM1 + psiM2

	p1 := igamc(exp2(int64(m-1))/2.0, delta1/2.0)
	p2 := igamc(exp2(int64(m-2))/2.0, delta2/2.0)

	ts := rs.State(Serial)
	ts.RecordPValue(int(iteration)*2, p1, rs.Config.Alpha, "Serial", iteration)
	ts.RecordPValue(int(iteration)*2+1, p2, rs.Config.Alpha, "Serial", iteration)
	ts.RecordStat(int(iteration), [2]float64{delta1, delta2})
	return nil
}

// psiSquared computes the overlapping m-bit block frequency statistic
// of the Serial test (Approximate Entropy uses its own phi). eps is treated
// as circular: the first m-1 bits are appended to the end.
func psiSquared(eps []byte, n int64, m int) float64 {
	if m <= 0 {
		return 0
	}
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
		sum += float64(c) * float64(c)
	}
	return sum*exp2(int64(m))/float64(n) - float64(n)
}

func exp2Int(k int) int64 {
	return int64(1) << uint(k)
}

func (serialTest) Print(rs *RunState, w *reportWriter) error {
	ts := rs.State(Serial)
	for i, p := range ts.PVal.Slice() {
		w.WriteResult(i%2, p)
	}
	return nil
}

func (serialTest) Destroy(*RunState) {}
