package nist

import "math"

type runsTest struct{}

func (runsTest) ID() TestID             { return Runs }
func (runsTest) Name() string           { return "Runs" }
func (runsTest) MinLength() int64       { return 100 }
func (runsTest) PartitionCount(RunConfig) int { return 1 }

func (runsTest) Init(*RunState) error { return nil }

func (runsTest) Iterate(rs *RunState, threadID int, iteration int64) error {
	eps := rs.ThreadBuffer(threadID)
	n := rs.Config.N

	var ones int64
	for _, b := range eps[:n] {
		ones += int64(b)
	}
	pi := float64(ones) / float64(n)

	ts := rs.State(Runs)

	// Prerequisite: the proportion of ones must be close enough to 1/2
	// that the runs count is even meaningful; otherwise report an
	// absence rather than a misleading p-value.
	if math.Abs(pi-0.5) >= 2.0/rs.Const.SqrtN {
		ts.RecordPValue(int(iteration), NonPValue, rs.Config.Alpha, "Runs", iteration)
		return nil
	}

	var vObs int64 = 1
	for k := int64(1); k < n; k++ {
		if eps[k] != eps[k-1] {
			vObs++
		}
	}

	num := math.Abs(float64(vObs) - 2.0*float64(n)*pi*(1-pi))
	den := 2.0 * rs.Const.Sqrt2N * pi * (1 - pi)
	p := math.Erfc(num / den)

	ts.RecordPValue(int(iteration), p, rs.Config.Alpha, "Runs", iteration)
	ts.RecordStat(int(iteration), vObs)
	return nil
}

func (runsTest) Print(rs *RunState, w *reportWriter) error {
	ts := rs.State(Runs)
	for i, p := range ts.PVal.Slice() {
		w.WriteResult(0, p)
		_ = i
	}
	return nil
}

func (runsTest) Destroy(*RunState) {}
