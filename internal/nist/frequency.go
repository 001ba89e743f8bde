package nist

import "math"

// frequencyTest is the Frequency (Monobit) test: the most basic test in
// the NIST battery, checking whether the proportion of ones and zeros is
// close to 1/2.
type frequencyTest struct{}

func (frequencyTest) ID() TestID             { return Frequency }
func (frequencyTest) Name() string           { return "Frequency" }
func (frequencyTest) MinLength() int64       { return 100 }
func (frequencyTest) PartitionCount(RunConfig) int { return 1 }

func (frequencyTest) Init(*RunState) error { return nil }

func (frequencyTest) Iterate(rs *RunState, threadID int, iteration int64) error {
	eps := rs.ThreadBuffer(threadID)
	n := rs.Config.N

	var sum int64
	for _, b := range eps[:n] {
		if b != 0 {
			sum++
		} else {
			sum--
		}
	}

	sObs := math.Abs(float64(sum)) / rs.Const.SqrtN
	p := math.Erfc(sObs / math.Sqrt2)

	ts := rs.State(Frequency)
	ts.RecordPValue(int(iteration), p, rs.Config.Alpha, "Frequency", iteration)
	ts.RecordStat(int(iteration), sum)
	return nil
}

func (frequencyTest) Print(rs *RunState, w *reportWriter) error {
	ts := rs.State(Frequency)
	for i, p := range ts.PVal.Slice() {
		w.WriteStat("iteration %d: S_n=%v", i+1, ts.Stats.At(i))
		w.WriteResult(0, p)
	}
	return nil
}

func (frequencyTest) Destroy(*RunState) {}
