package nist

// Longest Run of Ones test, fixed to the NIST M=8, K=3, N=16 parameter
// set (valid for 128 <= n < 6272); larger n is accepted but still
// analyzed with this same block size rather than switching tables.
const (
	longestRunM = 8
	longestRunK = 3
)

var longestRunPi = [4]float64{0.2148, 0.3672, 0.2305, 0.1875}

type longestRunTest struct{}

func (longestRunTest) ID() TestID             { return LongestRun }
func (longestRunTest) Name() string           { return "LongestRun" }
func (longestRunTest) MinLength() int64       { return 128 }
func (longestRunTest) PartitionCount(RunConfig) int { return 1 }

func (longestRunTest) Init(*RunState) error { return nil }

func (longestRunTest) Iterate(rs *RunState, threadID int, iteration int64) error {
	eps := rs.ThreadBuffer(threadID)
	n := rs.Config.N
	m := int64(longestRunM)
	numBlocks := n / m

	var v [4]int64
	for i := int64(0); i < numBlocks; i++ {
		block := eps[i*m : (i+1)*m]
		var run, longest int64
		for _, b := range block {
			if b != 0 {
				run++
				if run > longest {
					longest = run
				}
			} else {
				run = 0
			}
		}
		switch {
		case longest <= 1:
			v[0]++
		case longest == 2:
			v[1]++
		case longest == 3:
			v[2]++
		default:
			v[3]++
		}
	}

	var chi2 float64
	for i := 0; i < 4; i++ {
		expected := float64(numBlocks) * longestRunPi[i]
		diff := float64(v[i]) - expected
		chi2 += diff * diff / expected
	}

	p := igamc(float64(longestRunK)/2.0, chi2/2.0)

	ts := rs.State(LongestRun)
	ts.RecordPValue(int(iteration), p, rs.Config.Alpha, "LongestRun", iteration)
	ts.RecordStat(int(iteration), v)
	return nil
}

func (longestRunTest) Print(rs *RunState, w *reportWriter) error {
	ts := rs.State(LongestRun)
	for _, p := range ts.PVal.Slice() {
		w.WriteResult(0, p)
	}
	return nil
}

func (longestRunTest) Destroy(*RunState) {}
