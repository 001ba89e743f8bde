package nist

// blockFrequencyM is the fixed block length used to partition each
// iteration for the Block Frequency test.
const blockFrequencyM = 20

type blockFrequencyTest struct{}

func (blockFrequencyTest) ID() TestID             { return BlockFrequency }
func (blockFrequencyTest) Name() string           { return "BlockFrequency" }
func (blockFrequencyTest) MinLength() int64       { return 100 }
func (blockFrequencyTest) PartitionCount(RunConfig) int { return 1 }

func (blockFrequencyTest) Init(*RunState) error { return nil }

func (blockFrequencyTest) Iterate(rs *RunState, threadID int, iteration int64) error {
	eps := rs.ThreadBuffer(threadID)
	n := rs.Config.N
	m := int64(blockFrequencyM)
	numBlocks := n / m

	var chi2 float64
	for i := int64(0); i < numBlocks; i++ {
		var ones int64
		block := eps[i*m : (i+1)*m]
		for _, b := range block {
			ones += int64(b)
		}
		pi := float64(ones) / float64(m)
		chi2 += (pi - 0.5) * (pi - 0.5)
	}
	chi2 *= 4.0 * float64(m)

	p := igamc(float64(numBlocks)/2.0, chi2/2.0)

	ts := rs.State(BlockFrequency)
	ts.RecordPValue(int(iteration), p, rs.Config.Alpha, "BlockFrequency", iteration)
	ts.RecordStat(int(iteration), chi2)
	return nil
}

func (blockFrequencyTest) Print(rs *RunState, w *reportWriter) error {
	ts := rs.State(BlockFrequency)
	for i, p := range ts.PVal.Slice() {
		w.WriteStat("iteration %d: chi2=%v", i+1, ts.Stats.At(i))
		w.WriteResult(0, p)
	}
	return nil
}

func (blockFrequencyTest) Destroy(*RunState) {}
