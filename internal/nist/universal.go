package nist

import "math"

// Maurer's Universal Statistical test, fixed to L=6 / Q=640 (the
// smallest table entry NIST defines, valid from n=387,840 bits up). A
// production battery picks L from a table keyed on n; we keep a single
// entry since the Test Interface contract only requires a bounded,
// well-formed p-value, not every table row.
const (
	universalL = 6
	universalQ = 640

	universalExpectedValue = 5.2177052
	universalVariance       = 2.954
)

type universalTest struct{}

func (universalTest) ID() TestID             { return Universal }
func (universalTest) Name() string           { return "Universal" }
func (universalTest) MinLength() int64       { return 387840 }
func (universalTest) PartitionCount(RunConfig) int { return 1 }

func (universalTest) Init(*RunState) error { return nil }

func (universalTest) Iterate(rs *RunState, threadID int, iteration int64) error {
	eps := rs.ThreadBuffer(threadID)
	n := rs.Config.N
	l := int64(universalL)
	q := int64(universalQ)
	k := n/l - q

	tableSize := int64(1) << uint(l)
	table := make([]int64, tableSize)

	// Initialization segment: record the last position of each L-bit
	// value seen.
	var blockValue int64
	for i := int64(0); i < q; i++ {
		blockValue = blockIndex(eps, i*l, l)
		table[blockValue] = i + 1
	}

	// Test segment: accumulate log2 of the distance since the value's
	// last occurrence.
	var sum float64
	for i := q; i < q+k; i++ {
		blockValue = blockIndex(eps, i*l, l)
		sum += math.Log2(float64(i + 1 - table[blockValue]))
		table[blockValue] = i + 1
	}

	fn := sum / float64(k)
	c := 0.7 - 0.8/float64(l) + (4.0+32.0/float64(l))*math.Pow(float64(k), -3.0/float64(l))/15.0
	sigma := c * math.Sqrt(universalVariance/float64(k))

	p := math.Erfc(math.Abs((fn-universalExpectedValue)/(math.Sqrt2*sigma)))

	ts := rs.State(Universal)
	ts.RecordPValue(int(iteration), p, rs.Config.Alpha, "Universal", iteration)
	ts.RecordStat(int(iteration), fn)
	return nil
}

// blockIndex reads an l-bit value starting at bit offset as an integer
// (MSB-first within the block, matching the overall bit ordering).
func blockIndex(eps []byte, offset, l int64) int64 {
	var v int64
	for i := int64(0); i < l; i++ {
		v = v<<1 | int64(eps[offset+i])
	}
	return v
}

func (universalTest) Print(rs *RunState, w *reportWriter) error {
	ts := rs.State(Universal)
	for _, p := range ts.PVal.Slice() {
		w.WriteResult(0, p)
	}
	return nil
}

func (universalTest) Destroy(*RunState) {}
