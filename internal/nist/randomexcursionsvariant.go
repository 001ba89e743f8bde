package nist

import "math"

// Random Excursions Variant test: for each of 18 states
// x in {-9..-1, 1..9}, compares the total number of times the
// cumulative walk visits x against its theoretical distribution.
var randomExcursionsVariantStates = [18]int64{
	-9, -8, -7, -6, -5, -4, -3, -2, -1,
	1, 2, 3, 4, 5, 6, 7, 8, 9,
}

const randomExcursionsVariantMinLength = 1000000

type randomExcursionsVariantTest struct{}

func (randomExcursionsVariantTest) ID() TestID             { return RandomExcursionsVariant }
func (randomExcursionsVariantTest) Name() string           { return "RandomExcursionsVariant" }
func (randomExcursionsVariantTest) MinLength() int64       { return randomExcursionsVariantMinLength }
func (randomExcursionsVariantTest) PartitionCount(RunConfig) int { return 18 }

func (randomExcursionsVariantTest) Init(*RunState) error { return nil }

func (randomExcursionsVariantTest) Iterate(rs *RunState, threadID int, iteration int64) error {
	eps := rs.ThreadBuffer(threadID)
	n := rs.Config.N

	var s int64
	var cycles int64
	visits := make(map[int64]int64, 18)
	for i := int64(0); i < n; i++ {
		if eps[i] != 0 {
			s++
		} else {
			s--
		}
		if s == 0 {
			cycles++
		} else {
			visits[s]++
		}
	}

	ts := rs.State(RandomExcursionsVariant)

	if cycles == 0 {
		for state := 0; state < 18; state++ {
			slot := int(iteration)*18 + state
			ts.RecordPValue(slot, NonPValue, rs.Config.Alpha, "RandomExcursionsVariant", iteration)
		}
		return nil
	}

	for state, x := range randomExcursionsVariantStates {
		count := visits[x]
		absX := math.Abs(float64(x))
		p := math.Erfc(math.Abs(float64(count)-float64(cycles)) / math.Sqrt(2.0*float64(cycles)*(4.0*absX-2.0)))
		slot := int(iteration)*18 + state
		ts.RecordPValue(slot, p, rs.Config.Alpha, "RandomExcursionsVariant", iteration)
	}

	return nil
}

func (randomExcursionsVariantTest) Print(rs *RunState, w *reportWriter) error {
	ts := rs.State(RandomExcursionsVariant)
	for i, p := range ts.PVal.Slice() {
		w.WriteResult(i%18, p)
	}
	return nil
}

func (randomExcursionsVariantTest) Destroy(*RunState) {}
