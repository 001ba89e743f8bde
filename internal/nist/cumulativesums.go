package nist

// Exit codes: 30 thru 39.

// minLengthCusum is the minimum iteration bit length the Cumulative Sums
// test can run against (spec §4.2).
const minLengthCusum = 100

// cumulativeSumsStat is the private per-iteration stats.txt record.
type cumulativeSumsStat struct {
	successForward  bool
	successBackward bool
	zForward        int64
	zBackward       int64
}

// cumulativeSumsTest is the fully specified exemplar (spec §4.2), ported
// in semantics from original_source/src/tests/cusum.c's
// CumulativeSums_init/_iterate/compute_pi_value.
type cumulativeSumsTest struct{}

func (cumulativeSumsTest) ID() TestID     { return CumulativeSums }
func (cumulativeSumsTest) Name() string   { return "CumulativeSums" }
func (cumulativeSumsTest) MinLength() int64 { return minLengthCusum }

// PartitionCount is 2: one p-value for the forward walk, one for the
// backward walk, per iteration (spec §3, §4.2 step 6).
func (cumulativeSumsTest) PartitionCount(RunConfig) int { return 2 }

func (cumulativeSumsTest) Init(rs *RunState) error {
	if !rs.Const.Setup {
		return fatalf(exitCodeBase[CumulativeSums], "CumulativeSums", "test constants not set up prior to Init")
	}
	return nil
}

func (t cumulativeSumsTest) Iterate(rs *RunState, threadID int, iteration int64) error {
	n := rs.Config.N
	eps := rs.ThreadBuffer(threadID)

	// Step 2a: walk the adjusted epsilon sequence, tracking the maximum
	// and minimum of the forward partial sums. The backward walk's
	// maximum/minimum are complementary to the forward ones relative to
	// the final sum S (spec §4.2 steps 1-2).
	var s, sMax, sMin int64
	for k := int64(0); k < n; k++ {
		if eps[k] != 0 {
			s++
		} else {
			s--
		}
		if s > sMax {
			sMax = s
		}
		if s < sMin {
			sMin = s
		}
	}

	stat := cumulativeSumsStat{}
	// Step 3: the two test statistics (spec §4.2 step 3).
	if sMax > -sMin {
		stat.zForward = sMax
	} else {
		stat.zForward = -sMin
	}
	if sMax-s > s-sMin {
		stat.zBackward = sMax - s
	} else {
		stat.zBackward = s - sMin
	}

	pForward := cusumPValue(n, stat.zForward, rs.Const.SqrtN)
	pBackward := cusumPValue(n, stat.zBackward, rs.Const.SqrtN)

	stat.successForward = !IsNonPValue(pForward) && pForward >= rs.Config.Alpha
	stat.successBackward = !IsNonPValue(pBackward) && pBackward >= rs.Config.Alpha

	ts := rs.State(CumulativeSums)
	slot := int(iteration) * 2
	ts.RecordPValue(slot, pForward, rs.Config.Alpha, "CumulativeSums", iteration)
	ts.RecordPValue(slot+1, pBackward, rs.Config.Alpha, "CumulativeSums", iteration)
	ts.RecordStat(int(iteration), stat)

	return nil
}

// cusumPValue computes the p-value for test statistic z (spec §4.2 step
// 4). z == 0 means division by zero in the summation bounds, so the test
// reports an absence rather than a computed value.
func cusumPValue(n, z int64, sqrtN float64) float64 {
	if z == 0 {
		return NonPValue
	}

	var sum1, sum2 float64
	for k := (-n/z + 1) / 4; k <= (n/z-1)/4; k++ {
		sum1 += normal(float64((4*k+1)*z) / sqrtN)
		sum1 -= normal(float64((4*k-1)*z) / sqrtN)
	}
	for k := (-n/z - 3) / 4; k <= (n/z-1)/4; k++ {
		sum2 += normal(float64((4*k+3)*z) / sqrtN)
		sum2 -= normal(float64((4*k+1)*z) / sqrtN)
	}

	return 1.0 - sum1 + sum2
}

func (cumulativeSumsTest) Print(rs *RunState, w *reportWriter) error {
	ts := rs.State(CumulativeSums)
	pvals := ts.PVal.Slice()
	for i := 0; i < ts.Stats.Len(); i++ {
		stat := ts.Stats.At(i).(cumulativeSumsStat)
		w.WriteStat("forward: success=%t z=%d  backward: success=%t z=%d",
			stat.successForward, stat.zForward, stat.successBackward, stat.zBackward)
	}
	for i, p := range pvals {
		w.WriteResult(i%2, p)
	}
	return nil
}

func (cumulativeSumsTest) Destroy(*RunState) {}
