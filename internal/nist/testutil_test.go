package nist

// newHarness builds a minimal RunState suitable for driving a single
// test's Iterate directly, without going through NewRunState's minimum-
// length gate -- useful for tests whose real minimum length (e.g.
// Universal's 387,840 bits) would make a table-driven unit test too slow
// to be worth running on every change.
func newHarness(bits []byte, alpha float64, id TestID, partitionCount int) *RunState {
	n := int64(len(bits)) * 8
	rs := &RunState{
		Config: RunConfig{N: n, NumOfBitStreams: 1, Alpha: alpha},
	}
	rs.Const.compute(n)
	rs.Config.TestVector[id] = true
	rs.epsilon = [][]byte{make([]byte, n)}
	rs.input = NewBitAccessor(bits)
	rs.input.Extract(0, n, rs.epsilon[0])
	rs.state[id] = &TestState{
		Enabled:        true,
		PartitionCount: partitionCount,
		IsExcursion:    id == RandomExcursions || id == RandomExcursionsVariant,
		PVal:           NewDynArray[float64](partitionCount),
	}
	return rs
}

// repeatBits builds a byte slice of n bits by repeating pattern (0/1
// values), packing 8 bits MSB-first per byte.
func repeatBits(pattern []byte, n int) []byte {
	out := make([]byte, (n+7)/8)
	for i := 0; i < n; i++ {
		bit := pattern[i%len(pattern)]
		if bit != 0 {
			out[i/8] |= 1 << uint(7-i%8)
		}
	}
	return out
}
