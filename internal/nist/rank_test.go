package nist

import "testing"

func TestBinaryMatrixRankIdentity(t *testing.T) {
	m := make([][]uint32, 4)
	for i := range m {
		m[i] = make([]uint32, 4)
		m[i][i] = 1
	}
	if got := binaryMatrixRank(m); got != 4 {
		t.Errorf("rank of identity = %d, want 4", got)
	}
}

func TestBinaryMatrixRankAllZeros(t *testing.T) {
	m := make([][]uint32, 4)
	for i := range m {
		m[i] = make([]uint32, 4)
	}
	if got := binaryMatrixRank(m); got != 0 {
		t.Errorf("rank of zero matrix = %d, want 0", got)
	}
}

func TestBinaryMatrixRankDuplicateRow(t *testing.T) {
	m := [][]uint32{
		{1, 0, 1},
		{1, 0, 1}, // duplicate of row 0
		{0, 1, 0},
	}
	if got := binaryMatrixRank(m); got != 2 {
		t.Errorf("rank = %d, want 2", got)
	}
}

func TestRankAllOnesMatrices(t *testing.T) {
	// A block of all 1s in every row makes every row identical, so each
	// 32x32 matrix should have rank 1, landing every matrix in "other".
	bits := repeatBits([]byte{1}, rankMatrixSize*rankMatrixSize*2)
	rs := newHarness(bits, 0.01, Rank, 1)

	if err := (rankTest{}).Iterate(rs, 0, 0); err != nil {
		t.Fatalf("Iterate returned error: %v", err)
	}

	p := rs.State(Rank).PVal.At(0)
	if p < 0 || p > 1 {
		t.Fatalf("p-value out of range: %f", p)
	}
}
