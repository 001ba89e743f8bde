package nist

import "math"

const (
	rankMatrixSize = 32
	rankMinLength  = rankMatrixSize * rankMatrixSize * 38 // spec-required 38 matrices worth of headroom
)

// rankProbFullRank, rankProbRankMinus1, rankProbOther are the asymptotic
// NIST constants for 32x32 binary matrix rank distribution.
const (
	rankProbFullRank   = 0.2888
	rankProbRankMinus1 = 0.5776
	rankProbOther      = 1.0 - rankProbFullRank - rankProbRankMinus1
)

type rankTest struct{}

func (rankTest) ID() TestID             { return Rank }
func (rankTest) Name() string           { return "Rank" }
func (rankTest) MinLength() int64       { return rankMinLength }
func (rankTest) PartitionCount(RunConfig) int { return 1 }

func (rankTest) Init(*RunState) error { return nil }

func (rankTest) Iterate(rs *RunState, threadID int, iteration int64) error {
	eps := rs.ThreadBuffer(threadID)
	n := rs.Config.N
	matrixBits := int64(rankMatrixSize * rankMatrixSize)
	numMatrices := n / matrixBits

	var fullRank, rankMinus1, other int64
	matrix := make([][]uint32, rankMatrixSize)
	for r := range matrix {
		matrix[r] = make([]uint32, rankMatrixSize)
	}

	for i := int64(0); i < numMatrices; i++ {
		base := eps[i*matrixBits : (i+1)*matrixBits]
		for r := 0; r < rankMatrixSize; r++ {
			for c := 0; c < rankMatrixSize; c++ {
				matrix[r][c] = uint32(base[r*rankMatrixSize+c])
			}
		}
		rank := binaryMatrixRank(matrix)
		switch {
		case rank == rankMatrixSize:
			fullRank++
		case rank == rankMatrixSize-1:
			rankMinus1++
		default:
			other++
		}
	}

	chi2 := sq(float64(fullRank)-float64(numMatrices)*rankProbFullRank) / (float64(numMatrices) * rankProbFullRank)
	chi2 += sq(float64(rankMinus1)-float64(numMatrices)*rankProbRankMinus1) / (float64(numMatrices) * rankProbRankMinus1)
	chi2 += sq(float64(other)-float64(numMatrices)*rankProbOther) / (float64(numMatrices) * rankProbOther)

	p := math.Exp(-chi2 / 2.0)

	ts := rs.State(Rank)
	ts.RecordPValue(int(iteration), p, rs.Config.Alpha, "Rank", iteration)
	ts.RecordStat(int(iteration), [3]int64{fullRank, rankMinus1, other})
	return nil
}

// binaryMatrixRank computes the rank over GF(2) of a square bit matrix
// via Gaussian elimination with XOR row reduction.
func binaryMatrixRank(m [][]uint32) int {
	size := len(m)
	rows := make([][]uint32, size)
	for i := range m {
		rows[i] = append([]uint32(nil), m[i]...)
	}

	rank := 0
	for col := 0; col < size && rank < size; col++ {
		pivot := -1
		for r := rank; r < size; r++ {
			if rows[r][col] != 0 {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			continue
		}
		rows[rank], rows[pivot] = rows[pivot], rows[rank]
		for r := 0; r < size; r++ {
			if r != rank && rows[r][col] != 0 {
				for c := 0; c < size; c++ {
					rows[r][c] ^= rows[rank][c]
				}
			}
		}
		rank++
	}
	return rank
}

func sq(x float64) float64 { return x * x }

func (rankTest) Print(rs *RunState, w *reportWriter) error {
	ts := rs.State(Rank)
	for _, p := range ts.PVal.Slice() {
		w.WriteResult(0, p)
	}
	return nil
}

func (rankTest) Destroy(*RunState) {}
