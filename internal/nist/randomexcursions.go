package nist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Random Excursions test: partitions the walk into cycles (returns to
// zero) and, for each of the 8 states x in {-4,-3,-2,-1,1,2,3,4},
// compares the observed visit-count distribution against the
// theoretical distribution of a simple random walk.
var randomExcursionsStates = [8]int64{-4, -3, -2, -1, 1, 2, 3, 4}

const randomExcursionsMinLength = 1000000

type randomExcursionsTest struct{}

func (randomExcursionsTest) ID() TestID             { return RandomExcursions }
func (randomExcursionsTest) Name() string           { return "RandomExcursions" }
func (randomExcursionsTest) MinLength() int64       { return randomExcursionsMinLength }
func (randomExcursionsTest) PartitionCount(RunConfig) int { return 8 }

func (randomExcursionsTest) Init(*RunState) error { return nil }

func (randomExcursionsTest) Iterate(rs *RunState, threadID int, iteration int64) error {
	eps := rs.ThreadBuffer(threadID)
	n := rs.Config.N

	walk := make([]int64, n+2)
	walk[0] = 0
	var s int64
	for i := int64(0); i < n; i++ {
		if eps[i] != 0 {
			s++
		} else {
			s--
		}
		walk[i+1] = s
	}
	walk[n+1] = 0 // sentinel return-to-zero so the final cycle always closes

	ts := rs.State(RandomExcursions)

	var cycles int64
	var counts [8]map[int64]int64
	for i := range counts {
		counts[i] = make(map[int64]int64)
	}

	var cycleVisits [8]int64
	for _, v := range walk[1:] {
		if v == 0 {
			cycles++
			for k := range counts {
				counts[k][cycleVisits[k]]++
				cycleVisits[k] = 0
			}
			continue
		}
		for k, x := range randomExcursionsStates {
			if v == x {
				cycleVisits[k]++
			}
		}
	}

	// Only the sentinel closed a cycle: the walk never returned to zero.
	if cycles <= 1 {
		for state := 0; state < 8; state++ {
			slot := int(iteration)*8 + state
			ts.RecordPValue(slot, NonPValue, rs.Config.Alpha, "RandomExcursions", iteration)
		}
		return nil
	}

	for state, x := range randomExcursionsStates {
		pi := randomExcursionsPi(x)
		var chi2 float64
		for k := 0; k <= 5; k++ {
			expected := float64(cycles) * pi[k]
			observed := float64(counts[state][int64(k)])
			if k == 5 {
				// lump all visit counts >= 5 into the tail category
				observed = 0
				for v, c := range counts[state] {
					if v >= 5 {
						observed += float64(c)
					}
				}
			}
			diff := observed - expected
			chi2 += diff * diff / expected
		}
		// Survival(chi2) of a 5-degree-of-freedom chi-square is the same
		// upper tail probability as igamc(2.5, chi2/2.0); reuse the
		// distribution type here instead of going through the raw kernel.
		p := distuv.ChiSquared{K: 5}.Survival(chi2)
		slot := int(iteration)*8 + state
		ts.RecordPValue(slot, p, rs.Config.Alpha, "RandomExcursions", iteration)
	}

	return nil
}

// randomExcursionsPi returns the theoretical visit-count distribution
// for state x over categories 0..5 (5 meaning ">=5 visits"), per the
// NIST reference formula.
func randomExcursionsPi(x int64) [6]float64 {
	absX := math.Abs(float64(x))
	var pi [6]float64
	pi[0] = 1.0 - 1.0/(2.0*absX)
	for k := 1; k <= 4; k++ {
		pi[k] = (1.0 / (4.0 * absX * absX)) * math.Pow(1.0-1.0/(2.0*absX), float64(k-1))
	}
	pi[5] = (1.0 / (2.0 * absX)) * math.Pow(1.0-1.0/(2.0*absX), 4.0)
	return pi
}

func (randomExcursionsTest) Print(rs *RunState, w *reportWriter) error {
	ts := rs.State(RandomExcursions)
	for i, p := range ts.PVal.Slice() {
		w.WriteResult(i%8, p)
	}
	return nil
}

func (randomExcursionsTest) Destroy(*RunState) {}
