package nist

import "math"

// AggregateMetrics is the Metrics Aggregator (spec §4.3): after all
// iterations are done, for each partition of a test it bins the
// partition's p-values into uniformity bins, computes a uniformity
// chi-square/p-value, checks the pass-proportion bound, and classifies a
// four-way verdict. All fifteen tests call through this single shared
// implementation rather than each re-deriving the same statistics.
func AggregateMetrics(testID TestID, ts *TestState, cfg RunConfig) []PartitionMetrics {
	if ts == nil || !ts.Enabled {
		return nil
	}

	pvals := ts.PVal.Slice()
	out := make([]PartitionMetrics, ts.PartitionCount)

	for j := 0; j < ts.PartitionCount; j++ {
		pm := PartitionMetrics{
			Test:      testID,
			Partition: j,
			Bins:      make([]int64, cfg.UniformityBins),
		}

		var sampleCount, tooLow int64
		for k := j; k < len(pvals); k += ts.PartitionCount {
			p := pvals[k]
			if IsNonPValue(p) {
				continue
			}
			if ts.IsExcursion && p == 0 {
				continue
			}
			sampleCount++
			if p < cfg.Alpha {
				tooLow++
			}
			pm.Bins[binIndex(p, cfg.UniformityBins)]++
		}
		pm.SampleCount = sampleCount
		pm.TooLow = tooLow

		pm.ExpectedCount = float64(sampleCount) / float64(cfg.UniformityBins)
		if pm.ExpectedCount <= 0 {
			pm.UniformityValid = false
			pm.Uniformity = 0
		} else {
			var chi2 float64
			for _, binCount := range pm.Bins {
				diff := float64(binCount) - pm.ExpectedCount
				chi2 += diff * diff / pm.ExpectedCount
			}
			pm.UniformityValid = true
			pm.Uniformity = igamc(float64(cfg.UniformityBins-1)/2.0, chi2/2.0)
		}

		if sampleCount == 0 {
			// No samples means there's nothing to bound a proportion over;
			// treat it as a forced failure rather than a vacuous 0-in-[0,0] pass
			// (mirrors the original's explicit sampleCount==0 proportion guard).
			pm.ProportionMin = 0
			pm.ProportionMax = 0
			pm.ProportionPass = false
		} else {
			pHat := 1.0 - cfg.Alpha
			bound := 3.0 * math.Sqrt(pHat*cfg.Alpha*float64(sampleCount))
			pm.ProportionMin = pHat*float64(sampleCount) - bound
			pm.ProportionMax = pHat*float64(sampleCount) + bound
			passed := float64(sampleCount - tooLow)
			pm.ProportionPass = passed >= pm.ProportionMin && passed <= pm.ProportionMax
		}

		pm.Verdict = classifyVerdict(pm.UniformityValid && pm.Uniformity >= cfg.UniformityLevel, pm.ProportionPass)
		out[j] = pm
	}

	return out
}

// binIndex clamps a p-value into [0, bins-1]; values >= 1 go to the last
// bin, values < 0 go to bin 0 (spec §4.3 step 1).
func binIndex(p float64, bins int) int {
	idx := int(p * float64(bins))
	if idx < 0 {
		idx = 0
	}
	if idx >= bins {
		idx = bins - 1
	}
	return idx
}

func classifyVerdict(uniformityPass, proportionPass bool) Verdict {
	switch {
	case uniformityPass && proportionPass:
		return VerdictPassedBoth
	case !uniformityPass && !proportionPass:
		return VerdictFailedBoth
	case !uniformityPass:
		return VerdictFailedUniformity
	default:
		return VerdictFailedProportion
	}
}
