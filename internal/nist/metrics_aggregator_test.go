package nist

import "testing"

func TestBinIndexClampsToRange(t *testing.T) {
	cases := []struct {
		p    float64
		bins int
		want int
	}{
		{-0.5, 10, 0},
		{0.0, 10, 0},
		{0.05, 10, 0},
		{0.95, 10, 9},
		{1.0, 10, 9},
		{1.5, 10, 9},
	}
	for _, c := range cases {
		if got := binIndex(c.p, c.bins); got != c.want {
			t.Errorf("binIndex(%f, %d) = %d, want %d", c.p, c.bins, got, c.want)
		}
	}
}

func TestClassifyVerdict(t *testing.T) {
	cases := []struct {
		uniformityPass, proportionPass bool
		want                           Verdict
	}{
		{true, true, VerdictPassedBoth},
		{false, true, VerdictFailedUniformity},
		{true, false, VerdictFailedProportion},
		{false, false, VerdictFailedBoth},
	}
	for _, c := range cases {
		if got := classifyVerdict(c.uniformityPass, c.proportionPass); got != c.want {
			t.Errorf("classifyVerdict(%v, %v) = %v, want %v", c.uniformityPass, c.proportionPass, got, c.want)
		}
	}
}

func TestAggregateMetricsDisabledTestReturnsNil(t *testing.T) {
	if got := AggregateMetrics(Frequency, nil, DefaultRunConfig()); got != nil {
		t.Errorf("AggregateMetrics(nil state) = %v, want nil", got)
	}
	ts := &TestState{Enabled: false}
	if got := AggregateMetrics(Frequency, ts, DefaultRunConfig()); got != nil {
		t.Errorf("AggregateMetrics(disabled) = %v, want nil", got)
	}
}

func TestAggregateMetricsUniformAndPassing(t *testing.T) {
	cfg := DefaultRunConfig()
	cfg.UniformityBins = 10
	cfg.Alpha = 0.01

	ts := &TestState{Enabled: true, PartitionCount: 1, PVal: NewDynArray[float64](10)}
	// Ten p-values, one per bin, all comfortably above alpha.
	vals := []float64{0.05, 0.15, 0.25, 0.35, 0.45, 0.55, 0.65, 0.75, 0.85, 0.95}
	for i, v := range vals {
		ts.PVal.Set(i, v)
	}

	metrics := AggregateMetrics(Frequency, ts, cfg)
	if len(metrics) != 1 {
		t.Fatalf("len(metrics) = %d, want 1", len(metrics))
	}
	pm := metrics[0]
	if pm.SampleCount != 10 {
		t.Errorf("SampleCount = %d, want 10", pm.SampleCount)
	}
	if pm.TooLow != 0 {
		t.Errorf("TooLow = %d, want 0", pm.TooLow)
	}
	if !pm.UniformityValid {
		t.Error("expected UniformityValid to be true with a perfectly even bin spread")
	}
	if pm.Verdict != VerdictPassedBoth {
		t.Errorf("Verdict = %v, want VerdictPassedBoth", pm.Verdict)
	}
}

func TestAggregateMetricsZeroSamplePartitionForcesFailure(t *testing.T) {
	cfg := DefaultRunConfig()
	ts := &TestState{Enabled: true, PartitionCount: 1, IsExcursion: true, PVal: NewDynArray[float64](2)}
	ts.PVal.Set(0, NonPValue)
	ts.PVal.Set(1, 0)

	metrics := AggregateMetrics(RandomExcursions, ts, cfg)
	pm := metrics[0]
	if pm.SampleCount != 0 {
		t.Fatalf("SampleCount = %d, want 0", pm.SampleCount)
	}
	if pm.ProportionPass {
		t.Error("expected ProportionPass = false for a zero-sample partition, not a vacuous 0-in-[0,0] pass")
	}
	if pm.Verdict == VerdictPassedBoth {
		t.Error("a zero-sample partition must not report VerdictPassedBoth")
	}
}

func TestAggregateMetricsSkipsNonPValuesAndExcursionZeros(t *testing.T) {
	cfg := DefaultRunConfig()
	ts := &TestState{Enabled: true, PartitionCount: 1, IsExcursion: true, PVal: NewDynArray[float64](3)}
	ts.PVal.Set(0, NonPValue)
	ts.PVal.Set(1, 0)
	ts.PVal.Set(2, 0.5)

	metrics := AggregateMetrics(RandomExcursions, ts, cfg)
	if metrics[0].SampleCount != 1 {
		t.Errorf("SampleCount = %d, want 1 (NonPValue and excursion-zero entries excluded)", metrics[0].SampleCount)
	}
}
