package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRequestsTotalIncrements(t *testing.T) {
	RequestsTotal.Reset()
	RequestsTotal.WithLabelValues("RunTestSuite", "ok").Inc()
	RequestsTotal.WithLabelValues("RunTestSuite", "ok").Inc()

	got := testutil.ToFloat64(RequestsTotal.WithLabelValues("RunTestSuite", "ok"))
	if got != 2 {
		t.Errorf("RequestsTotal = %v, want 2", got)
	}
}

func TestPValueGaugeRecordsLatestValue(t *testing.T) {
	PValue.WithLabelValues("Frequency").Set(0.42)
	got := testutil.ToFloat64(PValue.WithLabelValues("Frequency"))
	if got != 0.42 {
		t.Errorf("PValue = %v, want 0.42", got)
	}
}

func TestLastOverallPassRateGauge(t *testing.T) {
	LastOverallPassRate.Set(0.93)
	if got := testutil.ToFloat64(LastOverallPassRate); got != 0.93 {
		t.Errorf("LastOverallPassRate = %v, want 0.93", got)
	}
}

func TestUniformityAndProportionGaugesArePerPartition(t *testing.T) {
	UniformityChi2.WithLabelValues("Serial", "1").Set(5.5)
	UniformityChi2.WithLabelValues("Serial", "2").Set(6.5)
	if got := testutil.ToFloat64(UniformityChi2.WithLabelValues("Serial", "1")); got != 5.5 {
		t.Errorf("UniformityChi2 partition 1 = %v, want 5.5", got)
	}
	if got := testutil.ToFloat64(UniformityChi2.WithLabelValues("Serial", "2")); got != 6.5 {
		t.Errorf("UniformityChi2 partition 2 = %v, want 6.5", got)
	}

	ProportionPass.WithLabelValues("Frequency", "1").Set(1)
	if got := testutil.ToFloat64(ProportionPass.WithLabelValues("Frequency", "1")); got != 1 {
		t.Errorf("ProportionPass = %v, want 1", got)
	}
}

func TestOverallDurationObserves(t *testing.T) {
	before := testutil.CollectAndCount(OverallDuration)
	OverallDuration.Observe(0.5)
	after := testutil.CollectAndCount(OverallDuration)
	if after != before {
		t.Errorf("CollectAndCount = %d, want unchanged metric count %d", after, before)
	}
}
