// Package metrics defines the Prometheus collectors exported by the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts RunTestSuite and AssessPValues RPCs by method and
	// outcome.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nist_requests_total",
		Help: "Total number of RunTestSuite and AssessPValues requests by method and status.",
	}, []string{"method", "status"})

	// TestsTotal counts individual test outcomes across all requests.
	TestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nist_tests_total",
		Help: "Total number of individual NIST test outcomes by test name and pass/fail status.",
	}, []string{"test", "status"})

	// PValue tracks the most recent p-value produced by each test.
	PValue = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "nist_test_p_value",
		Help: "Most recent p-value produced by each NIST test.",
	}, []string{"test"})

	// OverallDuration records wall-clock time spent running the full suite.
	OverallDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "nist_suite_duration_seconds",
		Help:    "Time spent executing the full NIST test suite against one bitstream.",
		Buckets: prometheus.DefBuckets,
	})

	// LastOverallPassRate tracks the most recent request's pass rate across
	// the tests that produced a p-value.
	LastOverallPassRate = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "nist_last_overall_pass_rate",
		Help: "Fraction of tests that produced a p-value and passed in the most recent request.",
	})

	// UniformityChi2 tracks the uniformity chi-square statistic over a run's
	// p-value distribution, one gauge per test, per partition.
	UniformityChi2 = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "nist_uniformity_chi2",
		Help: "Uniformity chi-square statistic for a test partition's p-value distribution.",
	}, []string{"test", "partition"})

	// ProportionPass tracks whether a test partition's pass proportion fell
	// within the NIST acceptance interval for the most recent batch run.
	ProportionPass = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "nist_proportion_pass",
		Help: "1 if a test partition's proportion of passes fell within the acceptance interval, 0 otherwise.",
	}, []string{"test", "partition"})
)
