package nist

import (
	"fmt"
	"path/filepath"
)

// RunReport is the outcome of a full Run: the full set of per-test,
// per-partition metrics (empty in iterate-only mode) plus the number of
// test-partitions that achieved PASSED_BOTH.
type RunReport struct {
	Metrics         []PartitionMetrics
	SuccessfulTests int64
	TotalPartitions int64
}

// Run sequences the stages of a single engine invocation according to
// cfg.Mode (spec §4.6): parse_args -> init -> (iterate if not
// assess-only) -> (write-p-val if iterate-only) -> (read-p-val if
// assess-only) -> (metrics if not iterate-only) -> destroy.
//
// input is nil in assess-only mode, where p-values are read back from
// pValueDir instead of recomputed.
func Run(cfg RunConfig, input *BitAccessor, pValueDir string) (*RunReport, error) {
	if cfg.Mode == ModeAssessOnly {
		return runAssessOnly(cfg, pValueDir)
	}

	rs, err := NewRunState(cfg, input)
	if err != nil {
		return nil, err
	}
	defer rs.Destroy()

	if err := rs.RunIterations(); err != nil {
		return nil, err
	}

	if err := rs.WriteResultsFiles(); err != nil {
		return nil, err
	}

	if cfg.Mode == ModeIterateOnly {
		if err := rs.writePValueFiles(pValueDir); err != nil {
			return nil, err
		}
		return &RunReport{}, nil
	}

	return rs.assess(), nil
}

// writePValueFiles persists every enabled test's p-value array under
// dir/<testName>.pval (spec §4.6 "write-p-val if iterate-only").
func (rs *RunState) writePValueFiles(dir string) error {
	for id := TestID(0); id < NumTests; id++ {
		if !rs.Enabled(id) {
			continue
		}
		ts := rs.State(id)
		path := filepath.Join(dir, rs.tests[id].Name()+".pval")
		if err := WritePValueFile(path, ts.PVal.Slice()); err != nil {
			return err
		}
	}
	return nil
}

// assess runs the Metrics Aggregator across every enabled test's
// in-memory p-value array (single-process path: the iteration stage's
// output is consumed directly, spec §9 "typed in-memory handoff").
func (rs *RunState) assess() *RunReport {
	report := &RunReport{}
	for id := TestID(0); id < NumTests; id++ {
		if !rs.Enabled(id) {
			continue
		}
		pms := AggregateMetrics(id, rs.State(id), rs.Config)
		for _, pm := range pms {
			report.TotalPartitions++
			if pm.Verdict == VerdictPassedBoth {
				report.SuccessfulTests++
			}
		}
		report.Metrics = append(report.Metrics, pms...)
	}
	rs.SuccessfulTests = report.SuccessfulTests
	return report
}

// runAssessOnly reads p-value files back from dir for every enabled test
// and aggregates metrics over them (spec §4.6 "read-p-val if
// assess-only"). It tolerates a partial directory (missing files logged
// as a warning, spec §7) -- the verdict then reports the reduced sample
// count for that test.
func runAssessOnly(cfg RunConfig, dir string) (*RunReport, error) {
	tests := allTests()
	report := &RunReport{}

	for id := TestID(0); id < NumTests; id++ {
		if !cfg.TestVector[id] {
			continue
		}
		t := tests[id]
		path := filepath.Join(dir, t.Name()+".pval")
		pvals, err := ReadPValueFile(path)
		if err != nil {
			warnf(t.Name(), "missing or unreadable p-value file %s: %v", path, err)
			continue
		}

		partitionCount := t.PartitionCount(cfg)
		ts := &TestState{
			Enabled:        true,
			PartitionCount: partitionCount,
			IsExcursion:    id == RandomExcursions || id == RandomExcursionsVariant,
			PVal:           NewDynArray[float64](len(pvals)),
		}
		for i, p := range pvals {
			ts.PVal.Set(i, p)
		}

		pms := AggregateMetrics(id, ts, cfg)
		for _, pm := range pms {
			report.TotalPartitions++
			if pm.Verdict == VerdictPassedBoth {
				report.SuccessfulTests++
			}
		}
		report.Metrics = append(report.Metrics, pms...)
	}

	if len(report.Metrics) == 0 {
		return nil, fmt.Errorf("nist: assess-only found no readable p-value files in %s", dir)
	}
	return report, nil
}
