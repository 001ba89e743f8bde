package nist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// reportWriter bundles the human-readable files a test's Print may
// produce: stats.txt, results.txt, and -- if partitionCount > 1 -- one
// data<k>.txt per partition (spec §4.1, §6).
type reportWriter struct {
	stats    *bufio.Writer
	statsF   *os.File
	results  *bufio.Writer
	resultsF *os.File
	data     []*bufio.Writer
	dataF    []*os.File
}

func newReportWriter(dir string, partitionCount int) (*reportWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("nist: creating results subdir %s: %w", dir, err)
	}
	rw := &reportWriter{}

	sf, err := os.Create(filepath.Join(dir, "stats.txt"))
	if err != nil {
		return nil, err
	}
	rw.statsF = sf
	rw.stats = bufio.NewWriter(sf)

	rf, err := os.Create(filepath.Join(dir, "results.txt"))
	if err != nil {
		return nil, err
	}
	rw.resultsF = rf
	rw.results = bufio.NewWriter(rf)

	if partitionCount > 1 {
		rw.data = make([]*bufio.Writer, partitionCount)
		rw.dataF = make([]*os.File, partitionCount)
		for k := 0; k < partitionCount; k++ {
			df, err := os.Create(filepath.Join(dir, fmt.Sprintf("data%d.txt", k+1)))
			if err != nil {
				return nil, err
			}
			rw.dataF[k] = df
			rw.data[k] = bufio.NewWriter(df)
		}
	}

	return rw, nil
}

// WriteStat writes one free-form stats.txt line.
func (rw *reportWriter) WriteStat(format string, args ...any) {
	fmt.Fprintf(rw.stats, format+"\n", args...)
}

// WriteResult writes one p-value to results.txt, and to its data<k>.txt
// partition file if the test partitions. NON_P_VALUE renders as
// __INVALID__ (spec §3, §6).
func (rw *reportWriter) WriteResult(partition int, p float64) {
	s := formatPValue(p)
	fmt.Fprintln(rw.results, s)
	if rw.data != nil {
		fmt.Fprintln(rw.data[partition], s)
	}
}

func formatPValue(p float64) string {
	if IsNonPValue(p) {
		return "__INVALID__"
	}
	return fmt.Sprintf("%f", p)
}

func (rw *reportWriter) Close() error {
	var firstErr error
	flushClose := func(w *bufio.Writer, f *os.File) {
		if w == nil {
			return
		}
		if err := w.Flush(); err != nil && firstErr == nil {
			firstErr = err
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	flushClose(rw.stats, rw.statsF)
	flushClose(rw.results, rw.resultsF)
	for i := range rw.data {
		flushClose(rw.data[i], rw.dataF[i])
	}
	return firstErr
}

// WriteResultsFiles drives Print across every enabled test, writing
// stats.txt/results.txt/data<k>.txt under cfg.ResultsDir/<testName>/
// (spec §4.1's print operation, §6's named outputs).
func (rs *RunState) WriteResultsFiles() error {
	if !rs.Config.ResultsFile {
		return nil
	}
	for id := TestID(0); id < NumTests; id++ {
		if !rs.Enabled(id) {
			continue
		}
		ts := rs.State(id)
		subdir := filepath.Join(rs.Config.ResultsDir, rs.tests[id].Name())
		ts.SubDir = subdir
		rw, err := newReportWriter(subdir, ts.PartitionCount)
		if err != nil {
			return err
		}
		if err := rs.tests[id].Print(rs, rw); err != nil {
			rw.Close()
			return err
		}
		if err := rw.Close(); err != nil {
			return err
		}
	}
	return nil
}

// WriteFinalAnalysisReport writes finalAnalysisReport.txt: one line per
// test-partition with the uniformity-bin histogram, uniformity p-value
// (or "----" if not computable), pass-count/sample-count, a failure
// marker, and the test name (spec §6).
func WriteFinalAnalysisReport(w io.Writer, cfg RunConfig, metrics []PartitionMetrics) error {
	header := strings.Repeat("-", 105)
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%-3s %-3s %-3s %-3s %-3s %-3s %-3s %-3s %-3s %-3s  %-10s %-12s %s\n",
		"C1", "C2", "C3", "C4", "C5", "C6", "C7", "C8", "C9", "C10", "P-VALUE", "PROPORTION", "STATISTICAL TEST"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	for _, pm := range metrics {
		for _, b := range pm.Bins {
			if _, err := fmt.Fprintf(w, "%3d ", b); err != nil {
				return err
			}
		}

		uniformity := "----"
		if pm.UniformityValid {
			uniformity = fmt.Sprintf("%f", pm.Uniformity)
		}

		marker := " "
		if pm.Verdict != VerdictPassedBoth {
			marker = "*"
		}

		name := pm.Test.String()
		if len(metrics) > 1 {
			name = fmt.Sprintf("%s (partition %d)", name, pm.Partition+1)
		}

		if _, err := fmt.Fprintf(w, " %s%-10s %4d/%-4d   %s\n",
			marker, uniformity, pm.SampleCount-pm.TooLow, pm.SampleCount, name); err != nil {
			return err
		}
	}

	return nil
}
