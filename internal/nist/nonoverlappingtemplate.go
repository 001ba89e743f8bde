package nist

// nonOverlappingTemplates is a small fixed set of 9-bit aperiodic
// templates (a subset of the NIST template bank), matching the shape of
// the reference test (one p-value per template) without carrying the
// full 148-template table.
var nonOverlappingTemplates = [][]byte{
	{0, 0, 0, 0, 0, 0, 0, 0, 1},
	{0, 0, 0, 0, 0, 0, 0, 1, 1},
	{0, 0, 0, 0, 0, 0, 1, 0, 1},
	{0, 0, 0, 0, 0, 1, 0, 1, 1},
	{0, 0, 0, 0, 1, 0, 0, 1, 1},
	{0, 0, 0, 1, 0, 0, 1, 0, 1},
	{0, 0, 1, 0, 1, 0, 0, 1, 1},
	{0, 1, 0, 0, 1, 0, 1, 0, 1},
}

const nonOverlappingTemplateBlocks = 8

type nonOverlappingTemplateTest struct{}

func (nonOverlappingTemplateTest) ID() TestID       { return NonOverlappingTemplate }
func (nonOverlappingTemplateTest) Name() string     { return "NonOverlappingTemplate" }
func (nonOverlappingTemplateTest) MinLength() int64 { return 1000 }
func (nonOverlappingTemplateTest) PartitionCount(RunConfig) int {
	return len(nonOverlappingTemplates)
}

func (nonOverlappingTemplateTest) Init(*RunState) error { return nil }

func (nonOverlappingTemplateTest) Iterate(rs *RunState, threadID int, iteration int64) error {
	eps := rs.ThreadBuffer(threadID)
	n := rs.Config.N
	numBlocks := int64(nonOverlappingTemplateBlocks)
	blockLen := n / numBlocks

	ts := rs.State(NonOverlappingTemplate)

	for templateIdx, template := range nonOverlappingTemplates {
		m := int64(len(template))
		mean := float64(blockLen-m+1) / exp2(m)
		variance := float64(blockLen) * (1.0/exp2(m) - float64(2*m-1)/exp2(2*m))

		var chi2 float64
		for b := int64(0); b < numBlocks; b++ {
			block := eps[b*blockLen : (b+1)*blockLen]
			var matches int64
			for i := int64(0); i+m <= blockLen; i++ {
				if matchesTemplate(block[i:i+m], template) {
					matches++
					i += m - 1 // non-overlapping: skip past the match
				}
			}
			diff := float64(matches) - mean
			chi2 += diff * diff / variance
		}

		p := igamc(float64(numBlocks)/2.0, chi2/2.0)
		slot := int(iteration)*len(nonOverlappingTemplates) + templateIdx
		ts.RecordPValue(slot, p, rs.Config.Alpha, "NonOverlappingTemplate", iteration)
	}

	return nil
}

func matchesTemplate(window, template []byte) bool {
	for i := range template {
		if window[i] != template[i] {
			return false
		}
	}
	return true
}

func exp2(k int64) float64 {
	return float64(int64(1) << uint(k))
}

func (nonOverlappingTemplateTest) Print(rs *RunState, w *reportWriter) error {
	ts := rs.State(NonOverlappingTemplate)
	for i, p := range ts.PVal.Slice() {
		w.WriteResult(i%len(nonOverlappingTemplates), p)
	}
	return nil
}

func (nonOverlappingTemplateTest) Destroy(*RunState) {}
