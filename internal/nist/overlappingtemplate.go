package nist

// Overlapping Template Matching test, fixed to the canonical NIST
// parameter set: template = nine ones, M = 1032, N = 8 blocks, K = 5
// categories (0,1,2,3,4,>=5). pi is the asymptotic NIST reference table
// for these parameters.
const (
	overlappingTemplateM = 1032
	overlappingTemplateN = 8
	overlappingTemplateK = 5
)

var overlappingTemplatePi = [6]float64{
	0.364091, 0.185659, 0.139381, 0.100571, 0.070432, 0.139865,
}

var overlappingTemplate = []byte{1, 1, 1, 1, 1, 1, 1, 1, 1}

type overlappingTemplateTest struct{}

func (overlappingTemplateTest) ID() TestID       { return OverlappingTemplate }
func (overlappingTemplateTest) Name() string     { return "OverlappingTemplate" }
func (overlappingTemplateTest) MinLength() int64 { return overlappingTemplateM * overlappingTemplateN }
func (overlappingTemplateTest) PartitionCount(RunConfig) int { return 1 }

func (overlappingTemplateTest) Init(*RunState) error { return nil }

func (overlappingTemplateTest) Iterate(rs *RunState, threadID int, iteration int64) error {
	eps := rs.ThreadBuffer(threadID)
	m := int64(len(overlappingTemplate))

	var v [6]int64
	for b := 0; b < overlappingTemplateN; b++ {
		block := eps[int64(b)*overlappingTemplateM : int64(b+1)*overlappingTemplateM]
		var matches int64
		for i := int64(0); i+m <= overlappingTemplateM; i++ {
			if matchesTemplate(block[i:i+m], overlappingTemplate) {
				matches++
			}
		}
		bin := matches
		if bin > int64(overlappingTemplateK) {
			bin = int64(overlappingTemplateK)
		}
		v[bin]++
	}

	var chi2 float64
	for i := 0; i <= overlappingTemplateK; i++ {
		expected := float64(overlappingTemplateN) * overlappingTemplatePi[i]
		diff := float64(v[i]) - expected
		chi2 += diff * diff / expected
	}

	p := igamc(float64(overlappingTemplateK)/2.0, chi2/2.0)

	ts := rs.State(OverlappingTemplate)
	ts.RecordPValue(int(iteration), p, rs.Config.Alpha, "OverlappingTemplate", iteration)
	ts.RecordStat(int(iteration), v)
	return nil
}

func (overlappingTemplateTest) Print(rs *RunState, w *reportWriter) error {
	ts := rs.State(OverlappingTemplate)
	for _, p := range ts.PVal.Slice() {
		w.WriteResult(0, p)
	}
	return nil
}

func (overlappingTemplateTest) Destroy(*RunState) {}
