package histogram

// Mismatch is a bin where two histograms disagree.
type Mismatch struct {
	Level     int
	Computed  int64
	Reference int64
}

// Delta is Computed - Reference.
func (m Mismatch) Delta() int64 {
	return m.Computed - m.Reference
}

// Equal reports whether every bin of a and b is identical, empty bins included.
func Equal(a, b Counts) bool {
	return a == b
}

// Diff lists the bins where computed and reference differ, by ascending level.
func Diff(computed, reference Counts) []Mismatch {
	var out []Mismatch
	for i := range computed {
		if computed[i] != reference[i] {
			out = append(out, Mismatch{Level: i, Computed: computed[i], Reference: reference[i]})
		}
	}
	return out
}
