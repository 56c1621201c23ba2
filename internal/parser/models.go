package parser

import "errors"

// ErrDuplicateSection is returned when a log repeats a section header.
// A repeated label almost always means two runs were concatenated into one file.
var ErrDuplicateSection = errors.New("duplicate section header")

// SectionTable holds the samples of a performance log, keyed by section label.
// Labels keeps the order in which headers were first seen; map iteration order
// must never be used for output.
type SectionTable struct {
	Labels  []string
	Samples map[string][]float64
}

// NewSectionTable returns an empty table ready for use.
func NewSectionTable() *SectionTable {
	return &SectionTable{
		Labels:  make([]string, 0),
		Samples: make(map[string][]float64),
	}
}

// Len returns the number of sections.
func (t *SectionTable) Len() int {
	return len(t.Labels)
}

// Series returns the samples of a section, nil if absent.
func (t *SectionTable) Series(label string) []float64 {
	return t.Samples[label]
}

// MaxSeriesLen returns the length of the longest section.
func (t *SectionTable) MaxSeriesLen() int {
	n := 0
	for _, label := range t.Labels {
		if l := len(t.Samples[label]); l > n {
			n = l
		}
	}
	return n
}

// NumSamples counts samples across all sections.
func (t *SectionTable) NumSamples() int {
	n := 0
	for _, s := range t.Samples {
		n += len(s)
	}
	return n
}

func (t *SectionTable) open(label string) error {
	if _, ok := t.Samples[label]; ok {
		return ErrDuplicateSection
	}
	t.Labels = append(t.Labels, label)
	t.Samples[label] = make([]float64, 0)
	return nil
}

func (t *SectionTable) add(label string, vals ...float64) {
	t.Samples[label] = append(t.Samples[label], vals...)
}
