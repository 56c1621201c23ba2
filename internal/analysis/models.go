package analysis

import (
	"errors"
	"fmt"
)

// ErrNoSamples is returned when a table has nothing to plot.
var ErrNoSamples = errors.New("no samples to plot")

// Reducer collapses the samples of one section into a single bar height.
type Reducer string

const (
	ReduceLast Reducer = "last"
	ReduceMean Reducer = "mean"
	ReduceMax  Reducer = "max"
	ReduceMin  Reducer = "min"
)

// ParseReducer maps a configuration value to a Reducer. The empty string
// selects ReduceLast.
func ParseReducer(s string) (Reducer, error) {
	switch Reducer(s) {
	case "":
		return ReduceLast, nil
	case ReduceLast, ReduceMean, ReduceMax, ReduceMin:
		return Reducer(s), nil
	}
	return "", fmt.Errorf("unknown reducer %q (want last, mean, max or min)", s)
}

// Series is one labelled line of a line chart. X and Y have equal length.
type Series struct {
	Label string
	X     []float64
	Y     []float64
}

// Bar is one bar of a bar chart.
type Bar struct {
	Section  string // full section label
	Category string // axis label derived from Section
	Height   float64
	Samples  int // number of samples the height was reduced from
}

// BarResults holds the bars of one chart plus non-fatal problems found
// while building them.
type BarResults struct {
	Bars     []Bar
	Reducer  Reducer
	Warnings []string
}

func NewBarResults(r Reducer) *BarResults {
	return &BarResults{
		Bars:     make([]Bar, 0),
		Reducer:  r,
		Warnings: make([]string, 0),
	}
}

// Heights returns the bar heights in bar order.
func (r *BarResults) Heights() []float64 {
	h := make([]float64, len(r.Bars))
	for i, b := range r.Bars {
		h[i] = b.Height
	}
	return h
}

// Categories returns the bar labels in bar order.
func (r *BarResults) Categories() []string {
	c := make([]string, len(r.Bars))
	for i, b := range r.Bars {
		c[i] = b.Category
	}
	return c
}
