package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/user/parlab_tools_go/internal/parser"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// BarPadding is added below the lowest and above the highest bar.
const BarPadding = 0.2

// SyntheticX returns the placeholder independent variable used when a line
// chart has no configured X values: 10^k * 1e-6 for k = n down to 1, so the
// first sample gets the largest X.
func SyntheticX(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = math.Pow(10, float64(n-i)) * 1e-6
	}
	return xs
}

// CategoryLabel returns the last whitespace-separated token of a section
// label, e.g. "threads 4" -> "4".
func CategoryLabel(label string) string {
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return label
	}
	return fields[len(fields)-1]
}

// Reduce applies r to samples. samples must not be empty.
func Reduce(r Reducer, samples []float64) float64 {
	switch r {
	case ReduceMean:
		return stat.Mean(samples, nil)
	case ReduceMax:
		return floats.Max(samples)
	case ReduceMin:
		return floats.Min(samples)
	default:
		return samples[len(samples)-1]
	}
}

// PaddedRange returns [min(vals)-pad, max(vals)+pad]. vals must not be empty.
func PaddedRange(vals []float64, pad float64) (lo, hi float64) {
	return floats.Min(vals) - pad, floats.Max(vals) + pad
}

// CheckLogDomain fails if any value cannot be shown on a logarithmic axis.
func CheckLogDomain(axis string, vals []float64) error {
	for _, v := range vals {
		if v <= 0 || math.IsNaN(v) {
			return fmt.Errorf("%s axis is logarithmic but data contains %g", axis, v)
		}
	}
	return nil
}

// LineSeries builds one series per non-empty section, in table order.
//
// When xValues is empty, each series is plotted against SyntheticX of its own
// length. Otherwise sample i is plotted at xValues[i], and xValues must be at
// least as long as the longest section.
func LineSeries(table *parser.SectionTable, xValues []float64) ([]Series, error) {
	if table == nil || table.NumSamples() == 0 {
		return nil, ErrNoSamples
	}
	if len(xValues) > 0 && len(xValues) < table.MaxSeriesLen() {
		return nil, fmt.Errorf("%d x values configured but longest section has %d samples", len(xValues), table.MaxSeriesLen())
	}

	series := make([]Series, 0, table.Len())
	for _, label := range table.Labels {
		samples := table.Series(label)
		if len(samples) == 0 {
			continue
		}
		var xs []float64
		if len(xValues) > 0 {
			xs = append([]float64(nil), xValues[:len(samples)]...)
		} else {
			xs = SyntheticX(len(samples))
		}
		series = append(series, Series{
			Label: label,
			X:     xs,
			Y:     append([]float64(nil), samples...),
		})
	}
	return series, nil
}

// BarHeights reduces every section to one bar. Sections without samples are
// skipped and reported in the warnings.
func BarHeights(table *parser.SectionTable, r Reducer) (*BarResults, error) {
	if table == nil {
		return nil, ErrNoSamples
	}
	results := NewBarResults(r)
	for _, label := range table.Labels {
		samples := table.Series(label)
		if len(samples) == 0 {
			results.Warnings = append(results.Warnings, fmt.Sprintf("Section '%s' has no samples, no bar drawn.", label))
			continue
		}
		results.Bars = append(results.Bars, Bar{
			Section:  label,
			Category: CategoryLabel(label),
			Height:   Reduce(r, samples),
			Samples:  len(samples),
		})
	}
	if len(results.Bars) == 0 {
		return nil, ErrNoSamples
	}
	return results, nil
}
