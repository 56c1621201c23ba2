package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/user/parlab_tools_go/internal/analysis"

	"gopkg.in/yaml.v3"
)

// ErrInvalidChart is wrapped by every chart validation failure.
var ErrInvalidChart = errors.New("invalid chart configuration")

type ChartKind string

const (
	KindLine ChartKind = "line"
	KindBar  ChartKind = "bar"
)

type Scale string

const (
	ScaleLinear Scale = "linear"
	ScaleLog    Scale = "log"
)

// Chart describes one figure: where its data comes from and how it is drawn.
// A Chart is not modified after Normalize.
type Chart struct {
	File    string    `yaml:"file"`
	FigName string    `yaml:"fig_name"`
	XLabel  string    `yaml:"xlabel"`
	YLabel  string    `yaml:"ylabel"`
	Kind    ChartKind `yaml:"kind"`
	XScale  Scale     `yaml:"xscale,omitempty"`
	YScale  Scale     `yaml:"yscale,omitempty"`

	// XValues is the measured independent variable of a line chart. When
	// empty, a synthetic decade sequence is used instead.
	XValues []float64 `yaml:"x_values,omitempty"`

	// Reducer picks the bar height from a section's samples (bar charts only).
	Reducer string `yaml:"reducer,omitempty"`
}

// ChartSet is the top level of a chart file.
type ChartSet struct {
	Title  string  `yaml:"title"`
	Charts []Chart `yaml:"charts"`
}

//go:embed default_charts.yaml
var defaultCharts []byte

// Normalize fills in defaults: linear scales, "last" reducer, and the legacy
// kind name "chart" for line charts.
func (c *Chart) Normalize() {
	if c.Kind == "chart" {
		c.Kind = KindLine
	}
	if c.XScale == "" {
		c.XScale = ScaleLinear
	}
	if c.YScale == "" {
		c.YScale = ScaleLinear
	}
	if c.Kind == KindBar && c.Reducer == "" {
		c.Reducer = string(analysis.ReduceLast)
	}
}

func invalid(name, format string, args ...any) error {
	return fmt.Errorf("chart %q: %s: %w", name, fmt.Sprintf(format, args...), ErrInvalidChart)
}

func validScale(s Scale) bool {
	return s == ScaleLinear || s == ScaleLog
}

// Validate checks a normalized chart.
func (c *Chart) Validate() error {
	if c.FigName == "" {
		return invalid(c.File, "fig_name is required")
	}
	if c.File == "" {
		return invalid(c.FigName, "file is required")
	}
	if !validScale(c.XScale) || !validScale(c.YScale) {
		return invalid(c.FigName, "scales must be linear or log, got x=%s y=%s", c.XScale, c.YScale)
	}
	switch c.Kind {
	case KindLine:
		if c.Reducer != "" {
			return invalid(c.FigName, "reducer only applies to bar charts")
		}
		if c.XScale == ScaleLog {
			for _, x := range c.XValues {
				if x <= 0 {
					return invalid(c.FigName, "x value %g cannot be shown on a log axis", x)
				}
			}
		}
	case KindBar:
		// Bars sit on nominal categories.
		if c.XScale == ScaleLog {
			return invalid(c.FigName, "bar charts support a linear x axis only")
		}
		if len(c.XValues) > 0 {
			return invalid(c.FigName, "x_values only apply to line charts")
		}
		if _, err := analysis.ParseReducer(c.Reducer); err != nil {
			return invalid(c.FigName, "%v", err)
		}
	default:
		return invalid(c.FigName, "unknown kind %q (want line or bar)", c.Kind)
	}
	return nil
}

// ReducerValue returns the parsed reducer of a validated bar chart.
func (c *Chart) ReducerValue() analysis.Reducer {
	r, err := analysis.ParseReducer(c.Reducer)
	if err != nil {
		return analysis.ReduceLast
	}
	return r
}

// ParseCharts decodes, normalizes and validates a chart set.
func ParseCharts(r io.Reader) (*ChartSet, error) {
	set := &ChartSet{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(set); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("chart file is empty: %w", ErrInvalidChart)
		}
		return nil, fmt.Errorf("failed to decode chart file: %w", err)
	}
	if len(set.Charts) == 0 {
		return nil, fmt.Errorf("no charts defined: %w", ErrInvalidChart)
	}
	seen := make(map[string]bool)
	for i := range set.Charts {
		c := &set.Charts[i]
		c.Normalize()
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if seen[c.FigName] {
			return nil, invalid(c.FigName, "figure name used twice")
		}
		seen[c.FigName] = true
	}
	return set, nil
}

// LoadCharts reads a chart set from filepath.
func LoadCharts(filepath string) (*ChartSet, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open chart file: %w", err)
	}
	defer file.Close()

	set, err := ParseCharts(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return set, nil
}

// DefaultCharts returns the built-in chart set for the lab's standard
// performance logs.
func DefaultCharts() *ChartSet {
	set, err := ParseCharts(bytes.NewReader(defaultCharts))
	if err != nil {
		panic(fmt.Sprintf("built-in chart set: %v", err))
	}
	return set
}
