package report

import (
	"fmt"

	"github.com/user/parlab_tools_go/internal/analysis"
	"github.com/user/parlab_tools_go/internal/config"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// CreateBarPlot draws one bar per section, labelled with its category. The
// Y axis is clamped to the bar heights plus analysis.BarPadding on each side.
// On a log Y axis the bars start at the bottom of that range, which must be
// positive.
func CreateBarPlot(bars *analysis.BarResults, c *config.Chart) ([]byte, error) {
	if bars == nil || len(bars.Bars) == 0 {
		return nil, analysis.ErrNoSamples
	}

	p := newPlot(c)
	heights := bars.Heights()
	lo, hi := analysis.PaddedRange(heights, analysis.BarPadding)
	if err := applyScale(&p.Y, "y", c.YScale, []float64{lo}); err != nil {
		return nil, fmt.Errorf("chart %q: %w", c.FigName, err)
	}

	var base *plotter.BarChart
	if c.YScale == config.ScaleLog {
		// An unplotted base chart lifts every bar off zero.
		floor := make(plotter.Values, len(heights))
		lifted := make([]float64, len(heights))
		for i, h := range heights {
			floor[i] = lo
			lifted[i] = h - lo
		}
		var err error
		if base, err = plotter.NewBarChart(floor, vg.Points(20)); err != nil {
			return nil, fmt.Errorf("failed to create bar chart: %w", err)
		}
		heights = lifted
	}

	bar, err := plotter.NewBarChart(plotter.Values(heights), vg.Points(20))
	if err != nil {
		return nil, fmt.Errorf("failed to create bar chart: %w", err)
	}
	bar.Color = deepSkyBlue
	bar.LineStyle.Width = vg.Length(0)
	if base != nil {
		bar.StackOn(base)
	}

	p.Add(bar)
	p.NominalX(bars.Categories()...)
	p.Y.Min, p.Y.Max = lo, hi

	return renderPNG(p)
}
