package report

import (
	"fmt"

	"github.com/user/parlab_tools_go/internal/analysis"
	"github.com/user/parlab_tools_go/internal/config"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// CreateLinePlot draws every series as a line with point markers, one legend
// entry per series, and returns the PNG.
func CreateLinePlot(series []analysis.Series, c *config.Chart) ([]byte, error) {
	if len(series) == 0 {
		return nil, analysis.ErrNoSamples
	}

	p := newPlot(c)

	var allX, allY []float64
	for _, s := range series {
		allX = append(allX, s.X...)
		allY = append(allY, s.Y...)
	}
	if err := applyScale(&p.X, "x", c.XScale, allX); err != nil {
		return nil, fmt.Errorf("chart %q: %w", c.FigName, err)
	}
	if err := applyScale(&p.Y, "y", c.YScale, allY); err != nil {
		return nil, fmt.Errorf("chart %q: %w", c.FigName, err)
	}

	p.Add(plotter.NewGrid())

	for i, s := range series {
		pts := make(plotter.XYs, len(s.X))
		for j := range s.X {
			pts[j].X = s.X[j]
			pts[j].Y = s.Y[j]
		}

		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, fmt.Errorf("failed to create line for %s: %w", s.Label, err)
		}
		line.Color = plotutil.Color(i)
		line.LineStyle.Width = vg.Points(1.5)
		points.GlyphStyle.Color = plotutil.Color(i)
		points.GlyphStyle.Shape = draw.CircleGlyph{}
		points.GlyphStyle.Radius = vg.Points(3)

		p.Add(line, points)
		p.Legend.Add(s.Label, line, points)
	}

	p.Legend.Top = true
	p.Legend.XOffs = -vg.Points(5)

	return renderPNG(p)
}
