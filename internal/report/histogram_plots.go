package report

import (
	"fmt"

	"github.com/user/parlab_tools_go/internal/histogram"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// CreateHistogramPlot draws the non-empty bins of c as unit-width bars over a
// fixed [0, 255] color axis.
func CreateHistogramPlot(c histogram.Counts, name string) ([]byte, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("PGM histogram for %s", name)
	p.X.Label.Text = "Color"
	p.Y.Label.Text = "Quantity"

	nonZero := histogram.NonZero(c)
	bins := make([]plotter.HistogramBin, len(nonZero))
	for i, b := range nonZero {
		bins[i] = plotter.HistogramBin{
			Min:    float64(b.Level) - 0.5,
			Max:    float64(b.Level) + 0.5,
			Weight: float64(b.Count),
		}
	}
	if len(bins) > 0 {
		h := &plotter.Histogram{
			Bins:      bins,
			Width:     1,
			FillColor: barBlue,
			LineStyle: plotter.DefaultLineStyle,
		}
		h.LineStyle.Color = barBlue
		h.LineStyle.Width = vg.Points(0.5)
		p.Add(h)
	}

	p.X.Min = 0
	p.X.Max = histogram.Bins - 1

	return renderPNG(p)
}
