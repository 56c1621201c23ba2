package report

import (
	"fmt"
	"math"

	"github.com/user/parlab_tools_go/internal/histogram"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// diffGrid exposes computed - reference per bin as a plotter.GridXYZ.
// It has two identical rows: a heat map cell takes its height from the
// distance to the neighbouring row, so a single row would be invisible.
type diffGrid struct {
	delta [histogram.Bins]float64
}

func (g *diffGrid) Dims() (c, r int)   { return histogram.Bins, 2 }
func (g *diffGrid) Z(c, r int) float64 { return g.delta[c] }
func (g *diffGrid) X(c int) float64    { return float64(c) }
func (g *diffGrid) Y(r int) float64    { return float64(r) }

// CreateDiffHeatmap renders the per-bin difference between a computed and a
// reference histogram as a blue (reference higher) to red (computed higher)
// band. It fails if the histograms are identical.
func CreateDiffHeatmap(computed, reference histogram.Counts, name string) ([]byte, error) {
	grid := &diffGrid{}
	maxAbs := 0.0
	for i := range grid.delta {
		d := float64(computed[i] - reference[i])
		grid.delta[i] = d
		maxAbs = math.Max(maxAbs, math.Abs(d))
	}
	if maxAbs == 0 {
		return nil, fmt.Errorf("histograms of %s are identical, nothing to show", name)
	}

	cm := moreland.SmoothBlueRed()
	cm.SetMin(-maxAbs)
	cm.SetMax(maxAbs)

	hm := plotter.NewHeatMap(grid, cm.Palette(255))
	hm.Min = -maxAbs
	hm.Max = maxAbs

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Histogram difference for %s (max |delta| %.0f)", name, maxAbs)
	p.X.Label.Text = "Color"
	p.Add(hm)
	p.X.Min = -0.5
	p.X.Max = histogram.Bins - 0.5
	p.HideY()

	writer, err := p.WriterTo(figWidth, 2*vg.Inch, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create heatmap writer: %w", err)
	}
	return writeTo(writer)
}
