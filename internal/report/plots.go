package report

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"github.com/user/parlab_tools_go/internal/analysis"
	"github.com/user/parlab_tools_go/internal/config"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Figure size of every chart, 4:3.
const (
	figWidth  = 6.4 * vg.Inch
	figHeight = 4.8 * vg.Inch
)

var (
	deepSkyBlue = color.RGBA{R: 0x0d, G: 0x75, B: 0xf8, A: 255}
	barBlue     = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 255}
)

// newPlot returns a plot with the chart's title and axis labels.
func newPlot(c *config.Chart) *plot.Plot {
	p := plot.New()
	p.Title.Text = c.FigName
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	return p
}

// applyScale switches an axis to log scale when configured, after checking
// that every value can be shown on it.
func applyScale(axis *plot.Axis, name string, s config.Scale, vals []float64) error {
	if s != config.ScaleLog {
		return nil
	}
	if err := analysis.CheckLogDomain(name, vals); err != nil {
		return err
	}
	axis.Scale = plot.LogScale{}
	axis.Tick.Marker = plot.LogTicks{Prec: -1}
	return nil
}

// renderPNG draws p into an in-memory PNG.
func renderPNG(p *plot.Plot) ([]byte, error) {
	writer, err := p.WriterTo(figWidth, figHeight, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create plot writer: %w", err)
	}
	return writeTo(writer)
}

func writeTo(writer io.WriterTo) ([]byte, error) {
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write plot to buffer: %w", err)
	}
	return buf.Bytes(), nil
}
