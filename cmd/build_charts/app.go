package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/user/parlab_tools_go/internal/analysis"
	"github.com/user/parlab_tools_go/internal/config"
	"github.com/user/parlab_tools_go/internal/parser"
	"github.com/user/parlab_tools_go/internal/report"

	log "github.com/sirupsen/logrus"
)

// App renders a chart set into an output directory.
type App struct {
	outDir  string
	pdfPath string
	set     *config.ChartSet
}

func NewApp(set *config.ChartSet, outDir, pdfPath string) *App {
	return &App{set: set, outDir: outDir, pdfPath: pdfPath}
}

// renderChart parses one log and draws it according to c.
func (a *App) renderChart(c *config.Chart) ([]byte, error) {
	log.Infof("Parsing %s", c.File)
	table, err := parser.ParseLogFile(c.File)
	if err != nil {
		return nil, err
	}
	log.Debugf("%s: %d sections, %d samples", c.File, table.Len(), table.NumSamples())

	switch c.Kind {
	case config.KindLine:
		series, err := analysis.LineSeries(table, c.XValues)
		if err != nil {
			return nil, err
		}
		if len(c.XValues) == 0 {
			log.Debugf("%s: no x_values configured, using synthetic decades", c.FigName)
		}
		return report.CreateLinePlot(series, c)
	case config.KindBar:
		bars, err := analysis.BarHeights(table, c.ReducerValue())
		if err != nil {
			return nil, err
		}
		for _, w := range bars.Warnings {
			log.Warn(w)
		}
		for _, b := range bars.Bars {
			if b.Samples > 1 && bars.Reducer == analysis.ReduceLast {
				log.Debugf("Section '%s': %d samples, plotting the last", b.Section, b.Samples)
			}
		}
		return report.CreateBarPlot(bars, c)
	}
	return nil, fmt.Errorf("unknown chart kind %q", c.Kind)
}

// Run processes every chart in order. A chart whose input is missing or
// cannot be drawn is reported and skipped. The returned slice holds the
// charts that were written.
func (a *App) Run() ([]report.RenderedChart, error) {
	rendered := make([]report.RenderedChart, 0, len(a.set.Charts))
	for i := range a.set.Charts {
		c := &a.set.Charts[i]
		if _, err := os.Stat(c.File); errors.Is(err, os.ErrNotExist) {
			log.Warnf("File %s does not exist", c.File)
			continue
		}

		img, err := a.renderChart(c)
		if err != nil {
			log.Errorf("Error generating chart %q: %v", c.FigName, err)
			continue
		}

		path, err := report.SavePNG(a.outDir, report.FileName(c.FigName, ".png"), img)
		if err != nil {
			log.Errorf("Error saving chart %q: %v", c.FigName, err)
			continue
		}
		rendered = append(rendered, report.RenderedChart{
			FigName: c.FigName,
			Source:  c.File,
			Kind:    string(c.Kind),
			Path:    path,
			PNG:     img,
		})
	}

	if a.pdfPath != "" {
		log.Infof("Generating PDF: %s", a.pdfPath)
		title := a.set.Title
		if title == "" {
			title = "Performance charts"
		}
		if err := report.BuildPDFReport(a.pdfPath, title, rendered); err != nil {
			return rendered, fmt.Errorf("error generating PDF report: %w", err)
		}
	}

	if len(rendered) == 0 && len(a.set.Charts) > 0 {
		return rendered, errors.New("no chart could be produced")
	}
	return rendered, nil
}
