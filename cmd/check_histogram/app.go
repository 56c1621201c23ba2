package main

import (
	"errors"

	"github.com/user/parlab_tools_go/internal/histogram"
	"github.com/user/parlab_tools_go/internal/report"

	log "github.com/sirupsen/logrus"
)

// maxReportedMismatches bounds how many differing bins are logged.
const maxReportedMismatches = 8

var errMismatch = errors.New("histograms differ")

// Result is the outcome of one comparison.
type Result struct {
	Computed  histogram.Counts
	Reference *histogram.Reference
	Equal     bool
	Files     []string
}

// App compares the histogram of an image with a dumped reference.
type App struct {
	imagePath     string
	referencePath string
	outDir        string
}

func NewApp(imagePath, referencePath, outDir string) *App {
	return &App{imagePath: imagePath, referencePath: referencePath, outDir: outDir}
}

func (a *App) savePlot(c histogram.Counts, source string) (string, error) {
	img, err := report.CreateHistogramPlot(c, source)
	if err != nil {
		return "", err
	}
	return report.SavePNG(a.outDir, report.HistogramFileName(source), img)
}

// Run builds both histograms, plots them and compares them. Any I/O or
// decoding failure aborts the run.
func (a *App) Run() (*Result, error) {
	res := &Result{}

	computed, format, err := histogram.FromFile(a.imagePath)
	if err != nil {
		return nil, err
	}
	res.Computed = computed
	log.Debugf("%s: %s image, %d pixels", a.imagePath, format, computed.Total())

	fn, err := a.savePlot(computed, a.imagePath)
	if err != nil {
		return nil, err
	}
	res.Files = append(res.Files, fn)

	ref, err := histogram.LoadReference(a.referencePath)
	if err != nil {
		return nil, err
	}
	res.Reference = ref
	if ref.Resized() {
		log.Warnf("%s holds %d values, compared as %d bins", a.referencePath, ref.Entries, histogram.Bins)
	}

	if fn, err = a.savePlot(ref.Counts, a.referencePath); err != nil {
		return nil, err
	}
	res.Files = append(res.Files, fn)

	res.Equal = histogram.Equal(computed, ref.Counts)
	if res.Equal {
		return res, nil
	}

	diff := histogram.Diff(computed, ref.Counts)
	log.Warnf("%d of %d bins differ", len(diff), histogram.Bins)
	for i, m := range diff {
		if i == maxReportedMismatches {
			log.Warnf("  ... %d more", len(diff)-i)
			break
		}
		log.Warnf("  color %3d: computed %d, reference %d (%+d)", m.Level, m.Computed, m.Reference, m.Delta())
	}

	img, err := report.CreateDiffHeatmap(computed, ref.Counts, a.imagePath)
	if err != nil {
		return nil, err
	}
	if fn, err = report.SavePNG(a.outDir, report.DiffFileName(a.imagePath), img); err != nil {
		return nil, err
	}
	res.Files = append(res.Files, fn)
	return res, nil
}
