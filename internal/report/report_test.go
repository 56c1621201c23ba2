package report

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/user/parlab_tools_go/internal/analysis"
	"github.com/user/parlab_tools_go/internal/config"
	"github.com/user/parlab_tools_go/internal/histogram"
	"github.com/user/parlab_tools_go/internal/parser"
)

func mustTable(t *testing.T, text string) *parser.SectionTable {
	t.Helper()
	table, err := parser.ParseLog(strings.NewReader(text))
	if err != nil {
		t.Fatal(err)
	}
	return table
}

func checkPNG(t *testing.T, data []byte) {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Not a PNG: %v", err)
	}
	if img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
		t.Fatalf("Empty image %v", img.Bounds())
	}
}

func lineChart(xs, ys config.Scale) *config.Chart {
	c := &config.Chart{File: "perf.txt", FigName: "Perf", XLabel: "Epsilon", YLabel: "Time (ms)", Kind: config.KindLine, XScale: xs, YScale: ys}
	c.Normalize()
	return c
}

func TestCreateLinePlot(t *testing.T) {
	table := mustTable(t, "[static]\n10 20 30\n[dynamic]\n12 18 25\n")
	series, err := analysis.LineSeries(table, nil)
	if err != nil {
		t.Fatal(err)
	}
	data, err := CreateLinePlot(series, lineChart(config.ScaleLog, config.ScaleLog))
	if err != nil {
		t.Fatal(err)
	}
	checkPNG(t, data)

	data, err = CreateLinePlot(series, lineChart(config.ScaleLinear, config.ScaleLinear))
	if err != nil {
		t.Fatal(err)
	}
	checkPNG(t, data)
}

func TestCreateLinePlotLogRejectsZero(t *testing.T) {
	series, err := analysis.LineSeries(mustTable(t, "[A]\n0 1\n"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := CreateLinePlot(series, lineChart(config.ScaleLinear, config.ScaleLog)); err == nil {
		t.Fatal("Expected error for zero on log axis")
	}
}

func TestCreateLinePlotEmpty(t *testing.T) {
	if _, err := CreateLinePlot(nil, lineChart(config.ScaleLinear, config.ScaleLinear)); err != analysis.ErrNoSamples {
		t.Fatalf("Expected ErrNoSamples, got %v", err)
	}
}

func TestCreateBarPlot(t *testing.T) {
	bars, err := analysis.BarHeights(mustTable(t, "[chunk 1]\n5 3\n[chunk 4]\n2\n[chunk 16]\n2.5\n"), analysis.ReduceLast)
	if err != nil {
		t.Fatal(err)
	}
	c := &config.Chart{File: "perf.txt", FigName: "Chunks", Kind: config.KindBar}
	c.Normalize()
	data, err := CreateBarPlot(bars, c)
	if err != nil {
		t.Fatal(err)
	}
	checkPNG(t, data)

	// A single bar still gets a non-degenerate axis.
	one, err := analysis.BarHeights(mustTable(t, "[A]\n1 2 3\n"), analysis.ReduceLast)
	if err != nil {
		t.Fatal(err)
	}
	data, err = CreateBarPlot(one, c)
	if err != nil {
		t.Fatal(err)
	}
	checkPNG(t, data)
}

func TestCreateBarPlotLogY(t *testing.T) {
	c := &config.Chart{File: "perf.txt", FigName: "Chunks", Kind: config.KindBar, YScale: config.ScaleLog}
	c.Normalize()

	bars, err := analysis.BarHeights(mustTable(t, "[chunk 1]\n50\n[chunk 4]\n2\n[chunk 16]\n700\n"), analysis.ReduceLast)
	if err != nil {
		t.Fatal(err)
	}
	data, err := CreateBarPlot(bars, c)
	if err != nil {
		t.Fatal(err)
	}
	checkPNG(t, data)

	// 0.1 - BarPadding is below zero and cannot be shown.
	low, err := analysis.BarHeights(mustTable(t, "[A]\n0.1\n[B]\n5\n"), analysis.ReduceLast)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := CreateBarPlot(low, c); err == nil {
		t.Fatal("Expected error for a non-positive log axis minimum")
	}
}

func TestCreateHistogramPlot(t *testing.T) {
	var c histogram.Counts
	c[0], c[7], c[255] = 3, 100, 1
	data, err := CreateHistogramPlot(c, "data/lena.pgm")
	if err != nil {
		t.Fatal(err)
	}
	checkPNG(t, data)

	data, err = CreateHistogramPlot(histogram.Counts{}, "empty")
	if err != nil {
		t.Fatal(err)
	}
	checkPNG(t, data)
}

func TestCreateDiffHeatmap(t *testing.T) {
	var a, b histogram.Counts
	a[10], b[10] = 5, 3
	b[200] = 4
	data, err := CreateDiffHeatmap(a, b, "img.pgm")
	if err != nil {
		t.Fatal(err)
	}
	checkPNG(t, data)

	if _, err := CreateDiffHeatmap(a, a, "img.pgm"); err == nil {
		t.Fatal("Identical histograms should not produce a heat map")
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data", "img")
	created, err := EnsureDir(dir)
	if err != nil || !created {
		t.Fatalf("First call should create: %v %v", created, err)
	}
	created, err = EnsureDir(dir)
	if err != nil || created {
		t.Fatalf("Second call should be a no-op: %v %v", created, err)
	}

	file := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := EnsureDir(file); err == nil {
		t.Fatal("A file is not a directory")
	}
}

func TestSavePNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	fn, err := SavePNG(dir, FileName("Performance from chunk_size", ".png"), []byte("x"))
	if err != nil {
		t.Fatal(err)
	}
	if fn != filepath.Join(dir, "Performance from chunk_size.png") {
		t.Fatalf("Bad path %s", fn)
	}
	if _, err := os.Stat(fn); err != nil {
		t.Fatal(err)
	}
}

func TestFileNames(t *testing.T) {
	if got := FileName("a/b", ".png"); got != "a_b.png" {
		t.Fatalf("Bad name %s", got)
	}
	if got := HistogramFileName("data/example.bin"); got != "Hist_from_example.bin.png" {
		t.Fatalf("Bad name %s", got)
	}
	if got := DiffFileName("images/lena.pgm"); got != "Hist_diff_lena.pgm.png" {
		t.Fatalf("Bad name %s", got)
	}
}

func TestBuildPDFReport(t *testing.T) {
	series, err := analysis.LineSeries(mustTable(t, "[A]\n1 2 3\n"), nil)
	if err != nil {
		t.Fatal(err)
	}
	img, err := CreateLinePlot(series, lineChart(config.ScaleLog, config.ScaleLinear))
	if err != nil {
		t.Fatal(err)
	}

	fn := filepath.Join(t.TempDir(), "charts.pdf")
	charts := []RenderedChart{
		{FigName: "Perf", Source: "perf.txt", Kind: "line", Path: "data/img/Perf.png", PNG: img},
		{FigName: "Missing", Source: "none.txt", Kind: "bar"},
	}
	if err := BuildPDFReport(fn, "Lab charts", charts); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(fn)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("Not a PDF: %q", data[:8])
	}

	empty := filepath.Join(t.TempDir(), "empty.pdf")
	if err := BuildPDFReport(empty, "Nothing", nil); err != nil {
		t.Fatal(err)
	}
}
