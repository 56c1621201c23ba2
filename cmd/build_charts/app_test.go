package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/user/parlab_tools_go/internal/config"
)

func writeFile(t *testing.T, fn, text string) {
	t.Helper()
	if err := os.WriteFile(fn, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
}

func chartSet(t *testing.T, dir string) *config.ChartSet {
	t.Helper()
	dyn := filepath.Join(dir, "perf_test_dynamic.txt")
	chunk := filepath.Join(dir, "perf_test_chunk_size.txt")
	writeFile(t, dyn, "[static]\n10.5 8.25 4\n[dynamic]\n11 7 3.5\n")
	writeFile(t, chunk, "[chunk_size 1]\n9\n[chunk_size 8]\n7 6\n[chunk_size 64]\n6.5\n")

	text := `title: Test charts
charts:
  - {file: ` + dyn + `, fig_name: Performance from workload, xlabel: Epsilon, ylabel: Time (ms), kind: line, xscale: log, yscale: log}
  - {file: ` + chunk + `, fig_name: Performance from chunk_size, xlabel: chunk_size, ylabel: Time (ms), kind: bar}
  - {file: ` + filepath.Join(dir, "absent.txt") + `, fig_name: Missing, kind: bar}
`
	set, err := config.ParseCharts(strings.NewReader(text))
	if err != nil {
		t.Fatal(err)
	}
	return set
}

func TestRunWritesChartsAndSkipsMissing(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "img")
	pdf := filepath.Join(dir, "charts.pdf")

	rendered, err := NewApp(chartSet(t, dir), out, pdf).Run()
	if err != nil {
		t.Fatal(err)
	}
	if len(rendered) != 2 {
		t.Fatalf("Expected 2 charts, got %d", len(rendered))
	}
	for _, name := range []string{"Performance from workload.png", "Performance from chunk_size.png"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Fatal(err)
		}
	}
	data, err := os.ReadFile(pdf)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("Bad PDF")
	}
}

func TestRunContinuesAfterBadChart(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "dup.txt")
	good := filepath.Join(dir, "good.txt")
	writeFile(t, bad, "[A]\n1\n[A]\n2\n")
	writeFile(t, good, "[A]\n1 2\n")
	set, err := config.ParseCharts(strings.NewReader(
		"charts:\n  - {file: " + bad + ", fig_name: Bad, kind: line}\n  - {file: " + good + ", fig_name: Good, kind: line}\n"))
	if err != nil {
		t.Fatal(err)
	}
	rendered, err := NewApp(set, filepath.Join(dir, "img"), "").Run()
	if err != nil {
		t.Fatal(err)
	}
	if len(rendered) != 1 || rendered[0].FigName != "Good" {
		t.Fatalf("Bad result %+v", rendered)
	}
}

func TestRunFailsWhenNothingRendered(t *testing.T) {
	dir := t.TempDir()
	set, err := config.ParseCharts(strings.NewReader(
		"charts:\n  - {file: " + filepath.Join(dir, "none.txt") + ", fig_name: None, kind: bar}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewApp(set, dir, "").Run(); err == nil {
		t.Fatal("Expected an error when no chart is produced")
	}
}
