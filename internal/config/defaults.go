package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"

	ini "github.com/lars-t-hansen/ini"
)

// Defaults are the tool-wide settings that flags may override.
type Defaults struct {
	ChartDir     string // where build_charts writes figures
	HistogramDir string // where check_histogram writes figures
	Reference    string // reference histogram dump
	Charts       string // chart set file; empty means the built-in set
}

// EnvConfigFile names an explicit defaults file.
const EnvConfigFile = "PARLAB_CONFIG"

// MT: Constant after initialization
var (
	p             = ini.NewParser()
	parlab        = p.AddSection("parlab")
	iniChartDir   = parlab.AddString("chart-dir")
	iniHistDir    = parlab.AddString("histogram-dir")
	iniReference  = parlab.AddString("reference")
	iniChartsFile = parlab.AddString("charts")
)

func BuiltinDefaults() Defaults {
	return Defaults{
		ChartDir:     "data/img",
		HistogramDir: "data",
		Reference:    "data/example.bin",
	}
}

// ReadDefaults overlays the [parlab] section of an ini file on base. Values
// are environment-expanded.
func ReadDefaults(r io.Reader, base Defaults) (Defaults, error) {
	store, err := p.Parse(r)
	if err != nil {
		return base, err
	}
	apply := func(dst *string, f *ini.Field) {
		if f.Present(store) {
			*dst = os.ExpandEnv(f.StringVal(store))
		}
	}
	d := base
	apply(&d.ChartDir, iniChartDir)
	apply(&d.HistogramDir, iniHistDir)
	apply(&d.Reference, iniReference)
	apply(&d.Charts, iniChartsFile)
	return d, nil
}

// DefaultsFile returns the defaults file to use: $PARLAB_CONFIG if set,
// otherwise $HOME/.parlab, or "" when neither can be determined.
func DefaultsFile() string {
	if fn := os.Getenv(EnvConfigFile); fn != "" {
		return fn
	}
	home := os.Getenv("HOME")
	if home == "" {
		return ""
	}
	return path.Join(path.Clean(home), ".parlab")
}

// LoadDefaults reads the defaults file if there is one. A missing file is not
// an error; the returned string names the file that was applied, if any.
func LoadDefaults() (Defaults, string, error) {
	d := BuiltinDefaults()
	fn := DefaultsFile()
	if fn == "" {
		return d, "", nil
	}
	input, err := os.Open(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return d, "", nil
		}
		return d, "", fmt.Errorf("error in trying to open %s: %w", fn, err)
	}
	defer input.Close()

	d, err = ReadDefaults(input, d)
	if err != nil {
		return BuiltinDefaults(), "", fmt.Errorf("error in trying to parse %s: %w", fn, err)
	}
	return d, fn, nil
}
