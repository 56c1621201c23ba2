package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// EnsureDir creates dir (and parents) unless it exists. It reports whether
// it had to create anything.
func EnsureDir(dir string) (bool, error) {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("%s exists and is not a directory", dir)
		}
		return false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("failed to stat %s: %w", dir, err)
	}
	log.Infof("creating directory %s", dir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("failed to create directory: %w", err)
	}
	return true, nil
}

// FileName turns a figure name into a file name. Path separators would
// escape the save directory and are replaced.
func FileName(figName, ext string) string {
	name := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' {
			return '_'
		}
		return r
	}, figName)
	return name + ext
}

// SavePNG writes data to dir/name, creating dir on demand, and returns the
// path written.
func SavePNG(dir, name string, data []byte) (string, error) {
	if _, err := EnsureDir(dir); err != nil {
		return "", err
	}
	fn := filepath.Join(dir, name)
	log.Infof("Saving %s", name)
	if err := os.WriteFile(fn, data, 0644); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", name, err)
	}
	return fn, nil
}

// HistogramFileName names the figure of the histogram read from source:
// "Hist_from_<base name of source>.png".
func HistogramFileName(source string) string {
	return FileName("Hist_from_"+filepath.Base(source), ".png")
}

// DiffFileName names the difference heat map of an image.
func DiffFileName(image string) string {
	return FileName("Hist_diff_"+filepath.Base(image), ".png")
}
