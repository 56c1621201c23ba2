// Package status sets up logging for the command-line tools and formats the
// few lines they print on stdout.
package status

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// SetupLogging sends log output to w with a plain text format. debug enables
// debug-level messages.
func SetupLogging(w io.Writer, debug bool) {
	log.SetOutput(w)
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
		PadLevelText:           true,
	})
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

// Verdict renders a boolean result as "true" or "false", coloured when the
// terminal supports it.
func Verdict(ok bool) string {
	if ok {
		return okStyle.Render("true")
	}
	return failStyle.Render("false")
}

// PrintVerdict writes Verdict(ok) on its own line to stdout.
func PrintVerdict(ok bool) {
	fmt.Fprintln(os.Stdout, Verdict(ok))
}

// Summary formats "n of total <what> written", highlighting partial success.
func Summary(done, total int, what string) string {
	text := fmt.Sprintf("%d of %d %s written", done, total, what)
	if done == total {
		return okStyle.Render(text)
	}
	return failStyle.Render(text)
}
