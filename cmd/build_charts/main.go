package main

import (
	"fmt"
	"os"

	"github.com/user/parlab_tools_go/internal/config"
	"github.com/user/parlab_tools_go/internal/status"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	chartsFile string
	outDir     string
	pdfPath    string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "build_charts",
	Short: "Render performance logs as line and bar charts",
	Long: `build_charts reads sectioned performance logs and draws one PNG per chart.

A log is a sequence of "[label]" headers, each followed by lines whose
non-negative decimal numbers become that section's samples. Which logs are
drawn, and how, comes from a YAML chart set; without --config the built-in
set for the OpenMP lab is used.

Defaults for the output directory and chart set are read from the [parlab]
section of $PARLAB_CONFIG or ~/.parlab.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBuildCharts,
}

func init() {
	rootCmd.Flags().StringVarP(&chartsFile, "config", "c", "", "chart set file (YAML)")
	rootCmd.Flags().StringVarP(&outDir, "out", "o", "", "directory for the PNG files")
	rootCmd.Flags().StringVar(&pdfPath, "pdf", "", "also bundle all charts into this PDF")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "verbose logging")
}

func runBuildCharts(cmd *cobra.Command, args []string) error {
	status.SetupLogging(os.Stderr, debug)

	defaults, used, err := config.LoadDefaults()
	if err != nil {
		log.Warn(err)
	} else if used != "" {
		log.Debugf("Defaults from %s", used)
	}
	if outDir == "" {
		outDir = defaults.ChartDir
	}
	if chartsFile == "" {
		chartsFile = defaults.Charts
	}

	set := config.DefaultCharts()
	if chartsFile != "" {
		if set, err = config.LoadCharts(chartsFile); err != nil {
			return err
		}
	}

	rendered, err := NewApp(set, outDir, pdfPath).Run()
	fmt.Println(status.Summary(len(rendered), len(set.Charts), "charts"))
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
