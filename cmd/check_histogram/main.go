package main

import (
	"os"

	"github.com/user/parlab_tools_go/internal/config"
	"github.com/user/parlab_tools_go/internal/status"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	outDir string
	strict bool
	debug  bool
)

var rootCmd = &cobra.Command{
	Use:   "check_histogram <image> [reference]",
	Short: "Compare an image histogram with one dumped by the lab program",
	Long: `check_histogram counts the gray levels of <image> (PGM, PNG, JPEG, GIF,
BMP, TIFF or WebP), reads [reference] as raw native-endian int32 counts, plots
both and prints whether all 256 bins are identical.

The reference defaults to data/example.bin. A reference holding fewer than 256
values is zero-padded; extra values are ignored.`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCheckHistogram,
}

func init() {
	rootCmd.Flags().StringVarP(&outDir, "out", "o", "", "directory for the PNG files")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "exit with status 1 when the histograms differ")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "verbose logging")
}

func runCheckHistogram(cmd *cobra.Command, args []string) error {
	status.SetupLogging(os.Stderr, debug)

	defaults, used, err := config.LoadDefaults()
	if err != nil {
		log.Warn(err)
	} else if used != "" {
		log.Debugf("Defaults from %s", used)
	}
	if outDir == "" {
		outDir = defaults.HistogramDir
	}
	reference := defaults.Reference
	if len(args) > 1 {
		reference = args[1]
	}

	res, err := NewApp(args[0], reference, outDir).Run()
	if err != nil {
		return err
	}
	status.PrintVerdict(res.Equal)
	if strict && !res.Equal {
		return errMismatch
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
