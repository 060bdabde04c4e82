package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

// rootCmd runs the packing-list pipeline when no subcommand is given
var rootCmd = &cobra.Command{
	Use:   "packlist [file]",
	Short: "Turn shipping-label PDFs into compact packing lists",
	Long: `Turn shipping-label PDFs into compact packing lists.

The label's text blocks are extracted, the street address and footer junk are
dropped, region and country blocks are added and the item table is moved up
under the customer name. The result is rendered on A4 and split into halves.

Examples:
  packlist
  packlist label.pdf --split=false
  packlist edit label.pdf
  packlist dts rootfs.cpio.gz board.dts`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPipeline,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every stage at debug level")
	addRunFlags(rootCmd)
}

// newLogger builds the logger shared by every command
func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
