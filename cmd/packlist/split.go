package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pyhub-apps/packlist/pkg/render"
)

// splitCmd represents the split command.
var splitCmd = &cobra.Command{
	Use:          "split <file>",
	Short:        "Split every page of a PDF into top and bottom halves",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		outDir, _ := cmd.Flags().GetString("out")

		dst := render.SplitPath(args[0], outDir)
		if err := render.NewSplitter(newLogger()).Split(args[0], dst); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Split PDF written to %s\n", dst)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(splitCmd)
	splitCmd.Flags().StringP("out", "o", "output", "output directory")
}
