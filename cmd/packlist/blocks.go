package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pyhub-apps/packlist/pkg/extractors"
	"github.com/pyhub-apps/packlist/pkg/pdf"
)

// blocksCmd represents the blocks command.
var blocksCmd = &cobra.Command{
	Use:   "blocks <file>",
	Short: "Show the text blocks extracted from a PDF",
	Long: `Show the text blocks extracted from a PDF.

Useful for writing a rules file: the preview lists the block indices the
template anchors refer to, --dump prints font and position of every block.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         showBlocks,
}

func init() {
	rootCmd.AddCommand(blocksCmd)
	blocksCmd.Flags().Bool("dump", false, "print font, size and position of every block")
	blocksCmd.Flags().String("lib", "auto", "PDF library to use (auto, ledongthuc, dslipak)")
	blocksCmd.Flags().Float64("x-tolerance", 3.0, "X tolerance for word separation")
	blocksCmd.Flags().Float64("line-tolerance", extractors.DefaultLineTolerance, "largest vertical distance between words of one block")
}

func showBlocks(cmd *cobra.Command, args []string) error {
	dump, _ := cmd.Flags().GetBool("dump")
	library, _ := cmd.Flags().GetString("lib")
	xTolerance, _ := cmd.Flags().GetFloat64("x-tolerance")
	lineTolerance, _ := cmd.Flags().GetFloat64("line-tolerance")

	var doc pdf.Document
	var err error
	switch library {
	case "auto":
		doc, err = pdf.Open(args[0])
	case "ledongthuc":
		doc, err = pdf.OpenWithLedongthuc(args[0])
	case "dslipak":
		doc, err = pdf.OpenWithDslipak(args[0])
	default:
		return fmt.Errorf("unknown library: %s", library)
	}
	if err != nil {
		return err
	}
	defer doc.Close()

	builder := extractors.NewBlockBuilder(pdf.WithWordXTolerance(xTolerance))
	builder.SetTolerance(lineTolerance)
	seq := builder.Extract(doc)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Pages: %d, blocks: %d\n", doc.PageCount(), len(seq))
	if dump {
		return seq.WriteDump(out)
	}
	return seq.WritePreview(out)
}
