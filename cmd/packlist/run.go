package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pyhub-apps/packlist/pkg/config"
	"github.com/pyhub-apps/packlist/pkg/output"
	"github.com/pyhub-apps/packlist/pkg/packing"
	"github.com/pyhub-apps/packlist/pkg/prompt"
	"github.com/pyhub-apps/packlist/pkg/render"
)

// runCmd represents the run command.
var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Convert a shipping label into a packing list",
	Long: `Convert a shipping label into a packing list.

Without a file argument the newest PDF in the current directory is offered,
with a numbered list of the others as fallback. Block dumps of every stage are
written to the tmp directory for inspection.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runPipeline,
}

func init() {
	rootCmd.AddCommand(runCmd)
	addRunFlags(runCmd)
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().String("rules", "", "YAML rule table overriding the built-in shopify template")
	cmd.Flags().StringP("out", "o", "output", "directory for the finished packing list")
	cmd.Flags().String("tmp", "tmp", "directory for block dumps and the A4 intermediate")
	cmd.Flags().Bool("split", true, "split the A4 page into top and bottom halves")
}

func runPipeline(cmd *cobra.Command, args []string) error {
	rulesPath, _ := cmd.Flags().GetString("rules")
	outDir, _ := cmd.Flags().GetString("out")
	tmpDir, _ := cmd.Flags().GetString("tmp")
	split, _ := cmd.Flags().GetBool("split")

	log := newLogger()

	tmpl, err := config.Load(rulesPath)
	if err != nil {
		return err
	}

	src, err := inputPDF(cmd, args)
	if err != nil {
		return err
	}

	p := packing.NewPipeline(tmpl, log)
	p.Dumper = output.FileDumper{Dir: tmpDir}

	res, err := p.Run(cmd.Context(), src)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"order":   res.OrderNumber,
		"deleted": res.Selection.DeleteIDs(),
	}).Debug("delete-set")

	name := res.OrderNumber + ".pdf"
	renderer := render.NewRenderer(log)

	if !split {
		dst := filepath.Join(outDir, name)
		if err := renderer.Render(res.Adjusted, dst); err != nil {
			return fmt.Errorf("failed to render packing list: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Packing list written to %s\n", dst)
		return nil
	}

	a4 := filepath.Join(tmpDir, name)
	if err := renderer.Render(res.Adjusted, a4); err != nil {
		return fmt.Errorf("failed to render packing list: %w", err)
	}
	dst := render.SplitPath(a4, outDir)
	if err := render.NewSplitter(log).Split(a4, dst); err != nil {
		return fmt.Errorf("failed to split packing list: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Packing list written to %s\n", dst)
	return nil
}

// inputPDF returns the file argument or asks the user to pick a PDF in the working directory
func inputPDF(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()).SelectPDF(wd)
}
