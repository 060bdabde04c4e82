package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pyhub-apps/packlist/pkg/editor"
	"github.com/pyhub-apps/packlist/pkg/prompt"
)

// editCmd represents the edit command.
var editCmd = &cobra.Command{
	Use:   "edit [file]",
	Short: "Blank out or replace text blocks of any PDF",
	Long: `Blank out or replace text blocks of any PDF.

A numbered preview of the text blocks is shown page by page. Pick blocks by id,
then delete them or type a replacement. The edited copy keeps the original
pages and paints the changes on top.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runEditor,
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringP("output", "o", "", "edited PDF (default: <name>_edited.pdf next to the input)")
}

func runEditor(cmd *cobra.Command, args []string) error {
	dst, _ := cmd.Flags().GetString("output")

	src, err := inputPDF(cmd, args)
	if err != nil {
		return err
	}
	if dst == "" {
		dst = strings.TrimSuffix(src, filepath.Ext(src)) + "_edited.pdf"
	}

	p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
	_, err = editor.New(p, newLogger()).Run(src, dst)
	return err
}
