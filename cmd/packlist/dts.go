package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pyhub-apps/packlist/pkg/dts"
)

// dtsCmd represents the dts command.
var dtsCmd = &cobra.Command{
	Use:   "dts <ramdisk> <dts>",
	Short: "Point linux,initrd-end at the end of a ramdisk image",
	Long: `Point linux,initrd-end at the end of a ramdisk image.

The DTS file is rewritten in place: every linux,initrd-end property becomes
linux,initrd-start plus the size of the ramdisk image.`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		patch, err := dts.PatchFile(args[1], args[0], newLogger())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "linux,initrd-end set to %#x (%d properties)\n", patch.End, patch.Replaced)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dtsCmd)
}
