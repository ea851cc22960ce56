package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmuldo/personalcolor/report"
)

// paletteCmd represents the palette command
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Prints the reference palette in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPalette()
		if err != nil {
			return err
		}

		out, err := report.Palette(p)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)
}
