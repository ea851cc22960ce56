package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/personalcolor/colorspace"
)

var toSpace string

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Converts a color to another color space",
	Long: `Converts a color to rgb, xyz, lab, hsl, hsv or cmyk.

  personalcolor convert '#ffd700' --to lab
  personalcolor convert 3200K --to hsl`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := colorspace.Parse(args[0])
		if err != nil {
			return err
		}

		to, err := colorspace.ParseSpace(toSpace)
		if err != nil {
			return err
		}

		conv, err := colorspace.NewConverter(viper.GetInt("cache-size"))
		if err != nil {
			return err
		}

		out, err := conv.Convert(c, c.Space(), to)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&toSpace, "to", "t", "lab", "target color space")
}
