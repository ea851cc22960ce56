package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmuldo/personalcolor/report"
)

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify <color>...",
	Short: "Classifies one color, or several as a group",
	Long: `Classifies a color into a season and tone bucket. With more than one color
the samples are also aggregated into a group verdict.

  personalcolor classify '#e0ac69'
  personalcolor classify 'rgb(241,194,167)' 'rgb(224,172,105)' 'rgb(198,134,66)'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		colors, err := parseColors(args)
		if err != nil {
			return err
		}

		cl, err := newClassifier()
		if err != nil {
			return err
		}

		var out string
		if len(colors) == 1 {
			r, err := cl.Classify(colors[0])
			if err != nil {
				return err
			}
			out, err = report.Result(r)
			if err != nil {
				return err
			}
		} else {
			g, err := cl.ClassifyGroup(colors)
			if err != nil {
				return err
			}
			out, err = report.Group(g)
			if err != nil {
				return err
			}
		}

		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
