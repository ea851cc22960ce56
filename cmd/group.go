package cmd

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/jszwec/csvutil"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mmuldo/personalcolor/colorspace"
	"github.com/mmuldo/personalcolor/report"
	"github.com/mmuldo/personalcolor/season"
)

var (
	csvIn  string
	csvOut string
)

// sampleRow is one input line: a named region and its color.
type sampleRow struct {
	Region string `csv:"region"`
	Color  string `csv:"color"`
}

type resultRow struct {
	Region     string  `csv:"region"`
	Hex        string  `csv:"hex"`
	Season     string  `csv:"season"`
	Subtype    string  `csv:"subtype"`
	Confidence float64 `csv:"confidence"`
	DeltaE     float64 `csv:"delta_e"`
	Tone       string  `csv:"tone"`
	Undertone  string  `csv:"undertone"`
}

// groupCmd represents the group command
var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Classifies the samples of a CSV file as one group",
	Long: `Reads a CSV file with "region" and "color" columns, classifies every sample
and prints the group verdict. With --out the per-sample results are written
as CSV as well.

  region,color
  cheek,#e8b89a
  forehead,"rgb(226,180,150)"
  chin,#d9a587`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(csvIn)
		if err != nil {
			return err
		}
		defer f.Close()

		regions, colors, err := readSamples(f)
		if err != nil {
			return fmt.Errorf("%s: %w", csvIn, err)
		}

		cl, err := newClassifier()
		if err != nil {
			return err
		}

		g, err := cl.ClassifyGroup(colors)
		if err != nil {
			return err
		}

		if csvOut != "" {
			data, err := resultRows(regions, g)
			if err != nil {
				return err
			}
			if err := ioutil.WriteFile(csvOut, data, 0644); err != nil {
				return err
			}
			log.WithField("path", csvOut).Info("wrote results")
		}

		out, err := report.Group(g)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(groupCmd)

	groupCmd.Flags().StringVarP(&csvIn, "csv", "c", "", "CSV file of samples")
	groupCmd.Flags().StringVarP(&csvOut, "out", "o", "", "write per-sample results to this CSV file")
	groupCmd.MarkFlagRequired("csv")
}

// readSamples parses region,color rows.
func readSamples(r io.Reader) ([]string, []colorspace.Color, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}

	var rows []sampleRow
	if err := csvutil.Unmarshal(data, &rows); err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, season.ErrEmptyInput
	}

	regions := make([]string, len(rows))
	colors := make([]colorspace.Color, len(rows))
	for i, row := range rows {
		c, err := colorspace.Parse(row.Color)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d (%s): %w", i+1, row.Region, err)
		}
		regions[i] = row.Region
		colors[i] = c
	}
	return regions, colors, nil
}

func resultRows(regions []string, g *season.GroupResult) ([]byte, error) {
	rows := make([]resultRow, len(g.Samples))
	for i, s := range g.Samples {
		rows[i] = resultRow{
			Hex:        s.RGB.Hex(),
			Season:     string(s.Season),
			Subtype:    s.Subtype,
			Confidence: s.Confidence,
			DeltaE:     s.DeltaE,
			Tone:       s.Tone.Name,
			Undertone:  string(s.Warmth.Temperature),
		}
		if i < len(regions) {
			rows[i].Region = regions[i]
		}
	}
	return csvutil.Marshal(rows)
}
