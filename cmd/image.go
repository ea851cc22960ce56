package cmd

import (
	"fmt"
	"image"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mmuldo/personalcolor/colorspace"
	"github.com/mmuldo/personalcolor/report"
	"github.com/mmuldo/personalcolor/sampler"
)

var (
	numColors  int
	regionArgs []string
	swatchPath string
)

// imageCmd represents the image command
var imageCmd = &cobra.Command{
	Use:   "image <path>",
	Short: "Samples an image and classifies the samples as a group",
	Long: `Samples a png, jpeg or webp image and classifies the samples as a group.

With --region (repeatable, x,y,w,h) the mean color of each region is used,
e.g. cheek, forehead and chin of a face photo. Without it the image is
quantized and its --colors most common colors are used.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := sampler.Load(args[0])
		if err != nil {
			return err
		}

		rgbs, err := sample(img)
		if err != nil {
			return err
		}

		if swatchPath != "" {
			if err := writeSwatches(swatchPath, rgbs); err != nil {
				return err
			}
		}

		colors := make([]colorspace.Color, len(rgbs))
		for i, c := range rgbs {
			colors[i] = c
		}

		cl, err := newClassifier()
		if err != nil {
			return err
		}
		g, err := cl.ClassifyGroup(colors)
		if err != nil {
			return err
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
	rootCmd.AddCommand(imageCmd)

	imageCmd.Flags().IntVarP(&numColors, "colors", "n", 5, "number of dominant colors to sample")
	imageCmd.Flags().StringArrayVarP(&regionArgs, "region", "r", nil, "region x,y,w,h to sample (repeatable)")
	imageCmd.Flags().StringVar(&swatchPath, "swatch", "", "write the sampled colors as a png swatch grid")
}

func sample(img image.Image) ([]colorspace.RGB, error) {
	if len(regionArgs) > 0 {
		rects := make([]image.Rectangle, 0, len(regionArgs))
		for _, a := range regionArgs {
			r, err := sampler.ParseRegion(a)
			if err != nil {
				return nil, err
			}
			rects = append(rects, r)
		}
		return sampler.Regions(img, rects)
	}

	samples, err := sampler.Dominant(img, numColors)
	if err != nil {
		return nil, err
	}
	rgbs := make([]colorspace.RGB, 0, len(samples))
	for _, s := range samples {
		log.WithFields(log.Fields{"color": s.RGB.Hex(), "pixels": s.Count}).Debug("dominant color")
		rgbs = append(rgbs, s.RGB)
	}
	return rgbs, nil
}

func writeSwatches(path string, colors []colorspace.RGB) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := sampler.WriteSwatches(f, colors, 200); err != nil {
		return err
	}
	log.WithField("path", path).Info("wrote swatches")
	return nil
}
