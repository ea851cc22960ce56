package sampler

import (
	"fmt"
	"image"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/esimov/colorquant"

	"github.com/mmuldo/personalcolor/colorspace"
)

// Sample is a color and the number of pixels it covers.
type Sample struct {
	RGB   colorspace.RGB
	Count int
}

type byCount []Sample

func (s byCount) Len() int { return len(s) }
func (s byCount) Less(i, j int) bool {
	if s[i].Count != s[j].Count {
		return s[i].Count > s[j].Count
	}
	return s[i].RGB.Hex() < s[j].RGB.Hex()
}
func (s byCount) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// Dominant quantizes img to at most num colors and returns them ranked by
// pixel count. Fully transparent pixels are ignored.
func Dominant(img image.Image, num int) ([]Sample, error) {
	if num <= 0 {
		return nil, &colorspace.InvalidInputError{Field: "colors", Value: float64(num), Reason: "must be positive"}
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, &colorspace.InvalidInputError{Reason: "empty image"}
	}

	o := image.NewNRGBA(b)
	colorquant.NoDither.Quantize(img, o, num, false, true)

	m := make(map[colorspace.RGB]int)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a == 0 {
				continue
			}
			m[toRGB(o.At(x, y))]++
		}
	}
	if len(m) == 0 {
		return nil, &colorspace.InvalidInputError{Reason: "image has no opaque pixels"}
	}

	samples := make([]Sample, 0, len(m))
	for c, n := range m {
		samples = append(samples, Sample{RGB: c, Count: n})
	}
	sort.Sort(byCount(samples))
	return samples, nil
}

// Region returns the mean color of the pixels of img inside r. Fully
// transparent pixels are skipped.
func Region(img image.Image, r image.Rectangle) (colorspace.RGB, error) {
	r = r.Intersect(img.Bounds())

	var sr, sg, sb, n int
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			sr += int(c.R)
			sg += int(c.G)
			sb += int(c.B)
			n++
		}
	}
	if n == 0 {
		return colorspace.RGB{}, &colorspace.InvalidInputError{Reason: fmt.Sprintf("region %v has no opaque pixels", r)}
	}

	return colorspace.RGB{
		R: (sr + n/2) / n,
		G: (sg + n/2) / n,
		B: (sb + n/2) / n,
	}, nil
}

// Regions samples every rectangle in order.
func Regions(img image.Image, rs []image.Rectangle) ([]colorspace.RGB, error) {
	out := make([]colorspace.RGB, 0, len(rs))
	for _, r := range rs {
		c, err := Region(img, r)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// ParseRegion parses "x,y,w,h" into a rectangle.
func ParseRegion(s string) (image.Rectangle, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return image.Rectangle{}, &colorspace.InvalidInputError{Reason: fmt.Sprintf("region %q must be x,y,w,h", s)}
	}

	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return image.Rectangle{}, &colorspace.InvalidInputError{Reason: fmt.Sprintf("region %q: %v", s, err)}
		}
		v[i] = n
	}
	if v[2] <= 0 || v[3] <= 0 {
		return image.Rectangle{}, &colorspace.InvalidInputError{Reason: fmt.Sprintf("region %q must have a positive size", s)}
	}
	return image.Rect(v[0], v[1], v[0]+v[2], v[1]+v[3]), nil
}

func toRGB(c color.Color) colorspace.RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return colorspace.RGB{R: int(n.R), G: int(n.G), B: int(n.B)}
}
