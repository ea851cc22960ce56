package season

import (
	"fmt"
	"math"
	"strings"

	"github.com/mmuldo/personalcolor/colorspace"
	"github.com/mmuldo/personalcolor/palette"
)

// SaturationMetric selects how the saturation axis of a tone is measured.
type SaturationMetric int

const (
	// SaturationChroma uses Lab chroma.
	SaturationChroma SaturationMetric = iota
	// SaturationHSL uses HSL saturation scaled to [0,100].
	SaturationHSL
)

func (m SaturationMetric) String() string {
	if m == SaturationHSL {
		return "hsl"
	}
	return "chroma"
}

// ParseSaturationMetric accepts "chroma" or "hsl".
func ParseSaturationMetric(s string) (SaturationMetric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "chroma":
		return SaturationChroma, nil
	case "hsl":
		return SaturationHSL, nil
	}
	return 0, fmt.Errorf("unknown saturation metric %q", s)
}

// ToneMatch is the nearest tone prototype for a color.
type ToneMatch struct {
	Name       string
	Brightness float64
	Saturation float64
	Distance   float64
	Confidence float64
}

// toneDistanceScale is the distance at which tone confidence reaches zero.
const toneDistanceScale = 50

func toneCoordinates(lab colorspace.Lab, hsl colorspace.HSL, m SaturationMetric) (brightness, saturation float64) {
	if m == SaturationHSL {
		return lab.L, hsl.S * 100
	}
	return lab.L, lab.Chroma()
}

// matchTone picks the prototype nearest in the brightness/saturation plane.
// Ties go to the prototype listed first.
func matchTone(brightness, saturation float64, tones []palette.TonePrototype) ToneMatch {
	best := ToneMatch{Distance: math.Inf(1)}
	for _, t := range tones {
		d := math.Hypot(brightness-t.Brightness, saturation-t.Saturation)
		if d < best.Distance {
			best = ToneMatch{Name: t.Name, Distance: d}
		}
	}
	best.Brightness = brightness
	best.Saturation = saturation
	best.Confidence = math.Max(0, (1-best.Distance/toneDistanceScale)*100)
	return best
}
