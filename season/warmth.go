package season

import (
	"fmt"
	"strings"

	"github.com/mmuldo/personalcolor/colorspace"
)

// Temperature is the undertone verdict of a color.
type Temperature string

const (
	Warm    Temperature = "warm"
	Cool    Temperature = "cool"
	Neutral Temperature = "neutral"
)

// Temperatures lists the verdicts in reporting order.
var Temperatures = []Temperature{Warm, Neutral, Cool}

// ParseTemperature accepts warm, cool or neutral.
func ParseTemperature(s string) (Temperature, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range Temperatures {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown temperature %q", s)
}

const (
	minRedGreenRatio = 1.1
	minRedBlueRatio  = 1.3
	minWarmA         = 5
	minWarmB         = 10
	minWarmHue       = 30
	maxWarmHue       = 120
	minWarmChroma    = 15

	// votes needed for a warm verdict
	warmQuorum = 2
)

// Warmth records the four undertone indicators and the resulting verdict.
type Warmth struct {
	Temperature Temperature
	Votes       int

	RedDominant bool // r/(g+1) and r/(b+1) above their thresholds
	WarmAxes    bool // a* > 5 and b* > 10
	WarmHue     bool // Lab hue angle within [30°,120°]
	Saturated   bool // chroma > 15
}

// assessWarmth votes warm with two or more indicators, neutral with exactly
// one and cool with none.
func assessWarmth(rgb colorspace.RGB, lab colorspace.Lab) Warmth {
	r, g, b := float64(rgb.R), float64(rgb.G), float64(rgb.B)
	hue := lab.Hue()

	w := Warmth{
		RedDominant: r/(g+1) > minRedGreenRatio && r/(b+1) > minRedBlueRatio,
		WarmAxes:    lab.A > minWarmA && lab.B > minWarmB,
		WarmHue:     hue >= minWarmHue && hue <= maxWarmHue,
		Saturated:   lab.Chroma() > minWarmChroma,
	}
	for _, vote := range []bool{w.RedDominant, w.WarmAxes, w.WarmHue, w.Saturated} {
		if vote {
			w.Votes++
		}
	}

	switch {
	case w.Votes >= warmQuorum:
		w.Temperature = Warm
	case w.Votes == 1:
		w.Temperature = Neutral
	default:
		w.Temperature = Cool
	}
	return w
}
