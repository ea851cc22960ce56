// Package season classifies colors into personal color seasons and tone
// buckets against a reference palette, and aggregates several samples into a
// group verdict.
package season

import (
	"errors"
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/mmuldo/personalcolor/colorspace"
	"github.com/mmuldo/personalcolor/palette"
)

// Options tunes a Classifier. The zero value is valid.
type Options struct {
	// Saturation selects the tone saturation axis. Defaults to Lab chroma.
	Saturation SaturationMetric

	// Workers > 1 classifies group samples concurrently.
	Workers int

	// Converter performs color conversions. If nil, conversions are not cached.
	Converter *colorspace.Converter

	// Logger receives debug entries. If nil, nothing is logged.
	Logger logrus.FieldLogger
}

// Classifier matches colors against a palette. It is safe for concurrent use.
type Classifier struct {
	palette *palette.Palette
	conv    *colorspace.Converter
	opts    Options
	log     logrus.FieldLogger
}

// Result is the classification of a single color.
type Result struct {
	RGB colorspace.RGB
	Lab colorspace.Lab
	HSL colorspace.HSL

	Season     palette.Season
	Subtype    string // subtype of the nearest reference point
	Reference  string // label of the nearest reference point
	DeltaE     float64
	Confidence float64

	// SeasonDistances is the smallest deltaE to each season's points;
	// SeasonScores is the confidence derived from it.
	SeasonDistances map[palette.Season]float64
	SeasonScores    map[palette.Season]float64

	Tone            ToneMatch
	Warmth          Warmth
	Characteristics []string
}

// New returns a Classifier for p.
func New(p *palette.Palette, opts Options) (*Classifier, error) {
	if p == nil {
		return nil, errors.New("season: nil palette")
	}

	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.Out = io.Discard
		log = l
	}

	return &Classifier{
		palette: p,
		conv:    opts.Converter,
		opts:    opts,
		log:     log,
	}, nil
}

// Classify is a shorthand for New(p, opts) followed by Classify(c).
func Classify(c colorspace.Color, p *palette.Palette, opts Options) (*Result, error) {
	cl, err := New(p, opts)
	if err != nil {
		return nil, err
	}
	return cl.Classify(c)
}

// Palette returns the palette the classifier matches against.
func (cl *Classifier) Palette() *palette.Palette {
	return cl.palette
}

// Classify assigns c to the season whose nearest reference point has the
// smallest CIEDE2000 distance. Equal distances resolve in palette.SeasonOrder.
func (cl *Classifier) Classify(c colorspace.Color) (*Result, error) {
	if c == nil {
		return nil, &colorspace.InvalidInputError{Reason: "nil color"}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	lab, err := cl.conv.ToLab(c)
	if err != nil {
		return nil, err
	}
	// XYZ input converts straight to Lab and may land outside its range
	if err := lab.Validate(); err != nil {
		return nil, err
	}
	rgb, err := cl.conv.ToRGB(c)
	if err != nil {
		return nil, err
	}
	hsl, err := cl.conv.ToHSL(rgb)
	if err != nil {
		return nil, err
	}

	tones, err := cl.palette.Tones()
	if err != nil {
		return nil, err
	}

	res := &Result{
		RGB:             rgb,
		Lab:             lab,
		HSL:             hsl,
		DeltaE:          math.Inf(1),
		SeasonDistances: make(map[palette.Season]float64, len(palette.SeasonOrder)),
		SeasonScores:    make(map[palette.Season]float64, len(palette.SeasonOrder)),
	}

	for i, s := range palette.SeasonOrder {
		points, err := cl.palette.Points(s)
		if err != nil {
			return nil, err
		}

		nearest := points[0]
		dist := colorspace.DeltaE2000(lab, nearest.Lab)
		for _, pt := range points[1:] {
			if d := colorspace.DeltaE2000(lab, pt.Lab); d < dist {
				dist, nearest = d, pt
			}
		}

		res.SeasonDistances[s] = dist
		res.SeasonScores[s] = ConfidenceFromDeltaE(dist)
		if i == 0 || dist < res.DeltaE {
			res.DeltaE = dist
			res.Season = s
			res.Subtype = nearest.Subtype
			res.Reference = nearest.Label
		}
	}

	res.Confidence = ConfidenceFromDeltaE(res.DeltaE)
	brightness, saturation := toneCoordinates(lab, hsl, cl.opts.Saturation)
	res.Tone = matchTone(brightness, saturation, tones)
	res.Warmth = assessWarmth(rgb, lab)
	res.Characteristics = cl.palette.Characteristics(res.Season)

	cl.log.WithFields(logrus.Fields{
		"rgb":        rgb.Hex(),
		"season":     res.Season,
		"deltaE":     res.DeltaE,
		"confidence": res.Confidence,
		"tone":       res.Tone.Name,
		"warmth":     res.Warmth.Temperature,
	}).Debug("classified color")

	return res, nil
}
