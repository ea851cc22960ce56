// Package palette holds the reference data a season classifier matches
// against: representative Lab points per season and named tone prototypes.
package palette

import (
	"fmt"
	"strings"

	"github.com/mmuldo/personalcolor/colorspace"
)

// Season is a personal color season.
type Season string

const (
	Spring Season = "spring"
	Summer Season = "summer"
	Autumn Season = "autumn"
	Winter Season = "winter"
)

// SeasonOrder is the fixed iteration order for seasons. When two seasons
// score the same, the one listed first wins.
var SeasonOrder = []Season{Spring, Summer, Autumn, Winter}

// ParseSeason returns the season named by s (case insensitive).
func ParseSeason(s string) (Season, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, season := range SeasonOrder {
		if string(season) == s {
			return season, nil
		}
	}
	return "", fmt.Errorf("unknown season %q", s)
}

// ReferencePoint is one representative color of a season.
type ReferencePoint struct {
	Season  Season
	Subtype string
	Label   string
	Lab     colorspace.Lab
}

// TonePrototype is a named brightness/saturation bucket.
type TonePrototype struct {
	Name       string
	Brightness float64
	Saturation float64
}

// Palette is an immutable set of reference points and tone prototypes.
type Palette struct {
	points map[Season][]ReferencePoint
	tones  []TonePrototype
	traits map[Season][]string
}

// New builds a Palette. Seasons may be left without points; classifying
// against such a palette fails with a ReferenceDataMissingError.
func New(points []ReferencePoint, tones []TonePrototype, characteristics map[Season][]string) (*Palette, error) {
	p := &Palette{
		points: make(map[Season][]ReferencePoint),
		traits: make(map[Season][]string),
	}

	for i, pt := range points {
		if _, err := ParseSeason(string(pt.Season)); err != nil {
			return nil, fmt.Errorf("reference point %d: %w", i, err)
		}
		if err := pt.Lab.Validate(); err != nil {
			return nil, fmt.Errorf("reference point %d (%s): %w", i, pt.Label, err)
		}
		p.points[pt.Season] = append(p.points[pt.Season], pt)
	}

	seen := make(map[string]bool)
	for _, t := range tones {
		if t.Name == "" {
			return nil, fmt.Errorf("tone prototype without a name")
		}
		if seen[t.Name] {
			return nil, fmt.Errorf("duplicate tone prototype %q", t.Name)
		}
		seen[t.Name] = true
		p.tones = append(p.tones, t)
	}

	for s, c := range characteristics {
		if _, err := ParseSeason(string(s)); err != nil {
			return nil, err
		}
		p.traits[s] = append([]string(nil), c...)
	}

	return p, nil
}

// Points returns the reference points of a season.
func (p *Palette) Points(s Season) ([]ReferencePoint, error) {
	if p == nil || len(p.points[s]) == 0 {
		return nil, &ReferenceDataMissingError{Season: s}
	}
	return append([]ReferencePoint(nil), p.points[s]...), nil
}

// Tones returns the tone prototypes in palette order.
func (p *Palette) Tones() ([]TonePrototype, error) {
	if p == nil || len(p.tones) == 0 {
		return nil, &ReferenceDataMissingError{}
	}
	return append([]TonePrototype(nil), p.tones...), nil
}

// Characteristics returns the descriptive traits of a season, if any.
func (p *Palette) Characteristics(s Season) []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.traits[s]...)
}

// Len returns the total number of reference points.
func (p *Palette) Len() int {
	if p == nil {
		return 0
	}
	n := 0
	for _, pts := range p.points {
		n += len(pts)
	}
	return n
}

// ReferenceDataMissingError reports a season without reference points, or a
// palette without tone prototypes when Season is empty.
type ReferenceDataMissingError struct {
	Season Season
}

func (e *ReferenceDataMissingError) Error() string {
	if e.Season == "" {
		return "palette has no tone prototypes"
	}
	return fmt.Sprintf("palette has no reference points for %s", e.Season)
}
