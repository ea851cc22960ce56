// Package colorspace converts colors between RGB, XYZ, CIE L*a*b*, HSL, HSV,
// CMYK and correlated color temperature, and measures perceptual distance
// between Lab colors with CIEDE2000.
//
// All conversions use the sRGB primaries with a D65 reference white.
package colorspace

import (
	"fmt"
	"math"
	"strings"
)

// Space identifies a color representation.
type Space int

const (
	SpaceRGB Space = iota
	SpaceXYZ
	SpaceLab
	SpaceHSL
	SpaceHSV
	SpaceCMYK
	SpaceKelvin
)

var spaceNames = map[Space]string{
	SpaceRGB:    "rgb",
	SpaceXYZ:    "xyz",
	SpaceLab:    "lab",
	SpaceHSL:    "hsl",
	SpaceHSV:    "hsv",
	SpaceCMYK:   "cmyk",
	SpaceKelvin: "kelvin",
}

func (s Space) String() string {
	if n, ok := spaceNames[s]; ok {
		return n
	}
	return fmt.Sprintf("space(%d)", int(s))
}

// ParseSpace returns the Space named by s (case insensitive).
func ParseSpace(s string) (Space, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for sp, n := range spaceNames {
		if n == s {
			return sp, nil
		}
	}
	if s == "k" {
		return SpaceKelvin, nil
	}
	return 0, &InvalidInputError{Reason: fmt.Sprintf("unknown color space %q", s)}
}

// Color is implemented by every color representation in this package.
type Color interface {
	Space() Space
	Validate() error
}

// RGB is an 8-bit sRGB color. Channels are in [0,255].
type RGB struct {
	R, G, B int
}

// XYZ is a CIE 1931 tristimulus value scaled so that Y of the reference white is 100.
type XYZ struct {
	X, Y, Z float64
}

// Lab is a CIE L*a*b* color relative to D65. Valid colors have L in [0,100]
// and a, b in [-128,127].
type Lab struct {
	L, A, B float64
}

// HSL holds hue in degrees [0,360) and saturation/lightness in [0,1].
type HSL struct {
	H, S, L float64
}

// HSV holds hue in degrees [0,360) and saturation/value in [0,1].
type HSV struct {
	H, S, V float64
}

// CMYK holds ink percentages, each in [0,100].
type CMYK struct {
	C, M, Y, K float64
}

// Kelvin is a correlated color temperature. It can be converted to other
// spaces but nothing converts into it.
type Kelvin float64

func (RGB) Space() Space    { return SpaceRGB }
func (XYZ) Space() Space    { return SpaceXYZ }
func (Lab) Space() Space    { return SpaceLab }
func (HSL) Space() Space    { return SpaceHSL }
func (HSV) Space() Space    { return SpaceHSV }
func (CMYK) Space() Space   { return SpaceCMYK }
func (Kelvin) Space() Space { return SpaceKelvin }

func (c RGB) Validate() error {
	for _, ch := range []struct {
		name string
		v    int
	}{{"r", c.R}, {"g", c.G}, {"b", c.B}} {
		if ch.v < 0 || ch.v > 255 {
			return &InvalidInputError{Field: ch.name, Value: float64(ch.v), Reason: "must be in [0,255]"}
		}
	}
	return nil
}

func (c XYZ) Validate() error {
	return checkFinite(map3("x", c.X, "y", c.Y, "z", c.Z))
}

func (c Lab) Validate() error {
	if err := checkFinite(map3("l", c.L, "a", c.A, "b", c.B)); err != nil {
		return err
	}
	if c.L < 0 || c.L > 100 {
		return &InvalidInputError{Field: "l", Value: c.L, Reason: "must be in [0,100]"}
	}
	for _, f := range []field{{"a", c.A}, {"b", c.B}} {
		if f.v < minLabAxis || f.v > maxLabAxis {
			return &InvalidInputError{Field: f.name, Value: f.v, Reason: "must be in [-128,127]"}
		}
	}
	return nil
}

func (c HSL) Validate() error {
	if err := checkFinite(map3("h", c.H, "s", c.S, "l", c.L)); err != nil {
		return err
	}
	if err := checkHue(c.H); err != nil {
		return err
	}
	return checkUnit([]field{{"s", c.S}, {"l", c.L}})
}

func (c HSV) Validate() error {
	if err := checkFinite(map3("h", c.H, "s", c.S, "v", c.V)); err != nil {
		return err
	}
	if err := checkHue(c.H); err != nil {
		return err
	}
	return checkUnit([]field{{"s", c.S}, {"v", c.V}})
}

func (c CMYK) Validate() error {
	fields := []field{{"c", c.C}, {"m", c.M}, {"y", c.Y}, {"k", c.K}}
	if err := checkFinite(fields); err != nil {
		return err
	}
	for _, f := range fields {
		if f.v < 0 || f.v > 100 {
			return &InvalidInputError{Field: f.name, Value: f.v, Reason: "must be in [0,100]"}
		}
	}
	return nil
}

func (k Kelvin) Validate() error {
	v := float64(k)
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return &InvalidInputError{Field: "kelvin", Value: v, Reason: "must be a positive finite temperature"}
	}
	return nil
}

// Hex returns the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", uint8(clampInt(c.R)), uint8(clampInt(c.G)), uint8(clampInt(c.B)))
}

// Chroma is the distance from the neutral axis, sqrt(a²+b²).
func (c Lab) Chroma() float64 {
	return math.Hypot(c.A, c.B)
}

// Hue is the hue angle atan2(b, a) in degrees, normalized to [0,360).
func (c Lab) Hue() float64 {
	return normalizeHue(math.Atan2(c.B, c.A) * 180 / math.Pi)
}

const (
	minLabAxis = -128
	maxLabAxis = 127
)

type field struct {
	name string
	v    float64
}

func map3(n1 string, v1 float64, n2 string, v2 float64, n3 string, v3 float64) []field {
	return []field{{n1, v1}, {n2, v2}, {n3, v3}}
}

func checkFinite(fs []field) error {
	for _, f := range fs {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return &InvalidInputError{Field: f.name, Value: f.v, Reason: "must be finite"}
		}
	}
	return nil
}

func checkHue(h float64) error {
	if h < 0 || h >= 360 {
		return &InvalidInputError{Field: "h", Value: h, Reason: "must be in [0,360)"}
	}
	return nil
}

func checkUnit(fs []field) error {
	for _, f := range fs {
		if f.v < 0 || f.v > 1 {
			return &InvalidInputError{Field: f.name, Value: f.v, Reason: "must be in [0,1]"}
		}
	}
	return nil
}

func (c RGB) String() string  { return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B) }
func (c XYZ) String() string  { return fmt.Sprintf("xyz(%.4f, %.4f, %.4f)", c.X, c.Y, c.Z) }
func (c Lab) String() string  { return fmt.Sprintf("lab(%.2f, %.2f, %.2f)", c.L, c.A, c.B) }
func (c HSL) String() string  { return fmt.Sprintf("hsl(%.1f, %.1f%%, %.1f%%)", c.H, c.S*100, c.L*100) }
func (c HSV) String() string  { return fmt.Sprintf("hsv(%.1f, %.1f%%, %.1f%%)", c.H, c.S*100, c.V*100) }
func (c CMYK) String() string { return fmt.Sprintf("cmyk(%.1f, %.1f, %.1f, %.1f)", c.C, c.M, c.Y, c.K) }
func (k Kelvin) String() string {
	return fmt.Sprintf("%gK", float64(k))
}
