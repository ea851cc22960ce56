package palette

import "github.com/mmuldo/personalcolor/colorspace"

var defaultPoints = []ReferencePoint{
	{Spring, "light", "ivory peach", colorspace.Lab{L: 72, A: 10, B: 20}},
	{Spring, "bright", "warm coral", colorspace.Lab{L: 68, A: 14, B: 24}},
	{Spring, "clear", "golden beige", colorspace.Lab{L: 74, A: 8, B: 18}},

	{Summer, "light", "rose beige", colorspace.Lab{L: 71, A: 9, B: 9}},
	{Summer, "soft", "cool pink", colorspace.Lab{L: 66, A: 11, B: 7}},
	{Summer, "mute", "ash beige", colorspace.Lab{L: 64, A: 6, B: 10}},

	{Autumn, "soft", "camel", colorspace.Lab{L: 60, A: 11, B: 26}},
	{Autumn, "deep", "bronze", colorspace.Lab{L: 52, A: 14, B: 24}},
	{Autumn, "warm", "golden tan", colorspace.Lab{L: 63, A: 9, B: 30}},

	{Winter, "deep", "cool cocoa", colorspace.Lab{L: 50, A: 10, B: 8}},
	{Winter, "bright", "porcelain", colorspace.Lab{L: 78, A: 4, B: 6}},
	{Winter, "dark", "ebony rose", colorspace.Lab{L: 40, A: 12, B: 6}},
}

// PCCS-style tones; brightness is L*, saturation is on a 0-100 scale.
var defaultTones = []TonePrototype{
	{"pale", 85, 15},
	{"light", 75, 35},
	{"bright", 65, 60},
	{"vivid", 55, 90},
	{"strong", 50, 65},
	{"soft", 65, 30},
	{"dull", 50, 30},
	{"deep", 35, 60},
	{"dark", 25, 35},
	{"light_grayish", 75, 8},
	{"grayish", 50, 8},
	{"dark_grayish", 25, 8},
}

var defaultCharacteristics = map[Season][]string{
	Spring: {"warm undertone", "light to medium depth", "clear and bright"},
	Summer: {"cool undertone", "light depth", "soft and muted"},
	Autumn: {"warm undertone", "medium to deep", "muted and rich"},
	Winter: {"cool undertone", "deep or high contrast", "clear and vivid"},
}

// Default returns the built-in palette.
func Default() *Palette {
	p, err := New(defaultPoints, defaultTones, defaultCharacteristics)
	if err != nil {
		panic("palette: invalid built-in palette: " + err.Error())
	}
	return p
}

// DefaultTones returns the built-in tone prototypes.
func DefaultTones() []TonePrototype {
	return append([]TonePrototype(nil), defaultTones...)
}
