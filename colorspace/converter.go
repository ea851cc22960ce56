package colorspace

import (
	lru "github.com/hashicorp/golang-lru"
)

// DefaultCacheSize is the number of memoized conversions kept by NewConverter
// when a positive size is not given.
const DefaultCacheSize = 1000

type conversion struct {
	from, to Space
}

type convertFunc func(Color) (Color, bool)

func edge[F, T Color](fn func(F) T) convertFunc {
	return func(c Color) (Color, bool) {
		f, ok := c.(F)
		if !ok {
			return nil, false
		}
		return fn(f), true
	}
}

// direct conversions; every other supported pair is composed through RGB at init
var conversions = map[conversion]convertFunc{
	{SpaceRGB, SpaceXYZ}:    edge(RGBToXYZ),
	{SpaceXYZ, SpaceRGB}:    edge(XYZToRGB),
	{SpaceXYZ, SpaceLab}:    edge(XYZToLab),
	{SpaceLab, SpaceXYZ}:    edge(LabToXYZ),
	{SpaceRGB, SpaceLab}:    edge(RGBToLab),
	{SpaceLab, SpaceRGB}:    edge(LabToRGB),
	{SpaceRGB, SpaceHSL}:    edge(RGBToHSL),
	{SpaceHSL, SpaceRGB}:    edge(HSLToRGB),
	{SpaceRGB, SpaceHSV}:    edge(RGBToHSV),
	{SpaceHSV, SpaceRGB}:    edge(HSVToRGB),
	{SpaceRGB, SpaceCMYK}:   edge(RGBToCMYK),
	{SpaceCMYK, SpaceRGB}:   edge(CMYKToRGB),
	{SpaceKelvin, SpaceRGB}: edge(KelvinToRGB),
}

func init() {
	var toRGB, fromRGB []Space
	for c := range conversions {
		if c.to == SpaceRGB {
			toRGB = append(toRGB, c.from)
		}
		if c.from == SpaceRGB {
			fromRGB = append(fromRGB, c.to)
		}
	}

	for _, from := range toRGB {
		for _, to := range fromRGB {
			if from == to {
				continue
			}
			key := conversion{from, to}
			if _, ok := conversions[key]; ok {
				continue
			}
			first, second := conversions[conversion{from, SpaceRGB}], conversions[conversion{SpaceRGB, to}]
			conversions[key] = func(c Color) (Color, bool) {
				rgb, ok := first(c)
				if !ok {
					return nil, false
				}
				return second(rgb)
			}
		}
	}
}

// Supported reports whether Convert has a path from one space to another.
func Supported(from, to Space) bool {
	if from == to {
		_, ok := spaceNames[from]
		return ok
	}
	_, ok := conversions[conversion{from, to}]
	return ok
}

// Converter converts colors between spaces, optionally memoizing results in a
// bounded LRU cache. The zero value is usable and does not cache. A Converter
// is safe for concurrent use.
type Converter struct {
	cache *lru.Cache
}

type cacheKey struct {
	c  Color
	to Space
}

// NewConverter returns a Converter with an LRU cache of the given size.
// A size of zero or less disables caching.
func NewConverter(cacheSize int) (*Converter, error) {
	if cacheSize <= 0 {
		return &Converter{}, nil
	}

	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, err
	}
	return &Converter{cache: cache}, nil
}

// Convert converts c, which must be a valid color in space from, into space to.
func (cv *Converter) Convert(c Color, from, to Space) (Color, error) {
	if c == nil {
		return nil, &InvalidInputError{Reason: "nil color"}
	}
	if c.Space() != from {
		return nil, &InvalidInputError{Reason: "color is in " + c.Space().String() + ", not " + from.String()}
	}
	if !Supported(from, to) {
		return nil, &UnsupportedConversionError{From: from, To: to}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if from == to {
		return c, nil
	}

	key := cacheKey{c, to}
	if cv != nil && cv.cache != nil {
		if v, ok := cv.cache.Get(key); ok {
			return v.(Color), nil
		}
	}

	out, ok := conversions[conversion{from, to}](c)
	if !ok {
		return nil, &UnsupportedConversionError{From: from, To: to}
	}

	if cv != nil && cv.cache != nil {
		cv.cache.Add(key, out)
	}
	return out, nil
}

// CacheLen returns the number of memoized conversions.
func (cv *Converter) CacheLen() int {
	if cv == nil || cv.cache == nil {
		return 0
	}
	return cv.cache.Len()
}

// ToRGB converts any supported color to RGB.
func (cv *Converter) ToRGB(c Color) (RGB, error) {
	out, err := cv.to(c, SpaceRGB)
	if err != nil {
		return RGB{}, err
	}
	return out.(RGB), nil
}

// ToLab converts any supported color to Lab. XYZ input skips the RGB
// quantization step.
func (cv *Converter) ToLab(c Color) (Lab, error) {
	out, err := cv.to(c, SpaceLab)
	if err != nil {
		return Lab{}, err
	}
	return out.(Lab), nil
}

// ToHSL converts any supported color to HSL.
func (cv *Converter) ToHSL(c Color) (HSL, error) {
	out, err := cv.to(c, SpaceHSL)
	if err != nil {
		return HSL{}, err
	}
	return out.(HSL), nil
}

func (cv *Converter) to(c Color, sp Space) (Color, error) {
	if c == nil {
		return nil, &InvalidInputError{Reason: "nil color"}
	}
	return cv.Convert(c, c.Space(), sp)
}

// Convert converts without caching.
func Convert(c Color, from, to Space) (Color, error) {
	var cv *Converter
	return cv.Convert(c, from, to)
}
