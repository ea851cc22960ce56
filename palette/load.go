package palette

import (
	"fmt"
	"io"

	"github.com/spf13/viper"

	"github.com/mmuldo/personalcolor/colorspace"
)

type fileReference struct {
	Subtype string    `mapstructure:"subtype"`
	Label   string    `mapstructure:"label"`
	Lab     []float64 `mapstructure:"lab"`
	Hex     string    `mapstructure:"hex"`
}

type fileSeason struct {
	Characteristics []string        `mapstructure:"characteristics"`
	References      []fileReference `mapstructure:"references"`
}

type fileTone struct {
	Name       string  `mapstructure:"name"`
	Brightness float64 `mapstructure:"brightness"`
	Saturation float64 `mapstructure:"saturation"`
}

type paletteFile struct {
	Seasons map[string]fileSeason `mapstructure:"seasons"`
	Tones   []fileTone            `mapstructure:"tones"`
}

// Load reads a palette file. The format (yaml, json, toml, ...) is taken from
// the file extension. A reference point is given either as `lab: [L, a, b]`
// or as `hex: "#rrggbb"`. When the file lists no tones the built-in tone
// prototypes are used.
//
//	seasons:
//	  spring:
//	    characteristics: [warm undertone]
//	    references:
//	      - {subtype: light, label: ivory peach, lab: [72, 10, 20]}
//	tones:
//	  - {name: pale, brightness: 85, saturation: 15}
func Load(path string) (*Palette, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading palette %s: %w", path, err)
	}
	p, err := decode(v)
	if err != nil {
		return nil, fmt.Errorf("palette %s: %w", path, err)
	}
	return p, nil
}

// Read is like Load but reads from r in the given format.
func Read(r io.Reader, format string) (*Palette, error) {
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("reading palette: %w", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Palette, error) {
	var f paletteFile
	if err := v.Unmarshal(&f); err != nil {
		return nil, err
	}

	var points []ReferencePoint
	traits := make(map[Season][]string)
	// walk seasons in the fixed order so point order does not depend on map iteration
	for name := range f.Seasons {
		if _, err := ParseSeason(name); err != nil {
			return nil, err
		}
	}
	for _, season := range SeasonOrder {
		fs, ok := f.Seasons[string(season)]
		if !ok {
			continue
		}
		traits[season] = fs.Characteristics
		for i, ref := range fs.References {
			lab, err := ref.lab()
			if err != nil {
				return nil, fmt.Errorf("%s reference %d: %w", season, i, err)
			}
			points = append(points, ReferencePoint{
				Season:  season,
				Subtype: ref.Subtype,
				Label:   ref.Label,
				Lab:     lab,
			})
		}
	}

	tones := make([]TonePrototype, 0, len(f.Tones))
	for _, t := range f.Tones {
		tones = append(tones, TonePrototype(t))
	}
	if len(tones) == 0 {
		tones = DefaultTones()
	}

	return New(points, tones, traits)
}

func (r fileReference) lab() (colorspace.Lab, error) {
	switch {
	case len(r.Lab) == 3 && r.Hex != "":
		return colorspace.Lab{}, fmt.Errorf("both lab and hex given")
	case len(r.Lab) == 3:
		return colorspace.Lab{L: r.Lab[0], A: r.Lab[1], B: r.Lab[2]}, nil
	case r.Hex != "":
		rgb, err := colorspace.ParseHex(r.Hex)
		if err != nil {
			return colorspace.Lab{}, err
		}
		return colorspace.RGBToLab(rgb), nil
	default:
		return colorspace.Lab{}, fmt.Errorf("needs lab: [L, a, b] or hex")
	}
}
