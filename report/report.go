// Package report renders classification results as terminal text.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/flosch/pongo2"

	"github.com/mmuldo/personalcolor/colorspace"
	"github.com/mmuldo/personalcolor/palette"
	"github.com/mmuldo/personalcolor/season"
)

var resultTpl = pongo2.Must(pongo2.FromString(`{{ swatch|safe }} {{ hex }}  {{ season|upper }} ({{ subtype }}, nearest "{{ reference }}")
  confidence {{ confidence|floatformat:1 }}%  deltaE {{ deltaE|floatformat:2 }}
  Lab {{ lab.L|floatformat:2 }} {{ lab.A|floatformat:2 }} {{ lab.B|floatformat:2 }}  HSL {{ hsl.H|floatformat:0 }} {{ hslS|floatformat:0 }}% {{ hslL|floatformat:0 }}%
  tone {{ tone.Name }} ({{ tone.Confidence|floatformat:0 }}%)  undertone {{ warmth.Temperature }} ({{ warmth.Votes }}/4)
{% for row in scores %}  {{ row.Marker }} {{ row.Name|ljust:7 }} {{ row.Score|floatformat:1 }}  (deltaE {{ row.Distance|floatformat:2 }})
{% endfor %}{% if traits %}  {{ traits }}
{% endif %}`))

var groupTpl = pongo2.Must(pongo2.FromString(`{{ samples }} samples -> {{ season|upper }}  confidence {{ confidence|floatformat:1 }}%  harmony {{ harmony|floatformat:1 }}
{% for row in scores %}  {{ row.Marker }} {{ row.Name|ljust:7 }} {{ row.Score|floatformat:1 }}
{% endfor %}  tones: {{ tones }}
  undertone: {{ temps }}
`))

var paletteTpl = pongo2.Must(pongo2.FromString(`{% for s in seasons %}{{ s.Name|upper }}{% if s.Traits %}: {{ s.Traits }}{% endif %}
{% for p in s.Points %}  {{ p.Swatch|safe }} {{ p.Hex }} {{ p.Subtype|ljust:8 }} {{ p.Label }}
{% endfor %}{% endfor %}tones: {{ tones }}
`))

type scoreRow struct {
	Name     string
	Score    float64
	Distance float64
	Marker   string
}

type pointRow struct {
	Swatch  string
	Hex     string
	Subtype string
	Label   string
}

type seasonRow struct {
	Name   string
	Traits string
	Points []pointRow
}

// Result renders a single classification.
func Result(r *season.Result) (string, error) {
	scores := make([]scoreRow, 0, len(palette.SeasonOrder))
	for _, s := range palette.SeasonOrder {
		scores = append(scores, scoreRow{
			Name:     string(s),
			Score:    r.SeasonScores[s],
			Distance: r.SeasonDistances[s],
			Marker:   marker(s == r.Season),
		})
	}

	return resultTpl.Execute(pongo2.Context{
		"swatch":     Swatch(r.RGB),
		"hex":        r.RGB.Hex(),
		"season":     string(r.Season),
		"subtype":    r.Subtype,
		"reference":  r.Reference,
		"confidence": r.Confidence,
		"deltaE":     r.DeltaE,
		"lab":        r.Lab,
		"hsl":        r.HSL,
		"hslS":       r.HSL.S * 100,
		"hslL":       r.HSL.L * 100,
		"tone":       r.Tone,
		"warmth":     r.Warmth,
		"scores":     scores,
		"traits":     strings.Join(r.Characteristics, ", "),
	})
}

// Group renders an aggregated verdict followed by every sample.
func Group(g *season.GroupResult) (string, error) {
	scores := make([]scoreRow, 0, len(palette.SeasonOrder))
	for _, s := range palette.SeasonOrder {
		scores = append(scores, scoreRow{
			Name:   string(s),
			Score:  g.SeasonScores[s],
			Marker: marker(s == g.DominantSeason),
		})
	}

	temps := make([]string, 0, len(season.Temperatures))
	for _, t := range season.Temperatures {
		temps = append(temps, fmt.Sprintf("%s %.0f%%", t, g.TemperatureDistribution[t]*100))
	}

	out, err := groupTpl.Execute(pongo2.Context{
		"samples":    len(g.Samples),
		"season":     string(g.DominantSeason),
		"confidence": g.Confidence,
		"harmony":    g.HarmonyScore,
		"scores":     scores,
		"tones":      countList(g.ToneDistribution),
		"temps":      strings.Join(temps, ", "),
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(out)
	for i := range g.Samples {
		s, err := Result(&g.Samples[i])
		if err != nil {
			return "", err
		}
		b.WriteString("\n")
		b.WriteString(s)
	}
	return b.String(), nil
}

// Palette renders the reference points and tones of p.
func Palette(p *palette.Palette) (string, error) {
	var seasons []seasonRow
	for _, s := range palette.SeasonOrder {
		row := seasonRow{Name: string(s), Traits: strings.Join(p.Characteristics(s), ", ")}
		points, err := p.Points(s)
		if err == nil {
			for _, pt := range points {
				rgb := colorspace.LabToRGB(pt.Lab)
				row.Points = append(row.Points, pointRow{
					Swatch:  Swatch(rgb),
					Hex:     rgb.Hex(),
					Subtype: pt.Subtype,
					Label:   pt.Label,
				})
			}
		}
		seasons = append(seasons, row)
	}

	var names []string
	if tones, err := p.Tones(); err == nil {
		for _, t := range tones {
			names = append(names, t.Name)
		}
	}

	return paletteTpl.Execute(pongo2.Context{
		"seasons": seasons,
		"tones":   strings.Join(names, ", "),
	})
}

// Swatch returns a two-cell block in the given color using a 24-bit ANSI
// background escape.
func Swatch(c colorspace.RGB) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm  \033[0m", c.R, c.G, c.B)
}

func marker(selected bool) string {
	if selected {
		return "*"
	}
	return " "
}

// countList formats counts as "name n" sorted by descending count then name.
func countList(m map[string]int) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if m[keys[i]] != m[keys[j]] {
			return m[keys[i]] > m[keys[j]]
		}
		return keys[i] < keys[j]
	})

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s %d", k, m[k])
	}
	return strings.Join(parts, ", ")
}
