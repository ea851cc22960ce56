package palette

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmuldo/personalcolor/colorspace"
)

const yamlPalette = `
seasons:
  spring:
    characteristics: [warm undertone, bright]
    references:
      - {subtype: light, label: ivory peach, lab: [72, 10, 20]}
      - {subtype: bright, label: coral, hex: "#ff7f50"}
  winter:
    references:
      - {subtype: deep, label: cocoa, lab: [50, 10, 8]}
tones:
  - {name: light, brightness: 75, saturation: 35}
  - {name: dark, brightness: 25, saturation: 35}
`

func TestRead_YAML(t *testing.T) {
	p, err := Read(strings.NewReader(yamlPalette), "yaml")
	if err != nil {
		t.Fatal(err)
	}

	spring, err := p.Points(Spring)
	if err != nil {
		t.Fatal(err)
	}
	if len(spring) != 2 {
		t.Fatalf("spring has %d points, want 2", len(spring))
	}
	if spring[0].Lab != (colorspace.Lab{L: 72, A: 10, B: 20}) || spring[0].Label != "ivory peach" {
		t.Errorf("first spring point = %+v", spring[0])
	}
	if want := colorspace.RGBToLab(colorspace.RGB{R: 255, G: 127, B: 80}); spring[1].Lab != want {
		t.Errorf("hex reference = %v, want %v", spring[1].Lab, want)
	}

	if _, err := p.Points(Summer); err == nil {
		t.Error("summer should have no points")
	}

	tones, err := p.Tones()
	if err != nil {
		t.Fatal(err)
	}
	if len(tones) != 2 || tones[0] != (TonePrototype{"light", 75, 35}) {
		t.Errorf("tones = %v", tones)
	}

	if got := p.Characteristics(Spring); len(got) != 2 || got[1] != "bright" {
		t.Errorf("characteristics = %v", got)
	}
}

func TestLoad_JSONWithDefaultTones(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.json")
	data := `{"seasons": {"autumn": {"references": [{"subtype": "soft", "label": "camel", "lab": [60, 11, 26]}]}}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 1 {
		t.Errorf("Len = %d, want 1", p.Len())
	}
	tones, err := p.Tones()
	if err != nil {
		t.Fatal(err)
	}
	if len(tones) != len(DefaultTones()) {
		t.Errorf("got %d tones, want the %d built-in ones", len(tones), len(DefaultTones()))
	}
}

func TestRead_Invalid(t *testing.T) {
	tests := map[string]string{
		"unknown season":   "seasons:\n  monsoon:\n    references:\n      - {lab: [50, 0, 0]}\n",
		"lab and hex":      "seasons:\n  spring:\n    references:\n      - {lab: [50, 0, 0], hex: \"#000\"}\n",
		"no color":         "seasons:\n  spring:\n    references:\n      - {label: nothing}\n",
		"short lab":        "seasons:\n  spring:\n    references:\n      - {lab: [50, 0]}\n",
		"bad hex":          "seasons:\n  spring:\n    references:\n      - {hex: \"#12\"}\n",
		"lab out of range": "seasons:\n  spring:\n    references:\n      - {lab: [150, 0, 0]}\n",
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Read(strings.NewReader(data), "yaml"); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error")
	}
}
