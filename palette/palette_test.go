package palette

import (
	"errors"
	"testing"

	"github.com/mmuldo/personalcolor/colorspace"
)

func TestDefault(t *testing.T) {
	p := Default()
	if p.Len() != 12 {
		t.Errorf("Len = %d, want 12", p.Len())
	}
	for _, s := range SeasonOrder {
		pts, err := p.Points(s)
		if err != nil {
			t.Fatalf("Points(%s): %v", s, err)
		}
		if len(pts) != 3 {
			t.Errorf("%s has %d points, want 3", s, len(pts))
		}
		for _, pt := range pts {
			if pt.Season != s {
				t.Errorf("%s point %q belongs to %s", s, pt.Label, pt.Season)
			}
		}
		if len(p.Characteristics(s)) == 0 {
			t.Errorf("%s has no characteristics", s)
		}
	}

	tones, err := p.Tones()
	if err != nil {
		t.Fatal(err)
	}
	if len(tones) != 12 || tones[0].Name != "pale" {
		t.Errorf("tones = %v", tones)
	}
}

func TestPalette_ReturnsCopies(t *testing.T) {
	p := Default()
	pts, _ := p.Points(Spring)
	pts[0].Label = "changed"
	tones, _ := p.Tones()
	tones[0].Name = "changed"
	p.Characteristics(Spring)[0] = "changed"

	again, _ := p.Points(Spring)
	if again[0].Label == "changed" {
		t.Error("Points exposed internal state")
	}
	tones, _ = p.Tones()
	if tones[0].Name == "changed" {
		t.Error("Tones exposed internal state")
	}
	if p.Characteristics(Spring)[0] == "changed" {
		t.Error("Characteristics exposed internal state")
	}
}

func TestNew_Invalid(t *testing.T) {
	good := ReferencePoint{Season: Spring, Label: "a", Lab: colorspace.Lab{L: 50}}

	tests := []struct {
		name   string
		points []ReferencePoint
		tones  []TonePrototype
		traits map[Season][]string
	}{
		{"unknown season", []ReferencePoint{{Season: "monsoon", Lab: colorspace.Lab{L: 50}}}, nil, nil},
		{"lightness out of range", []ReferencePoint{{Season: Winter, Lab: colorspace.Lab{L: 120}}}, nil, nil},
		{"unnamed tone", []ReferencePoint{good}, []TonePrototype{{Brightness: 50}}, nil},
		{"duplicate tone", []ReferencePoint{good}, []TonePrototype{{Name: "x"}, {Name: "x"}}, nil},
		{"traits for unknown season", []ReferencePoint{good}, nil, map[Season][]string{"monsoon": {"wet"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.points, tt.tones, tt.traits); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestPalette_MissingData(t *testing.T) {
	p, err := New([]ReferencePoint{{Season: Spring, Lab: colorspace.Lab{L: 70}}}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	_, err = p.Points(Winter)
	var rdm *ReferenceDataMissingError
	if !errors.As(err, &rdm) {
		t.Fatalf("expected ReferenceDataMissingError, got %v", err)
	}
	if rdm.Season != Winter {
		t.Errorf("Season = %s, want winter", rdm.Season)
	}

	_, err = p.Tones()
	if !errors.As(err, &rdm) || rdm.Season != "" {
		t.Errorf("Tones error = %v", err)
	}

	var nilPalette *Palette
	if _, err := nilPalette.Points(Spring); err == nil {
		t.Error("nil palette returned points")
	}
}

func TestParseSeason(t *testing.T) {
	if s, err := ParseSeason(" Autumn "); err != nil || s != Autumn {
		t.Errorf("ParseSeason = %v, %v", s, err)
	}
	if _, err := ParseSeason("fall"); err == nil {
		t.Error("expected an error for fall")
	}
}
