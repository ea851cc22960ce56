package season

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/mmuldo/personalcolor/colorspace"
	"github.com/mmuldo/personalcolor/palette"
)

const tolerance = 1e-3

func near(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestClassify_DefaultPalette(t *testing.T) {
	tests := []struct {
		name       string
		rgb        colorspace.RGB
		season     palette.Season
		deltaE     float64
		confidence float64
		tone       string
		warmth     Temperature
	}{
		{"red", colorspace.RGB{R: 255}, palette.Autumn, 22.356, 48.4293, "vivid", Warm},
		{"gold", colorspace.RGB{R: 255, G: 215}, palette.Spring, 25.0008, 46.6661, "vivid", Warm},
		{"peach", colorspace.RGB{R: 241, G: 194, B: 167}, palette.Spring, 6.9458, 82.2167, "pale", Warm},
		{"tan", colorspace.RGB{R: 224, G: 172, B: 105}, palette.Autumn, 9.5981, 71.6077, "light", Warm},
		{"caramel", colorspace.RGB{R: 198, G: 134, B: 66}, palette.Autumn, 6.9652, 82.1391, "bright", Warm},
		{"gray", colorspace.RGB{R: 128, G: 128, B: 128}, palette.Winter, 12.7798, 64.4405, "grayish", Cool},
		{"white", colorspace.RGB{R: 255, G: 255, B: 255}, palette.Winter, 15.6313, 58.7375, "pale", Cool},
		{"black", colorspace.RGB{}, palette.Winter, 30.6962, 42.8692, "dark_grayish", Cool},
		{"indigo", colorspace.RGB{R: 60, G: 40, B: 120}, palette.Winter, 28.7183, 44.1878, "deep", Neutral},
		{"light skin", colorspace.RGB{R: 226, G: 180, B: 150}, palette.Spring, 3.955, 90, "light", Warm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Classify(tt.rgb, palette.Default(), Options{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Season != tt.season {
				t.Errorf("Season = %s, want %s", r.Season, tt.season)
			}
			if !near(r.DeltaE, tt.deltaE) {
				t.Errorf("DeltaE = %.4f, want %.4f", r.DeltaE, tt.deltaE)
			}
			if !near(r.Confidence, tt.confidence) {
				t.Errorf("Confidence = %.4f, want %.4f", r.Confidence, tt.confidence)
			}
			if r.Tone.Name != tt.tone {
				t.Errorf("Tone = %s, want %s", r.Tone.Name, tt.tone)
			}
			if r.Warmth.Temperature != tt.warmth {
				t.Errorf("Warmth = %s, want %s", r.Warmth.Temperature, tt.warmth)
			}
			if r.RGB != tt.rgb {
				t.Errorf("RGB = %v, want %v", r.RGB, tt.rgb)
			}
		})
	}
}

func TestClassify_SeasonBreakdown(t *testing.T) {
	r, err := Classify(colorspace.RGB{R: 255, G: 215}, palette.Default(), Options{})
	if err != nil {
		t.Fatal(err)
	}

	want := map[palette.Season]float64{
		palette.Spring: 25.0008,
		palette.Summer: 31.2943,
		palette.Autumn: 25.5584,
		palette.Winter: 28.3865,
	}
	for s, d := range want {
		if !near(r.SeasonDistances[s], d) {
			t.Errorf("distance to %s = %.4f, want %.4f", s, r.SeasonDistances[s], d)
		}
		if !near(r.SeasonScores[s], ConfidenceFromDeltaE(d)) {
			t.Errorf("score of %s = %.4f, want %.4f", s, r.SeasonScores[s], ConfidenceFromDeltaE(d))
		}
	}

	if r.Subtype == "" || r.Reference == "" {
		t.Errorf("nearest reference not recorded: %+v", r)
	}
	if len(r.Characteristics) == 0 || r.Characteristics[0] != "warm undertone" {
		t.Errorf("Characteristics = %v", r.Characteristics)
	}
	if r.Confidence != r.SeasonScores[r.Season] {
		t.Errorf("Confidence %g differs from the winning score %g", r.Confidence, r.SeasonScores[r.Season])
	}
}

func TestClassify_SaturationHSL(t *testing.T) {
	tan := colorspace.RGB{R: 224, G: 172, B: 105}

	r, err := Classify(tan, palette.Default(), Options{Saturation: SaturationHSL})
	if err != nil {
		t.Fatal(err)
	}
	if r.Tone.Name != "bright" {
		t.Errorf("Tone = %s, want bright", r.Tone.Name)
	}
	if !near(r.Tone.Saturation, 65.7459) {
		t.Errorf("tone saturation = %.4f, want 65.7459", r.Tone.Saturation)
	}
	if r.Season != palette.Autumn {
		t.Errorf("Season = %s, the metric must not change the season", r.Season)
	}
}

func TestClassify_AcceptsAnySpace(t *testing.T) {
	rgb := colorspace.RGB{R: 241, G: 194, B: 167}
	want, err := Classify(rgb, palette.Default(), Options{})
	if err != nil {
		t.Fatal(err)
	}

	for _, c := range []colorspace.Color{
		colorspace.RGBToLab(rgb),
		colorspace.RGBToHSL(rgb),
		colorspace.RGBToHSV(rgb),
		colorspace.RGBToXYZ(rgb),
	} {
		got, err := Classify(c, palette.Default(), Options{})
		if err != nil {
			t.Fatalf("Classify(%v): %v", c, err)
		}
		if got.Season != want.Season || got.Tone.Name != want.Tone.Name {
			t.Errorf("Classify(%v) = %s/%s, want %s/%s", c, got.Season, got.Tone.Name, want.Season, want.Tone.Name)
		}
		if !near(got.DeltaE, want.DeltaE) {
			t.Errorf("Classify(%v) deltaE = %g, want %g", c, got.DeltaE, want.DeltaE)
		}
	}
}

func TestClassify_Deterministic(t *testing.T) {
	conv, err := colorspace.NewConverter(colorspace.DefaultCacheSize)
	if err != nil {
		t.Fatal(err)
	}
	cl, err := New(palette.Default(), Options{Converter: conv})
	if err != nil {
		t.Fatal(err)
	}

	c := colorspace.RGB{R: 198, G: 134, B: 66}
	first, err := cl.Classify(c)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := cl.Classify(c)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs:\n%+v\n%+v", i, first, again)
		}
	}
	if conv.CacheLen() == 0 {
		t.Error("converter cache was not used")
	}
}

func TestClassify_InvalidInput(t *testing.T) {
	for _, c := range []colorspace.Color{
		colorspace.RGB{R: 300},
		colorspace.RGB{G: -1},
		colorspace.Lab{L: math.NaN()},
		colorspace.Lab{L: 101},
		colorspace.Lab{L: 50, A: 1e45},
		colorspace.Lab{L: 50, B: -1e60},
		colorspace.HSL{H: 720, S: 0.5, L: 0.5},
		colorspace.XYZ{X: 1e6, Y: 1, Z: 1},
		nil,
	} {
		_, err := Classify(c, palette.Default(), Options{})
		var iie *colorspace.InvalidInputError
		if !errors.As(err, &iie) {
			t.Errorf("Classify(%v) error = %v, want InvalidInputError", c, err)
		}
	}
}

func TestClassify_GamutEdges(t *testing.T) {
	for _, c := range []colorspace.Lab{
		{L: 50, A: 127, B: 127},
		{L: 0, A: -128, B: -128},
		{L: 100, A: -128, B: 127},
	} {
		r, err := Classify(c, palette.Default(), Options{})
		if err != nil {
			t.Fatalf("Classify(%v): %v", c, err)
		}
		if r.Season == "" || math.IsNaN(r.DeltaE) || math.IsInf(r.DeltaE, 0) {
			t.Errorf("Classify(%v) = season %q, deltaE %g", c, r.Season, r.DeltaE)
		}
	}
}

func TestClassify_MissingSeason(t *testing.T) {
	var points []palette.ReferencePoint
	for _, s := range []palette.Season{palette.Spring, palette.Summer, palette.Autumn} {
		points = append(points, palette.ReferencePoint{Season: s, Lab: colorspace.Lab{L: 60, A: 10, B: 20}})
	}
	p, err := palette.New(points, palette.DefaultTones(), nil)
	if err != nil {
		t.Fatal(err)
	}

	_, err = Classify(colorspace.RGB{R: 200, G: 150, B: 120}, p, Options{})
	var rdm *palette.ReferenceDataMissingError
	if !errors.As(err, &rdm) {
		t.Fatalf("expected ReferenceDataMissingError, got %v", err)
	}
	if rdm.Season != palette.Winter {
		t.Errorf("missing season = %s, want winter", rdm.Season)
	}
}

func TestClassify_MissingTones(t *testing.T) {
	var points []palette.ReferencePoint
	for _, s := range palette.SeasonOrder {
		points = append(points, palette.ReferencePoint{Season: s, Lab: colorspace.Lab{L: 60}})
	}
	p, err := palette.New(points, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	_, err = Classify(colorspace.RGB{R: 1, G: 2, B: 3}, p, Options{})
	var rdm *palette.ReferenceDataMissingError
	if !errors.As(err, &rdm) {
		t.Fatalf("expected ReferenceDataMissingError, got %v", err)
	}
}

func TestClassify_TieGoesToEarlierSeason(t *testing.T) {
	shared := colorspace.Lab{L: 65, A: 10, B: 15}
	p, err := palette.New([]palette.ReferencePoint{
		{Season: palette.Winter, Label: "w", Lab: shared},
		{Season: palette.Autumn, Label: "a", Lab: shared},
		{Season: palette.Summer, Label: "su", Lab: shared},
		{Season: palette.Spring, Label: "sp", Lab: shared},
	}, palette.DefaultTones(), nil)
	if err != nil {
		t.Fatal(err)
	}

	r, err := Classify(colorspace.RGB{R: 90, G: 30, B: 200}, p, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if r.Season != palette.Spring || r.Reference != "sp" {
		t.Errorf("tie resolved to %s (%s), want spring", r.Season, r.Reference)
	}
}

func TestClassify_ExactReference(t *testing.T) {
	p := palette.Default()
	pts, _ := p.Points(palette.Summer)

	r, err := Classify(pts[1].Lab, p, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if r.Season != palette.Summer || r.DeltaE != 0 || r.Confidence != 100 {
		t.Errorf("exact reference classified as %s, deltaE %g, confidence %g", r.Season, r.DeltaE, r.Confidence)
	}
	if r.Subtype != pts[1].Subtype {
		t.Errorf("Subtype = %s, want %s", r.Subtype, pts[1].Subtype)
	}
}

func TestClassify_Logs(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	cl, err := New(palette.Default(), Options{Logger: logger})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cl.Classify(colorspace.RGB{R: 255}); err != nil {
		t.Fatal(err)
	}

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("nothing logged")
	}
	if entry.Data["season"] != palette.Autumn {
		t.Errorf("logged season = %v", entry.Data["season"])
	}
}

func TestNew_NilPalette(t *testing.T) {
	if _, err := New(nil, Options{}); err == nil {
		t.Error("expected an error")
	}
}
