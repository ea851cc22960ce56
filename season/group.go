package season

import (
	"errors"
	"math"
	"sync"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/mmuldo/personalcolor/colorspace"
	"github.com/mmuldo/personalcolor/palette"
)

// ErrEmptyInput is returned when a group has no samples.
var ErrEmptyInput = errors.New("season: no samples to classify")

const (
	maxHarmonyPenalty = 30
	minHarmony        = 50
)

// GroupResult merges the classifications of several samples, e.g. cheek,
// forehead and chin.
type GroupResult struct {
	// SeasonScores is the mean per-sample score of each season.
	SeasonScores   map[palette.Season]float64
	DominantSeason palette.Season
	Confidence     float64

	ToneDistribution        map[string]int
	TemperatureDistribution map[Temperature]float64

	// HarmonyScore is in [50,100]; 100 for a single sample.
	HarmonyScore  float64
	HueVariance   float64
	AverageDeltaE float64

	Samples []Result
}

// ClassifyGroup is a shorthand for New(p, opts) followed by ClassifyGroup(colors).
func ClassifyGroup(colors []colorspace.Color, p *palette.Palette, opts Options) (*GroupResult, error) {
	cl, err := New(p, opts)
	if err != nil {
		return nil, err
	}
	return cl.ClassifyGroup(colors)
}

// ClassifyGroup classifies every color and aggregates the results. With
// Options.Workers > 1 samples are classified concurrently; Samples keeps the
// input order either way. The first failing sample by index is reported.
func (cl *Classifier) ClassifyGroup(colors []colorspace.Color) (*GroupResult, error) {
	if len(colors) == 0 {
		return nil, ErrEmptyInput
	}

	results := make([]Result, len(colors))
	errs := make([]error, len(colors))

	classify := func(i int) {
		r, err := cl.Classify(colors[i])
		if err != nil {
			errs[i] = err
			return
		}
		results[i] = *r
	}

	workers := cl.opts.Workers
	if workers > len(colors) {
		workers = len(colors)
	}
	if workers > 1 {
		jobs := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range jobs {
					classify(i)
				}
			}()
		}
		for i := range colors {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	} else {
		for i := range colors {
			classify(i)
		}
	}

	for i, err := range errs {
		if err != nil {
			cl.log.WithFields(logrus.Fields{"sample": i}).WithError(err).Debug("sample rejected")
			return nil, err
		}
	}

	g, err := Aggregate(results)
	if err != nil {
		return nil, err
	}

	cl.log.WithFields(logrus.Fields{
		"samples":    len(results),
		"season":     g.DominantSeason,
		"confidence": g.Confidence,
		"harmony":    g.HarmonyScore,
	}).Debug("classified group")

	return g, nil
}

// Aggregate combines per-sample results. The dominant season has the highest
// mean score; ties resolve in palette.SeasonOrder.
func Aggregate(results []Result) (*GroupResult, error) {
	n := len(results)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	g := &GroupResult{
		SeasonScores:            make(map[palette.Season]float64, len(palette.SeasonOrder)),
		ToneDistribution:        make(map[string]int),
		TemperatureDistribution: make(map[Temperature]float64, len(Temperatures)),
		HarmonyScore:            100,
		Samples:                 append([]Result(nil), results...),
	}

	scores := make([]float64, n)
	hues := make([]float64, n)
	deltas := make([]float64, n)

	g.Confidence = math.Inf(-1)
	for _, s := range palette.SeasonOrder {
		for i, r := range results {
			scores[i] = r.SeasonScores[s]
		}
		mean := stat.Mean(scores, nil)
		g.SeasonScores[s] = mean
		if mean > g.Confidence {
			g.Confidence = mean
			g.DominantSeason = s
		}
	}

	temps := make(map[Temperature]int, len(Temperatures))
	for i, r := range results {
		g.ToneDistribution[r.Tone.Name]++
		temps[r.Warmth.Temperature]++
		hues[i] = r.HSL.H
		deltas[i] = r.DeltaE
	}
	for _, t := range Temperatures {
		g.TemperatureDistribution[t] = float64(temps[t]) / float64(n)
	}
	g.AverageDeltaE = stat.Mean(deltas, nil)

	if n > 1 {
		_, g.HueVariance = stat.PopMeanVariance(hues, nil)
		g.HarmonyScore = math.Max(minHarmony, 100-math.Min(maxHarmonyPenalty, g.HueVariance/10))
	}

	return g, nil
}
