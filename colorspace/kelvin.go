package colorspace

import "math"

const (
	minKelvin = 1000
	maxKelvin = 40000
)

// KelvinToRGB approximates the tint of a black-body light source at the given
// temperature. Temperatures are clamped to [1000K, 40000K]. The mapping is one
// way and only meant for simulating lighting.
func KelvinToRGB(k Kelvin) RGB {
	t := clamp(float64(k), minKelvin, maxKelvin) / 100

	var r, g, b float64
	if t <= 66 {
		r = 255
		g = 99.4708025861*math.Log(t) - 161.1195681661
	} else {
		r = 329.698727446 * math.Pow(t-60, -0.1332047592)
		g = 288.1221695283 * math.Pow(t-60, -0.0755148492)
	}

	switch {
	case t >= 66:
		b = 255
	case t <= 19:
		b = 0
	default:
		b = 138.5177312231*math.Log(t-10) - 305.0447927307
	}

	return RGB{R: to8bit(r / 255), G: to8bit(g / 255), B: to8bit(b / 255)}
}
