package colorspace

import "math"

// D65 reference white, Y normalized to 100.
const (
	whiteX = 95.047
	whiteY = 100.0
	whiteZ = 108.883
)

const (
	labDelta = 6.0 / 29.0
	// (6/29)³
	labEpsilon = labDelta * labDelta * labDelta
)

// linear sRGB -> XYZ (D65)
var rgbToXYZMatrix = [3][3]float64{
	{0.4124564, 0.3575761, 0.1804375},
	{0.2126729, 0.7151522, 0.0721750},
	{0.0193339, 0.1191920, 0.9503041},
}

// XYZ (D65) -> linear sRGB
var xyzToRGBMatrix = [3][3]float64{
	{3.2404542, -1.5371385, -0.4985314},
	{-0.9692660, 1.8760108, 0.0415560},
	{0.0556434, -0.2040259, 1.0572252},
}

// RGBToXYZ decodes sRGB companding and applies the sRGB->XYZ matrix.
func RGBToXYZ(c RGB) XYZ {
	r := srgbToLinear(float64(clampInt(c.R)) / 255)
	g := srgbToLinear(float64(clampInt(c.G)) / 255)
	b := srgbToLinear(float64(clampInt(c.B)) / 255)

	m := rgbToXYZMatrix
	return XYZ{
		X: (m[0][0]*r + m[0][1]*g + m[0][2]*b) * 100,
		Y: (m[1][0]*r + m[1][1]*g + m[1][2]*b) * 100,
		Z: (m[2][0]*r + m[2][1]*g + m[2][2]*b) * 100,
	}
}

// XYZToRGB is the inverse of RGBToXYZ. Out-of-gamut results are clamped.
func XYZToRGB(c XYZ) RGB {
	x, y, z := c.X/100, c.Y/100, c.Z/100

	m := xyzToRGBMatrix
	r := m[0][0]*x + m[0][1]*y + m[0][2]*z
	g := m[1][0]*x + m[1][1]*y + m[1][2]*z
	b := m[2][0]*x + m[2][1]*y + m[2][2]*z

	return RGB{
		R: to8bit(linearToSRGB(r)),
		G: to8bit(linearToSRGB(g)),
		B: to8bit(linearToSRGB(b)),
	}
}

// XYZToLab converts relative to the D65 white point. L is clamped to [0,100].
func XYZToLab(c XYZ) Lab {
	fx := labF(c.X / whiteX)
	fy := labF(c.Y / whiteY)
	fz := labF(c.Z / whiteZ)

	return Lab{
		L: clamp(116*fy-16, 0, 100),
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// LabToXYZ is the inverse of XYZToLab.
func LabToXYZ(c Lab) XYZ {
	fy := (c.L + 16) / 116
	fx := fy + c.A/500
	fz := fy - c.B/200

	return XYZ{
		X: whiteX * labFInv(fx),
		Y: whiteY * labFInv(fy),
		Z: whiteZ * labFInv(fz),
	}
}

// RGBToLab converts through XYZ.
func RGBToLab(c RGB) Lab {
	return XYZToLab(RGBToXYZ(c))
}

// LabToRGB converts through XYZ, clamping colors outside the sRGB gamut.
func LabToRGB(c Lab) RGB {
	return XYZToRGB(LabToXYZ(c))
}

// RGBToHSL returns hue in degrees and saturation/lightness in [0,1].
func RGBToHSL(c RGB) HSL {
	r, g, b := unit(c.R), unit(c.G), unit(c.B)
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	if max == min {
		return HSL{H: 0, S: 0, L: l}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	return HSL{H: hueOf(r, g, b, max, d), S: clamp(s, 0, 1), L: clamp(l, 0, 1)}
}

// HSLToRGB converts an HSL color back to 8-bit sRGB.
func HSLToRGB(c HSL) RGB {
	s, l := clamp(c.S, 0, 1), clamp(c.L, 0, 1)
	chroma := (1 - math.Abs(2*l-1)) * s
	return fromSector(normalizeHue(c.H), chroma, l-chroma/2)
}

// RGBToHSV returns hue in degrees and saturation/value in [0,1].
func RGBToHSV(c RGB) HSV {
	r, g, b := unit(c.R), unit(c.G), unit(c.B)
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	d := max - min

	hsv := HSV{V: max}
	if max > 0 {
		hsv.S = d / max
	}
	if d > 0 {
		hsv.H = hueOf(r, g, b, max, d)
	}
	return hsv
}

// HSVToRGB converts an HSV color back to 8-bit sRGB.
func HSVToRGB(c HSV) RGB {
	s, v := clamp(c.S, 0, 1), clamp(c.V, 0, 1)
	chroma := v * s
	return fromSector(normalizeHue(c.H), chroma, v-chroma)
}

// RGBToCMYK converts to ink percentages. Pure black yields C=M=Y=0, K=100.
func RGBToCMYK(c RGB) CMYK {
	r, g, b := unit(c.R), unit(c.G), unit(c.B)
	k := 1 - math.Max(r, math.Max(g, b))
	if k >= 1 {
		return CMYK{K: 100}
	}

	return CMYK{
		C: clamp((1-r-k)/(1-k)*100, 0, 100),
		M: clamp((1-g-k)/(1-k)*100, 0, 100),
		Y: clamp((1-b-k)/(1-k)*100, 0, 100),
		K: clamp(k*100, 0, 100),
	}
}

// CMYKToRGB converts ink percentages back to 8-bit sRGB.
func CMYKToRGB(c CMYK) RGB {
	k := 1 - clamp(c.K, 0, 100)/100
	return RGB{
		R: to8bit((1 - clamp(c.C, 0, 100)/100) * k),
		G: to8bit((1 - clamp(c.M, 0, 100)/100) * k),
		B: to8bit((1 - clamp(c.Y, 0, 100)/100) * k),
	}
}

func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func linearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return t/(3*labDelta*labDelta) + 4.0/29.0
}

func labFInv(t float64) float64 {
	if t > labDelta {
		return t * t * t
	}
	return 3 * labDelta * labDelta * (t - 4.0/29.0)
}

// hueOf picks the hue formula by the dominant channel.
func hueOf(r, g, b, max, d float64) float64 {
	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return normalizeHue(h * 60)
}

// fromSector maps hue, chroma and the lightness offset m to RGB using the
// six 60° hue sectors.
func fromSector(h, chroma, m float64) RGB {
	hp := h / 60
	x := chroma * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = chroma, x, 0
	case hp < 2:
		r, g, b = x, chroma, 0
	case hp < 3:
		r, g, b = 0, chroma, x
	case hp < 4:
		r, g, b = 0, x, chroma
	case hp < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return RGB{R: to8bit(r + m), G: to8bit(g + m), B: to8bit(b + m)}
}

func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

func unit(v int) float64 {
	return float64(clampInt(v)) / 255
}

func to8bit(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Round(clamp(v, 0, 1) * 255))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
