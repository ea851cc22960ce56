package colorspace

import "math"

// parametric weighting factors
const (
	kL = 1.0
	kC = 1.0
	kH = 1.0
)

// DeltaE2000 returns the CIEDE2000 color difference between two Lab colors.
// It is symmetric, zero for identical inputs and never negative. Inputs far
// outside the Lab gamut that overflow the formula yield +Inf, never NaN.
func DeltaE2000(c1, c2 Lab) float64 {
	chroma1 := math.Hypot(c1.A, c1.B)
	chroma2 := math.Hypot(c2.A, c2.B)
	avgC := (chroma1 + chroma2) / 2

	g := 0.5 * (1 - chromaWeight(avgC))
	a1 := c1.A * (1 + g)
	a2 := c2.A * (1 + g)

	cp1 := math.Hypot(a1, c1.B)
	cp2 := math.Hypot(a2, c2.B)
	hp1 := primeHue(c1.B, a1)
	hp2 := primeHue(c2.B, a2)

	dL := c2.L - c1.L
	dC := cp2 - cp1

	var dh float64
	switch diff := hp2 - hp1; {
	case math.Abs(diff) <= 180:
		dh = diff
	case hp2 > hp1:
		dh = diff - 360
	default:
		dh = diff + 360
	}
	dH := 2 * math.Sqrt(cp1) * math.Sqrt(cp2) * math.Sin(radians(dh/2))

	avgL := (c1.L + c2.L) / 2
	avgCp := (cp1 + cp2) / 2

	var avgH float64
	sum := hp1 + hp2
	switch {
	case cp1*cp2 == 0:
		avgH = sum
	case math.Abs(hp1-hp2) <= 180:
		avgH = sum / 2
	case sum < 360:
		avgH = (sum + 360) / 2
	default:
		avgH = (sum - 360) / 2
	}

	t := 1 -
		0.17*math.Cos(radians(avgH-30)) +
		0.24*math.Cos(radians(2*avgH)) +
		0.32*math.Cos(radians(3*avgH+6)) -
		0.20*math.Cos(radians(4*avgH-63))

	dTheta := 30 * math.Exp(-math.Pow((avgH-275)/25, 2))
	rc := 2 * chromaWeight(avgCp)

	l50 := (avgL - 50) * (avgL - 50)
	sl := 1 + 0.015*l50/math.Sqrt(20+l50)
	sc := 1 + 0.045*avgCp
	sh := 1 + 0.015*avgCp*t
	rt := -math.Sin(radians(2*dTheta)) * rc

	lTerm := dL / (kL * sl)
	cTerm := dC / (kC * sc)
	hTerm := dH / (kH * sh)

	d := lTerm*lTerm + cTerm*cTerm + hTerm*hTerm + rt*cTerm*hTerm
	switch {
	case math.IsNaN(d):
		return math.Inf(1)
	case d <= 0:
		return 0
	}
	return math.Sqrt(d)
}

// chromaWeight is sqrt(c^7 / (c^7 + 25^7)), written so that large chroma
// does not overflow.
func chromaWeight(c float64) float64 {
	if c == 0 {
		return 0
	}
	return math.Sqrt(1 / (1 + math.Pow(25/c, 7)))
}

// primeHue is atan2(b, a') in degrees within [0,360); 0 for a neutral color.
func primeHue(b, aPrime float64) float64 {
	if b == 0 && aPrime == 0 {
		return 0
	}
	return normalizeHue(math.Atan2(b, aPrime) * 180 / math.Pi)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
