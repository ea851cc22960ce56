package season

// ConfidenceFromDeltaE maps a CIEDE2000 distance to a confidence in [30,100].
// The mapping is non-increasing in d:
//
//	d ≤ 1   100
//	d ≤ 2   95
//	d ≤ 5   90
//	d ≤ 10  90 → 70 linearly
//	d ≤ 20  70 → 50 linearly
//	d ≤ 50  50 → 30 linearly
//	else    30
func ConfidenceFromDeltaE(d float64) float64 {
	switch {
	case d <= 1:
		return 100
	case d <= 2:
		return 95
	case d <= 5:
		return 90
	case d <= 10:
		return lerp(d, 5, 10, 90, 70)
	case d <= 20:
		return lerp(d, 10, 20, 70, 50)
	case d <= 50:
		return lerp(d, 20, 50, 50, 30)
	default:
		return 30
	}
}

func lerp(x, x0, x1, y0, y1 float64) float64 {
	return y0 + (x-x0)/(x1-x0)*(y1-y0)
}
