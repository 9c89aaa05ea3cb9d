package wheel

import "math"

// Normalize wraps degrees into [0, 360).
func Normalize(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	if m >= 360 {
		m = 0
	}
	return m
}

// ShortestPath is the signed delta in [-180, 180] that turns from onto to
// the short way round.
func ShortestPath(from, to float64) float64 {
	d := math.Mod(to-from, 360)
	if d > 180 {
		d -= 360
	} else if d < -180 {
		d += 360
	}
	return d
}

// TextRotation keeps a radial label upright: the base angle, flipped half a
// turn whenever the label would otherwise read upside down on screen.
func TextRotation(baseAngle, wheelRotation float64) float64 {
	eff := Normalize(baseAngle + wheelRotation)
	if eff > 90 && eff < 270 {
		return baseAngle + 180
	}
	return baseAngle
}

// rotate turns (x, y) about the origin by deg degrees.
func rotate(x, y, deg float64) (float64, float64) {
	s, c := math.Sincos(deg * math.Pi / 180)
	return x*c - y*s, x*s + y*c
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
