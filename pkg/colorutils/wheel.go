package colorutils

import "math"

// ClampOffset scales (dx, dy) down onto the circle of the given radius when it
// lies outside of it. Offsets inside the circle are returned unchanged.
func ClampOffset(dx, dy, radius float64) (float64, float64) {
	dist := math.Hypot(dx, dy)
	if dist > radius && dist > 0 {
		scale := radius / dist
		dx *= scale
		dy *= scale
	}
	return dx, dy
}

// WheelOffsetToPolar maps an offset from the wheel center to (hue, saturation).
// The hue follows the angle of the offset, 0 pointing along +x; the saturation
// is the distance from the center relative to the radius and never exceeds 1.
func WheelOffsetToPolar(dx, dy, radius float64) (hue, sat float64) {
	if radius <= 0 {
		return 0, 0
	}
	dx, dy = ClampOffset(dx, dy, radius)
	sat = math.Min(math.Hypot(dx, dy)/radius, 1)
	hue = WrapHue(math.Atan2(dy, dx) / (2 * math.Pi))
	return hue, sat
}

// PolarToWheelOffset is the inverse of WheelOffsetToPolar.
func PolarToWheelOffset(hue, sat, radius float64) (dx, dy float64) {
	angle := WrapHue(hue) * 2 * math.Pi
	dist := Clamp01(sat) * radius
	return math.Cos(angle) * dist, math.Sin(angle) * dist
}
