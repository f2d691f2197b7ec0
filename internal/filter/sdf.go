package filter

import "math"

// sdfAntialiasWidth is the minimum half-width of the coverage ramp in pixels.
const sdfAntialiasWidth = 0.5

// RoundedRect is an axis-aligned rectangle with rounded corners in pixel
// coordinates.
type RoundedRect struct {
	X, Y          float64
	Width, Height float64
	Radius        float64
	// Feather widens the anti-aliased edge beyond half a pixel.
	Feather float64
}

// Coverage returns the anti-aliased coverage in [0, 1] of the pixel whose
// center is (px, py). 1 means fully inside.
func (r RoundedRect) Coverage(px, py float64) float64 {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	halfW := r.Width / 2
	halfH := r.Height / 2
	radius := math.Min(math.Max(r.Radius, 0), math.Min(halfW, halfH))

	dist := sdfRRect(px, py, r.X+halfW, r.Y+halfH, halfW, halfH, radius)
	return smoothstepCoverage(dist, sdfAntialiasWidth+math.Max(r.Feather, 0))
}

// sdfRRect computes the signed distance from a point to a rounded rectangle.
// Negative values are inside, positive values are outside.
func sdfRRect(px, py, cx, cy, halfW, halfH, cornerRadius float64) float64 {
	// Translate to center and use symmetry (work in first quadrant).
	dx := math.Abs(px-cx) - halfW + cornerRadius
	dy := math.Abs(py-cy) - halfH + cornerRadius

	outside := math.Hypot(math.Max(dx, 0), math.Max(dy, 0))
	inside := math.Min(math.Max(dx, dy), 0)

	return outside + inside - cornerRadius
}

// smoothstepCoverage converts a signed distance to coverage using a Hermite
// smoothstep over [-width, +width].
func smoothstepCoverage(sdf, width float64) float64 {
	if sdf >= width {
		return 0
	}
	if sdf <= -width {
		return 1
	}
	t := (sdf + width) / (2 * width)
	return 1 - (t * t * (3 - 2*t))
}
