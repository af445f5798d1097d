package profile

import "math"

// Section describes a head of revolution by its local radius along the axis.
// z runs from the apex (0) to the tangent line (Depth).
type Section interface {
	Depth() float64
	Radius(z float64) float64
	Slope(z float64) float64
}

var (
	_ Section = Torispherical{}
	_ Section = Elliptical{}
	_ Section = Conical{}
)

// tipGuard keeps the elliptical slope finite at the apex. Radius and Slope
// clamp to the same point so that r·√(1+r'²) keeps its finite apex limit.
const tipGuard = 1e-6

// Elliptical is a semi-ellipsoidal head of the given depth. Depth = D/2 is a
// hemisphere.
type Elliptical struct {
	Diameter float64
	Length   float64
}

func (e Elliptical) Depth() float64 { return math.Max(e.Length, 0) }

func (e Elliptical) Radius(z float64) float64 {
	if e.Length <= 0 || e.Diameter <= 0 {
		return 0
	}
	z = math.Max(z, math.Min(tipGuard, e.Length/2))
	u := (e.Length - z) / e.Length
	return e.Diameter / 2 * math.Sqrt(math.Max(1-u*u, 0))
}

func (e Elliptical) Slope(z float64) float64 {
	if e.Length <= 0 || e.Diameter <= 0 {
		return 0
	}
	z = math.Max(z, math.Min(tipGuard, e.Length/2))
	u := (e.Length - z) / e.Length
	s := math.Sqrt(math.Max(1-u*u, 0))
	if s == 0 {
		return 0
	}
	return e.Diameter / 2 * u / (e.Length * s)
}

// Conical is a cone of the given depth with its tip on the axis.
type Conical struct {
	Diameter float64
	Length   float64
}

func (c Conical) Depth() float64 { return math.Max(c.Length, 0) }

func (c Conical) Radius(z float64) float64 {
	if c.Length <= 0 {
		return 0
	}
	return c.Diameter / 2 * z / c.Length
}

func (c Conical) Slope(float64) float64 {
	if c.Length <= 0 {
		return 0
	}
	return c.Diameter / 2 / c.Length
}
