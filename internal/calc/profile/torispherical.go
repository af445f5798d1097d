// Package profile derives head profiles: the torispherical (flanged and
// dished) head built from a dish arc and a knuckle arc, plus the simple
// elliptical and conical sections used by horizontal vessels.
//
// Axial positions are measured from the head apex toward the tangent line.
// Normalized positions (x, a1, a2) are fractions of the vessel diameter.
package profile

import (
	"errors"
	"iter"
	"math"

	"Vesselcalc/internal/calc/geometry"
	"Vesselcalc/internal/calc/integrate"

	"gonum.org/v1/gonum/spatial/r2"
)

// Standard flanged-and-dished factors.
const (
	DefaultFd = 1.0
	DefaultFk = 0.06
)

// Factors of the torispherical head equivalent to a 2:1 elliptical head.
const (
	EllipticalFd = 0.9045
	EllipticalFk = 0.1727
)

// Default arc resolution of Points.
const (
	KnuckleSteps = 30
	DishSteps    = 60
)

var ErrDegenerateGeometry = errors.New("degenerate head geometry")

// Torispherical is a flanged-and-dished head. The dish radius is Fd·D and the
// knuckle radius Fk·D.
type Torispherical struct {
	Diameter float64
	Fd       float64
	Fk       float64
}

// A1 is the apex-to-knuckle distance as a fraction of D.
func (t Torispherical) A1() float64 {
	fd, fk := t.Fd, t.Fk
	return fd * (1 - math.Sqrt(1-(0.5-fk)*(0.5-fk)/((fd-fk)*(fd-fk))))
}

// A2 is the apex-to-tangent distance (head depth) as a fraction of D.
func (t Torispherical) A2() float64 {
	fd, fk := t.Fd, t.Fk
	return fd - math.Sqrt(fd*fd-2*fd*fk+fk-0.25)
}

// B1 is the radius of the dish/knuckle junction as a fraction of D.
func (t Torispherical) B1() float64 {
	return t.Fd * (0.5 - t.Fk) / (t.Fd - t.Fk)
}

func (t Torispherical) DishRadius() float64    { return t.Fd * t.Diameter }
func (t Torispherical) KnuckleRadius() float64 { return t.Fk * t.Diameter }

// Depth is the head depth, or 0 for a degenerate head.
func (t Torispherical) Depth() float64 {
	if t.Check() != nil {
		return 0
	}
	return t.A2() * t.Diameter
}

// Check reports ErrDegenerateGeometry when the head cannot be built.
func (t Torispherical) Check() error {
	if t.Diameter <= 0 || t.Fd <= 0 || t.Fk <= 0 {
		return ErrDegenerateGeometry
	}
	// The knuckle center must sit off the axis, inside the dish.
	if t.Fk >= 0.5 || t.Fd <= t.Fk {
		return ErrDegenerateGeometry
	}
	a1, a2 := t.A1(), t.A2()
	if !finite(a1) || !finite(a2) || a2 <= 0 || a1 < 0 || a1 > a2 {
		return ErrDegenerateGeometry
	}
	if _, ok := t.junction(); !ok {
		return ErrDegenerateGeometry
	}
	return nil
}

// junction intersects the dish and knuckle circles in profile coordinates:
// X radial, Y axial with the tangent line at Y=0 and the apex at Y=-depth.
func (t Torispherical) junction() (r2.Vec, bool) {
	depth := t.A2() * t.Diameter
	dishC := r2.Vec{X: 0, Y: t.DishRadius() - depth}
	knuckleC := r2.Vec{X: t.Diameter/2 - t.KnuckleRadius(), Y: 0}
	return geometry.CircleIntersection(dishC, t.DishRadius(), knuckleC, t.KnuckleRadius(), geometry.DefaultEpsilon)
}

// Points returns the head outline: right knuckle arc from the tangent line,
// the dish arc across the apex and the mirrored left knuckle arc. X is the
// radial coordinate, Y the axial one (tangent line at 0, apex at -Depth).
// The point shared by two arcs is emitted once. A degenerate head yields an
// empty sequence.
func (t Torispherical) Points(stepsKnuckle, stepsDish int) iter.Seq[r2.Vec] {
	return func(yield func(r2.Vec) bool) {
		if t.Check() != nil {
			return
		}
		p, _ := t.junction()

		depth := t.Depth()
		dishCY := t.DishRadius() - depth
		off := t.Diameter/2 - t.KnuckleRadius()

		rightKnuckleEnd := geometry.Degrees(math.Atan2(p.Y, p.X-off))
		dishStart := geometry.Degrees(math.Atan2(p.Y-dishCY, p.X))
		dishEnd := geometry.Degrees(math.Atan2(p.Y-dishCY, -p.X))
		leftKnuckleStart := geometry.Degrees(math.Atan2(p.Y, -p.X+off))

		arcs := []iter.Seq[r2.Vec]{
			geometry.ArcPoints(r2.Vec{X: off}, t.KnuckleRadius(), 0, rightKnuckleEnd, stepsKnuckle),
			geometry.ArcPoints(r2.Vec{Y: dishCY}, t.DishRadius(), dishStart, dishEnd, stepsDish),
			geometry.ArcPoints(r2.Vec{X: -off}, t.KnuckleRadius(), leftKnuckleStart, 180, stepsKnuckle),
		}
		for i, arc := range arcs {
			first := true
			for q := range arc {
				if first && i > 0 {
					first = false
					continue
				}
				first = false
				if !yield(q) {
					return
				}
			}
		}
	}
}

// rho is the section radius as a fraction of D at normalized position x.
func (t Torispherical) rho(x float64) float64 {
	if x <= t.A1() {
		return math.Sqrt(math.Max(t.Fd*t.Fd-(x-t.Fd)*(x-t.Fd), 0))
	}
	v := t.Fk*t.Fk - (x-t.A2())*(x-t.A2())
	return 0.5 - t.Fk + math.Sqrt(math.Max(v, 0))
}

// Area is the cross-section area π·r² at normalized position x.
func (t Torispherical) Area(x float64) float64 {
	r := t.rho(x) * t.Diameter
	return math.Pi * r * r
}

// Volume is the head volume from the apex up to axial distance h.
func (t Torispherical) Volume(h float64) float64 {
	if h <= 0 || t.Check() != nil {
		return 0
	}
	a := math.Min(h/t.Diameter, t.A2())
	return t.Diameter * integrate.Integrate(t.Area, 0, a)
}

// WettedArea is the inner surface from the apex up to axial distance h:
// the spherical dish zone plus the toroidal knuckle zone, both closed form.
func (t Torispherical) WettedArea(h float64) float64 {
	if h <= 0 || t.Check() != nil {
		return 0
	}
	a := math.Min(h/t.Diameter, t.A2())
	return t.dishZoneArea(a) + t.knuckleZoneArea(a)
}

func (t Torispherical) dishZoneArea(a float64) float64 {
	v := math.Min(a, t.A1())
	if v < 0 {
		return 0
	}
	return 2 * math.Pi * t.Diameter * t.Diameter * t.Fd * v
}

func (t Torispherical) knuckleZoneArea(a float64) float64 {
	a1, a2, fk := t.A1(), t.A2(), t.Fk
	if a < a1 {
		return 0
	}
	v := math.Min(a, a2)
	arc := asin((v-a2)/fk) - asin((a1-a2)/fk)
	return 2 * math.Pi * t.Diameter * t.Diameter * fk * (v - a1 + (0.5-fk)*arc)
}

// Radius is the section radius at axial distance z from the apex.
func (t Torispherical) Radius(z float64) float64 {
	if t.Check() != nil {
		return 0
	}
	return t.rho(z/t.Diameter) * t.Diameter
}

// Slope is dr/dz at axial distance z from the apex. It is 0 at the apex,
// where the dish formula is singular.
func (t Torispherical) Slope(z float64) float64 {
	if t.Check() != nil {
		return 0
	}
	x := z / t.Diameter
	if x <= t.A1() {
		r := t.Radius(z)
		if r == 0 {
			return 0
		}
		return -t.Diameter * (x - t.Fd) / r
	}
	v := t.Fk*t.Fk - (x-t.A2())*(x-t.A2())
	s := 1e-9
	if v > 0 {
		s = math.Sqrt(v)
	}
	return -(x - t.A2()) / s
}

// ZoneGap is the radius mismatch of the dish and knuckle formulas at a1.
// A consistent head has a gap at rounding level.
func (t Torispherical) ZoneGap() float64 {
	if t.Check() != nil {
		return 0
	}
	a1, a2 := t.A1(), t.A2()
	dish := math.Sqrt(math.Max(t.Fd*t.Fd-(a1-t.Fd)*(a1-t.Fd), 0))
	knuckle := 0.5 - t.Fk + math.Sqrt(math.Max(t.Fk*t.Fk-(a1-a2)*(a1-a2), 0))
	return math.Abs(dish-knuckle) * t.Diameter
}

func asin(v float64) float64 {
	return math.Asin(math.Max(-1, math.Min(1, v)))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
