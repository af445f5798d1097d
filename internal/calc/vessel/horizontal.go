package vessel

import (
	"math"

	"Vesselcalc/internal/calc/integrate"
	"Vesselcalc/internal/calc/profile"
)

// ends is the head pair of a horizontal vessel. Both heads share one
// horizontal axis, so each method covers the two heads together.
type ends interface {
	depth() float64
	volume(h float64) float64
	area(h float64) float64
}

type flatEnds struct{ d float64 }

func (flatEnds) depth() float64           { return 0 }
func (flatEnds) volume(float64) float64   { return 0 }
func (f flatEnds) area(h float64) float64 { return 2 * segmentArea(f.d/2, h) }

// hemiEnds join into one sphere.
type hemiEnds struct{ d float64 }

func (e hemiEnds) depth() float64 { return e.d / 2 }

func (e hemiEnds) volume(h float64) float64 {
	if h <= 0 {
		return 0
	}
	return capVolume(e.d/2, math.Min(h, e.d))
}

func (e hemiEnds) area(h float64) float64 {
	return math.Pi * e.d * math.Max(0, math.Min(h, e.d))
}

// ellipEnds join into a spheroid stretched along the axis by depth/R.
type ellipEnds struct {
	d float64
	s profile.Elliptical
}

func (e ellipEnds) depth() float64 { return e.s.Depth() }

func (e ellipEnds) volume(h float64) float64 {
	if h <= 0 {
		return 0
	}
	r := e.d / 2
	return capVolume(r, math.Min(h, e.d)) * e.s.Depth() / r
}

func (e ellipEnds) area(h float64) float64 {
	return 2 * sectionArea(e.s, e.d, h)
}

// sectionEnds integrates any axisymmetric head section slice by slice.
type sectionEnds struct {
	d float64
	s profile.Section
}

func (e sectionEnds) depth() float64           { return e.s.Depth() }
func (e sectionEnds) volume(h float64) float64 { return 2 * sectionVolume(e.s, e.d, h) }
func (e sectionEnds) area(h float64) float64   { return 2 * sectionArea(e.s, e.d, h) }

// slice describes the wet part of the circular section of radius r at a
// liquid level h in a vessel of diameter d. The section axis sits at d/2.
func slice(r, d, h float64) (depth float64, full, empty bool) {
	if r <= 0 {
		return 0, false, true
	}
	dist := math.Abs(d/2 - h)
	if dist >= r {
		if h > d/2 {
			return 2 * r, true, false
		}
		return 0, false, true
	}
	if h < d/2 {
		return r - dist, false, false
	}
	return r + dist, false, false
}

// sectionVolume is the liquid volume of one head at level h.
func sectionVolume(s profile.Section, d, h float64) float64 {
	if h <= 0 {
		return 0
	}
	if h >= d {
		return integrate.Integrate(func(z float64) float64 {
			r := s.Radius(z)
			return math.Pi * r * r
		}, 0, s.Depth())
	}
	return integrate.Integrate(func(z float64) float64 {
		r := s.Radius(z)
		dep, full, empty := slice(r, d, h)
		switch {
		case empty:
			return 0
		case full:
			return math.Pi * r * r
		}
		return segmentArea(r, dep)
	}, 0, s.Depth())
}

// sectionArea is the wetted area of one head at level h: the wet arc of
// each slice stretched by the profile slope.
func sectionArea(s profile.Section, d, h float64) float64 {
	if h <= 0 {
		return 0
	}
	return integrate.Integrate(func(z float64) float64 {
		r := s.Radius(z)
		stretch := math.Sqrt(1 + s.Slope(z)*s.Slope(z))
		if h >= d {
			return 2 * math.Pi * r * stretch
		}
		dep, full, empty := slice(r, d, h)
		switch {
		case empty:
			return 0
		case full:
			return 2 * math.Pi * r * stretch
		}
		return segmentArc(r, dep) * stretch
	}, 0, s.Depth())
}

// horizontalGeometry is a cylinder lying on its side. Fill heights run
// across the diameter, so the total height is D and head depths are axial.
type horizontalGeometry struct {
	d, l float64
	ends ends
}

func (g *horizontalGeometry) TotalHeight() float64      { return g.d }
func (g *horizontalGeometry) TangentHeight() float64    { return g.d }
func (g *horizontalGeometry) BottomHeadHeight() float64 { return g.ends.depth() }
func (g *horizontalGeometry) TopHeadHeight() float64    { return g.ends.depth() }

func (g *horizontalGeometry) ShellVolume() float64      { return disc(g.d) * g.l }
func (g *horizontalGeometry) ShellSurfaceArea() float64 { return math.Pi * g.d * g.l }
func (g *horizontalGeometry) HeadVolume() float64       { return g.ends.volume(g.d) }
func (g *horizontalGeometry) HeadSurfaceArea() float64  { return g.ends.area(g.d) }

func (g *horizontalGeometry) ShellLiquidVolume(h float64) float64 {
	return segmentArea(g.d/2, h) * g.l
}

func (g *horizontalGeometry) ShellWettedArea(h float64) float64 {
	return segmentArc(g.d/2, h) * g.l
}

func (g *horizontalGeometry) HeadLiquidVolume(h float64) float64 { return g.ends.volume(h) }
func (g *horizontalGeometry) HeadWettedArea(h float64) float64   { return g.ends.area(h) }

func (g *horizontalGeometry) WorkingVolume(low, high float64) float64 {
	v := func(h float64) float64 { return g.ShellLiquidVolume(h) + g.HeadLiquidVolume(h) }
	return v(high) - v(low)
}

func (g *horizontalGeometry) TangentVolume() float64 { return g.ShellVolume() }
