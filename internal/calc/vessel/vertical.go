package vessel

import (
	"math"

	"Vesselcalc/internal/calc/profile"
)

// head is one end of a vertical vessel. volume and area are measured over
// the cap of depth h taken from the head tip, 0 <= h <= depth.
type head interface {
	depth() float64
	volume(h float64) float64
	area(h float64) float64
}

type flatHead struct{ d float64 }

func (flatHead) depth() float64         { return 0 }
func (flatHead) volume(float64) float64 { return 0 }
func (f flatHead) area(float64) float64 { return disc(f.d) }

type hemiHead struct{ d float64 }

func (h hemiHead) depth() float64 { return h.d / 2 }

func (h hemiHead) volume(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return capVolume(h.d/2, x)
}

func (h hemiHead) area(x float64) float64 {
	return math.Pi * h.d * math.Max(x, 0)
}

// ellipHead is a 2:1 semi-ellipsoidal head: its volume is the hemisphere cap
// squashed to depth D/4, its wetted area that of the equivalent torispherical
// head.
type ellipHead struct{ d float64 }

func (e ellipHead) depth() float64 { return e.d / 4 }

func (e ellipHead) volume(x float64) float64 {
	hd := e.depth()
	if x <= 0 || hd <= 0 {
		return 0
	}
	r := e.d / 2
	return math.Pi * r * r * x * x * (3*hd - x) / (3 * hd * hd)
}

func (e ellipHead) area(x float64) float64 {
	return profile.Torispherical{Diameter: e.d, Fd: profile.EllipticalFd, Fk: profile.EllipticalFk}.WettedArea(x)
}

type toriHead struct{ t profile.Torispherical }

func (t toriHead) depth() float64           { return t.t.Depth() }
func (t toriHead) volume(x float64) float64 { return t.t.Volume(x) }
func (t toriHead) area(x float64) float64   { return t.t.WettedArea(x) }

type coneHead struct{ d, h float64 }

func (c coneHead) depth() float64 { return c.h }

func (c coneHead) volume(x float64) float64 {
	if x <= 0 || c.h <= 0 {
		return 0
	}
	r := c.d / 2 * x / c.h
	return math.Pi / 3 * x * r * r
}

func (c coneHead) area(x float64) float64 {
	if x <= 0 || c.h <= 0 {
		return 0
	}
	r := c.d / 2 * x / c.h
	return math.Pi * r * math.Sqrt(x*x+r*r)
}

// verticalGeometry is a cylinder standing on its axis with a head at each
// end. Tanks use a flat bottom head.
type verticalGeometry struct {
	d, l        float64
	bottom, top head
}

func (v *verticalGeometry) BottomHeadHeight() float64 { return v.bottom.depth() }
func (v *verticalGeometry) TopHeadHeight() float64    { return v.top.depth() }

func (v *verticalGeometry) TotalHeight() float64 {
	return v.l + v.BottomHeadHeight() + v.TopHeadHeight()
}

func (v *verticalGeometry) TangentHeight() float64 {
	return v.BottomHeadHeight() + v.l
}

func (v *verticalGeometry) ShellVolume() float64      { return disc(v.d) * v.l }
func (v *verticalGeometry) ShellSurfaceArea() float64 { return math.Pi * v.d * v.l }

func (v *verticalGeometry) HeadVolume() float64 {
	return v.HeadLiquidVolume(v.TotalHeight())
}

func (v *verticalGeometry) HeadSurfaceArea() float64 {
	return v.HeadWettedArea(v.TotalHeight())
}

// shellFill is the liquid height inside the cylindrical shell.
func (v *verticalGeometry) shellFill(h float64) float64 {
	return math.Max(0, math.Min(h-v.BottomHeadHeight(), v.l))
}

func (v *verticalGeometry) ShellLiquidVolume(h float64) float64 {
	return disc(v.d) * v.shellFill(h)
}

func (v *verticalGeometry) ShellWettedArea(h float64) float64 {
	return math.Pi * v.d * v.shellFill(h)
}

func (v *verticalGeometry) HeadLiquidVolume(h float64) float64 {
	return v.bottomVolume(h) + v.topVolume(h)
}

func (v *verticalGeometry) HeadWettedArea(h float64) float64 {
	return v.bottomArea(h) + v.topArea(h)
}

func (v *verticalGeometry) bottomVolume(h float64) float64 {
	if h <= 0 {
		return 0
	}
	return v.bottom.volume(math.Min(h, v.bottom.depth()))
}

func (v *verticalGeometry) bottomArea(h float64) float64 {
	if h <= 0 {
		return 0
	}
	return v.bottom.area(math.Min(h, v.bottom.depth()))
}

// The top head is filled from its rim, so its liquid is the full head less
// the dry cap above the surface.
func (v *verticalGeometry) topVolume(h float64) float64 {
	if h <= v.TangentHeight() {
		return 0
	}
	dry := v.TotalHeight() - math.Min(h, v.TotalHeight())
	return v.top.volume(v.top.depth()) - v.top.volume(dry)
}

func (v *verticalGeometry) topArea(h float64) float64 {
	if h < v.TangentHeight() {
		return 0
	}
	full := v.top.area(v.top.depth())
	dry := v.TotalHeight() - math.Min(h, v.TotalHeight())
	if dry <= 0 {
		return full
	}
	return full - v.top.area(dry)
}

func (v *verticalGeometry) WorkingVolume(low, high float64) float64 {
	return disc(v.d) * (high - low)
}

func (v *verticalGeometry) TangentVolume() float64 {
	t := v.TangentHeight()
	return v.ShellLiquidVolume(t) + v.HeadLiquidVolume(t)
}
