package vessel

import "math"

// Geometry is the capability set shared by every vessel shape. Fill heights
// are measured from the lowest point of the vessel.
type Geometry interface {
	TotalHeight() float64
	TangentHeight() float64
	BottomHeadHeight() float64
	TopHeadHeight() float64

	HeadVolume() float64
	ShellVolume() float64
	HeadSurfaceArea() float64
	ShellSurfaceArea() float64

	HeadLiquidVolume(h float64) float64
	ShellLiquidVolume(h float64) float64
	HeadWettedArea(h float64) float64
	ShellWettedArea(h float64) float64

	WorkingVolume(low, high float64) float64
	TangentVolume() float64
}

var (
	_ Geometry = (*verticalGeometry)(nil)
	_ Geometry = (*horizontalGeometry)(nil)
	_ Geometry = (*sphericalGeometry)(nil)
)

func disc(d float64) float64 { return math.Pi * d * d / 4 }

// capVolume is the volume of a spherical cap of depth h on radius r.
func capVolume(r, h float64) float64 {
	return math.Pi * h * h * (3*r - h) / 3
}

// segmentArea is the area of the circular segment of depth h in a circle of
// radius r. h is clamped to [0, 2r].
func segmentArea(r, h float64) float64 {
	if r <= 0 || h <= 0 {
		return 0
	}
	if h >= 2*r {
		return math.Pi * r * r
	}
	return r*r*math.Acos(clamp1((r-h)/r)) - (r-h)*math.Sqrt(math.Max(2*r*h-h*h, 0))
}

// segmentArc is the arc length bounding the circular segment of depth h.
func segmentArc(r, h float64) float64 {
	if r <= 0 || h <= 0 {
		return 0
	}
	if h >= 2*r {
		return 2 * math.Pi * r
	}
	return 2 * r * math.Acos(clamp1((r-h)/r))
}

func clamp1(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
