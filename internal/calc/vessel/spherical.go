package vessel

import "math"

// sphericalGeometry is a sphere with no shell. It reports its whole body as
// head volume, and both head heights as the radius.
type sphericalGeometry struct{ d float64 }

func (s *sphericalGeometry) TotalHeight() float64      { return s.d }
func (s *sphericalGeometry) TangentHeight() float64    { return s.d / 2 }
func (s *sphericalGeometry) BottomHeadHeight() float64 { return s.d / 2 }
func (s *sphericalGeometry) TopHeadHeight() float64    { return s.d / 2 }

func (s *sphericalGeometry) HeadVolume() float64 {
	r := s.d / 2
	return 4.0 / 3 * math.Pi * r * r * r
}

func (s *sphericalGeometry) HeadSurfaceArea() float64  { return math.Pi * s.d * s.d }
func (s *sphericalGeometry) ShellVolume() float64      { return 0 }
func (s *sphericalGeometry) ShellSurfaceArea() float64 { return 0 }

func (s *sphericalGeometry) HeadLiquidVolume(h float64) float64 {
	if h <= 0 {
		return 0
	}
	return capVolume(s.d/2, math.Min(h, s.d))
}

func (s *sphericalGeometry) HeadWettedArea(h float64) float64 {
	return math.Pi * s.d * math.Max(0, math.Min(h, s.d))
}

func (s *sphericalGeometry) ShellLiquidVolume(float64) float64 { return 0 }
func (s *sphericalGeometry) ShellWettedArea(float64) float64   { return 0 }

func (s *sphericalGeometry) WorkingVolume(low, high float64) float64 {
	return s.HeadLiquidVolume(high) - s.HeadLiquidVolume(low)
}

func (s *sphericalGeometry) TangentVolume() float64 { return s.HeadVolume() }
