// Package geometry holds the 2-D primitives used to build head profiles:
// sampled circular arcs and the intersection of two circles.
package geometry

import (
	"iter"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultEpsilon is the tolerance used by CircleIntersection callers.
const DefaultEpsilon = 1e-9

func Radians(deg float64) float64 { return deg * math.Pi / 180 }

func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// ArcPoints samples the arc of the circle (center, radius) from startDeg to
// endDeg in steps points, both ends included. The sequence is lazy and can be
// ranged over any number of times.
//
// When the angular span exceeds 180° the smaller endpoint is moved up by a
// full turn, so the arc walks the short way round. steps below 2 is raised to
// 2; a non-positive radius yields nothing.
func ArcPoints(center r2.Vec, radius, startDeg, endDeg float64, steps int) iter.Seq[r2.Vec] {
	return func(yield func(r2.Vec) bool) {
		if radius <= 0 {
			return
		}
		if steps < 2 {
			steps = 2
		}
		start, end := startDeg, endDeg
		if delta := end - start; math.Abs(delta) > 180 {
			if delta > 0 {
				start += 360
			} else {
				end += 360
			}
		}
		for i := 0; i < steps; i++ {
			a := Radians(start + (end-start)*float64(i)/float64(steps-1))
			sin, cos := math.Sincos(a)
			p := r2.Vec{X: center.X + radius*cos, Y: center.Y + radius*sin}
			if !yield(p) {
				return
			}
		}
	}
}

// CircleIntersection returns an intersection point of the circles (c1, rad1)
// and (c2, rad2). Of the two candidates the one with the larger X is returned.
// ok is false when the centers coincide, the circles are apart by more than
// rad1+rad2+eps, or one lies inside the other beyond eps. Tangent circles within
// eps report their single touching point.
func CircleIntersection(c1 r2.Vec, rad1 float64, c2 r2.Vec, rad2 float64, eps float64) (p r2.Vec, ok bool) {
	d := r2.Sub(c2, c1)
	dist := r2.Norm(d)
	if dist < eps || dist > rad1+rad2+eps || dist < math.Abs(rad1-rad2)-eps {
		return r2.Vec{}, false
	}

	a := (rad1*rad1 - rad2*rad2 + dist*dist) / (2 * dist)
	h := math.Sqrt(math.Max(rad1*rad1-a*a, 0))

	mid := r2.Add(c1, r2.Scale(a/dist, d))
	off := r2.Vec{X: -d.Y * h / dist, Y: d.X * h / dist}

	p1 := r2.Add(mid, off)
	p2 := r2.Sub(mid, off)
	if p1.X > p2.X {
		return p1, true
	}
	return p2, true
}
