package geometry

import (
	"math"
	"slices"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func near(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

func TestArcPointsQuarter(t *testing.T) {
	pts := slices.Collect(ArcPoints(r2.Vec{X: 1, Y: 1}, 2, 0, 90, 3))
	want := []r2.Vec{
		{X: 3, Y: 1},
		{X: 1 + math.Sqrt2, Y: 1 + math.Sqrt2},
		{X: 1, Y: 3},
	}
	if len(pts) != len(want) {
		t.Fatalf("len = %d, want %d", len(pts), len(want))
	}
	for i := range want {
		if !near(pts[i], want[i], 1e-12) {
			t.Errorf("pts[%d] = %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestArcPointsReflexSpan(t *testing.T) {
	// 170° -> -170° is a 340° span; the short 20° arc through 180° is meant.
	pts := slices.Collect(ArcPoints(r2.Vec{}, 1, 170, -170, 3))
	if len(pts) != 3 {
		t.Fatalf("len = %d, want 3", len(pts))
	}
	if !near(pts[1], r2.Vec{X: -1, Y: 0}, 1e-12) {
		t.Errorf("midpoint = %v, want (-1, 0)", pts[1])
	}

	pts = slices.Collect(ArcPoints(r2.Vec{}, 1, -170, 170, 3))
	if !near(pts[1], r2.Vec{X: -1, Y: 0}, 1e-12) {
		t.Errorf("reverse midpoint = %v, want (-1, 0)", pts[1])
	}
}

func TestArcPointsEdgeCases(t *testing.T) {
	if n := len(slices.Collect(ArcPoints(r2.Vec{}, 0, 0, 90, 10))); n != 0 {
		t.Errorf("zero radius len = %d, want 0", n)
	}
	if n := len(slices.Collect(ArcPoints(r2.Vec{}, 1, 0, 90, 1))); n != 2 {
		t.Errorf("steps=1 len = %d, want 2", n)
	}
}

func TestArcPointsRestartable(t *testing.T) {
	seq := ArcPoints(r2.Vec{}, 1, 0, 180, 7)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Errorf("second pass = %v, want %v", second, first)
	}

	var n int
	for range seq {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("early break visited %d points, want 2", n)
	}
}

func TestCircleIntersection(t *testing.T) {
	tests := []struct {
		name   string
		c1     r2.Vec
		rad1   float64
		c2     r2.Vec
		rad2   float64
		want   r2.Vec
		wantOK bool
	}{
		{
			name: "two points picks larger x",
			c1:   r2.Vec{X: 0, Y: 0}, rad1: 1,
			c2: r2.Vec{X: 0, Y: 1}, rad2: 1,
			want:   r2.Vec{X: math.Sqrt(3) / 2, Y: 0.5},
			wantOK: true,
		},
		{
			name: "tangent",
			c1:   r2.Vec{}, rad1: 1,
			c2: r2.Vec{X: 2}, rad2: 1,
			want:   r2.Vec{X: 1},
			wantOK: true,
		},
		{
			name: "too far apart",
			c1:   r2.Vec{}, rad1: 1,
			c2: r2.Vec{X: 3}, rad2: 1,
		},
		{
			name: "nested",
			c1:   r2.Vec{}, rad1: 5,
			c2: r2.Vec{X: 1}, rad2: 1,
		},
		{
			name: "concentric",
			c1:   r2.Vec{}, rad1: 1,
			c2: r2.Vec{}, rad2: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CircleIntersection(tt.c1, tt.rad1, tt.c2, tt.rad2, DefaultEpsilon)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !near(got, tt.want, 1e-9) {
				t.Errorf("point = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDegreesRadians(t *testing.T) {
	if got := Degrees(Radians(123.5)); math.Abs(got-123.5) > 1e-12 {
		t.Errorf("Degrees(Radians(123.5)) = %v", got)
	}
}
