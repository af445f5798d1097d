package integrate

import (
	"errors"
	"math"
	"testing"
)

func TestSimpsonExactOnCubics(t *testing.T) {
	tests := []struct {
		name string
		f    Func
		a, b float64
		want float64
	}{
		{"constant", func(x float64) float64 { return 3 }, 0, 2, 6},
		{"linear", func(x float64) float64 { return 2 * x }, 0, 3, 9},
		{"quadratic", func(x float64) float64 { return x * x }, 0, 3, 9},
		{"cubic", func(x float64) float64 { return x*x*x - x }, -1, 2, 2.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Simpson(tt.f, tt.a, tt.b, 10)
			if math.Abs(res.Value-tt.want) > 1e-12 {
				t.Errorf("Value = %v, want %v", res.Value, tt.want)
			}
			if err := res.Err(); err != nil {
				t.Errorf("Err() = %v, want nil", err)
			}
		})
	}
}

func TestSimpsonIntervals(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, DefaultIntervals},
		{-4, DefaultIntervals},
		{7, 8},
		{8, 8},
		{1, 2},
	}

	for _, tt := range tests {
		res := Simpson(math.Sin, 0, 1, tt.n)
		if res.Intervals != tt.want {
			t.Errorf("Simpson(n=%d).Intervals = %d, want %d", tt.n, res.Intervals, tt.want)
		}
	}
}

func TestSimpsonSine(t *testing.T) {
	got := Integrate(math.Sin, 0, math.Pi)
	if math.Abs(got-2) > 1e-7 {
		t.Errorf("Integrate(sin, 0, pi) = %v, want 2", got)
	}
}

func TestSimpsonReversedAndEmpty(t *testing.T) {
	sq := func(x float64) float64 { return x * x }

	if got := Simpson(sq, 3, 0, 10).Value; math.Abs(got+9) > 1e-12 {
		t.Errorf("reversed Value = %v, want -9", got)
	}
	if got := Simpson(sq, 2, 2, 10).Value; got != 0 {
		t.Errorf("empty interval Value = %v, want 0", got)
	}
	if got := Simpson(sq, math.NaN(), 1, 10).Value; got != 0 {
		t.Errorf("NaN bound Value = %v, want 0", got)
	}
}

func TestSimpsonFailedSamples(t *testing.T) {
	// sqrt(1-x) is NaN for x > 1.
	f := func(x float64) float64 { return math.Sqrt(1 - x) }

	res := Simpson(f, 0, 2, 4)
	if res.Failed != 2 {
		t.Fatalf("Failed = %d, want 2", res.Failed)
	}
	if res.FirstFailure != 1.5 {
		t.Errorf("FirstFailure = %v, want 1.5", res.FirstFailure)
	}
	if math.IsNaN(res.Value) || math.IsInf(res.Value, 0) {
		t.Fatalf("Value = %v, want finite", res.Value)
	}
	if res.OrZero() != res.Value {
		t.Errorf("OrZero() = %v, want %v", res.OrZero(), res.Value)
	}

	err := res.Err()
	if !errors.Is(err, ErrIntegration) {
		t.Fatalf("Err() = %v, want ErrIntegration", err)
	}
	var ie *Error
	if !errors.As(err, &ie) {
		t.Fatalf("Err() is %T, want *Error", err)
	}
	if ie.Failed != 2 || ie.A != 0 || ie.B != 2 {
		t.Errorf("Error = %+v", ie)
	}
}

func TestSimpsonNeverNonFinite(t *testing.T) {
	f := func(x float64) float64 { return 1 / x }
	res := Simpson(f, 0, 1, 100)
	if res.Failed != 1 {
		t.Errorf("Failed = %d, want 1", res.Failed)
	}
	if math.IsInf(res.Value, 0) || math.IsNaN(res.Value) {
		t.Errorf("Value = %v, want finite", res.Value)
	}
}

func TestSimpsonPanickingSamples(t *testing.T) {
	var s []float64
	f := func(x float64) float64 {
		if x > 0.5 {
			return s[3]
		}
		return 1
	}
	res := Simpson(f, 0, 1, 10)
	if res.Failed != 5 {
		t.Errorf("Failed = %d, want 5", res.Failed)
	}
	if math.Abs(res.FirstFailure-0.6) > 1e-12 {
		t.Errorf("FirstFailure = %v, want 0.6", res.FirstFailure)
	}
	if !errors.Is(res.Err(), ErrIntegration) {
		t.Errorf("Err() = %v, want ErrIntegration", res.Err())
	}
	if got := Integrate(f, 0, 1); math.IsNaN(got) || got <= 0 || got >= 1 {
		t.Errorf("Integrate = %v, want the finite partial sum", got)
	}
}
