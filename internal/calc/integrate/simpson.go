// Package integrate evaluates definite integrals with the composite Simpson
// 1/3 rule on a fixed, uniform grid.
//
// The integrator never panics and never returns a non-finite value. A sample
// that panics or evaluates to NaN or ±Inf is counted as a failure, contributes zero to
// the sum and is reported on the Result, so the caller decides whether a zero
// contribution is acceptable.
package integrate

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate"
)

// DefaultIntervals is the number of Simpson intervals used when n <= 0.
const DefaultIntervals = 100

// ErrIntegration marks an integral where at least one sample was not finite.
var ErrIntegration = errors.New("integration failure")

// Func is an integrand.
type Func func(x float64) float64

// Result is the outcome of a Simpson evaluation.
type Result struct {
	A, B         float64
	Value        float64
	Intervals    int
	Failed       int
	FirstFailure float64
}

// Error describes the failed samples of an integral.
type Error struct {
	A, B   float64
	Failed int
	At     float64
}

func (e *Error) Error() string {
	return fmt.Sprintf("integrate [%g, %g]: %d non-finite samples (first at x=%g)", e.A, e.B, e.Failed, e.At)
}

func (e *Error) Unwrap() error { return ErrIntegration }

// Err returns nil when every sample was finite.
func (r Result) Err() error {
	if r.Failed == 0 {
		return nil
	}
	return &Error{A: r.A, B: r.B, Failed: r.Failed, At: r.FirstFailure}
}

// OrZero is the fail-to-safe-zero policy: failed samples were already
// replaced by zero, so the partial sum is returned as is.
func (r Result) OrZero() float64 {
	return r.Value
}

// Simpson integrates f over [a, b] using n intervals. n is rounded up to the
// next even number; n <= 0 selects DefaultIntervals.
func Simpson(f Func, a, b float64, n int) Result {
	if n <= 0 {
		n = DefaultIntervals
	}
	if n%2 != 0 {
		n++
	}
	res := Result{A: a, B: b, Intervals: n}
	if a == b || math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return res
	}
	sign := 1.0
	if b < a {
		a, b = b, a
		sign = -1
	}

	h := (b - a) / float64(n)
	if !(h > 0) || a+h == a {
		return res
	}
	xs := make([]float64, n+1)
	fs := make([]float64, n+1)
	for i := range xs {
		x := a + float64(i)*h
		if i == n {
			x = b
		}
		xs[i] = x
		v, ok := sample(f, x)
		if !ok {
			if res.Failed == 0 {
				res.FirstFailure = x
			}
			res.Failed++
			v = 0
		}
		fs[i] = v
	}

	v, ok := simpsons(xs, fs)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		if res.Failed == 0 {
			res.FirstFailure = a
		}
		res.Failed++
		return res
	}
	res.Value = sign * v
	return res
}

// sample evaluates f at x. A panic or a non-finite value is a failed sample.
func sample(f Func, x float64) (v float64, ok bool) {
	defer func() {
		if recover() != nil {
			v, ok = 0, false
		}
	}()
	v = f(x)
	return v, !math.IsNaN(v) && !math.IsInf(v, 0)
}

// simpsons guards the gonum sum, which panics on a degenerate grid.
func simpsons(xs, fs []float64) (v float64, ok bool) {
	defer func() {
		if recover() != nil {
			v, ok = 0, false
		}
	}()
	return integrate.Simpsons(xs, fs), true
}

// Integrate is Simpson with the default interval count and the
// fail-to-safe-zero policy applied.
func Integrate(f Func, a, b float64) float64 {
	return Simpson(f, a, b, DefaultIntervals).OrZero()
}
