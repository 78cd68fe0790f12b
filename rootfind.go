package relbench

import (
	"fmt"
	"math"
)

// maxBisectionIterations bounds the bisection loop. Halving a 20000-unit
// bracket 200 times reaches widths far below any useful tolerance, so hitting
// the cap means the input violated the monotone-bracketing precondition.
const maxBisectionIterations = 200

// DefaultRootTolerance is the absolute bracket width at which bisection
// stops: 1e-4 time units, coursework-grade quantile precision.
const DefaultRootTolerance = 1e-4

// FindRoot locates t ∈ [low, high] with g(t) ≈ 0 by bisection.
//
// Preconditions: g is monotone on [low, high] and g(low), g(high) have
// opposite signs. When the sign condition fails the search returns
// ErrNoBracket instead of guessing — the caller picked bounds on which the
// target is unattainable.
//
// Bisection halves the bracket each step, so convergence is monotone and the
// iteration count is bounded: ceil(log2((high-low)/tolerance)) steps, capped
// at 200. An endpoint that is already a root is returned immediately.
func FindRoot(g func(float64) float64, low, high, tolerance float64) (float64, error) {
	if tolerance <= 0 {
		tolerance = DefaultRootTolerance
	}
	if low > high {
		low, high = high, low
	}

	gLow, gHigh := g(low), g(high)
	if gLow == 0 {
		return low, nil
	}
	if gHigh == 0 {
		return high, nil
	}
	if math.Signbit(gLow) == math.Signbit(gHigh) {
		return 0, fmt.Errorf("%w: g(%g)=%g and g(%g)=%g have the same sign",
			ErrNoBracket, low, gLow, high, gHigh)
	}

	for i := 0; i < maxBisectionIterations && high-low > tolerance; i++ {
		mid := low + (high-low)/2
		gMid := g(mid)

		switch {
		case gMid == 0:
			return mid, nil
		case math.Signbit(gMid) == math.Signbit(gLow):
			low, gLow = mid, gMid
		default:
			high = mid
		}
	}

	return low + (high-low)/2, nil
}
