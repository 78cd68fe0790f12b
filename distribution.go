package relbench

import (
	"errors"
	"math"
)

// Sentinel errors forming the engine's failure taxonomy.
var (
	// ErrNotAvailable reports that a closed-form moment or quantile does not
	// exist for a distribution. Callers recover by falling back to the
	// numerical path (quadrature for moments, bisection for quantiles);
	// the metrics façade does this automatically.
	ErrNotAvailable = errors.New("relbench: no closed form available")

	// ErrNoBracket reports that root-finding bounds do not bracket a root.
	// This is a caller configuration error (cutoff too small, or target
	// probability unattainable on the interval) and is surfaced, never
	// silently approximated.
	ErrNoBracket = errors.New("relbench: interval does not bracket a root")

	// ErrDegenerateSupport reports distribution parameters that collapse the
	// support to a point or an empty interval. Rejected at construction,
	// never discovered mid-computation.
	ErrDegenerateSupport = errors.New("relbench: degenerate support")
)

// Distribution is the capability contract every failure-time distribution
// satisfies: a set of pure functions over non-negative time.
//
// Contract:
//   - Density(t) ≥ 0 everywhere, 0 outside the support, and integrates to 1.
//   - Survival(t) = P(T > t) ∈ [0, 1], non-increasing, 1 at (or below) the
//     support's lower edge and 0 at (or in the limit toward) its upper edge.
//   - Density and Survival are consistent: Survival is the upper-tail
//     integral of Density.
//   - Mean, Variance, Quantile return ErrNotAvailable when no closed form
//     exists; they never approximate.
//
// Implementations are immutable after construction and safe for concurrent
// use. Composite systems built by the composition algebra satisfy the same
// contract, so compositions nest arbitrarily.
type Distribution interface {
	// Density returns the failure-time probability density at t.
	Density(t float64) float64

	// Survival returns P(T > t), the probability of no failure by time t.
	Survival(t float64) float64

	// Mean returns the closed-form expected time to failure,
	// or ErrNotAvailable.
	Mean() (float64, error)

	// Variance returns the closed-form second central moment,
	// or ErrNotAvailable.
	Variance() (float64, error)

	// Quantile returns t such that 1 − Survival(t) = p for p ∈ (0, 1),
	// or ErrNotAvailable when the CDF has no closed-form inverse.
	Quantile(p float64) (float64, error)
}

// MaxTailCutoff caps the automatic tail cutoff. Generous enough for
// coursework-scale lifetimes (hours on a 20000-unit axis) while keeping
// quadrature step sizes sane.
const MaxTailCutoff = 20000.0

// tailMass is the survival probability below which the tail is treated as
// negligible when truncating a semi-infinite domain.
const tailMass = 1e-6

// TailCutoff returns a finite upper bound suitable for integrating d over a
// semi-infinite domain: the smallest power-of-two multiple of the unit scale
// at which Survival(t) < 1e-6, capped at MaxTailCutoff.
//
// Bounded distributions converge immediately (survival hits 0 at the upper
// bound), so the same policy serves both cases.
func TailCutoff(d Distribution) float64 {
	cutoff := 1.0
	for cutoff < MaxTailCutoff && d.Survival(cutoff) >= tailMass {
		cutoff *= 2
	}
	return math.Min(cutoff, MaxTailCutoff)
}
