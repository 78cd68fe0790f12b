package relbench

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Gamma is the gamma failure-time distribution with shape k and scale θ:
//
//	f(t) = t^(k-1) · e^(-t/θ) / (Γ(k) · θ^k)
//
// The workhorse model for wear-out failures: a gamma-distributed lifetime is
// the sum of k exponential phases of mean θ, so k shapes the early-life
// behavior (k > 1 gives an increasing hazard rate) while θ sets the time
// scale.
//
// Closed forms: mean = kθ, variance = kθ². Survival and quantile go through
// the regularized incomplete gamma function.
type Gamma struct {
	Shape float64 // k, dimensionless
	Scale float64 // θ, in time units
}

// NewGamma validates the parameters and returns the distribution.
func NewGamma(shape, scale float64) (Gamma, error) {
	if shape <= 0 || scale <= 0 {
		return Gamma{}, fmt.Errorf("%w: gamma requires shape > 0 and scale > 0, got k=%g θ=%g",
			ErrDegenerateSupport, shape, scale)
	}
	return Gamma{Shape: shape, Scale: scale}, nil
}

// Density returns the gamma probability density at t, 0 for t < 0.
func (g Gamma) Density(t float64) float64 {
	if t < 0 {
		return 0
	}
	norm := math.Gamma(g.Shape) * math.Pow(g.Scale, g.Shape)
	return math.Pow(t, g.Shape-1) * math.Exp(-t/g.Scale) / norm
}

// Survival returns Q(k, t/θ), the upper regularized incomplete gamma.
func (g Gamma) Survival(t float64) float64 {
	if t <= 0 {
		return 1
	}
	return mathext.GammaIncRegComp(g.Shape, t/g.Scale)
}

// Mean returns kθ.
func (g Gamma) Mean() (float64, error) {
	return g.Shape * g.Scale, nil
}

// Variance returns kθ².
func (g Gamma) Variance() (float64, error) {
	return g.Shape * g.Scale * g.Scale, nil
}

// Quantile inverts the regularized incomplete gamma: t = θ · P⁻¹(k, p).
func (g Gamma) Quantile(p float64) (float64, error) {
	if p <= 0 {
		return 0, nil
	}
	if p >= 1 {
		return math.Inf(1), nil
	}
	return g.Scale * mathext.GammaIncRegInv(g.Shape, p), nil
}

// Exponential is the constant-hazard failure-time distribution with rate λ:
//
//	f(t) = λ·e^(-λt),  S(t) = e^(-λt)
//
// The memoryless model for random (non-wear-out) failures. Its hazard rate is
// exactly λ at every t, which makes it the standard cross-check for the
// engine's numerical paths: every moment and quantile has a closed form.
type Exponential struct {
	Rate float64 // λ, failures per time unit
}

// NewExponential validates the rate and returns the distribution.
func NewExponential(rate float64) (Exponential, error) {
	if rate <= 0 {
		return Exponential{}, fmt.Errorf("%w: exponential requires rate > 0, got λ=%g",
			ErrDegenerateSupport, rate)
	}
	return Exponential{Rate: rate}, nil
}

// Density returns λ·e^(-λt), 0 for t < 0.
func (e Exponential) Density(t float64) float64 {
	if t < 0 {
		return 0
	}
	return e.Rate * math.Exp(-e.Rate*t)
}

// Survival returns e^(-λt).
func (e Exponential) Survival(t float64) float64 {
	if t <= 0 {
		return 1
	}
	return math.Exp(-e.Rate * t)
}

// Mean returns 1/λ.
func (e Exponential) Mean() (float64, error) {
	return 1 / e.Rate, nil
}

// Variance returns 1/λ².
func (e Exponential) Variance() (float64, error) {
	return 1 / (e.Rate * e.Rate), nil
}

// Quantile returns -ln(1-p)/λ, the closed-form inverse CDF.
func (e Exponential) Quantile(p float64) (float64, error) {
	if p <= 0 {
		return 0, nil
	}
	if p >= 1 {
		return math.Inf(1), nil
	}
	return -math.Log(1-p) / e.Rate, nil
}

// Simpson is the symmetric triangular failure-time distribution on [a, b]:
//
//	f(t) = 2/(b-a) − 2/(b-a)² · |a + b − 2t|   for a ≤ t ≤ b, else 0
//
// The coursework model for lifetimes known only by their bounds, peaking at
// the midpoint. Closed forms follow the reliability-textbook conventions:
// mean = (a+b)/2, variance = (b-a)²/8, and the piecewise-quadratic CDF
// inverts exactly.
type Simpson struct {
	Lower float64 // a, support lower bound
	Upper float64 // b, support upper bound
}

// NewSimpson validates the bounds and returns the distribution.
// Bounds with lower ≥ upper collapse the support and are rejected.
func NewSimpson(lower, upper float64) (Simpson, error) {
	if lower >= upper {
		return Simpson{}, fmt.Errorf("%w: simpson requires lower < upper, got [%g, %g]",
			ErrDegenerateSupport, lower, upper)
	}
	return Simpson{Lower: lower, Upper: upper}, nil
}

// Density returns the triangular density at t, 0 outside [a, b].
func (s Simpson) Density(t float64) float64 {
	if t < s.Lower || t > s.Upper {
		return 0
	}
	width := s.Upper - s.Lower
	return 2/width - 2/(width*width)*math.Abs(s.Lower+s.Upper-2*t)
}

// Survival returns 1 − F(t), exactly 1 below the support and 0 above it.
func (s Simpson) Survival(t float64) float64 {
	return 1 - s.cdf(t)
}

// Mean returns the midpoint (a+b)/2.
func (s Simpson) Mean() (float64, error) {
	return (s.Lower + s.Upper) / 2, nil
}

// Variance returns (b-a)²/8.
func (s Simpson) Variance() (float64, error) {
	width := s.Upper - s.Lower
	return width * width / 8, nil
}

// Quantile inverts the piecewise-quadratic CDF:
//
//	t = a + (b-a)·√(p/2)       for p ≤ 1/2
//	t = b − (b-a)·√((1-p)/2)   for p > 1/2
func (s Simpson) Quantile(p float64) (float64, error) {
	if p <= 0 {
		return s.Lower, nil
	}
	if p >= 1 {
		return s.Upper, nil
	}
	width := s.Upper - s.Lower
	if p <= 0.5 {
		return s.Lower + width*math.Sqrt(p/2), nil
	}
	return s.Upper - width*math.Sqrt((1-p)/2), nil
}

// cdf is the cumulative failure probability F(t).
func (s Simpson) cdf(t float64) float64 {
	if t <= s.Lower {
		return 0
	}
	if t >= s.Upper {
		return 1
	}
	width := s.Upper - s.Lower
	mid := (s.Lower + s.Upper) / 2
	if t <= mid {
		u := (t - s.Lower) / width
		return 2 * u * u
	}
	u := (s.Upper - t) / width
	return 1 - 2*u*u
}
