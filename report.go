package relbench

import (
	"errors"
	"math"
)

// ReportConfig controls the numerical fallbacks of the metrics façade.
type ReportConfig struct {
	// Cutoff truncates semi-infinite supports for integration and quantile
	// bracketing. 0 means derive it automatically via TailCutoff.
	Cutoff float64

	// Quadrature used for numerical moments.
	Quadrature Quadrature

	// Tolerance is the absolute bracket width for quantile root-finding.
	Tolerance float64
}

// DefaultReportConfig returns the standard setup: automatic cutoff,
// 1000-subinterval Simpson quadrature, 1e-4 quantile tolerance.
func DefaultReportConfig() ReportConfig {
	return ReportConfig{
		Cutoff:     0,
		Quadrature: DefaultQuadrature(),
		Tolerance:  DefaultRootTolerance,
	}
}

// cutoff resolves the configured or automatic integration cutoff for d.
func (cfg ReportConfig) cutoff(d Distribution) float64 {
	if cfg.Cutoff > 0 {
		return cfg.Cutoff
	}
	return TailCutoff(d)
}

// GammaPercentile is one row of the γ-percentile lifetime table: the time by
// which the cumulative failure probability reaches Gamma percent.
type GammaPercentile struct {
	Gamma    int     // Percentage, 0–100
	Time     float64 // Lifetime quantile, meaningful only when Resolved
	Resolved bool    // False when the quantile is unattainable on [0, cutoff]
}

// ReliabilityReport bundles the scalar metrics of one distribution. It is a
// value produced on demand, immutable once returned.
type ReliabilityReport struct {
	MTTF        float64
	Variance    float64
	Sigma       float64
	Percentiles []GammaPercentile // Ascending γ, step 10
}

// HazardRate returns the instantaneous failure intensity λ(t) = f(t)/S(t).
// Where the survival has decayed to 0 the ratio is defined as 0 — the
// degenerate tail is a policy choice, not an error.
func HazardRate(d Distribution, t float64) float64 {
	s := d.Survival(t)
	if s <= 0 {
		return 0
	}
	return d.Density(t) / s
}

// MTTF returns the mean time to failure: the closed-form mean when the
// distribution has one, otherwise the survival integral
//
//	MTTF = ∫₀^cutoff S(t) dt
//
// which for non-negative lifetimes equals ∫ t·f(t) dt without
// re-differentiating anything.
func MTTF(d Distribution, cfg ReportConfig) float64 {
	if mean, err := d.Mean(); err == nil {
		return mean
	}
	return cfg.Quadrature.Integrate(d.Survival, 0, cfg.cutoff(d))
}

// VarianceAndSigma returns the failure-time variance and standard deviation.
// Without a closed form, the second raw moment comes from the survival
// integral E[T²] = ∫₀^cutoff 2t·S(t) dt and the variance from
// E[T²] − MTTF². Numerical noise can push a tiny variance below zero; it is
// clamped to 0 before the square root rather than failing.
func VarianceAndSigma(d Distribution, cfg ReportConfig) (variance, sigma float64) {
	variance, err := d.Variance()
	if err != nil {
		mttf := MTTF(d, cfg)
		secondMoment := cfg.Quadrature.Integrate(func(t float64) float64 {
			return 2 * t * d.Survival(t)
		}, 0, cfg.cutoff(d))
		variance = secondMoment - mttf*mttf
	}
	if variance < 0 {
		variance = 0
	}
	return variance, math.Sqrt(variance)
}

// GammaPercentiles returns the lifetime table for γ ∈ {0, 10, ..., 100}:
// for each γ, the t solving 1 − S(t) = γ/100.
//
// The closed-form quantile is used when the distribution supplies one;
// otherwise the equation is inverted by bisection on [0, cutoff]. A γ whose
// quantile is unattainable there (an infinite closed-form quantile, or no
// sign change for the root-finder) yields an unresolved entry instead of
// aborting the table.
func GammaPercentiles(d Distribution, cfg ReportConfig) []GammaPercentile {
	cutoff := cfg.cutoff(d)
	table := make([]GammaPercentile, 0, 11)

	for gamma := 0; gamma <= 100; gamma += 10 {
		target := float64(gamma) / 100

		quantile, err := d.Quantile(target)
		if errors.Is(err, ErrNotAvailable) {
			quantile, err = FindRoot(func(t float64) float64 {
				return (1 - d.Survival(t)) - target
			}, 0, cutoff, cfg.Tolerance)
		}

		table = append(table, GammaPercentile{
			Gamma:    gamma,
			Time:     quantile,
			Resolved: err == nil && !math.IsInf(quantile, 0) && !math.IsNaN(quantile),
		})
	}
	return table
}

// Analyze computes the full scalar report for any distribution-capable
// object, component or composed system alike.
func Analyze(d Distribution, cfg ReportConfig) ReliabilityReport {
	variance, sigma := VarianceAndSigma(d, cfg)
	return ReliabilityReport{
		MTTF:        MTTF(d, cfg),
		Variance:    variance,
		Sigma:       sigma,
		Percentiles: GammaPercentiles(d, cfg),
	}
}

// Point is one sample of a reliability curve, for the presentation layer.
type Point struct {
	T float64
	Y float64
}

// SampleDensity evaluates the failure density on n evenly spaced points of
// [low, high], endpoints included.
func SampleDensity(d Distribution, low, high float64, n int) []Point {
	return sample(d.Density, low, high, n)
}

// SampleSurvival evaluates the survival function on n evenly spaced points
// of [low, high], endpoints included.
func SampleSurvival(d Distribution, low, high float64, n int) []Point {
	return sample(d.Survival, low, high, n)
}

// SampleHazardRate evaluates the hazard rate on n evenly spaced points of
// [low, high], endpoints included.
func SampleHazardRate(d Distribution, low, high float64, n int) []Point {
	return sample(func(t float64) float64 { return HazardRate(d, t) }, low, high, n)
}

func sample(f func(float64) float64, low, high float64, n int) []Point {
	if n < 2 {
		n = 2
	}
	step := (high - low) / float64(n-1)
	points := make([]Point, n)
	for i := range points {
		t := low + float64(i)*step
		points[i] = Point{T: t, Y: f(t)}
	}
	return points
}
