package relbench

import (
	"math"
	"testing"
)

// AssertionConfig contains tolerances for distribution contract checks.
type AssertionConfig struct {
	// Max deviation of ∫ f(t) dt from 1 over the support
	DensityMassTolerance float64

	// Max deviation of S(t) + ∫₀ᵗ f from 1 at any grid point
	ConsistencyTolerance float64

	// Max disagreement between closed-form and root-found quantiles
	QuantileTolerance float64

	// Number of grid points for monotonicity/consistency sweeps
	GridPoints int
}

// DefaultAssertionConfig returns coursework-grade tolerances.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		DensityMassTolerance: 1e-3,
		ConsistencyTolerance: 1e-3,
		QuantileTolerance:    1e-3,
		GridPoints:           50,
	}
}

// AssertDensityNormalized verifies ∫ f(t) dt ≈ 1 over [low, high].
//
// This checks the density on its own, independent of the survival function,
// so a distribution cannot pass by having consistent but mis-scaled curves.
func AssertDensityNormalized(t *testing.T, d Distribution, low, high float64, cfg AssertionConfig) {
	t.Helper()

	mass := DefaultQuadrature().Integrate(d.Density, low, high)
	if math.Abs(mass-1) > cfg.DensityMassTolerance {
		t.Errorf("Density not normalized: ∫f = %.6f over [%g, %g] (tolerance: %g)",
			mass, low, high, cfg.DensityMassTolerance)
		return
	}

	t.Logf("✓ Density normalized: ∫f = %.6f over [%g, %g]", mass, low, high)
}

// AssertSurvivalMonotone verifies S(t₁) ≥ S(t₂) for every t₁ < t₂ on a grid
// over [low, high] — survival never recovers probability mass.
func AssertSurvivalMonotone(t *testing.T, d Distribution, low, high float64, cfg AssertionConfig) {
	t.Helper()

	points := SampleSurvival(d, low, high, cfg.GridPoints)
	for i := 1; i < len(points); i++ {
		if points[i].Y > points[i-1].Y {
			t.Errorf("Survival increased: S(%g)=%.6f < S(%g)=%.6f",
				points[i-1].T, points[i-1].Y, points[i].T, points[i].Y)
			return
		}
	}

	t.Logf("✓ Survival non-increasing across %d points of [%g, %g]", cfg.GridPoints, low, high)
}

// AssertDensitySurvivalConsistency verifies the defining relation between the
// two curves: S(t) + ∫_low^t f(x) dx ≈ 1 at every grid point. The survival
// must be exactly the upper-tail mass of the density.
func AssertDensitySurvivalConsistency(t *testing.T, d Distribution, low, high float64, cfg AssertionConfig) {
	t.Helper()

	quad := DefaultQuadrature()
	worst := 0.0
	for i := 1; i <= cfg.GridPoints; i++ {
		x := low + (high-low)*float64(i)/float64(cfg.GridPoints)
		total := d.Survival(x) + quad.Integrate(d.Density, low, x)
		if dev := math.Abs(total - 1); dev > worst {
			worst = dev
		}
	}

	if worst > cfg.ConsistencyTolerance {
		t.Errorf("Density–survival inconsistency: worst |S(t)+F(t)−1| = %.2e (tolerance: %g)",
			worst, cfg.ConsistencyTolerance)
		return
	}

	t.Logf("✓ Density–survival consistent: worst deviation %.2e", worst)
}

// AssertPercentilesAscending verifies the γ-table is non-decreasing in t over
// its resolved entries as γ climbs from 0 to 100.
func AssertPercentilesAscending(t *testing.T, table []GammaPercentile) {
	t.Helper()

	last := math.Inf(-1)
	resolved := 0
	for _, row := range table {
		if !row.Resolved {
			continue
		}
		if row.Time < last {
			t.Errorf("Percentile table not ascending: T(γ=%d)=%.4f < previous %.4f",
				row.Gamma, row.Time, last)
			return
		}
		last = row.Time
		resolved++
	}

	t.Logf("✓ γ-percentile table ascending across %d resolved entries", resolved)
}

// AssertDistributionContract runs every contract check on [low, high].
// Use the full support for bounded distributions and [0, TailCutoff] for
// semi-infinite ones.
func AssertDistributionContract(t *testing.T, d Distribution, low, high float64) {
	t.Helper()

	cfg := DefaultAssertionConfig()

	t.Run("DensityNormalized", func(t *testing.T) {
		AssertDensityNormalized(t, d, low, high, cfg)
	})

	t.Run("SurvivalMonotone", func(t *testing.T) {
		AssertSurvivalMonotone(t, d, low, high, cfg)
	})

	t.Run("DensitySurvivalConsistency", func(t *testing.T) {
		AssertDensitySurvivalConsistency(t, d, low, high, cfg)
	})

	t.Run("PercentilesAscending", func(t *testing.T) {
		AssertPercentilesAscending(t, GammaPercentiles(d, DefaultReportConfig()))
	})
}

// PrintReport outputs a full reliability report to the test log.
func PrintReport(t *testing.T, name string, report ReliabilityReport) {
	t.Helper()

	t.Logf("\n=== Reliability Report: %s ===", name)
	t.Logf("  MTTF     = %.4f", report.MTTF)
	t.Logf("  Variance = %.4f", report.Variance)
	t.Logf("  σ        = %.4f", report.Sigma)

	t.Logf("\n  γ%%    T(γ)")
	t.Logf("  ----  ----------")
	for _, row := range report.Percentiles {
		if row.Resolved {
			t.Logf("  %-4d  %10.4f", row.Gamma, row.Time)
		} else {
			t.Logf("  %-4d  %10s", row.Gamma, "—")
		}
	}
}
