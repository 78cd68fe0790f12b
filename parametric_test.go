package relbench

import (
	"errors"
	"math"
	"testing"
)

func TestGamma_ClosedFormMoments(t *testing.T) {
	// Scenario: gamma-shaped component with shape=9, scale=67.
	dist, err := NewGamma(9, 67)
	if err != nil {
		t.Fatal(err)
	}

	mean, err := dist.Mean()
	if err != nil {
		t.Fatalf("Mean failed: %v", err)
	}
	if mean != 603.0 {
		t.Errorf("Gamma(9,67) mean: got %g, want 603.0", mean)
	}

	variance, err := dist.Variance()
	if err != nil {
		t.Fatalf("Variance failed: %v", err)
	}
	if variance != 40401.0 {
		t.Errorf("Gamma(9,67) variance: got %g, want 40401.0", variance)
	}

	t.Logf("✓ Gamma(9,67): mean = %.1f, variance = %.1f", mean, variance)
}

func TestGamma_Contract(t *testing.T) {
	dist, err := NewGamma(9, 67)
	if err != nil {
		t.Fatal(err)
	}
	AssertDistributionContract(t, dist, 0, TailCutoff(dist))
}

func TestGamma_NumericalMTTFMatchesClosedForm(t *testing.T) {
	dist, err := NewGamma(9, 67)
	if err != nil {
		t.Fatal(err)
	}

	// Integrate the survival function directly, ignoring the closed form.
	numeric := DefaultQuadrature().Integrate(dist.Survival, 0, TailCutoff(dist))

	if math.Abs(numeric-603.0)/603.0 > 1e-2 {
		t.Errorf("Numerical MTTF %.4f differs from closed-form 603.0 by more than 1%%", numeric)
	}

	t.Logf("✓ ∫S dt = %.4f (closed form: 603.0)", numeric)
}

func TestGamma_QuantileRoundTrip(t *testing.T) {
	dist, err := NewGamma(9, 67)
	if err != nil {
		t.Fatal(err)
	}

	for _, p := range []float64{0.1, 0.5, 0.9} {
		q, err := dist.Quantile(p)
		if err != nil {
			t.Fatalf("Quantile(%g) failed: %v", p, err)
		}
		back := 1 - dist.Survival(q)
		if math.Abs(back-p) > 1e-9 {
			t.Errorf("Quantile round trip at p=%g: F(T(p)) = %.12f", p, back)
		}
	}

	t.Logf("✓ Gamma quantile inverts the CDF")
}

func TestExponential_ClosedForms(t *testing.T) {
	dist, err := NewExponential(1.5e-4)
	if err != nil {
		t.Fatal(err)
	}

	mean, _ := dist.Mean()
	if math.Abs(mean-1/1.5e-4) > 1e-9 {
		t.Errorf("Exponential mean: got %g, want %g", mean, 1/1.5e-4)
	}

	variance, _ := dist.Variance()
	if math.Abs(variance-1/(1.5e-4*1.5e-4)) > 1e-3 {
		t.Errorf("Exponential variance: got %g", variance)
	}

	// Memorylessness at the survival level: S(a+b) = S(a)·S(b).
	a, b := 1000.0, 2500.0
	if math.Abs(dist.Survival(a+b)-dist.Survival(a)*dist.Survival(b)) > 1e-12 {
		t.Errorf("Exponential survival is not memoryless")
	}

	q, _ := dist.Quantile(0.5)
	if math.Abs(q-math.Ln2/1.5e-4) > 1e-6 {
		t.Errorf("Exponential median: got %g, want %g", q, math.Ln2/1.5e-4)
	}

	t.Logf("✓ Exponential closed forms: mean %.1f, median %.1f", mean, q)
}

func TestExponential_Contract(t *testing.T) {
	// Rate chosen so the automatic cutoff stays well inside the 20000 cap.
	dist, err := NewExponential(0.01)
	if err != nil {
		t.Fatal(err)
	}
	AssertDistributionContract(t, dist, 0, TailCutoff(dist))
}

func TestExponential_ConstantHazard(t *testing.T) {
	dist, err := NewExponential(0.01)
	if err != nil {
		t.Fatal(err)
	}

	for _, x := range []float64{0, 10, 100, 500} {
		h := HazardRate(dist, x)
		if math.Abs(h-0.01) > 1e-10 {
			t.Errorf("Exponential hazard at t=%g: got %.12f, want 0.01", x, h)
		}
	}

	t.Logf("✓ Exponential hazard rate constant at λ")
}

func TestSimpson_ClosedFormMoments(t *testing.T) {
	// Scenario: symmetric distribution on [23, 1000].
	dist, err := NewSimpson(23, 1000)
	if err != nil {
		t.Fatal(err)
	}

	mean, err := dist.Mean()
	if err != nil {
		t.Fatalf("Mean failed: %v", err)
	}
	if mean != 511.5 {
		t.Errorf("Simpson(23,1000) mean: got %g, want 511.5", mean)
	}

	variance, err := dist.Variance()
	if err != nil {
		t.Fatalf("Variance failed: %v", err)
	}
	want := 977.0 * 977.0 / 8.0
	if math.Abs(variance-want) > 1e-9 {
		t.Errorf("Simpson(23,1000) variance: got %g, want %g", variance, want)
	}

	t.Logf("✓ Simpson(23,1000): mean = %.1f, variance = %.3f", mean, variance)
}

func TestSimpson_Contract(t *testing.T) {
	dist, err := NewSimpson(23, 1000)
	if err != nil {
		t.Fatal(err)
	}
	AssertDistributionContract(t, dist, 23, 1000)
}

func TestSimpson_SupportEdges(t *testing.T) {
	dist, err := NewSimpson(23, 1000)
	if err != nil {
		t.Fatal(err)
	}

	if got := dist.Survival(0); got != 1 {
		t.Errorf("Survival below support: got %g, want 1", got)
	}
	if got := dist.Survival(1000); got != 0 {
		t.Errorf("Survival at upper bound: got %g, want 0", got)
	}
	if got := dist.Density(22.9); got != 0 {
		t.Errorf("Density below support: got %g, want 0", got)
	}
	if got := dist.Density(1000.1); got != 0 {
		t.Errorf("Density above support: got %g, want 0", got)
	}

	// Peak at the midpoint: f(mid) = 2/(b-a).
	mid := (23.0 + 1000.0) / 2
	if math.Abs(dist.Density(mid)-2/977.0) > 1e-12 {
		t.Errorf("Density peak: got %g, want %g", dist.Density(mid), 2/977.0)
	}

	t.Logf("✓ Simpson support edges and midpoint peak verified")
}

func TestSimpson_QuantileInvertsCDF(t *testing.T) {
	dist, err := NewSimpson(23, 1000)
	if err != nil {
		t.Fatal(err)
	}

	for _, p := range []float64{0.05, 0.25, 0.5, 0.75, 0.95} {
		q, err := dist.Quantile(p)
		if err != nil {
			t.Fatalf("Quantile(%g) failed: %v", p, err)
		}
		back := 1 - dist.Survival(q)
		if math.Abs(back-p) > 1e-12 {
			t.Errorf("Quantile round trip at p=%g: F(T(p)) = %.15f", p, back)
		}
	}

	if q, _ := dist.Quantile(0); q != 23 {
		t.Errorf("Quantile(0) should be the lower bound, got %g", q)
	}
	if q, _ := dist.Quantile(1); q != 1000 {
		t.Errorf("Quantile(1) should be the upper bound, got %g", q)
	}

	t.Logf("✓ Simpson quantile inverts the piecewise CDF exactly")
}

func TestConstruction_DegenerateSupportRejected(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"simpson collapsed", func() error { _, err := NewSimpson(1000, 23); return err }()},
		{"simpson point", func() error { _, err := NewSimpson(5, 5); return err }()},
		{"gamma zero shape", func() error { _, err := NewGamma(0, 67); return err }()},
		{"gamma negative scale", func() error { _, err := NewGamma(9, -1); return err }()},
		{"exponential zero rate", func() error { _, err := NewExponential(0); return err }()},
	}

	for _, tc := range cases {
		if !errors.Is(tc.err, ErrDegenerateSupport) {
			t.Errorf("%s: expected ErrDegenerateSupport, got %v", tc.name, tc.err)
		}
	}

	t.Logf("✓ Degenerate parameters rejected at construction")
}
