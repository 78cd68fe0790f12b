package relbench

// Quadrature performs composite Simpson integration over a finite interval.
//
// Simpson's rule fits a parabola through each pair of adjacent subintervals:
//
//	∫ f ≈ h/3 · [f(a) + 4f(x₁) + 2f(x₂) + 4f(x₃) + ... + f(b)]
//
// which is exact for cubics and O(h⁴) accurate for smooth integrands — ample
// for well-behaved failure densities at the default resolution.
//
// Semi-infinite domains are handled by the caller choosing a finite cutoff
// with negligible tail mass (see TailCutoff). The integrand must be finite at
// both endpoints; the rule evaluates it there directly.
type Quadrature struct {
	Subintervals int // Number of subintervals; odd values are forced up to even
}

// DefaultQuadrature returns the standard resolution: 1000 subintervals.
func DefaultQuadrature() Quadrature {
	return Quadrature{Subintervals: 1000}
}

// Integrate approximates ∫ f(x) dx over [low, high].
//
// A reversed interval integrates to the negated forward value, and a
// zero-width interval integrates to 0, matching the analytic conventions.
func (q Quadrature) Integrate(f func(float64) float64, low, high float64) float64 {
	if low == high {
		return 0
	}
	if low > high {
		return -q.Integrate(f, high, low)
	}

	n := q.Subintervals
	if n <= 0 {
		n = DefaultQuadrature().Subintervals
	}
	if n%2 != 0 {
		n++ // Simpson's rule needs an even subinterval count
	}

	h := (high - low) / float64(n)
	sum := f(low) + f(high)

	for i := 1; i < n; i++ {
		x := low + float64(i)*h
		if i%2 == 0 {
			sum += 2 * f(x)
		} else {
			sum += 4 * f(x)
		}
	}

	return sum * h / 3
}
