package relbench

import (
	"fmt"
	"math"
)

// Composition algebra: rules that combine component distributions into a
// derived system distribution. Every rule returns a value satisfying the
// Distribution contract, so composed systems are themselves components —
// "three elements in series, each internally redundant" is built inside-out,
// redundancy first, then series.
//
// Composites hold references to their components; components are immutable,
// so the composite is safe for concurrent evaluation like everything else.
//
// Alongside the time-dependent composites, each rule has a scalar form
// operating on mission reliabilities (a single probability p instead of a
// survival curve), for fixed-mission trade studies.

// SeriesSystem fails on the first failure of any component:
//
//	S(t)  = Π S_i(t)
//	f(t)  = Σ_i f_i(t) · Π_{j≠i} S_j(t)
//
// The density is the product rule applied to the survival product. This is
// the baseline "no redundancy" composition and the outer rule for
// multi-element systems.
type SeriesSystem struct {
	Components []Distribution
}

// NewSeries composes one or more components in series.
func NewSeries(components ...Distribution) (SeriesSystem, error) {
	if len(components) == 0 {
		return SeriesSystem{}, fmt.Errorf("relbench: series composition needs at least one component")
	}
	return SeriesSystem{Components: components}, nil
}

// Density returns Σ_i f_i(t) · Π_{j≠i} S_j(t).
func (s SeriesSystem) Density(t float64) float64 {
	sum := 0.0
	for i, c := range s.Components {
		term := c.Density(t)
		for j, other := range s.Components {
			if j != i {
				term *= other.Survival(t)
			}
		}
		sum += term
	}
	return sum
}

// Survival returns the exact product Π S_i(t).
func (s SeriesSystem) Survival(t float64) float64 {
	prod := 1.0
	for _, c := range s.Components {
		prod *= c.Survival(t)
	}
	return prod
}

// Mean has no closed form for a series system.
func (s SeriesSystem) Mean() (float64, error) { return 0, ErrNotAvailable }

// Variance has no closed form for a series system.
func (s SeriesSystem) Variance() (float64, error) { return 0, ErrNotAvailable }

// Quantile has no closed form for a series system.
func (s SeriesSystem) Quantile(p float64) (float64, error) { return 0, ErrNotAvailable }

// ParallelSystem keeps all components energized and fails only when every
// component has failed:
//
//	S(t) = 1 − Π (1 − S_i(t))
//	f(t) = Σ_i f_i(t) · Π_{j≠i} (1 − S_j(t))
//
// For n+1 identical units this reduces to the textbook redundancy formula
// 1 − (1 − p)^(n+1); see NewParallelRedundancy and ParallelReliability.
type ParallelSystem struct {
	Components []Distribution
}

// NewParallel composes one or more always-energized components in parallel.
func NewParallel(components ...Distribution) (ParallelSystem, error) {
	if len(components) == 0 {
		return ParallelSystem{}, fmt.Errorf("relbench: parallel composition needs at least one component")
	}
	return ParallelSystem{Components: components}, nil
}

// NewParallelRedundancy replicates a single unit with extra redundant copies:
// the primary plus `extra` backups, all energized.
func NewParallelRedundancy(unit Distribution, extra int) (ParallelSystem, error) {
	if extra < 0 {
		return ParallelSystem{}, fmt.Errorf("relbench: redundant unit count must be ≥ 0, got %d", extra)
	}
	components := make([]Distribution, extra+1)
	for i := range components {
		components[i] = unit
	}
	return ParallelSystem{Components: components}, nil
}

// Density returns Σ_i f_i(t) · Π_{j≠i} F_j(t), where F = 1 − S.
func (p ParallelSystem) Density(t float64) float64 {
	sum := 0.0
	for i, c := range p.Components {
		term := c.Density(t)
		for j, other := range p.Components {
			if j != i {
				term *= 1 - other.Survival(t)
			}
		}
		sum += term
	}
	return sum
}

// Survival returns 1 − Π (1 − S_i(t)).
func (p ParallelSystem) Survival(t float64) float64 {
	allFail := 1.0
	for _, c := range p.Components {
		allFail *= 1 - c.Survival(t)
	}
	return 1 - allFail
}

// Mean has no closed form for a parallel system.
func (p ParallelSystem) Mean() (float64, error) { return 0, ErrNotAvailable }

// Variance has no closed form for a parallel system.
func (p ParallelSystem) Variance() (float64, error) { return 0, ErrNotAvailable }

// Quantile has no closed form for a parallel system.
func (p ParallelSystem) Quantile(q float64) (float64, error) { return 0, ErrNotAvailable }

// StandbySystem holds redundant units unpowered and switches each in only
// when the active unit fails. Every switch-in is itself a trial with success
// probability Switches[k], independent of the unit.
//
// Reliability accumulates stage by stage over the unit survival p:
//
//	P = p + Σ_k failChain_k · (1−p) · w_k·p
//	failChain_{k+1} = failChain_k · (1 − w_k·p)
//
// where failChain_k is the probability that every earlier backup engagement
// came to nothing. The time-dependent composite applies this structure
// function pointwise to the unit's survival curve; the density comes from the
// analytic derivative of the same polynomial, not from differencing samples.
type StandbySystem struct {
	Unit     Distribution
	Switches []float64 // Per-backup switch success probabilities, in engagement order
}

// NewStandby composes a primary unit with cold backups behind imperfect
// switches. An empty switch list degenerates to the bare unit.
func NewStandby(unit Distribution, switches []float64) (StandbySystem, error) {
	for i, w := range switches {
		if w < 0 || w > 1 {
			return StandbySystem{}, fmt.Errorf("relbench: switch %d success probability out of [0,1]: %g", i, w)
		}
	}
	return StandbySystem{Unit: unit, Switches: switches}, nil
}

// Survival applies the standby structure function to the unit survival.
func (s StandbySystem) Survival(t float64) float64 {
	v, _ := standbyStructure(s.Unit.Survival(t), s.Switches)
	return v
}

// Density returns −dS/dt = V'(p)·f(t) with p the unit survival at t.
func (s StandbySystem) Density(t float64) float64 {
	_, dv := standbyStructure(s.Unit.Survival(t), s.Switches)
	return dv * s.Unit.Density(t)
}

// Mean has no closed form for a standby system.
func (s StandbySystem) Mean() (float64, error) { return 0, ErrNotAvailable }

// Variance has no closed form for a standby system.
func (s StandbySystem) Variance() (float64, error) { return 0, ErrNotAvailable }

// Quantile has no closed form for a standby system.
func (s StandbySystem) Quantile(p float64) (float64, error) { return 0, ErrNotAvailable }

// standbyStructure evaluates the standby reliability polynomial and its
// derivative at unit reliability p.
//
// Each stage contributes T_k = w_k·p·(1−p)·C_k with C_k the failure chain,
// so T_k' = w_k·[(1−2p)·C_k + p(1−p)·C_k'] and the chain recurrence is
// C_{k+1} = C_k·(1−w_k·p), C_{k+1}' = C_k'·(1−w_k·p) − C_k·w_k.
func standbyStructure(p float64, switches []float64) (value, derivative float64) {
	value = p
	derivative = 1

	chain, chainDeriv := 1.0, 0.0
	for _, w := range switches {
		value += w * p * (1 - p) * chain
		derivative += w * ((1-2*p)*chain + p*(1-p)*chainDeriv)

		chain, chainDeriv = chain*(1-w*p), chainDeriv*(1-w*p)-chain*w
	}
	return value, derivative
}

// FractionalSystem expresses redundancy as a ratio m = numerator/denominator:
// numerator extra units spread over a group of denominator primaries. The
// group of numerator+denominator identical units survives while at least
// denominator of them do, a binomial tail over the tolerated failures:
//
//	P = Σ_{i=0}^{numerator} C(numerator+denominator, i) · p^(numerator+denominator−i) · (1−p)^i
//
// m = 0/1 is the degenerate case: no extra units, P = p.
type FractionalSystem struct {
	Unit        Distribution
	Numerator   int // Extra units per group (tolerated failures)
	Denominator int // Primary units per group
}

// NewFractional composes a unit under fractional redundancy m = numerator/denominator.
func NewFractional(unit Distribution, numerator, denominator int) (FractionalSystem, error) {
	if numerator < 0 || denominator < 1 {
		return FractionalSystem{}, fmt.Errorf("relbench: fractional multiplicity needs numerator ≥ 0 and denominator ≥ 1, got %d/%d",
			numerator, denominator)
	}
	return FractionalSystem{Unit: unit, Numerator: numerator, Denominator: denominator}, nil
}

// Survival applies the binomial-tail structure function to the unit survival.
func (f FractionalSystem) Survival(t float64) float64 {
	v, _ := fractionalStructure(f.Unit.Survival(t), f.Numerator, f.Denominator)
	return v
}

// Density returns V'(p)·f(t) with p the unit survival at t.
func (f FractionalSystem) Density(t float64) float64 {
	_, dv := fractionalStructure(f.Unit.Survival(t), f.Numerator, f.Denominator)
	return dv * f.Unit.Density(t)
}

// Mean has no closed form for a fractional-redundancy system.
func (f FractionalSystem) Mean() (float64, error) { return 0, ErrNotAvailable }

// Variance has no closed form for a fractional-redundancy system.
func (f FractionalSystem) Variance() (float64, error) { return 0, ErrNotAvailable }

// Quantile has no closed form for a fractional-redundancy system.
func (f FractionalSystem) Quantile(p float64) (float64, error) { return 0, ErrNotAvailable }

// fractionalStructure evaluates the binomial-tail polynomial and its
// derivative at unit reliability p.
func fractionalStructure(p float64, numerator, denominator int) (value, derivative float64) {
	n := numerator + denominator
	for i := 0; i <= numerator; i++ {
		c := binomial(n, i)
		value += c * math.Pow(p, float64(n-i)) * math.Pow(1-p, float64(i))

		derivative += c * float64(n-i) * math.Pow(p, float64(n-i-1)) * math.Pow(1-p, float64(i))
		if i > 0 {
			derivative -= c * float64(i) * math.Pow(p, float64(n-i)) * math.Pow(1-p, float64(i-1))
		}
	}
	return value, derivative
}

// binomial returns C(n, k) as a float64.
func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1.0
	for i := 1; i <= k; i++ {
		result = result * float64(n-k+i) / float64(i)
	}
	return result
}

// SeriesReliability is the scalar series rule: mission reliability of a chain
// is the product of its element reliabilities.
func SeriesReliability(reliabilities ...float64) float64 {
	prod := 1.0
	for _, p := range reliabilities {
		prod *= p
	}
	return prod
}

// ParallelReliability is the scalar parallel rule for a primary with `extra`
// identical energized backups: 1 − (1−p)^(extra+1). With extra = 0 this is
// exactly p, and each added unit strictly increases reliability for
// p ∈ (0, 1).
func ParallelReliability(p float64, extra int) float64 {
	return 1 - math.Pow(1-p, float64(extra+1))
}

// StandbyReliability is the scalar standby rule: a primary of reliability p
// backed by one cold unit per switch, engaged in order, each engagement
// succeeding with probability switches[k]·p.
func StandbyReliability(p float64, switches []float64) float64 {
	v, _ := standbyStructure(p, switches)
	return v
}

// FractionalReliability is the scalar fractional-redundancy rule for
// multiplicity m = numerator/denominator.
func FractionalReliability(p float64, numerator, denominator int) float64 {
	v, _ := fractionalStructure(p, numerator, denominator)
	return v
}
