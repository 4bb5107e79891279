// Package pca: core types and option sets for the dimensionality-reduction
// engine.
package pca

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// Engine is the dimensionality-reduction engine.
//
// An Engine has exactly two states: unfitted (the zero value / New) and
// fitted (after one successful Fit). Fit is the only transition; every
// other method requires the fitted state and never mutates it, so a fitted
// Engine is safe for concurrent readers without locking. Concurrent Fit
// calls on the same unfitted Engine are not supported — treat Fit as part
// of construction.
type Engine struct {
	mean          []float64  // μ, length f
	components    *mat.Dense // R, f×k, orthonormal columns, descending variance
	variances     []float64  // λ, length k, λ_i = s_i²/n
	totalVariance float64    // Σ s_i²/n over ALL min(n,f) directions
	bounds        []Bound    // empirical latent bounds, length k
	f, k          int        // feature and latent dimensions
	fitted        bool
}

// New returns an unfitted Engine. Call Fit exactly once before any other
// method.
func New() *Engine {
	return &Engine{}
}

// Bound is the empirical range of one latent coordinate, observed across
// the training data at fit time. Min ≤ Max always; Min == Max for a
// coordinate with no variance.
type Bound struct {
	Min float64
	Max float64
}

// Contains reports whether v lies within the bound (inclusive).
func (b Bound) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// clamp returns v forced into [Min, Max].
func (b Bound) clamp(v float64) float64 {
	switch {
	case v < b.Min:
		return b.Min
	case v > b.Max:
		return b.Max
	default:
		return v
	}
}

// SampleOptions configures the generative operations Decode and
// SampleLatent.
//
// Fields:
//   - Clamp — when true, out-of-bounds latent coordinates are clamped to
//     the recorded bounds instead of raising ErrLatentOutOfRange. Off by
//     default: clamping is an explicit caller policy, never a silent fix.
//   - Src — randomness source for SampleLatent. Nil uses the package-global
//     source; supply a seeded source for reproducible draws.
//
// Example:
//
//	opts := pca.DefaultSampleOptions()
//	opts.Clamp = true
//	x, err := e.Decode(z, &opts)
type SampleOptions struct {
	Clamp bool
	Src   rand.Source
}

// DefaultSampleOptions returns the default generative policy:
// strict bounds (Clamp=false) and the global randomness source (Src=nil).
func DefaultSampleOptions() SampleOptions {
	return SampleOptions{
		Clamp: false,
		Src:   nil,
	}
}
