// Package pca: generative latent-space extension.
//
// A fitted subspace doubles as a generative model: pick a latent vector z,
// decode it with InverseTransform, and you obtain a plausible sample that
// lies on the learned subspace. Two latent policies are offered:
//
//   - Empirical bounds (the normative one): each coordinate z_i is
//     constrained to the [min, max] range observed across the training
//     projections. Decode enforces it strictly, or clamps when the caller
//     opts in.
//   - Truncated Gaussian (the model-based one): SampleLatent draws
//     z_i ~ N(0, λ_i) — the linear-Gaussian latent model — rejected into
//     the empirical bounds so draws never leave the supported region.
package pca

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// sampleAttempts bounds the rejection loop in SampleLatent before the draw
// is clamped to the coordinate's empirical range.
const sampleAttempts = 64

// LatentBounds returns a copy of the per-coordinate empirical bounds
// (length K) recorded at fit time: Bounds[i] is the [min, max] of latent
// coordinate i across the training data. These are the natural limits for
// slider-style latent exploration — one bounded scalar input per
// coordinate, composed into a single z vector.
func (e *Engine) LatentBounds() ([]Bound, error) {
	if !e.fitted {
		return nil, ErrNotFitted
	}
	out := make([]Bound, e.k)
	copy(out, e.bounds)

	return out, nil
}

// Decode validates a latent vector against the empirical bounds and
// reconstructs it: Decode = bounds-check ∘ InverseTransform.
//
// With opts.Clamp=false (the default), a coordinate outside its recorded
// bound raises ErrLatentOutOfRange naming the coordinate; with
// opts.Clamp=true the coordinate is forced to the nearest bound before
// decoding. Clamping is never applied unless requested. A nil opts means
// DefaultSampleOptions.
//
// Errors:
//   - ErrNotFitted         — Fit has not succeeded on this Engine.
//   - ErrDimensionMismatch — len(z) ≠ K.
//   - ErrLatentOutOfRange  — a coordinate is out of bounds and Clamp is off.
func (e *Engine) Decode(z []float64, opts *SampleOptions) ([]float64, error) {
	if !e.fitted {
		return nil, ErrNotFitted
	}
	if len(z) != e.k {
		return nil, fmt.Errorf("decode: vector length %d, fitted %d: %w", len(z), e.k, ErrDimensionMismatch)
	}

	clamp := false
	if opts != nil {
		clamp = opts.Clamp
	}

	zz := make([]float64, e.k)
	for i, v := range z {
		if !e.bounds[i].Contains(v) {
			if !clamp {
				return nil, fmt.Errorf("decode: coordinate %d value %g outside [%g, %g]: %w",
					i, v, e.bounds[i].Min, e.bounds[i].Max, ErrLatentOutOfRange)
			}
			v = e.bounds[i].clamp(v)
		}
		zz[i] = v
	}

	return e.InverseTransformVector(zz)
}

// SampleLatent draws one latent vector from the linear-Gaussian model
// z_i ~ N(0, λ_i), truncated to the empirical bounds by rejection (with a
// clamped fallback after sampleAttempts draws, so the call always returns
// an in-bounds vector). A zero-variance coordinate yields the value 0
// clamped into its bound.
//
// The result is always valid input for Decode with default options.
// Randomness comes from opts.Src; nil opts or nil Src uses the global
// source.
func (e *Engine) SampleLatent(opts *SampleOptions) ([]float64, error) {
	if !e.fitted {
		return nil, ErrNotFitted
	}

	var o SampleOptions
	if opts != nil {
		o = *opts
	}

	z := make([]float64, e.k)
	for i := 0; i < e.k; i++ {
		b := e.bounds[i]
		sigma := math.Sqrt(e.variances[i])
		if sigma == 0 {
			z[i] = b.clamp(0)
			continue
		}

		norm := distuv.Normal{Mu: 0, Sigma: sigma, Src: o.Src}
		v := norm.Rand()
		for attempt := 1; attempt < sampleAttempts && !b.Contains(v); attempt++ {
			v = norm.Rand()
		}
		z[i] = b.clamp(v)
	}

	return z, nil
}

// SampleAndDecode composes SampleLatent and Decode: one Gaussian draw from
// the latent model, reconstructed to feature space. The draw is always
// in-bounds, so the decode step cannot raise ErrLatentOutOfRange.
func (e *Engine) SampleAndDecode(opts *SampleOptions) ([]float64, error) {
	z, err := e.SampleLatent(opts)
	if err != nil {
		return nil, err
	}

	return e.Decode(z, opts)
}
