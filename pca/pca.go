package pca

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Fit — Principal Component Analysis via SVD of the centered data matrix.
//
// Description:
//
//	Fit learns the K-dimensional linear subspace of greatest variance from
//	the N×F sample matrix X and freezes it into the Engine: the per-feature
//	mean μ, the F×K orthonormal direction matrix R, the explained-variance
//	spectrum λ, and the empirical latent bounds used by the generative
//	operations.
//
// Algorithm outline:
//  1. μ_j = mean of column j; reject any NaN/±Inf entry (ErrNonFinite).
//  2. X̄ = X − broadcast(μ).
//  3. Thin SVD X̄ = U·S·Vᵗ on the data matrix directly. The F×F covariance
//     is never formed: doing so squares the condition number and costs
//     O(F²·N) against the SVD's O(min(N,F)²·max(N,F)).
//  4. R = first K columns of V; λ_i = S_i²/N for i = 1..K.
//  5. Record per-coordinate [min, max] of the training projections X̄·R.
//
// Singular-vector signs are arbitrary (v and −v both factor X̄) and the
// order of equal singular values is implementation-defined; compare
// directions up to sign.
//
// Errors:
//   - ErrAlreadyFitted — Fit was already called on this Engine.
//   - ErrEmptyMatrix   — X is nil or has zero rows or columns.
//   - ErrBadComponents — k outside [1, min(N, F)].
//   - ErrNonFinite     — X contains NaN or ±Inf.
//   - ErrSVDFailed     — the decomposition did not converge.
//
// A failed Fit leaves the Engine unfitted and reusable.
func (e *Engine) Fit(x mat.Matrix, k int) error {
	if e.fitted {
		return ErrAlreadyFitted
	}
	if x == nil {
		return ErrEmptyMatrix
	}
	n, f := x.Dims()
	if n == 0 || f == 0 {
		return ErrEmptyMatrix
	}
	if k < 1 || k > min(n, f) {
		return fmt.Errorf("fit: k=%d for %d×%d input: %w", k, n, f, ErrBadComponents)
	}

	// Column means, rejecting non-finite entries in the same pass.
	mean := make([]float64, f)
	col := make([]float64, n)
	for j := 0; j < f; j++ {
		mat.Col(col, j, x)
		for _, v := range col {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("fit: column %d: %w", j, ErrNonFinite)
			}
		}
		mean[j] = stat.Mean(col, nil)
	}

	// Center into a fresh matrix; X itself is caller-owned and untouched.
	centered := mat.NewDense(n, f, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < f; j++ {
			centered.Set(i, j, x.At(i, j)-mean[j])
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(centered, mat.SVDThin); !ok {
		return ErrSVDFailed
	}

	var v mat.Dense
	svd.VTo(&v) // f × min(n, f), columns = right-singular vectors
	components := mat.DenseCopyOf(v.Slice(0, f, 0, k))

	s := svd.Values(nil) // descending
	variances := make([]float64, k)
	for i := 0; i < k; i++ {
		variances[i] = s[i] * s[i] / float64(n)
	}
	total := 0.0
	for _, sv := range s {
		total += sv * sv / float64(n)
	}

	// Empirical latent bounds over the training projections.
	var z mat.Dense
	z.Mul(centered, components) // n × k
	bounds := make([]Bound, k)
	zcol := make([]float64, n)
	for j := 0; j < k; j++ {
		mat.Col(zcol, j, &z)
		bounds[j] = Bound{Min: floats.Min(zcol), Max: floats.Max(zcol)}
	}

	e.mean = mean
	e.components = components
	e.variances = variances
	e.totalVariance = total
	e.bounds = bounds
	e.f, e.k = f, k
	e.fitted = true

	return nil
}

// FitTransform runs Fit and then projects the same matrix, returning the
// N×K latent coordinates of the training data.
func (e *Engine) FitTransform(x mat.Matrix, k int) (*mat.Dense, error) {
	if err := e.Fit(x, k); err != nil {
		return nil, err
	}

	return e.Transform(x)
}

// Transform projects samples into the fitted subspace: Z = (X − μ)·R.
//
// X is M×F (any number of rows, the fitted feature width); the result is
// M×K. Transform is a pure function of the fitted state and its input —
// repeated calls with the same input yield identical results.
//
// Errors:
//   - ErrNotFitted         — Fit has not succeeded on this Engine.
//   - ErrEmptyMatrix       — X is nil or has zero rows.
//   - ErrDimensionMismatch — X has feature width ≠ F.
func (e *Engine) Transform(x mat.Matrix) (*mat.Dense, error) {
	if !e.fitted {
		return nil, ErrNotFitted
	}
	if x == nil {
		return nil, ErrEmptyMatrix
	}
	m, f := x.Dims()
	if m == 0 {
		return nil, ErrEmptyMatrix
	}
	if f != e.f {
		return nil, fmt.Errorf("transform: input width %d, fitted %d: %w", f, e.f, ErrDimensionMismatch)
	}

	centered := mat.NewDense(m, f, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < f; j++ {
			centered.Set(i, j, x.At(i, j)-e.mean[j])
		}
	}

	var z mat.Dense
	z.Mul(centered, e.components)

	return &z, nil
}

// TransformVector projects a single length-F sample, returning its
// length-K latent vector. Convenience wrapper over Transform.
func (e *Engine) TransformVector(x []float64) ([]float64, error) {
	if !e.fitted {
		return nil, ErrNotFitted
	}
	if len(x) != e.f {
		return nil, fmt.Errorf("transform: vector length %d, fitted %d: %w", len(x), e.f, ErrDimensionMismatch)
	}

	z, err := e.Transform(mat.NewDense(1, e.f, x))
	if err != nil {
		return nil, err
	}
	out := make([]float64, e.k)
	copy(out, z.RawRowView(0))

	return out, nil
}

// InverseTransform reconstructs samples from latent coordinates:
// X̃ = Z·Rᵗ + μ.
//
// Z is M×K; the result is M×F. The reconstruction is APPROXIMATE: the
// residual against the original sample is exactly the component of the
// centered sample lying in the span of the F−K discarded directions. It is
// exact only when K = min(N, F) at fit time (no information discarded).
//
// Errors:
//   - ErrNotFitted         — Fit has not succeeded on this Engine.
//   - ErrEmptyMatrix       — Z is nil or has zero rows.
//   - ErrDimensionMismatch — Z has latent width ≠ K.
func (e *Engine) InverseTransform(z mat.Matrix) (*mat.Dense, error) {
	if !e.fitted {
		return nil, ErrNotFitted
	}
	if z == nil {
		return nil, ErrEmptyMatrix
	}
	m, k := z.Dims()
	if m == 0 {
		return nil, ErrEmptyMatrix
	}
	if k != e.k {
		return nil, fmt.Errorf("inverse: latent width %d, fitted %d: %w", k, e.k, ErrDimensionMismatch)
	}

	var x mat.Dense
	x.Mul(z, e.components.T()) // m × f
	for i := 0; i < m; i++ {
		row := x.RawRowView(i)
		for j := 0; j < e.f; j++ {
			row[j] += e.mean[j]
		}
	}

	return &x, nil
}

// InverseTransformVector reconstructs a single length-K latent vector into
// a length-F sample. Convenience wrapper over InverseTransform.
func (e *Engine) InverseTransformVector(z []float64) ([]float64, error) {
	if !e.fitted {
		return nil, ErrNotFitted
	}
	if len(z) != e.k {
		return nil, fmt.Errorf("inverse: vector length %d, fitted %d: %w", len(z), e.k, ErrDimensionMismatch)
	}

	x, err := e.InverseTransform(mat.NewDense(1, e.k, z))
	if err != nil {
		return nil, err
	}
	out := make([]float64, e.f)
	copy(out, x.RawRowView(0))

	return out, nil
}

// Fitted reports whether Fit has succeeded on this Engine.
func (e *Engine) Fitted() bool {
	return e.fitted
}

// Dims returns the fitted feature and latent dimensions (F, K), or (0, 0)
// before a successful Fit.
func (e *Engine) Dims() (features, latent int) {
	return e.f, e.k
}

// Mean returns a copy of the fitted per-feature mean μ (length F).
func (e *Engine) Mean() ([]float64, error) {
	if !e.fitted {
		return nil, ErrNotFitted
	}
	out := make([]float64, e.f)
	copy(out, e.mean)

	return out, nil
}

// Components returns a copy of the F×K principal-direction matrix R.
// Columns are orthonormal and ordered by descending explained variance;
// each column's global sign is arbitrary.
func (e *Engine) Components() (*mat.Dense, error) {
	if !e.fitted {
		return nil, ErrNotFitted
	}

	return mat.DenseCopyOf(e.components), nil
}

// ExplainedVariance returns a copy of λ (length K): λ_i = s_i²/N over the
// training data, non-negative and sorted descending.
func (e *Engine) ExplainedVariance() ([]float64, error) {
	if !e.fitted {
		return nil, ErrNotFitted
	}
	out := make([]float64, e.k)
	copy(out, e.variances)

	return out, nil
}

// ExplainedVarianceRatio returns λ normalized by the total variance of the
// training data across ALL features (not just the K retained directions),
// so the entries sum to 1 only when K captures everything.
func (e *Engine) ExplainedVarianceRatio() ([]float64, error) {
	if !e.fitted {
		return nil, ErrNotFitted
	}

	total := e.totalVariance
	out := make([]float64, e.k)
	if total > 0 {
		for i, v := range e.variances {
			out[i] = v / total
		}
	}

	return out, nil
}
