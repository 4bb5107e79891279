// Package pca fits a linear subspace to a sample matrix and projects
// samples into and out of it — Principal Component Analysis computed by
// singular value decomposition of the centered data matrix.
//
// 🚀 What is pca?
//
//	Given N samples with F features, the Engine finds the K mutually
//	orthonormal directions of greatest variance.  Projecting onto them
//	compresses each sample to K numbers; projecting back reconstructs
//	the sample up to the variance the discarded directions carried.
//	It's the workhorse behind:
//	  • Visualizing high-dimensional data in 2-D/3-D scatter plots
//	  • Decorrelating features before downstream modeling
//	  • Lossy compression of correlated measurements
//	  • Latent-space exploration of a dataset ("what lies between
//	    these two samples?")
//
// ✨ Key features:
//   - SVD of the centered data matrix directly — forming the F×F
//     covariance explicitly would square the condition number and cost
//     O(F²·N) against the SVD's O(min(N,F)²·max(N,F))
//   - immutable fitted state: Fit is one-shot, every later call is a pure
//     read, so a fitted Engine is safe for concurrent use
//   - explained-variance spectrum λ_i = s_i²/N, non-negative, descending
//   - generative extension: empirical per-coordinate latent bounds,
//     bounds-checked Decode, truncated-Gaussian SampleLatent
//   - Save/Load of the fitted model as a flat tagged record
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dimred/pca"
//
//	e := pca.New()
//	if err := e.Fit(X, 2); err != nil { ... }   // X: *mat.Dense, N×F
//
//	Z, err := e.Transform(X)          // N×2 latent coordinates
//	Xr, err := e.InverseTransform(Z)  // N×F reconstruction
//
// Algorithm outline (Fit):
//  1. μ_j   = column mean of X, j = 1..F.
//  2. X̄     = X − broadcast(μ).
//  3. X̄     = U·S·Vᵗ  (thin SVD; S descending).
//  4. R     = first K columns of V   (F×K, orthonormal).
//  5. λ_i   = S_i²/N, i = 1..K.
//  6. Bounds_i = [min, max] of column i of X̄·R over the training data.
//
// Transform is z = (x − μ)·R; InverseTransform is x̃ = z·Rᵗ + μ.  The
// inverse is approximate: the residual x − x̃ is exactly the component of
// x − μ lying in the span of the F−K discarded directions, so K = min(N,F)
// reconstructs exactly and smaller K trades fidelity for compression
// (Eckart–Young: no rank-K linear map does better).
//
// Sign convention: singular vectors are unique only up to sign — v and −v
// both satisfy the decomposition — and ordering among equal singular values
// is implementation-defined.  Callers (and tests) must compare directions
// up to sign.
//
// Errors: every failure is a package sentinel (ErrEmptyMatrix,
// ErrBadComponents, ErrDimensionMismatch, ErrNotFitted, ErrAlreadyFitted,
// ErrNonFinite, ErrSVDFailed, ErrLatentOutOfRange, ErrBadModel), matched
// with errors.Is.  Nothing is silently corrected.
//
// Complexity:
//
//   - Fit:              O(min(N,F)²·max(N,F))  (the SVD dominates)
//   - Transform:        O(M·F·K) for M rows
//   - InverseTransform: O(M·K·F)
//
// See example_test.go for runnable walkthroughs.
package pca
