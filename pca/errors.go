// Package pca: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the pca
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered conditions.
//
// Every message is prefixed with "pca: ..." for consistency and to allow
// easy grepping across logs. Sentinels are returned directly where the
// condition is self-explanatory; where positional context matters (which
// dimension, which coordinate) they are wrapped once with
// fmt.Errorf("ctx: %w", ErrX) — callers still match with errors.Is.

package pca

import "errors"

var (
	// ErrEmptyMatrix indicates a nil input or an input with zero rows or
	// zero columns where at least one sample and one feature are required.
	ErrEmptyMatrix = errors.New("pca: input matrix must have at least one row and one column")

	// ErrBadComponents indicates a requested component count K outside
	// [1, min(N, F)] for the N×F matrix being fitted.
	ErrBadComponents = errors.New("pca: component count must be in [1, min(rows, cols)]")

	// ErrDimensionMismatch indicates input whose width disagrees with the
	// fitted state: feature width ≠ F on Transform, latent width ≠ K on
	// InverseTransform or Decode.
	ErrDimensionMismatch = errors.New("pca: dimension mismatch with fitted state")

	// ErrNotFitted indicates an operation that requires a fitted Engine was
	// called before Fit succeeded.
	ErrNotFitted = errors.New("pca: engine is not fitted")

	// ErrAlreadyFitted indicates a second Fit on an already-fitted Engine.
	// Fitting is a one-shot construction step; build a new Engine instead.
	ErrAlreadyFitted = errors.New("pca: engine is already fitted")

	// ErrNonFinite indicates a NaN or ±Inf entry in the sample matrix.
	// The SVD of non-finite data cannot converge, so ingestion rejects it.
	ErrNonFinite = errors.New("pca: input contains NaN or Inf")

	// ErrSVDFailed indicates the singular value decomposition of the
	// centered data matrix did not converge. Retrying with identical input
	// cannot succeed, so the error is terminal for the call.
	ErrSVDFailed = errors.New("pca: singular value decomposition failed to converge")

	// ErrLatentOutOfRange indicates a latent coordinate outside the
	// empirical bounds recorded at fit time. Opt into clamping with
	// SampleOptions.Clamp; it is never applied silently.
	ErrLatentOutOfRange = errors.New("pca: latent coordinate outside recorded bounds")

	// ErrBadModel indicates a persisted model record whose fields are
	// absent or mutually inconsistent (wrong lengths for the declared
	// dimensions).
	ErrBadModel = errors.New("pca: model record is inconsistent")
)
