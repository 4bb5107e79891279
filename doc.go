// Package dimred is a compact toolkit for linear dimensionality reduction —
// fit a subspace to your data, project into it, reconstruct out of it, and
// explore it as a generative latent space.
//
// 🚀 What is dimred?
//
//	A small, focused library built around one engine:
//		• PCA via SVD of the centered data matrix (never the covariance)
//		• Forward projection (encode) and approximate reconstruction (decode)
//		• Explained-variance spectrum, ordered and ready to plot
//		• Generative latent sampling with empirical per-coordinate bounds
//		• Save/Load of fitted models as a flat tagged record
//
// ✨ Why choose dimred?
//
//   - Beginner-friendly – one engine, four verbs: Fit, Transform,
//     InverseTransform, Decode
//   - Rock-solid guarantees – immutable-after-fit state, sentinel errors,
//     no silent clamping or guessed dimensions
//   - Numerically honest – SVD of the data matrix directly, so the condition
//     number is never squared by an explicit covariance
//
// Everything lives under one subpackage:
//
//	pca/ — the dimensionality-reduction engine (fit / encode / decode /
//	       explained variance / latent sampling / persistence)
//
// plus a demonstration CLI:
//
//	cmd/dimred — fit models from CSV, project data, render latent scatter
//	             plots (the "plotting layer" the library is designed to feed)
//
// Quick ASCII picture:
//
//	samples (N×F) ──Fit──▶ μ, R, λ ──Transform──▶ latent (N×K)
//	                         │
//	latent (K) ──InverseTransform──▶ reconstruction (F) ≈ sample
//
// Dive into pca/doc.go for the math outline and worked examples.
//
//	go get github.com/katalvlaran/dimred/pca
package dimred
