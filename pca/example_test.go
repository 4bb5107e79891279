package pca_test

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/dimred/pca"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleEngine_Fit
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Three samples of two perfectly correlated features — every point lies
//	on the line y = x.  One retained direction therefore captures all the
//	variance, and the reconstruction of an on-line point is exact.
//
// Note: the projection's sign is arbitrary (the direction and its negation
// both span the subspace), so the example prints |z| rather than z.
//
// Use case:
//
//	Compressing redundant measurements to their shared underlying signal.
func ExampleEngine_Fit() {
	x := mat.NewDense(3, 2, []float64{
		0, 0,
		1, 1,
		2, 2,
	})

	e := pca.New()
	if err := e.Fit(x, 1); err != nil {
		fmt.Println("error:", err)

		return
	}

	mu, _ := e.Mean()
	z, _ := e.TransformVector([]float64{2, 2})
	rec, _ := e.InverseTransformVector(z)

	fmt.Printf("mean=%v\n", mu)
	fmt.Printf("|z|=%.4f\n", math.Abs(z[0]))
	fmt.Printf("reconstruction=[%.4f %.4f]\n", rec[0], rec[1])
	// Output:
	// mean=[1 1]
	// |z|=1.4142
	// reconstruction=[2.0000 2.0000]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleEngine_Decode
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Latent-space exploration: decode the center of the latent range.  The
//	zero latent vector always maps back to the data mean, whatever sign
//	the fitted direction carries.
func ExampleEngine_Decode() {
	x := mat.NewDense(3, 2, []float64{
		0, 0,
		1, 1,
		2, 2,
	})

	e := pca.New()
	if err := e.Fit(x, 1); err != nil {
		fmt.Println("error:", err)

		return
	}

	center, err := e.Decode([]float64{0}, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("decoded=[%.0f %.0f]\n", center[0], center[1])

	bounds, _ := e.LatentBounds()
	fmt.Printf("bound=[%.4f %.4f]\n", bounds[0].Min, bounds[0].Max)
	// Output:
	// decoded=[1 1]
	// bound=[-1.4142 1.4142]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleEngine_ExplainedVariance
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Choosing K by looking at the variance spectrum: a feature with no
//	variance contributes a zero eigenvalue, so one direction suffices.
func ExampleEngine_ExplainedVariance() {
	x := mat.NewDense(3, 2, []float64{
		0, 5,
		1, 5,
		2, 5,
	})

	e := pca.New()
	if err := e.Fit(x, 2); err != nil {
		fmt.Println("error:", err)

		return
	}

	lambda, _ := e.ExplainedVariance()
	fmt.Printf("λ1=%.4f λ2=%.4f\n", lambda[0], lambda[1])
	// Output:
	// λ1=0.6667 λ2=0.0000
}
