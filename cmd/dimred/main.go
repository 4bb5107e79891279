// Command dimred is a demonstration caller for the dimred/pca engine:
// it fits PCA models from CSV sample matrices, projects data through a
// saved model, and renders 2-D latent scatter plots. The library contract
// lives in the pca package; this binary is the plotting/UI layer it was
// designed to feed.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "dimred",
		Short: "Fit, apply, and visualize PCA dimensionality-reduction models",
		Long: `dimred fits a linear subspace to a CSV sample matrix (PCA via SVD of
the centered data matrix), persists the fitted model as a flat JSON record,
projects new samples through it, and renders latent-space scatter plots.`,
	}

	root.AddCommand(newFitCmd(), newTransformCmd(), newPlotCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
