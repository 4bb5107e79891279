package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/dimred/pca"
)

// loadModel restores a fitted engine from a JSON model file.
func loadModel(path string) *pca.Engine {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("Failed to open model: %v", err)
	}
	defer f.Close()

	e, err := pca.Load(f)
	if err != nil {
		log.Fatalf("Failed to load model: %v", err)
	}

	return e
}

// newTransformCmd builds the `dimred transform` subcommand: project a CSV
// sample matrix through a saved model, or reconstruct latent CSV back to
// feature space with --inverse.
func newTransformCmd() *cobra.Command {
	var (
		model   string
		input   string
		output  string
		header  bool
		inverse bool
	)

	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Project samples into (or out of) a fitted subspace",
		Run: func(cmd *cobra.Command, args []string) {
			e := loadModel(model)
			x, err := readMatrix(input, header)
			if err != nil {
				log.Fatalf("Failed to load input: %v", err)
			}

			var result *mat.Dense
			if inverse {
				result, err = e.InverseTransform(x)
			} else {
				result, err = e.Transform(x)
			}
			if err != nil {
				log.Fatalf("Failed to transform: %v", err)
			}

			if err = writeMatrix(output, result); err != nil {
				log.Fatalf("Failed to write output: %v", err)
			}

			rows, cols := result.Dims()
			log.Printf("Wrote %d×%d matrix to %s", rows, cols, output)
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "model.json", "fitted model file")
	cmd.Flags().StringVarP(&input, "input", "i", "", "input CSV matrix (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "out.csv", "output CSV matrix")
	cmd.Flags().BoolVar(&header, "header", false, "skip the first CSV row")
	cmd.Flags().BoolVar(&inverse, "inverse", false, "reconstruct latent rows back to feature space")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
