package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dimred/pca"
)

// newFitCmd builds the `dimred fit` subcommand: CSV in, JSON model out.
func newFitCmd() *cobra.Command {
	var (
		input  string
		output string
		k      int
		header bool
	)

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit a PCA model to a CSV sample matrix and save it",
		Run: func(cmd *cobra.Command, args []string) {
			x, err := readMatrix(input, header)
			if err != nil {
				log.Fatalf("Failed to load samples: %v", err)
			}

			e := pca.New()
			if err = e.Fit(x, k); err != nil {
				log.Fatalf("Failed to fit: %v", err)
			}

			out, err := os.Create(output)
			if err != nil {
				log.Fatalf("Failed to create model file: %v", err)
			}
			defer out.Close()
			if err = e.Save(out); err != nil {
				log.Fatalf("Failed to save model: %v", err)
			}

			n, f := x.Dims()
			ratio, err := e.ExplainedVarianceRatio()
			if err != nil {
				log.Fatalf("Failed to read variance ratio: %v", err)
			}
			captured := 0.0
			for _, r := range ratio {
				captured += r
			}
			log.Printf("Fitted %d samples × %d features → %d components (%.1f%% variance) into %s",
				n, f, k, 100*captured, output)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input CSV sample matrix (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "model.json", "output model file")
	cmd.Flags().IntVarP(&k, "components", "k", 2, "number of principal directions to retain")
	cmd.Flags().BoolVar(&header, "header", false, "skip the first CSV row")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
