package main

import (
	"log"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// newPlotCmd builds the `dimred plot` subcommand: project samples onto the
// first two latent coordinates and render them as a scatter plot.
func newPlotCmd() *cobra.Command {
	var (
		model  string
		input  string
		output string
		title  string
		header bool
	)

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render a 2-D latent scatter plot of projected samples",
		Run: func(cmd *cobra.Command, args []string) {
			e := loadModel(model)
			if _, k := e.Dims(); k < 2 {
				log.Fatalf("Plotting needs a model with at least 2 components, have %d", k)
			}

			x, err := readMatrix(input, header)
			if err != nil {
				log.Fatalf("Failed to load samples: %v", err)
			}
			z, err := e.Transform(x)
			if err != nil {
				log.Fatalf("Failed to project: %v", err)
			}

			n, _ := z.Dims()
			pts := make(plotter.XYs, n)
			for i := 0; i < n; i++ {
				pts[i].X = z.At(i, 0)
				pts[i].Y = z.At(i, 1)
			}

			p := plot.New()
			p.Title.Text = title
			p.X.Label.Text = "latent 1"
			p.Y.Label.Text = "latent 2"
			p.Add(plotter.NewGrid())

			scatter, err := plotter.NewScatter(pts)
			if err != nil {
				log.Fatalf("Failed to build scatter: %v", err)
			}
			scatter.GlyphStyle.Radius = vg.Points(2)
			p.Add(scatter)

			if err = p.Save(6*vg.Inch, 6*vg.Inch, output); err != nil {
				log.Fatalf("Failed to save plot: %v", err)
			}
			log.Printf("Rendered %d points to %s", n, output)
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "model.json", "fitted model file")
	cmd.Flags().StringVarP(&input, "input", "i", "", "input CSV sample matrix (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "scatter.png", "output image (extension picks the format)")
	cmd.Flags().StringVar(&title, "title", "Latent scatter", "plot title")
	cmd.Flags().BoolVar(&header, "header", false, "skip the first CSV row")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
