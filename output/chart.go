package output

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"compound-interest/domain"
)

// DefaultChartFile is written to the working directory.
const DefaultChartFile = "plot.png"

const (
	chartWidth  = 600
	chartHeight = 400
)

var (
	contributionColor = color.RGBA{R: 255, A: 255}
	totalColor        = color.RGBA{B: 255, A: 255}
)

// RenderChart draws the principal plus contributions and the total amount
// against the year and saves the image to path. The format follows the
// file extension.
func RenderChart(summary []domain.YearlySnapshot, path string) error {
	if len(summary) == 0 {
		return fmt.Errorf("%w: no yearly data to plot", domain.ErrRendering)
	}

	contributed := make([]float64, len(summary))
	for i, s := range summary {
		contributed[i] = s.AnnualContribution
	}
	floats.CumSum(contributed, contributed)
	floats.AddConst(summary[0].Principal, contributed)

	invested := make(plotter.XYs, len(summary))
	total := make(plotter.XYs, len(summary))
	for i, s := range summary {
		invested[i] = plotter.XY{X: float64(s.Year), Y: contributed[i]}
		total[i] = plotter.XY{X: float64(s.Year), Y: s.TotalAmount}
	}

	p := plot.New()
	p.Title.Text = "Investment Summary"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Amount"
	p.Y.Min = 0
	p.Legend.Top = true
	p.Legend.Left = true

	if err := addLine(p, "Principal + Contribution", invested, contributionColor); err != nil {
		return err
	}
	if err := addLine(p, "Total Amount", total, totalColor); err != nil {
		return err
	}

	if err := p.Save(vg.Points(chartWidth), vg.Points(chartHeight), path); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRendering, err)
	}
	return nil
}

func addLine(p *plot.Plot, label string, xys plotter.XYs, c color.Color) error {
	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrRendering, label, err)
	}
	line.Color = c
	line.Width = vg.Points(2)

	p.Add(line)
	p.Legend.Add(label, line)
	return nil
}
