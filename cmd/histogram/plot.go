package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/vearutop/binhist-go"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// savePlot draws bin counts as a bar chart, image format is defined by file extension.
func savePlot(hist *binhist.Histogram, file string) error {
	p, err := plot.New()
	if err != nil {
		return errors.Wrap(err, "new plot")
	}

	p.Title.Text = fmt.Sprintf("%d measurements", hist.Total())
	p.Y.Label.Text = "count"

	values := make(plotter.Values, hist.Len())
	labels := make([]string, hist.Len())

	for i, c := range hist.Counts {
		values[i] = float64(c)
		labels[i] = fmt.Sprintf("%.3f", hist.BinMin(i))
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return errors.Wrap(err, "new bar chart")
	}

	bars.Color = plotutil.Color(0)

	p.Add(bars)
	p.NominalX(labels...)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, file); err != nil {
		return errors.Wrapf(err, "save %s", file)
	}

	return nil
}
