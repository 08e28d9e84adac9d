package utils

import (
	"image/color"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var populationLineColor = color.RGBA{R: 0xff, G: 0x63, B: 0x47, A: 0xff}

// SavePopulationPlot writes the population history as an image.
// The format follows the file extension (png, svg, pdf, ...).
func SavePopulationPlot(stats *Stats, path string) error {
	if len(stats.History) == 0 {
		return errors.Errorf("[SavePopulationPlot] no samples to plot")
	}

	p := plot.New()
	p.Title.Text = "Population"
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Living cells"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, 0, len(stats.History))
	for _, s := range stats.History {
		pts = append(pts, plotter.XY{X: float64(s.Generation), Y: float64(s.Population)})
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return errors.Wrap(err, "[SavePopulationPlot] failed to build line")
	}
	line.Color = populationLineColor
	line.Width = vg.Points(1)
	p.Add(line)

	if dir := filepath.Dir(path); dir != "" {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "[SavePopulationPlot] failed to create %s", dir)
		}
	}
	if err = p.Save(10*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "[SavePopulationPlot] failed to save %s", path)
	}
	return nil
}
