package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// SaveCurves writes the epidemic curves of a finished run to path; the
// format follows the file extension (png, svg, pdf, ...).
func SaveCurves(path, title string, h *History) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "day"
	p.Y.Label.Text = "% of population"

	toXYs := func(ys []float64) plotter.XYs {
		pts := make(plotter.XYs, len(h.Days))
		for i := range pts {
			pts[i].X = h.Days[i]
			pts[i].Y = ys[i]
		}
		return pts
	}
	err := plotutil.AddLinePoints(p,
		"Infected", toXYs(h.Infected),
		"Recovered", toXYs(h.Recovered),
		"Deceased", toXYs(h.Deceased),
	)
	if err != nil {
		return fmt.Errorf("add epidemic curves: %w", err)
	}

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot %s: %w", path, err)
	}
	return nil
}
