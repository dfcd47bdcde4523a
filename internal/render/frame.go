// Package render turns grid states into images: one frame per simulated
// day, a running curve strip composited above the grid, and a motion-JPEG
// video stitched from the frames.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Tientuine/Ghostmap/internal/hostmap"
	"github.com/Tientuine/Ghostmap/internal/pathogen"
	"github.com/Tientuine/Ghostmap/internal/report"
)

// CurveStripHeight is the fixed height of the chart band above the grid.
const CurveStripHeight = 100

// Cell colors, one per externally observable compartment.
var (
	colorSusceptible = color.RGBA{0, 0, 0, 255}
	colorExposed     = color.RGBA{255, 200, 0, 255}
	colorInfectious  = color.RGBA{255, 0, 0, 255}
	colorRecovered   = color.RGBA{0, 160, 0, 255}
	colorDeceased    = color.RGBA{120, 120, 120, 255}
)

func stateColor(h pathogen.Host) color.RGBA {
	switch h.State {
	case pathogen.Exposed:
		return colorExposed
	case pathogen.Infectious:
		return colorInfectious
	case pathogen.Recovered:
		return colorRecovered
	case pathogen.Deceased:
		return colorDeceased
	default:
		return colorSusceptible
	}
}

// Frame draws the map as filled squares, cell pixels per host.
func Frame(m *hostmap.Map, cell int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Cols()*cell, m.Rows()*cell))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			rect := image.Rect(j*cell, i*cell, (j+1)*cell, (i+1)*cell)
			draw.Draw(img, rect, image.NewUniform(stateColor(m.At(i, j))), image.Point{}, draw.Src)
		}
	}
	return img
}

// addLabel draws a text label onto an image at the given baseline.
func addLabel(img *image.RGBA, x, y int, label string, col color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(label)
}

// Legend stamps the compartment color key with (x, y) as the first
// baseline.
func Legend(img *image.RGBA, x, y int) {
	entries := []struct {
		label string
		col   color.RGBA
	}{
		{"susceptible", colorSusceptible},
		{"exposed", colorExposed},
		{"infectious", colorInfectious},
		{"recovered", colorRecovered},
		{"deceased", colorDeceased},
	}
	for n, e := range entries {
		base := y + n*14
		swatch := image.Rect(x, base-9, x+10, base+1)
		draw.Draw(img, swatch, image.NewUniform(e.col), image.Point{}, draw.Src)
		addLabel(img, x+14, base, e.label, color.White)
	}
}

// Annotate stamps the day number and census totals along the bottom edge.
func Annotate(img *image.RGBA, day int, c hostmap.Census) {
	text := fmt.Sprintf("day %d  infected %d  recovered %d  deceased %d",
		day, c.Infected(), c.Recovered, c.Deceased)
	addLabel(img, 4, img.Bounds().Dy()-6, text, color.White)
}

// DayFrame composes one video frame: the curve strip for the history so
// far on top, the day's grid below, plus legend and census annotation.
func DayFrame(m *hostmap.Map, cell, day int, h *report.History, maxDay float64) (*image.RGBA, error) {
	grid := Frame(m, cell)
	w := grid.Bounds().Dx()

	strip, err := CurveStrip(w, CurveStripHeight, h, maxDay)
	if err != nil {
		return nil, err
	}

	out := image.NewRGBA(image.Rect(0, 0, w, CurveStripHeight+grid.Bounds().Dy()))
	draw.Draw(out, image.Rect(0, 0, w, CurveStripHeight), strip, image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(0, CurveStripHeight, w, out.Bounds().Dy()), grid, image.Point{}, draw.Src)
	Legend(out, 4, CurveStripHeight+14)
	Annotate(out, day, m.Census())
	return out, nil
}
