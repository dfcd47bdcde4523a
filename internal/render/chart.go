package render

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/png" // decode the chart's PNG render

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Tientuine/Ghostmap/internal/report"
)

// CurveStrip renders the infected/recovered/deceased history as a line
// chart of exactly width x height pixels, with fixed axis ranges so the
// curves grow rightward frame over frame instead of rescaling. With
// fewer than two recorded days it returns a blank strip, since a line
// needs two points.
func CurveStrip(width, height int, h *report.History, maxDay float64) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if h.Len() < 2 {
		return img, nil
	}

	graph := chart.Chart{
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Style: chart.Style{FontSize: 7.0},
			Range: &chart.ContinuousRange{Min: 0, Max: maxDay},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Style: chart.Style{FontSize: 7.0},
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Infected",
				XValues: h.Days,
				YValues: h.Infected,
				Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "Recovered",
				XValues: h.Days,
				YValues: h.Recovered,
				Style:   chart.Style{StrokeColor: chart.ColorGreen, StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "Deceased",
				XValues: h.Days,
				YValues: h.Deceased,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 90, G: 90, B: 90, A: 255}, StrokeWidth: 2.0},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render curve strip: %w", err)
	}
	decoded, _, err := image.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode curve strip: %w", err)
	}
	draw.Draw(img, img.Bounds(), decoded, image.Point{}, draw.Src)
	return img, nil
}
