// Package view is the interactive front end: one window, one logical
// pixel per host, advancing the scenario a fixed stride of days at a
// steady cadence. Press R to reseed a fresh outbreak, Escape to quit.
package view

import (
	"fmt"
	"math"

	"github.com/crazy3lf/colorconv"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Tientuine/Ghostmap/internal/pathogen"
	"github.com/Tientuine/Ghostmap/internal/sim"
)

// ticksPerStep paces the animation: at ebiten's 60 ticks per second this
// is six stride-advances per second.
const ticksPerStep = 10

// Viewer animates a scenario in a window.
type Viewer struct {
	scn    *sim.Scenario
	stride int
	pixels []byte
	ticks  int
}

// New wraps scn for display, advancing stride days per animation step.
func New(scn *sim.Scenario, stride int) *Viewer {
	m := scn.Map
	return &Viewer{scn: scn, stride: stride, pixels: make([]byte, m.Rows()*m.Cols()*4)}
}

func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.scn.Reset()
		return nil
	}
	v.ticks++
	if v.ticks%ticksPerStep == 0 && !v.scn.Done() {
		v.scn.StepN(v.stride)
	}
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	m := v.scn.Map
	d := m.Disease()
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			r, g, b := hostColor(d, m.At(i, j))
			k := (i*m.Cols() + j) * 4
			v.pixels[k], v.pixels[k+1], v.pixels[k+2], v.pixels[k+3] = r, g, b, 255
		}
	}
	screen.WritePixels(v.pixels)

	c := m.Census()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"%s  day %d\ninfected %d  recovered %d  deceased %d\nfps %0.1f  [R] reseed",
		d.Name(), v.scn.Day(), c.Infected(), c.Recovered, c.Deceased, ebiten.ActualFPS()))
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.scn.Map.Cols(), v.scn.Map.Rows()
}

// hostColor picks the pixel for one host. Infectious hosts slide a hue
// ramp from yellow toward deep red as their countdown falls, and a
// detected (symptomatic) host is drawn at full brightness so the
// symptomatic front stands out.
func hostColor(d *pathogen.Pathogen, h pathogen.Host) (uint8, uint8, uint8) {
	switch {
	case d.IsSusceptible(h):
		return 16, 16, 28
	case d.IsExposed(h):
		return 255, 200, 0
	case d.IsInfectious(h):
		hue := math.Min(50, 5*float64(h.DaysRemaining))
		val := 0.7
		if d.IsDetected(h) {
			val = 1.0
		}
		// hue is clamped to [0, 50] and s, v sit in [0, 1], so HSVToRGB
		// cannot return its out-of-range error here.
		r, g, b, _ := colorconv.HSVToRGB(hue, 1, val)
		return r, g, b
	case d.IsRecovered(h):
		return 0, 150, 60
	default:
		return 90, 90, 90
	}
}

// Run opens the window and blocks until it is closed.
func Run(scn *sim.Scenario, stride, scale int, title string) error {
	ebiten.SetWindowSize(scn.Map.Cols()*scale, scn.Map.Rows()*scale)
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(New(scn, stride))
}
