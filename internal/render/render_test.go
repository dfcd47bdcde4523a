package render

import (
	"image"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/Tientuine/Ghostmap/internal/hostmap"
	"github.com/Tientuine/Ghostmap/internal/pathogen"
	"github.com/Tientuine/Ghostmap/internal/report"
)

func newTestMap(t *testing.T, rows, cols int) *hostmap.Map {
	t.Helper()
	src := rand.NewPCG(5, 5)
	return hostmap.New(pathogen.New(pathogen.Ebola, src), rows, cols, src)
}

func TestStateColors(t *testing.T) {
	tests := []struct {
		state pathogen.State
		want  [3]uint8
	}{
		{pathogen.Susceptible, [3]uint8{0, 0, 0}},
		{pathogen.Exposed, [3]uint8{255, 200, 0}},
		{pathogen.Infectious, [3]uint8{255, 0, 0}},
		{pathogen.Recovered, [3]uint8{0, 160, 0}},
		{pathogen.Deceased, [3]uint8{120, 120, 120}},
	}
	for _, tt := range tests {
		c := stateColor(pathogen.Host{State: tt.state})
		if got := [3]uint8{c.R, c.G, c.B}; got != tt.want {
			t.Errorf("stateColor(%v) = %v, want %v", tt.state, got, tt.want)
		}
	}
}

func TestFrameGeometry(t *testing.T) {
	m := newTestMap(t, 3, 4)
	img := Frame(m, 5)
	if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != 20 || h != 15 {
		t.Fatalf("frame is %dx%d, want 20x15", w, h)
	}
	// All-susceptible map renders solid background.
	if got := img.RGBAAt(7, 7); got != colorSusceptible {
		t.Errorf("pixel (7,7) = %v, want %v", got, colorSusceptible)
	}
}

func TestFrameMarksSeededHost(t *testing.T) {
	m := newTestMap(t, 6, 6)
	m.SeedDisease(1)

	const cell = 4
	img := Frame(m, cell)
	found := false
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if m.Disease().IsExposed(m.At(i, j)) {
				found = true
				if got := img.RGBAAt(j*cell+1, i*cell+1); got != colorExposed {
					t.Errorf("seeded cell (%d,%d) pixel = %v, want %v", i, j, got, colorExposed)
				}
			}
		}
	}
	if !found {
		t.Fatal("SeedDisease(1) exposed no host")
	}
}

func TestCurveStripShortHistory(t *testing.T) {
	var h report.History
	img, err := CurveStrip(120, 40, &h, 10)
	if err != nil {
		t.Fatalf("CurveStrip with empty history: %v", err)
	}
	if w, hh := img.Bounds().Dx(), img.Bounds().Dy(); w != 120 || hh != 40 {
		t.Errorf("blank strip is %dx%d, want 120x40", w, hh)
	}
}

func TestDayFrameComposite(t *testing.T) {
	m := newTestMap(t, 10, 10)
	m.SeedDisease(3)

	var h report.History
	h.Append(0, m.Census(), 100)
	m.ComputeNext()
	h.Append(1, m.Census(), 100)
	m.ComputeNext()
	h.Append(2, m.Census(), 100)

	const cell = 6
	img, err := DayFrame(m, cell, 2, &h, 20)
	if err != nil {
		t.Fatalf("DayFrame: %v", err)
	}
	wantW, wantH := 10*cell, 10*cell+CurveStripHeight
	if w, hh := img.Bounds().Dx(), img.Bounds().Dy(); w != wantW || hh != wantH {
		t.Errorf("composite is %dx%d, want %dx%d", w, hh, wantW, wantH)
	}
}

func TestRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.avi")
	rec, err := NewRecorder(path, 64, 48, 5)
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	frame := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for i := 0; i < 3; i++ {
		if err := rec.AddFrame(frame); err != nil {
			t.Fatalf("AddFrame %d: %v", i, err)
		}
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat video: %v", err)
	}
	if info.Size() == 0 {
		t.Error("video file is empty")
	}
}
