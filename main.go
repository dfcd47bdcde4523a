// Ghostmap simulates an epidemic spreading over a toroidal grid of
// hosts, one day per step, and reports how the outbreak played out. It
// can run headless at full speed, record a video and CSV of the run,
// or open an interactive viewer.
package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/Tientuine/Ghostmap/internal/hostmap"
	"github.com/Tientuine/Ghostmap/internal/pathogen"
	"github.com/Tientuine/Ghostmap/internal/render"
	"github.com/Tientuine/Ghostmap/internal/report"
	"github.com/Tientuine/Ghostmap/internal/sim"
	"github.com/Tientuine/Ghostmap/internal/view"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ghostmap: ")

	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config) error {
	seed := cfg.rngSeed()
	src := rand.NewPCG(seed, seed)

	disease := pathogen.New(cfg.disease(), src)
	m := hostmap.New(disease, cfg.Rows, cfg.Cols, src)
	scn := sim.New(m, cfg.Steps, cfg.Seeds)
	scn.Start()

	if cfg.View {
		title := fmt.Sprintf("ghostmap - %s (seed %d)", disease.Name(), seed)
		return view.Run(scn, cfg.Stride, cfg.Scale, title)
	}

	var hist report.History
	population := cfg.Rows * cfg.Cols

	var csvOut *report.CSV
	if cfg.CSVPath != "" {
		f, err := os.Create(cfg.CSVPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", cfg.CSVPath, err)
		}
		defer f.Close()
		csvOut, err = report.NewCSV(f)
		if err != nil {
			return err
		}
	}

	var rec *render.Recorder
	if cfg.VideoPath != "" {
		w := cfg.Cols * cfg.CellSize
		h := cfg.Rows*cfg.CellSize + render.CurveStripHeight
		var err error
		rec, err = render.NewRecorder(cfg.VideoPath, w, h, cfg.FPS)
		if err != nil {
			return err
		}
		defer rec.Close()
	}

	record := func(day int) error {
		c := m.Census()
		hist.Append(day, c, population)
		if csvOut != nil {
			if err := csvOut.Record(day, c); err != nil {
				return err
			}
		}
		if rec != nil {
			frame, err := render.DayFrame(m, cfg.CellSize, day, &hist, float64(cfg.Steps))
			if err != nil {
				return err
			}
			if err := rec.AddFrame(frame); err != nil {
				return err
			}
		}
		return nil
	}

	if csvOut != nil || rec != nil || cfg.PlotPath != "" {
		if err := record(0); err != nil {
			return err
		}
		for !scn.Done() {
			scn.Step()
			if err := record(scn.Day()); err != nil {
				return err
			}
		}
	} else {
		scn.Run(nil)
	}

	if !cfg.Quiet {
		fmt.Print(m)
	}
	c := m.Census()
	fmt.Printf("After %d days of the %s outbreak (seed %d):\n", scn.Day(), disease.Name(), seed)
	fmt.Printf("%d died, %d recovered, %d still infected.\n", c.Deceased, c.Recovered, c.Infected())

	if cfg.PlotPath != "" {
		title := fmt.Sprintf("%s outbreak on a %dx%d grid", disease.Name(), cfg.Rows, cfg.Cols)
		if err := report.SaveCurves(cfg.PlotPath, title, &hist); err != nil {
			return err
		}
	}
	return nil
}
