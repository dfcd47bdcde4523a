package main

import (
	"crypto/rand"
	"encoding/binary"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/Tientuine/Ghostmap/internal/pathogen"
)

// config collects everything a run needs. Values come from GHOSTMAP_*
// environment variables first, then command-line flags on top, so a
// flag always wins over the environment.
type config struct {
	Rows   int    `env:"GHOSTMAP_ROWS" envDefault:"100"`
	Cols   int    `env:"GHOSTMAP_COLS" envDefault:"100"`
	Steps  int    `env:"GHOSTMAP_STEPS" envDefault:"1000"`
	Seeds  int    `env:"GHOSTMAP_SEEDS" envDefault:"1"`
	Stride int    `env:"GHOSTMAP_STRIDE" envDefault:"1"`
	Seed   uint64 `env:"GHOSTMAP_SEED" envDefault:"0"`

	Transmission  float64 `env:"GHOSTMAP_TRANSMISSION" envDefault:"0.01"`
	Mortality     float64 `env:"GHOSTMAP_MORTALITY" envDefault:"0.5"`
	MinIncubation int     `env:"GHOSTMAP_MIN_INCUBATION" envDefault:"2"`
	AvgIncubation int     `env:"GHOSTMAP_AVG_INCUBATION" envDefault:"9"`
	MinInfection  int     `env:"GHOSTMAP_MIN_INFECTION" envDefault:"7"`
	AvgInfection  int     `env:"GHOSTMAP_AVG_INFECTION" envDefault:"9"`
	Contacts      int     `env:"GHOSTMAP_CONTACTS" envDefault:"17"`
	Quarantine    int     `env:"GHOSTMAP_QUARANTINE" envDefault:"0"`

	CSVPath   string `env:"GHOSTMAP_CSV"`
	VideoPath string `env:"GHOSTMAP_VIDEO"`
	PlotPath  string `env:"GHOSTMAP_PLOT"`
	CellSize  int    `env:"GHOSTMAP_CELL_SIZE" envDefault:"4"`
	FPS       int    `env:"GHOSTMAP_FPS" envDefault:"10"`

	View  bool `env:"GHOSTMAP_VIEW"`
	Scale int  `env:"GHOSTMAP_SCALE" envDefault:"4"`
	Quiet bool `env:"GHOSTMAP_QUIET"`
}

// disease assembles the pathogen parameters from the config.
func (c config) disease() pathogen.Params {
	return pathogen.Params{
		Name:          "Ebola",
		Transmission:  c.Transmission,
		Mortality:     c.Mortality,
		MinIncubation: c.MinIncubation,
		AvgIncubation: c.AvgIncubation,
		MinInfection:  c.MinInfection,
		AvgInfection:  c.AvgInfection,
		AvgContacts:   c.Contacts,
		Quarantine:    c.Quarantine,
	}
}

func loadConfig(args []string) (config, error) {
	var c config
	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("parse environment: %w", err)
	}

	fs := flag.NewFlagSet("ghostmap", flag.ContinueOnError)
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.Steps, "steps", c.Steps, "maximum days to simulate")
	fs.IntVar(&c.Seeds, "seeds", c.Seeds, "initial infections")
	fs.IntVar(&c.Stride, "stride", c.Stride, "days advanced per viewer frame")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "RNG seed (0 picks one at random)")

	fs.Float64Var(&c.Transmission, "transmission", c.Transmission, "per-contact transmission probability")
	fs.Float64Var(&c.Mortality, "mortality", c.Mortality, "case fatality probability")
	fs.IntVar(&c.MinIncubation, "min-incubation", c.MinIncubation, "minimum incubation days")
	fs.IntVar(&c.AvgIncubation, "avg-incubation", c.AvgIncubation, "average incubation days")
	fs.IntVar(&c.MinInfection, "min-infection", c.MinInfection, "minimum infectious days")
	fs.IntVar(&c.AvgInfection, "avg-infection", c.AvgInfection, "average infectious days")
	fs.IntVar(&c.Contacts, "contacts", c.Contacts, "average daily contacts")
	fs.IntVar(&c.Quarantine, "quarantine", c.Quarantine, "quarantine days")

	fs.StringVar(&c.CSVPath, "csv", c.CSVPath, "write per-day census to this CSV file")
	fs.StringVar(&c.VideoPath, "video", c.VideoPath, "record the run to this AVI file")
	fs.StringVar(&c.PlotPath, "plot", c.PlotPath, "save the final epidemic curves to this PNG")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "video pixels per host")
	fs.IntVar(&c.FPS, "fps", c.FPS, "video frames per second")

	fs.BoolVar(&c.View, "view", c.View, "open the interactive viewer")
	fs.IntVar(&c.Scale, "scale", c.Scale, "viewer window pixels per host")
	fs.BoolVar(&c.Quiet, "quiet", c.Quiet, "suppress the final map printout")

	if err := fs.Parse(args); err != nil {
		return c, err
	}

	if c.Rows < 1 || c.Cols < 1 {
		return c, fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	}
	if c.Stride < 1 {
		return c, fmt.Errorf("stride must be positive, got %d", c.Stride)
	}
	return c, nil
}

// rngSeed returns the configured seed, or a fresh one from the OS
// entropy pool when none was given.
func (c config) rngSeed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(fmt.Sprintf("read random seed: %v", err))
	}
	return binary.LittleEndian.Uint64(b[:])
}
