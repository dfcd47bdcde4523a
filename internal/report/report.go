// Package report records the per-day statistics of a run: an in-memory
// history of the epidemic curves, a CSV stream of the daily census, and a
// final curve plot.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Tientuine/Ghostmap/internal/hostmap"
)

// History accumulates one census per simulated day, as percentages of the
// population, in the shape the curve renderers consume.
type History struct {
	Days      []float64
	Infected  []float64
	Recovered []float64
	Deceased  []float64
}

// Append records the census for one day. population is the total host
// count used to normalize the curves.
func (h *History) Append(day int, c hostmap.Census, population int) {
	pct := func(n int) float64 { return float64(n) / float64(population) * 100 }
	h.Days = append(h.Days, float64(day))
	h.Infected = append(h.Infected, pct(c.Infected()))
	h.Recovered = append(h.Recovered, pct(c.Recovered))
	h.Deceased = append(h.Deceased, pct(c.Deceased))
}

// Len is the number of recorded days.
func (h *History) Len() int { return len(h.Days) }

var csvHeader = []string{"day", "susceptible", "exposed", "infectious", "infected", "recovered", "deceased"}

// CSV streams one row of census counts per simulated day.
type CSV struct {
	w *csv.Writer
}

// NewCSV writes the header row and returns a writer for the daily rows.
func NewCSV(w io.Writer) (*CSV, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	cw.Flush()
	return &CSV{w: cw}, cw.Error()
}

// Record appends the census for one day and flushes it through.
func (c *CSV) Record(day int, t hostmap.Census) error {
	row := []string{
		strconv.Itoa(day),
		strconv.Itoa(t.Susceptible),
		strconv.Itoa(t.Exposed),
		strconv.Itoa(t.Infectious),
		strconv.Itoa(t.Infected()),
		strconv.Itoa(t.Recovered),
		strconv.Itoa(t.Deceased),
	}
	if err := c.w.Write(row); err != nil {
		return fmt.Errorf("write csv row for day %d: %w", day, err)
	}
	c.w.Flush()
	return c.w.Error()
}
