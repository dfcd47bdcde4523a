// Package sim ties a host map to the budgets of a single simulation run.
package sim

import "github.com/Tientuine/Ghostmap/internal/hostmap"

// Scenario owns the moving parts of one run: the map, the step budget,
// and the number of initial infections. All stepping and querying goes
// through it; there is no ambient state.
type Scenario struct {
	Map    *hostmap.Map
	Budget int // maximum days to simulate
	Seeds  int // infections planted by Start and Reset

	day int
}

// New wraps a map with a step budget and a seed count.
func New(m *hostmap.Map, budget, seeds int) *Scenario {
	return &Scenario{Map: m, Budget: budget, Seeds: seeds}
}

// Day is the number of days simulated so far.
func (s *Scenario) Day() int { return s.day }

// Start plants the initial infections. Call once before stepping.
func (s *Scenario) Start() { s.Map.SeedDisease(s.Seeds) }

// Done reports whether the outbreak died out or the budget ran dry.
func (s *Scenario) Done() bool {
	return s.day >= s.Budget || s.Map.CountInfected() == 0
}

// Step advances the simulation by one day.
func (s *Scenario) Step() {
	s.Map.ComputeNext()
	s.day++
}

// StepN advances up to n days, stopping early once Done.
func (s *Scenario) StepN(n int) {
	for i := 0; i < n && !s.Done(); i++ {
		s.Step()
	}
}

// Run steps until Done, calling each (if non-nil) after every day, and
// returns the number of days simulated.
func (s *Scenario) Run(each func(day int)) int {
	for !s.Done() {
		s.Step()
		if each != nil {
			each(s.day)
		}
	}
	return s.day
}

// Reset wipes the map, reseeds a fresh outbreak, and rewinds the clock.
func (s *Scenario) Reset() {
	s.Map.Reset()
	s.Map.SeedDisease(s.Seeds)
	s.day = 0
}
