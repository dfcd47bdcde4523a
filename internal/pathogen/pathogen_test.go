package pathogen

import (
	"math/rand/v2"
	"testing"
)

// fixedParams pins every duration sampler: avg == min makes the geometric
// excess zero, so countdowns are exact.
func fixedParams() Params {
	return Params{
		Name:          "test",
		Transmission:  1,
		Mortality:     0,
		MinIncubation: 2,
		AvgIncubation: 2,
		MinInfection:  3,
		AvgInfection:  3,
		AvgContacts:   8,
	}
}

func newTestPathogen(t *testing.T, p Params) *Pathogen {
	t.Helper()
	return New(p, rand.NewPCG(1, 2))
}

func TestClassificationPredicates(t *testing.T) {
	d := newTestPathogen(t, Ebola)
	tests := []struct {
		name string
		host Host
		want [5]bool // susceptible, exposed, infectious, recovered, deceased
	}{
		{"susceptible", Host{State: Susceptible}, [5]bool{true, false, false, false, false}},
		{"exposed", Host{State: Exposed, DaysRemaining: 4}, [5]bool{false, true, false, false, false}},
		{"infectious", Host{State: Infectious, DaysRemaining: 8}, [5]bool{false, false, true, false, false}},
		{"recovered", Host{State: Recovered}, [5]bool{false, false, false, true, false}},
		{"deceased", Host{State: Deceased}, [5]bool{false, false, false, false, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := [5]bool{
				d.IsSusceptible(tt.host),
				d.IsExposed(tt.host),
				d.IsInfectious(tt.host),
				d.IsRecovered(tt.host),
				d.IsDeceased(tt.host),
			}
			if got != tt.want {
				t.Errorf("predicates(%v) = %v, want %v", tt.host, got, tt.want)
			}
		})
	}
}

func TestInfectStartsIncubation(t *testing.T) {
	d := newTestPathogen(t, fixedParams())
	var h Host
	d.Infect(&h)
	if !d.IsExposed(h) {
		t.Fatalf("after Infect, state = %v, want exposed", h.State)
	}
	if h.DaysRemaining != 2 {
		t.Errorf("after Infect, DaysRemaining = %d, want 2", h.DaysRemaining)
	}
}

func TestInfectReArmsCountdown(t *testing.T) {
	d := newTestPathogen(t, fixedParams())
	var h Host
	d.Infect(&h)
	d.Worsen(&h) // countdown 2 -> 1
	d.Infect(&h)
	if h.DaysRemaining != 2 {
		t.Errorf("re-infecting an exposed host left DaysRemaining = %d, want 2", h.DaysRemaining)
	}
}

func TestExposeTransmissionDraw(t *testing.T) {
	t.Run("certain", func(t *testing.T) {
		p := fixedParams()
		p.Transmission = 1
		d := newTestPathogen(t, p)
		var h Host
		d.Expose(&h)
		if !d.IsExposed(h) {
			t.Errorf("transmission 1: host not exposed, state = %v", h.State)
		}
	})
	t.Run("never", func(t *testing.T) {
		p := fixedParams()
		p.Transmission = 0
		d := newTestPathogen(t, p)
		var h Host
		for i := 0; i < 100; i++ {
			d.Expose(&h)
		}
		if !d.IsSusceptible(h) {
			t.Errorf("transmission 0: host left susceptibility, state = %v", h.State)
		}
	})
}

func TestWorsenProgression(t *testing.T) {
	d := newTestPathogen(t, fixedParams())
	var h Host
	d.Infect(&h)

	d.Worsen(&h)
	if !d.IsExposed(h) || h.DaysRemaining != 1 {
		t.Fatalf("day 1: host = %+v, want exposed with 1 day left", h)
	}

	d.Worsen(&h)
	if !d.IsInfectious(h) {
		t.Fatalf("day 2: state = %v, want infectious", h.State)
	}
	if h.DaysRemaining != 3 {
		t.Fatalf("day 2: DaysRemaining = %d, want fresh infection countdown 3", h.DaysRemaining)
	}

	d.Worsen(&h)
	d.Worsen(&h)
	if !d.IsInfectious(h) || h.DaysRemaining != 1 {
		t.Fatalf("day 4: host = %+v, want infectious with 1 day left", h)
	}

	d.Worsen(&h)
	if !d.IsRecovered(h) {
		t.Errorf("day 5: state = %v, want recovered (mortality 0)", h.State)
	}
}

func TestWorsenResolvesInOneCall(t *testing.T) {
	// The transient compartment between Infectious and Recovered/Deceased
	// must never survive a Worsen call.
	p := fixedParams()
	p.Mortality = 1
	d := newTestPathogen(t, p)
	h := Host{State: Infectious, DaysRemaining: 1}
	d.Worsen(&h)
	if !d.IsDeceased(h) {
		t.Errorf("after final Worsen, state = %v, want deceased (mortality 1)", h.State)
	}
}

func TestExpire(t *testing.T) {
	t.Run("mortality 1", func(t *testing.T) {
		p := fixedParams()
		p.Mortality = 1
		d := newTestPathogen(t, p)
		h := Host{State: Infectious}
		d.Expire(&h)
		if !d.IsDeceased(h) {
			t.Errorf("state = %v, want deceased", h.State)
		}
	})
	t.Run("mortality 0", func(t *testing.T) {
		d := newTestPathogen(t, fixedParams())
		h := Host{State: Infectious}
		d.Expire(&h)
		if !d.IsRecovered(h) {
			t.Errorf("state = %v, want recovered", h.State)
		}
	})
}

func TestIsDetected(t *testing.T) {
	d := newTestPathogen(t, Ebola) // minimum infection duration 7
	tests := []struct {
		name string
		host Host
		want bool
	}{
		{"early infection", Host{State: Infectious, DaysRemaining: 8}, false},
		{"at minimum", Host{State: Infectious, DaysRemaining: 7}, false},
		{"symptomatic", Host{State: Infectious, DaysRemaining: 6}, true},
		{"last day", Host{State: Infectious, DaysRemaining: 1}, true},
		{"incubating", Host{State: Exposed, DaysRemaining: 1}, false},
		{"recovered", Host{State: Recovered}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.IsDetected(tt.host); got != tt.want {
				t.Errorf("IsDetected(%+v) = %v, want %v", tt.host, got, tt.want)
			}
		})
	}
}

func TestDurationFloors(t *testing.T) {
	d := newTestPathogen(t, Ebola)
	for i := 0; i < 1000; i++ {
		if got := d.IncubationPeriod(); got < 2 {
			t.Fatalf("IncubationPeriod() = %d, below minimum 2", got)
		}
		if got := d.InfectionPeriod(); got < 7 {
			t.Fatalf("InfectionPeriod() = %d, below minimum 7", got)
		}
		if got := d.NumContacts(); got < 1 {
			t.Fatalf("NumContacts() = %d, below floor 1", got)
		}
	}
}

func TestSamplerMeans(t *testing.T) {
	d := newTestPathogen(t, Ebola)
	const n = 20000
	var sumE, sumT float64
	for i := 0; i < n; i++ {
		sumE += float64(d.IncubationPeriod())
		sumT += float64(d.NumContacts())
	}
	// Configured averages: incubation 9, contacts 17 (floor shifts the
	// Poisson mean up by one).
	if mean := sumE / n; mean < 8.5 || mean > 9.5 {
		t.Errorf("incubation mean = %.2f, want about 9", mean)
	}
	if mean := sumT / n; mean < 17.3 || mean > 18.7 {
		t.Errorf("contacts mean = %.2f, want about 18", mean)
	}
}

func TestSharedSourceReplay(t *testing.T) {
	// Every sampler, the distuv ones included, must draw from the injected
	// source: two policies over equal-seeded sources replay identically.
	a := New(Ebola, rand.NewPCG(9, 9))
	b := New(Ebola, rand.NewPCG(9, 9))
	for i := 0; i < 500; i++ {
		if ga, gb := a.WillCatch(), b.WillCatch(); ga != gb {
			t.Fatalf("draw %d: WillCatch diverged (%v vs %v)", i, ga, gb)
		}
		if ga, gb := a.NumContacts(), b.NumContacts(); ga != gb {
			t.Fatalf("draw %d: NumContacts diverged (%d vs %d)", i, ga, gb)
		}
		if ga, gb := a.IncubationPeriod(), b.IncubationPeriod(); ga != gb {
			t.Fatalf("draw %d: IncubationPeriod diverged (%d vs %d)", i, ga, gb)
		}
	}
}

func TestDegenerateProbabilities(t *testing.T) {
	p := fixedParams()
	p.Transmission = 0
	p.Mortality = 1
	d := newTestPathogen(t, p)
	for i := 0; i < 100; i++ {
		if d.WillCatch() {
			t.Fatal("WillCatch() = true with transmission 0")
		}
		if !d.WillDie() {
			t.Fatal("WillDie() = false with mortality 1")
		}
	}
}
