// Package pathogen models a communicable disease over SEIRD compartments:
// Susceptible, Exposed, Infectious, Recovered, Deceased.
//
// Incubation time and duration of infection tend to follow exponential
// distributions; because the simulation advances in whole days, the
// discrete analog stands in, a geometric excess on top of an enforced
// minimum. Contacts per day follow a Poisson distribution with a floor of
// one.
//
// The classification predicates are pure. Every transition method and
// every Will*/Period/NumContacts primitive consumes randomness from the
// single source passed to New, so a seeded source makes a whole run
// reproducible given a fixed draw order (see the hostmap package for the
// ordering guarantee).
package pathogen

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Params are the caller-supplied disease parameters. Probabilities are
// expected in [0, 1] and durations with min >= 1 and avg >= min;
// out-of-range values degenerate silently rather than error (an
// always/never sampler, or a zero-day countdown that stalls the host).
type Params struct {
	Name          string
	Transmission  float64 // probability of transmission per contact per day
	Mortality     float64 // probability of death given infection
	MinIncubation int     // minimum days after exposure until symptoms present
	AvgIncubation int     // average asymptomatic incubation time
	MinInfection  int     // minimum days duration of infection
	AvgInfection  int     // average duration of infection
	AvgContacts   int     // average number of contacts per day
	Quarantine    int     // days duration of quarantine (reserved, not yet consumed)
}

// Ebola is the default parameter set. The transmission probability per
// contact per day comes from a binomial distribution with a mean of
// 1.4-1.7 secondary cases (Chowell and Nishiura, 2015) over 148.68 trials:
// 9 infectious days at the 16.52 average daily contacts reported by
// Del Valle et al. (2007).
var Ebola = Params{
	Name:          "Ebola",
	Transmission:  0.01,
	Mortality:     0.5,
	MinIncubation: 2,
	AvgIncubation: 9,
	MinInfection:  7,
	AvgInfection:  9,
	AvgContacts:   17,
	Quarantine:    1,
}

// Pathogen is the disease policy object: immutable parameters plus the
// samplers that drive every stochastic decision of a run.
type Pathogen struct {
	name  string
	minE  int16
	minI  int16
	timeQ int16

	catch      distuv.Bernoulli
	die        distuv.Bernoulli
	incubation geometric
	infection  geometric
	contacts   distuv.Poisson
}

// New builds a disease policy from p. All randomness flows through src.
func New(p Params, src rand.Source) *Pathogen {
	rnd := rand.New(src)
	return &Pathogen{
		name:       p.Name,
		minE:       int16(p.MinIncubation),
		minI:       int16(p.MinInfection),
		timeQ:      int16(p.Quarantine),
		catch:      distuv.Bernoulli{P: p.Transmission, Src: src},
		die:        distuv.Bernoulli{P: p.Mortality, Src: src},
		incubation: geometric{p: 1 / float64(p.AvgIncubation-p.MinIncubation+1), rnd: rnd},
		infection:  geometric{p: 1 / float64(p.AvgInfection-p.MinInfection+1), rnd: rnd},
		contacts:   distuv.Poisson{Lambda: float64(p.AvgContacts), Src: src},
	}
}

// Name returns the cosmetic disease name.
func (d *Pathogen) Name() string { return d.name }

// IsSusceptible reports whether h may still contract the pathogen.
func (d *Pathogen) IsSusceptible(h Host) bool { return h.State == Susceptible }

// IsExposed reports whether h has been exposed and may be incubating.
func (d *Pathogen) IsExposed(h Host) bool { return h.State == Exposed }

// IsInfectious reports whether h can spread the pathogen.
func (d *Pathogen) IsInfectious(h Host) bool { return h.State == Infectious }

// IsRecovered reports whether h survived the infection with immunity.
func (d *Pathogen) IsRecovered(h Host) bool { return h.State == Recovered }

// IsDeceased reports whether h succumbed to the infection.
func (d *Pathogen) IsDeceased(h Host) bool { return h.State == Deceased }

// IsDetected reports whether h is presenting symptoms: infectious with
// fewer countdown days left than the minimum duration of infection. The
// stepping engine does not consume this; it is the hook where quarantine
// would attach.
func (d *Pathogen) IsDetected(h Host) bool {
	return d.IsInfectious(h) && h.DaysRemaining < d.minI
}

// hasRunCourse reports whether the infection in h finished this step and
// still needs resolving.
func (d *Pathogen) hasRunCourse(h Host) bool { return h.State == resolved }

// Expose possibly infects a susceptible host: one transmission draw, and
// on success the host is infected. Callers check IsSusceptible first.
func (d *Pathogen) Expose(h *Host) {
	if d.WillCatch() {
		d.Infect(h)
	}
}

// Infect plants the pathogen in h: the host becomes Exposed and begins a
// freshly drawn incubation countdown. Infecting a host that is not
// Susceptible simply re-arms that countdown.
func (d *Pathogen) Infect(h *Host) {
	h.State = Exposed
	h.DaysRemaining = d.IncubationPeriod()
}

// Worsen advances an active infection by one day. The countdown is
// decremented first; hitting zero moves the host one compartment forward.
// A host entering Infectious draws its duration of infection, and a host
// whose infection has run its course is resolved by Expire within the
// same call, so the transient compartment is never observable.
//
// Call exactly once per simulated day for every host that was Exposed or
// Infectious in the previous day's snapshot.
func (d *Pathogen) Worsen(h *Host) {
	h.DaysRemaining--
	if h.DaysRemaining != 0 {
		return
	}
	h.State++
	if d.hasRunCourse(*h) {
		d.Expire(h)
	} else {
		h.DaysRemaining = d.InfectionPeriod()
	}
}

// Expire resolves a finished infection: one death draw decides between
// Deceased and Recovered. Both are terminal.
func (d *Pathogen) Expire(h *Host) {
	if d.WillDie() {
		h.State = Deceased
	} else {
		h.State = Recovered
	}
}

// WillCatch draws once whether an exposure takes hold.
func (d *Pathogen) WillCatch() bool { return d.catch.Rand() == 1 }

// WillDie draws once whether an infection kills its host.
func (d *Pathogen) WillDie() bool { return d.die.Rand() == 1 }

// IncubationPeriod draws the days a host spends Exposed before turning
// Infectious: the configured minimum plus a geometric excess.
func (d *Pathogen) IncubationPeriod() int16 { return d.minE + d.incubation.Rand() }

// InfectionPeriod draws the days a host spends Infectious before the
// infection resolves: the configured minimum plus a geometric excess.
func (d *Pathogen) InfectionPeriod() int16 { return d.minI + d.infection.Rand() }

// NumContacts draws the size of a host's contact neighborhood. Every host
// has at least one potential contact.
func (d *Pathogen) NumContacts() int16 { return 1 + int16(d.contacts.Rand()) }
