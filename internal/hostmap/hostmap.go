// Package hostmap owns the population grid and its day-stepping engine.
//
// The grid is a dense rectangle of hosts with toroidal adjacency on both
// axes: index -1 wraps to the far edge and index rows/cols wraps to zero.
// A day advances with snapshot-then-mutate discipline — every read of
// "which hosts were active" comes from an immutable copy of yesterday's
// grid while all writes land in the live grid — so a host exposed earlier
// in the scan can never spread infection within the same day. Cells are
// visited in row-major order, and a neighbor scan is itself row-major;
// that fixes the order in which randomness is consumed, which is what
// makes a seeded run reproducible.
package hostmap

import (
	"math"
	"math/rand/v2"
	"strings"

	"github.com/Tientuine/Ghostmap/internal/pathogen"
)

// Map is a rectangular grid of host individuals along with the disease to
// model. It is owned exclusively by one simulation run and assumes a
// single writer; nothing here is safe for concurrent use.
type Map struct {
	disease *pathogen.Pathogen
	hosts   [][]pathogen.Host
	rnd     *rand.Rand // position draws for SeedDisease
}

// New allocates a rows by cols map. Every host starts Susceptible with a
// contact budget drawn once from the disease's contacts-per-day sampler.
// Dimensions must be positive; that is a caller contract, not a checked
// error.
func New(disease *pathogen.Pathogen, rows, cols int, src rand.Source) *Map {
	m := &Map{
		disease: disease,
		hosts:   make([][]pathogen.Host, rows),
		rnd:     rand.New(src),
	}
	for i := range m.hosts {
		m.hosts[i] = make([]pathogen.Host, cols)
		for j := range m.hosts[i] {
			m.hosts[i][j].Contacts = disease.NumContacts()
		}
	}
	return m
}

// Rows is the height of the map.
func (m *Map) Rows() int { return len(m.hosts) }

// Cols is the width of the map.
func (m *Map) Cols() int { return len(m.hosts[0]) }

// Disease exposes the policy object so reporting and rendering layers can
// classify hosts.
func (m *Map) Disease() *pathogen.Pathogen { return m.disease }

// At returns a copy of the host at (i, j).
func (m *Map) At(i, j int) pathogen.Host { return m.hosts[i][j] }

// Reset returns every host to Susceptible with a freshly drawn contact
// budget, as if the map were newly built.
func (m *Map) Reset() {
	for i := range m.hosts {
		for j := range m.hosts[i] {
			m.hosts[i][j] = pathogen.Host{Contacts: m.disease.NumContacts()}
		}
	}
}

// SeedDisease infects count hosts chosen uniformly at random over all
// positions, with replacement. A position drawn twice only re-arms the
// incubation countdown of the already-exposed host, so the number of
// distinct initial infections can fall short of count.
func (m *Map) SeedDisease(count int) {
	for ; count > 0; count-- {
		k := m.rnd.IntN(m.Rows() * m.Cols())
		m.disease.Infect(&m.hosts[k/m.Cols()][k%m.Cols()])
	}
}

// neighbor views the grid as a torus.
func (m *Map) neighbor(i, j int) *pathogen.Host {
	rows, cols := m.Rows(), m.Cols()
	i = ((i % rows) + rows) % rows
	j = ((j % cols) + cols) % cols
	return &m.hosts[i][j]
}

// ComputeContacts identifies and potentially infects the close contacts
// of the host at (i, j). The stored contact budget t maps onto the
// half-width k = round((sqrt(t+1)-1)/2) of a square neighborhood, so the
// neighborhood area (2k+1)^2 - 1 approximates t. The scan covers
// [i-k, i+k] x [j-k, j+k] in row-major order, toroidally wrapped; the
// center cell is revisited but is not Susceptible, so it is inert.
func (m *Map) ComputeContacts(i, j int) {
	t := m.hosts[i][j].Contacts
	k := int(math.Round((math.Sqrt(float64(t)+1) - 1) / 2))
	for hi := i - k; hi <= i+k; hi++ {
		for hj := j - k; hj <= j+k; hj++ {
			x := m.neighbor(hi, hj)
			if m.disease.IsSusceptible(*x) {
				m.disease.Expose(x)
			}
		}
	}
}

// ComputeNext advances the simulation by exactly one day. Yesterday's
// grid is snapshotted first; each cell's transition is decided by the
// snapshot and applied to the live grid. Hosts that were Exposed or
// Infectious yesterday worsen by one day, and yesterday's infectious
// hosts spread through their contact neighborhoods. The contact budget is
// immutable for the life of a host, so reading it from the live grid
// still yields yesterday's value.
func (m *Map) ComputeNext() {
	prev := make([][]pathogen.Host, len(m.hosts))
	for i, row := range m.hosts {
		prev[i] = append([]pathogen.Host(nil), row...)
	}
	for i := range prev {
		for j := range prev[i] {
			switch {
			case m.disease.IsExposed(prev[i][j]):
				m.disease.Worsen(&m.hosts[i][j])
			case m.disease.IsInfectious(prev[i][j]):
				m.disease.Worsen(&m.hosts[i][j])
				m.ComputeContacts(i, j)
			}
		}
	}
}

// CountInfected is the number of active infections, exposed and
// infectious both.
func (m *Map) CountInfected() int {
	count := 0
	for i := range m.hosts {
		for j := range m.hosts[i] {
			if m.disease.IsExposed(m.hosts[i][j]) || m.disease.IsInfectious(m.hosts[i][j]) {
				count++
			}
		}
	}
	return count
}

// CountRecovered is the number of hosts that survived the infection.
func (m *Map) CountRecovered() int {
	count := 0
	for i := range m.hosts {
		for j := range m.hosts[i] {
			if m.disease.IsRecovered(m.hosts[i][j]) {
				count++
			}
		}
	}
	return count
}

// CountDeceased is the number of hosts the infection killed.
func (m *Map) CountDeceased() int {
	count := 0
	for i := range m.hosts {
		for j := range m.hosts[i] {
			if m.disease.IsDeceased(m.hosts[i][j]) {
				count++
			}
		}
	}
	return count
}

// Census tallies every host into its compartment.
type Census struct {
	Susceptible int
	Exposed     int
	Infectious  int
	Recovered   int
	Deceased    int
}

// Infected is the number of active infections in the tally.
func (c Census) Infected() int { return c.Exposed + c.Infectious }

// Census classifies the whole map in a single scan, for reporting layers
// that want all five compartments at once.
func (m *Map) Census() Census {
	var c Census
	for i := range m.hosts {
		for j := range m.hosts[i] {
			h := m.hosts[i][j]
			switch {
			case m.disease.IsSusceptible(h):
				c.Susceptible++
			case m.disease.IsExposed(h):
				c.Exposed++
			case m.disease.IsInfectious(h):
				c.Infectious++
			case m.disease.IsRecovered(h):
				c.Recovered++
			case m.disease.IsDeceased(h):
				c.Deceased++
			}
		}
	}
	return c
}

// String renders the map as text, one row per line: 's' susceptible,
// 'e' exposed, 'I' infectious, 'R' recovered, space for deceased.
func (m *Map) String() string {
	var b strings.Builder
	b.Grow(m.Rows() * (m.Cols() + 1))
	for i := range m.hosts {
		for j := range m.hosts[i] {
			h := m.hosts[i][j]
			switch {
			case m.disease.IsSusceptible(h):
				b.WriteByte('s')
			case m.disease.IsExposed(h):
				b.WriteByte('e')
			case m.disease.IsInfectious(h):
				b.WriteByte('I')
			case m.disease.IsRecovered(h):
				b.WriteByte('R')
			case m.disease.IsDeceased(h):
				b.WriteByte(' ')
			default:
				b.WriteByte('!')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
