package pathogen

// State is the SEIRD compartment a host currently occupies.
type State int8

const (
	Susceptible State = iota
	Exposed
	Infectious
	resolved // transient: settled to Recovered or Deceased inside the same Worsen call
	Recovered
	Deceased
)

func (s State) String() string {
	switch s {
	case Susceptible:
		return "susceptible"
	case Exposed:
		return "exposed"
	case Infectious:
		return "infectious"
	case resolved:
		return "resolved"
	case Recovered:
		return "recovered"
	case Deceased:
		return "deceased"
	default:
		return "unknown"
	}
}

// Host is one individual on the population grid.
//
// DaysRemaining counts down while the host is Exposed or Infectious and is
// meaningless in any other state. Contacts is the host's contact budget,
// drawn once when the grid is built (and again on reset) and untouched by
// infection.
type Host struct {
	State         State
	DaysRemaining int16
	Contacts      int16
}
