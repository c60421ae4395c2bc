package automaton

// State is a named node of an NFA. Name and finality never change once the
// state exists; only its transition table grows during construction.
type State struct {
	name  string
	final bool
	index int // insertion position inside the owning NFA

	delta map[rune][]*State
}

func newState(name string, final bool, index int) *State {
	return &State{name: name, final: final, index: index, delta: map[rune][]*State{}}
}

func (s *State) Name() string { return s.name }
func (s *State) IsFinal() bool { return s.final }

// Index is the position of the state in NFA.States. It is stable for the
// lifetime of the automaton and unique within it.
func (s *State) Index() int { return s.index }

func (s *State) String() string { return s.name }

// addTransition records s -sym-> to. Adding the same pair twice is a no-op.
func (s *State) addTransition(sym rune, to *State) {
	for _, t := range s.delta[sym] {
		if t == to {
			return
		}
	}
	s.delta[sym] = append(s.delta[sym], to)
}

// TransitionsOn returns the destinations of s on sym in the order they were
// added. The result is never nil and may be modified by the caller.
func (s *State) TransitionsOn(sym rune) []*State {
	to := s.delta[sym]
	out := make([]*State, len(to))
	copy(out, to)
	return out
}
