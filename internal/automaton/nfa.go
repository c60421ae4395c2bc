package automaton

// Epsilon is the default symbol reserved for empty-input transitions.
const Epsilon = 'e'

type Option func(*NFA)

// WithEpsilon reserves sym instead of Epsilon for empty-input transitions.
func WithEpsilon(sym rune) Option {
	return func(n *NFA) { n.epsilon = sym }
}

// WithWarningSink forwards construction warnings to sink in addition to the
// NFA's own Diagnostics.
func WithWarningSink(sink WarningSink) Option {
	return func(n *NFA) { n.sink = sink }
}

// NFA is a nondeterministic automaton with epsilon transitions. It is built
// through the Add* calls and is read-only afterwards.
type NFA struct {
	epsilon rune

	states []*State
	byName map[string]*State
	start  *State

	alphabet []rune
	inAlpha  map[rune]struct{}

	diag Diagnostics
	sink WarningSink
	err  error
}

func New(opts ...Option) *NFA {
	n := &NFA{
		epsilon: Epsilon,
		byName:  map[string]*State{},
		inAlpha: map[rune]struct{}{},
	}
	for _, o := range opts {
		o(n)
	}
	return n
}

func (n *NFA) warn(kind WarningKind, op, name string) {
	w := Warning{Kind: kind, Op: op, Name: name}
	n.diag.Warn(w)
	if n.sink != nil {
		n.sink.Warn(w)
	}
}

// add returns the state called name, creating it when absent. A duplicate
// keeps the existing state and its attributes.
func (n *NFA) add(op, name string, final bool) *State {
	if s, ok := n.byName[name]; ok {
		n.warn(DuplicateState, op, name)
		return s
	}
	s := newState(name, final, len(n.states))
	n.states = append(n.states, s)
	n.byName[name] = s
	return s
}

// AddStartState adds a non-final state and designates it as the start. On a
// duplicate name the existing state becomes the start.
func (n *NFA) AddStartState(name string) {
	s := n.add("AddStartState", name, false)
	if n.start != nil && n.start != s {
		n.warn(StartReplaced, "AddStartState", n.start.name)
	}
	n.start = s
}

func (n *NFA) AddState(name string) {
	n.add("AddState", name, false)
}

func (n *NFA) AddFinalState(name string) {
	n.add("AddFinalState", name, true)
}

// AddTransition adds from -sym-> to. Both states must already exist; otherwise
// a *ConfigError is returned, nothing is modified and the error sticks to the
// automaton (see Err).
func (n *NFA) AddTransition(from string, sym rune, to string) error {
	src, ok := n.byName[from]
	if !ok {
		return n.fail(&ConfigError{Op: "AddTransition", Name: from, Err: ErrUnknownState})
	}
	dst, ok := n.byName[to]
	if !ok {
		return n.fail(&ConfigError{Op: "AddTransition", Name: to, Err: ErrUnknownState})
	}
	src.addTransition(sym, dst)
	if sym == n.epsilon {
		return nil
	}
	if _, seen := n.inAlpha[sym]; !seen {
		n.inAlpha[sym] = struct{}{}
		n.alphabet = append(n.alphabet, sym)
	}
	return nil
}

func (n *NFA) fail(err error) error {
	if n.err == nil {
		n.err = err
	}
	return err
}

// Err returns the first configuration error the automaton saw, if any.
func (n *NFA) Err() error { return n.err }

func (n *NFA) Epsilon() rune { return n.epsilon }

// States returns all states in insertion order.
func (n *NFA) States() []*State {
	out := make([]*State, len(n.states))
	copy(out, n.states)
	return out
}

func (n *NFA) FinalStates() []*State {
	var out []*State
	for _, s := range n.states {
		if s.final {
			out = append(out, s)
		}
	}
	return out
}

// StartState returns nil until a start state has been added.
func (n *NFA) StartState() *State { return n.start }

func (n *NFA) State(name string) (*State, bool) {
	s, ok := n.byName[name]
	return s, ok
}

// Alphabet returns the non-epsilon symbols in first-use order.
func (n *NFA) Alphabet() []rune {
	out := make([]rune, len(n.alphabet))
	copy(out, n.alphabet)
	return out
}

func (n *NFA) TransitionsOn(s *State, sym rune) []*State {
	return s.TransitionsOn(sym)
}

func (n *NFA) Warnings() []Warning { return n.diag.Warnings() }
