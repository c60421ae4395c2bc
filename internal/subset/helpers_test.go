package subset

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"nfadfa/internal/automaton"
)

type edge struct {
	from string
	sym  rune
	to   string
}

// buildNFA makes an NFA with start state start, the given final states and
// edges. Non-final states referenced by edges are added as plain states.
func buildNFA(t *testing.T, start string, finals []string, edges []edge) *automaton.NFA {
	t.Helper()
	n := automaton.New()
	isFinal := map[string]bool{}
	for _, f := range finals {
		isFinal[f] = true
	}
	addOnce := func(name string) {
		if _, ok := n.State(name); ok {
			return
		}
		if isFinal[name] {
			n.AddFinalState(name)
		} else {
			n.AddState(name)
		}
	}
	if isFinal[start] {
		n.AddFinalState(start)
		n.AddStartState(start)
	} else {
		n.AddStartState(start)
	}
	for _, f := range finals {
		addOnce(f)
	}
	for _, e := range edges {
		addOnce(e.from)
		addOnce(e.to)
		require.NoError(t, n.AddTransition(e.from, e.sym, e.to))
	}
	return n
}

func state(t *testing.T, n *automaton.NFA, name string) *automaton.State {
	t.Helper()
	s, ok := n.State(name)
	require.True(t, ok, "no state %q", name)
	return s
}

func setOf(t *testing.T, n *automaton.NFA, names ...string) *StateSet {
	t.Helper()
	states := make([]*automaton.State, 0, len(names))
	for _, name := range names {
		states = append(states, state(t, n, name))
	}
	return NewStateSet(n, states...)
}

// parseID turns a canonical id of unquoted names back into its subset.
func parseID(t *testing.T, n *automaton.NFA, id string) *StateSet {
	t.Helper()
	require.True(t, strings.HasPrefix(id, "{") && strings.HasSuffix(id, "}"), "bad id %q", id)
	body := id[1 : len(id)-1]
	if body == "" {
		return NewStateSet(n)
	}
	return setOf(t, n, strings.Split(body, ",")...)
}

// recorder logs every Builder call as a string.
type recorder struct {
	calls []string
}

func (r *recorder) AddStartState(id string) { r.calls = append(r.calls, "start "+id) }
func (r *recorder) AddState(id string) { r.calls = append(r.calls, "state "+id) }
func (r *recorder) AddFinalState(id string) { r.calls = append(r.calls, "final "+id) }
func (r *recorder) AddTransition(from string, sym rune, to string) {
	r.calls = append(r.calls, fmt.Sprintf("%s -%c-> %s", from, sym, to))
}

// fanout passes every call to each builder in turn.
type fanout []Builder

func (f fanout) AddStartState(id string) {
	for _, b := range f {
		b.AddStartState(id)
	}
}

func (f fanout) AddState(id string) {
	for _, b := range f {
		b.AddState(id)
	}
}

func (f fanout) AddFinalState(id string) {
	for _, b := range f {
		b.AddFinalState(id)
	}
}

func (f fanout) AddTransition(from string, sym rune, to string) {
	for _, b := range f {
		b.AddTransition(from, sym, to)
	}
}
