package subset

import "nfadfa/internal/automaton"

// Closure returns the epsilon-closure of st: st itself plus every state
// reachable from it over epsilon transitions only.
func Closure(nfa *automaton.NFA, st *automaton.State) *StateSet {
	return ClosureOf(nfa, NewStateSet(nfa, st))
}

// ClosureOf returns the union of the closures of every member of set. The
// input set is left untouched.
func ClosureOf(nfa *automaton.NFA, set *StateSet) *StateSet {
	eps := nfa.Epsilon()
	out := newStateSet(len(nfa.States()))
	stack := make([]*automaton.State, 0, set.Len())
	for _, st := range set.members {
		if out.add(st) {
			stack = append(stack, st)
		}
	}
	for len(stack) > 0 {
		st := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, to := range st.TransitionsOn(eps) {
			if out.add(to) {
				stack = append(stack, to)
			}
		}
	}
	return out
}

// Move returns the states reachable from set by consuming sym once, without
// following epsilon transitions before or after.
func Move(nfa *automaton.NFA, set *StateSet, sym rune) *StateSet {
	out := newStateSet(len(nfa.States()))
	for _, st := range set.members {
		for _, to := range nfa.TransitionsOn(st, sym) {
			out.add(to)
		}
	}
	return out
}
