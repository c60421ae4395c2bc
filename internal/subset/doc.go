// Package subset turns an automaton.NFA into an equivalent DFA with the
// subset construction.
//
// Each DFA state is an epsilon-closed set of NFA states. Subsets are
// deduplicated by membership (StateSet.Key), and every emitted state carries
// a canonical id (StateSet.ID) so that equal subsets always reach the
// Builder under the same name. A subset with no way forward on a symbol
// still gets a transition into the empty subset, which acts as the reject
// state; the emitted transition function is therefore total.
//
//	nfa := automaton.New()
//	nfa.AddStartState("q0")
//	nfa.AddFinalState("q1")
//	_ = nfa.AddTransition("q0", 'a', "q1")
//
//	dfa := subset.NewTable()
//	if _, err := subset.Convert(nfa, dfa); err != nil {
//		return err
//	}
package subset
