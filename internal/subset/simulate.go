package subset

import "nfadfa/internal/automaton"

// Accepts reports whether nfa accepts input, stepping a closed set of current
// states one rune at a time. The epsilon symbol is not a real input symbol,
// so input containing it is rejected. An automaton without a start state
// accepts nothing.
func Accepts(nfa *automaton.NFA, input string) bool {
	start := nfa.StartState()
	if start == nil {
		return false
	}
	cur := Closure(nfa, start)
	for _, r := range input {
		if r == nfa.Epsilon() {
			return false
		}
		cur = ClosureOf(nfa, Move(nfa, cur, r))
		if cur.Len() == 0 {
			return false
		}
	}
	return cur.HasFinal()
}
