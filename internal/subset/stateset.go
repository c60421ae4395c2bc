package subset

import (
	"encoding/binary"
	"slices"
	"strconv"
	"strings"

	"nfadfa/internal/automaton"
)

// StateSet is a set of NFA states of one automaton. Membership is tracked as
// a bitset over State.Index, so two sets are equal exactly when they hold the
// same states, whatever order they were filled in.
type StateSet struct {
	words   []uint64
	members []*automaton.State
	id      string // cached ID, reset by add
}

func newStateSet(size int) *StateSet {
	return &StateSet{words: make([]uint64, (size+63)/64)}
}

// NewStateSet returns the set of states of nfa holding states.
func NewStateSet(nfa *automaton.NFA, states ...*automaton.State) *StateSet {
	s := newStateSet(len(nfa.States()))
	for _, st := range states {
		s.add(st)
	}
	return s
}

// add reports whether st was not yet a member.
func (s *StateSet) add(st *automaton.State) bool {
	i := st.Index()
	w, b := i/64, uint64(1)<<(i%64)
	if s.words[w]&b != 0 {
		return false
	}
	s.words[w] |= b
	s.members = append(s.members, st)
	s.id = ""
	return true
}

func (s *StateSet) Contains(st *automaton.State) bool {
	i := st.Index()
	if i/64 >= len(s.words) {
		return false
	}
	return s.words[i/64]&(uint64(1)<<(i%64)) != 0
}

func (s *StateSet) Len() int { return len(s.members) }

// States returns the members ordered by State.Index.
func (s *StateSet) States() []*automaton.State {
	out := slices.Clone(s.members)
	slices.SortFunc(out, func(a, b *automaton.State) int { return a.Index() - b.Index() })
	return out
}

func (s *StateSet) HasFinal() bool {
	for _, st := range s.members {
		if st.IsFinal() {
			return true
		}
	}
	return false
}

// Key is the structural identity of the set. Sets of the same automaton have
// equal keys iff they have equal members.
func (s *StateSet) Key() string {
	buf := make([]byte, 0, len(s.words)*8)
	for _, w := range s.words {
		buf = binary.LittleEndian.AppendUint64(buf, w)
	}
	return string(buf)
}

func (s *StateSet) Equal(o *StateSet) bool {
	return slices.Equal(s.words, o.words)
}

// ID is the identifier handed to a DFA sink: member names sorted and joined,
// e.g. "{q0,q1}". Empty names and names containing a delimiter are quoted.
func (s *StateSet) ID() string {
	if s.id != "" {
		return s.id
	}
	names := make([]string, 0, len(s.members))
	for _, st := range s.members {
		names = append(names, quoteName(st.Name()))
	}
	slices.Sort(names)
	s.id = "{" + strings.Join(names, ",") + "}"
	return s.id
}

func (s *StateSet) String() string { return s.ID() }

func quoteName(name string) string {
	if name == "" || strings.ContainsAny(name, `,{}"\`) {
		return strconv.Quote(name)
	}
	return name
}
