package subset

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
)

// Table is a Builder that records the emitted DFA as a transition table. It
// keeps states in the order they were announced.
type Table struct {
	Start  string
	States []string
	Final  map[string]bool
	Delta  map[string]map[rune]string

	// Calls counts every AddTransition, including repeated ones.
	Calls int

	known map[string]bool
}

func NewTable() *Table {
	return &Table{
		Final: map[string]bool{},
		Delta: map[string]map[rune]string{},
		known: map[string]bool{},
	}
}

func (t *Table) state(id string) {
	if !t.known[id] {
		t.known[id] = true
		t.States = append(t.States, id)
	}
}

func (t *Table) AddStartState(id string) {
	t.state(id)
	t.Start = id
}

func (t *Table) AddState(id string) { t.state(id) }

func (t *Table) AddFinalState(id string) {
	t.state(id)
	t.Final[id] = true
}

func (t *Table) AddTransition(from string, sym rune, to string) {
	t.state(from)
	t.state(to)
	row, ok := t.Delta[from]
	if !ok {
		row = map[rune]string{}
		t.Delta[from] = row
	}
	row[sym] = to
	t.Calls++
}

// Next returns the target of from on sym.
func (t *Table) Next(from string, sym rune) (string, bool) {
	to, ok := t.Delta[from][sym]
	return to, ok
}

// Accepts runs the recorded DFA over input. A symbol without a transition
// rejects.
func (t *Table) Accepts(input string) bool {
	if len(t.States) == 0 {
		return false
	}
	cur := t.Start
	for _, r := range input {
		next, ok := t.Next(cur, r)
		if !ok {
			return false
		}
		cur = next
	}
	return t.Final[cur]
}

// WriteDOT renders the table as a Graphviz digraph. States are numbered in
// announcement order and labelled with their ids.
func (t *Table) WriteDOT(w io.Writer) error {
	bw := bufio.NewWriter(w)
	num := make(map[string]int, len(t.States))
	for i, id := range t.States {
		num[id] = i
	}

	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "    rankdir=LR;")
	for i, id := range t.States {
		shape := "circle"
		if t.Final[id] {
			shape = "doublecircle"
		}
		fmt.Fprintf(bw, "    q%d [shape=%s, label=%s];\n", i, shape, strconv.Quote(id))
	}
	for i, id := range t.States {
		row := t.Delta[id]
		syms := make([]rune, 0, len(row))
		for sym := range row {
			syms = append(syms, sym)
		}
		slices.Sort(syms)
		for _, sym := range syms {
			fmt.Fprintf(bw, "    q%d -> q%d [label=%s];\n", i, num[row[sym]], strconv.Quote(string(sym)))
		}
	}
	if len(t.States) > 0 {
		fmt.Fprintf(bw, "    _start [shape=point]; _start -> q%d;\n", num[t.Start])
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
