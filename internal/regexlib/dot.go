package regexlib

import (
	"fmt"
	"io"
	"strconv"
)

// ExportDOT печатает Graphviz-представление автомата в w. State names use the
// same numbering as Lines.
func ExportDOT(w io.Writer, n *NFA) error {
	order := n.number()

	if _, err := fmt.Fprintln(w, "digraph G {"); err != nil {
		return err
	}
	fmt.Fprintln(w, "    rankdir=LR;")
	for _, s := range order {
		st := &n.states[s]
		shape := "circle"
		if st.accept {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "    q%d [shape=%s];\n", st.id, shape)
		for _, e := range st.edges {
			label := e.label
			if label == "" {
				label = "ε"
			}
			fmt.Fprintf(w, "    q%d -> q%d [label=%s];\n", st.id, n.states[e.to].id, strconv.Quote(label))
		}
	}
	fmt.Fprintf(w, "    _start [shape=point]; _start -> q%d;\n", n.states[n.start].id)
	_, err := fmt.Fprintln(w, "}")
	return err
}
