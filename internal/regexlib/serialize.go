package regexlib

import (
	"io"
	"sort"
	"strconv"
	"strings"
)

const (
	acceptMarker = "*"
	arrow        = "->"
	separator    = "|"
)

// number resets every id to -1 and numbers the reachable states from 0 in
// discovery order.
func (n *NFA) number() []StateID {
	for i := range n.states {
		n.states[i].id = -1
	}
	order := n.reachable()
	for i, s := range order {
		n.states[s].id = i
	}
	return order
}

// Lines renders one line per reachable state:
//
//	<id>[*]-><label><dest>[|<label><dest>]...
//
// Lines are ordered by the first byte of the line only, so "10" sorts with "1".
func (n *NFA) Lines() []string {
	order := n.number()
	lines := make([]string, 0, len(order))
	for _, s := range order {
		st := &n.states[s]
		var b strings.Builder
		b.WriteString(strconv.Itoa(st.id))
		if st.accept {
			b.WriteString(acceptMarker)
		}
		b.WriteString(arrow)
		for i, e := range st.edges {
			if i > 0 {
				b.WriteString(separator)
			}
			b.WriteString(e.label)
			b.WriteString(strconv.Itoa(n.states[e.to].id))
		}
		lines = append(lines, b.String())
	}
	sort.SliceStable(lines, func(i, j int) bool { return lines[i][0] < lines[j][0] })
	return lines
}

// String returns Lines joined by newlines, with a trailing newline.
func (n *NFA) String() string {
	var b strings.Builder
	for _, l := range n.Lines() {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteTo writes the transition list to w.
func (n *NFA) WriteTo(w io.Writer) (int64, error) {
	c, err := io.WriteString(w, n.String())
	return int64(c), err
}
