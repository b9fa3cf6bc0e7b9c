package regexlib

// StateID is a stable handle into the NFA state arena.
type StateID int

type edge struct {
	label string // "" = ε; after build at most one rune
	to    StateID
}

type state struct {
	edges  []edge
	accept bool
	start  bool
	id     int // serialisation number, -1 until numbered
}

// NFA is a compiled automaton. States live in an arena and are addressed by
// StateID; merged-away and unreachable states stay in the arena but are never
// visited from Start.
type NFA struct {
	pattern   string
	rewritten string
	states    []state
	start     StateID
	stats     []StageStats
}

func (n *NFA) newState() StateID {
	n.states = append(n.states, state{id: -1})
	return StateID(len(n.states) - 1)
}

func (n *NFA) addEdge(from StateID, label string, to StateID) int {
	n.states[from].edges = append(n.states[from].edges, edge{label: label, to: to})
	return len(n.states[from].edges) - 1
}

// edgeRef points at one pending edge: states[from].edges[idx]. Edges are
// only ever appended during construction, so refs stay valid.
type edgeRef struct {
	from StateID
	idx  int
}

// skeleton creates start –expr→ accept.
func (n *NFA) skeleton(expr string) edgeRef {
	s := n.newState()
	f := n.newState()
	n.start = s
	n.states[s].start = true
	n.states[f].accept = true
	return edgeRef{from: s, idx: n.addEdge(s, expr, f)}
}

/* ----------------------- построение по очереди рёбер ----------------------- */

// build rewrites the skeleton until every edge label is a single rune or ε.
func (n *NFA) build(expr string) error {
	queue := []edgeRef{n.skeleton(expr)}

	for len(queue) > 0 {
		ref := queue[0]
		queue = queue[1:]

		e := n.states[ref.from].edges[ref.idx]
		x, err := Decompose(e.label)
		if err != nil {
			return &CompileError{Pattern: n.pattern, Expr: e.label, Err: err}
		}

		switch x.Kind {
		case Epsilon, Literal:
			// готово
		case Concat:
			mid := n.newState()
			n.states[ref.from].edges[ref.idx] = edge{label: x.Left, to: mid}
			tail := n.addEdge(mid, x.Right, e.to)
			queue = append(queue, ref, edgeRef{from: mid, idx: tail})
		case Alternate:
			n.states[ref.from].edges[ref.idx].label = x.Left
			alt := n.addEdge(ref.from, x.Right, e.to)
			queue = append(queue, ref, edgeRef{from: ref.from, idx: alt})
		case Star, Plus:
			loop := n.newState()
			n.addEdge(loop, "", e.to)
			self := n.addEdge(loop, x.Left, loop)
			if x.Kind == Star {
				n.states[ref.from].edges[ref.idx] = edge{label: "", to: loop}
			} else {
				n.states[ref.from].edges[ref.idx] = edge{label: x.Left, to: loop}
				queue = append(queue, ref)
			}
			queue = append(queue, edgeRef{from: loop, idx: self})
		}
	}
	return nil
}

// reachable lists states reachable from Start in breadth-first discovery order.
func (n *NFA) reachable() []StateID {
	seen := make([]bool, len(n.states))
	order := []StateID{n.start}
	seen[n.start] = true
	for i := 0; i < len(order); i++ {
		for _, e := range n.states[order[i]].edges {
			if !seen[e.to] {
				seen[e.to] = true
				order = append(order, e.to)
			}
		}
	}
	return order
}
