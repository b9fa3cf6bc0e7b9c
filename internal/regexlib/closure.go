package regexlib

import "sort"

// epsilonClosure returns s followed by every state reachable from it over ε
// edges, in discovery order.
func (n *NFA) epsilonClosure(s StateID) []StateID {
	closure := []StateID{s}
	seen := map[StateID]bool{s: true}
	stack := []StateID{s}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range n.states[cur].edges {
			if e.label != "" || seen[e.to] {
				continue
			}
			seen[e.to] = true
			closure = append(closure, e.to)
			stack = append(stack, e.to)
		}
	}
	return closure
}

// eliminateEpsilon removes every ε edge. All closures are taken from the
// graph as built; rewired edge lists are installed only afterwards, so the
// order in which states are handled does not matter.
func (n *NFA) eliminateEpsilon(sortByLabel bool) {
	order := n.reachable()
	edges := make(map[StateID][]edge, len(order))
	accept := make(map[StateID]bool, len(order))

	for _, s := range order {
		var out []edge
		acc := false
		for _, c := range n.epsilonClosure(s) {
			if n.states[c].accept {
				acc = true
			}
			for _, e := range n.states[c].edges {
				if e.label != "" {
					out = append(out, e)
				}
			}
		}
		if sortByLabel {
			sort.SliceStable(out, func(i, j int) bool { return out[i].label < out[j].label })
		}
		edges[s] = out
		accept[s] = acc
	}

	for _, s := range order {
		n.states[s].edges = edges[s]
		n.states[s].accept = accept[s]
	}
}
