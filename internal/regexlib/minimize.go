package regexlib

// MergeEquivalent runs one merge pass over the reachable states and returns
// how many states were folded away. Two states are equivalent when they agree
// on acceptance and their edge lists match position by position (same label,
// same destination). The later state in reachability order is replaced by the
// earlier one, so Start is never replaced.
//
// Equivalences that only appear because of a merge made in the same pass are
// not chased; call it again, or compile with Options.MergeFixpoint.
func (n *NFA) MergeEquivalent() int {
	order := n.reachable()
	replaced := make(map[StateID]bool)
	merged := 0

	for i, keep := range order {
		if replaced[keep] {
			continue
		}
		for _, other := range order[i+1:] {
			if replaced[other] || !n.sameState(keep, other) {
				continue
			}
			replaced[other] = true
			n.redirect(order, other, keep)
			merged++
		}
	}
	return merged
}

func (n *NFA) mergeFixpoint() int {
	total := 0
	for {
		m := n.MergeEquivalent()
		if m == 0 {
			return total
		}
		total += m
	}
}

func (n *NFA) sameState(a, b StateID) bool {
	sa, sb := &n.states[a], &n.states[b]
	if sa.accept != sb.accept || len(sa.edges) != len(sb.edges) {
		return false
	}
	for i := range sa.edges {
		if sa.edges[i] != sb.edges[i] {
			return false
		}
	}
	return true
}

// redirect points every edge of the listed states that targets from at to.
func (n *NFA) redirect(states []StateID, from, to StateID) {
	for _, s := range states {
		edges := n.states[s].edges
		for i := range edges {
			if edges[i].to == from {
				edges[i].to = to
			}
		}
	}
}
