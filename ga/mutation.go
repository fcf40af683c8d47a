package ga

import (
	"math/rand/v2"

	"rcpsp/precedence"
)

// SwapMutate implements precedence-safe swap mutation: draw two distinct
// interior positions a < b (excluding source and sink), swap them if
// legal, else resample up to budget times, else return the parent
// unchanged. A swap is legal only if it cannot invert a precedence edge.
func SwapMutate(p []int, g *precedence.Graph, rng *rand.Rand, budget int) []int {
	n := len(p)
	child := append([]int(nil), p...)
	if n <= 3 {
		// Only one interior position (or none) — no swap is possible.
		return child
	}
	interior := n - 2 // positions [1, n-2]

	for attempt := 0; attempt < budget; attempt++ {
		a := 1 + rng.IntN(interior)
		b := 1 + rng.IntN(interior)
		if a == b {
			continue
		}
		if a > b {
			a, b = b, a
		}
		if legalSwap(g, child, a, b) {
			child[a], child[b] = child[b], child[a]
			return child
		}
	}
	return child
}

// legalSwap reports whether swapping positions a and b (a < b) in list
// is legal, i.e. inverts no precedence edge: it must not move list[b]
// ahead of one of its transitive predecessors, nor move list[a] behind
// one of its transitive successors — equivalently, no task strictly
// between a and b (inclusive of b) may be a successor of list[a], and no
// task between a and b (inclusive of a) may be a predecessor of list[b].
func legalSwap(g *precedence.Graph, list []int, a, b int) bool {
	ta, tb := list[a], list[b]
	for i := a; i <= b; i++ {
		if i == a {
			continue
		}
		if g.IsSuccessor(ta, list[i]) {
			return false
		}
	}
	for i := a; i <= b; i++ {
		if i == b {
			continue
		}
		if g.IsPredecessor(list[i], tb) {
			return false
		}
	}
	return true
}
