package ga

import "math/rand/v2"

// POX implements precedence-preserving order-based crossover: a
// crossover point q is drawn uniformly from [1, n-1]; C1 copies P1's
// prefix [0, q) verbatim, then appends P2's tasks not yet placed in the
// order they appear in P2. C2 is built symmetrically with the parents
// swapped. Both children are permutations, and both are admissible
// because every predecessor of a tail-copied task either already sits in
// the copied prefix or appears earlier than it in the donor parent's own
// admissible order.
func POX(p1, p2 []int, rng *rand.Rand) (c1, c2 []int) {
	n := len(p1)
	q := 1 + rng.IntN(n-1) // uniform in [1, n-1]
	c1 = pox(p1, p2, q)
	c2 = pox(p2, p1, q)
	return c1, c2
}

func pox(primary, donor []int, q int) []int {
	n := len(primary)
	child := make([]int, 0, n)
	child = append(child, primary[:q]...)

	present := make([]bool, n)
	for _, t := range child {
		present[t] = true
	}
	for _, t := range donor {
		if !present[t] {
			child = append(child, t)
			present[t] = true
		}
	}
	return child
}
