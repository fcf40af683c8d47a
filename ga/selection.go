package ga

import "math/rand/v2"

// TournamentSelect draws k individuals uniformly at random with
// replacement and returns the index of the one with the lowest fitness,
// breaking ties by earlier index.
func TournamentSelect(fitness []int, k int, rng *rand.Rand) int {
	best := rng.IntN(len(fitness))
	for i := 1; i < k; i++ {
		cand := rng.IntN(len(fitness))
		if fitness[cand] < fitness[best] {
			best = cand
		} else if fitness[cand] == fitness[best] && cand < best {
			best = cand
		}
	}
	return best
}
