package ga

import (
	"rcpsp/perm"
	"rcpsp/project"
)

// InitialPopulation draws n independent admissible priority lists,
// deterministic given seed.
func InitialPopulation(idx *project.Index, n int, seed uint64) [][]int {
	rng := perm.NewRand(seed)
	pop := make([][]int, n)
	for i := range pop {
		pop[i] = perm.Sample(idx.Graph(), rng)
	}
	return pop
}
