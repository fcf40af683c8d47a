// Package perm samples and validates topologically admissible
// permutations of a project's task ids: the priority lists consumed by
// the SSGS decoder and produced/repaired by the genetic operators.
package perm

import (
	"container/heap"
	"fmt"
	"math/rand/v2"

	"rcpsp/precedence"
)

// NewRand returns a *rand.Rand seeded deterministically from seed. Every
// caller in this module that needs reproducible randomness (population
// initialization, operator sampling) should build its generator this way.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Sample draws one topologically admissible permutation of [0, g.N())
// using Kahn-style selection: at each step, one task is chosen uniformly
// at random from the current ready set (in-degree zero in a private
// working copy of the in-degree vector) and appended to the output. The
// source is always the unique first ready task and the sink is always
// the unique last, since Build enforces that every other task both
// descends from the source and reaches the sink.
func Sample(g *precedence.Graph, rng *rand.Rand) []int {
	n := g.N()
	indeg := make([]int, n)
	for i := 0; i < n; i++ {
		indeg[i] = g.InDegree(i)
	}
	ready := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)
	for len(ready) > 0 {
		j := rng.IntN(len(ready))
		u := ready[j]
		ready[j] = ready[len(ready)-1]
		ready = ready[:len(ready)-1]
		order = append(order, u)

		for _, v := range g.Successors(u) {
			indeg[v]--
			if indeg[v] == 0 {
				ready = append(ready, v)
			}
		}
	}
	return order
}

// NaturalOrder returns the deterministic admissible permutation used as
// the "non-optimized" comparison baseline: the same Kahn selection as
// Sample, but always advancing the lowest-id ready task rather than a
// random one.
func NaturalOrder(g *precedence.Graph) []int {
	n := g.N()
	indeg := make([]int, n)
	for i := 0; i < n; i++ {
		indeg[i] = g.InDegree(i)
	}

	ready := &intHeap{}
	heap.Init(ready)
	for i := 0; i < n; i++ {
		if indeg[i] == 0 {
			heap.Push(ready, i)
		}
	}

	order := make([]int, 0, n)
	for ready.Len() > 0 {
		u := heap.Pop(ready).(int)
		order = append(order, u)
		for _, v := range g.Successors(u) {
			indeg[v]--
			if indeg[v] == 0 {
				heap.Push(ready, v)
			}
		}
	}
	return order
}

type intHeap []int

func (h intHeap) Len() int            { return len(h) }
func (h intHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h intHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *intHeap) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *intHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// IsAdmissible reports whether perm is a permutation of [0, g.N()) that
// begins with the source, ends with the sink, and respects every
// precedence edge (each task appears after all of its predecessors).
func IsAdmissible(g *precedence.Graph, perm []int) error {
	n := g.N()
	if len(perm) != n {
		return fmt.Errorf("permutation has %d entries, want %d", len(perm), n)
	}
	position := make([]int, n)
	seen := make([]bool, n)
	for pos, task := range perm {
		if task < 0 || task >= n {
			return fmt.Errorf("permutation references task %d outside [0, %d)", task, n)
		}
		if seen[task] {
			return fmt.Errorf("task %d appears more than once", task)
		}
		seen[task] = true
		position[task] = pos
	}
	if perm[0] != 0 {
		return fmt.Errorf("position 0 must hold the source task, got %d", perm[0])
	}
	if perm[n-1] != n-1 {
		return fmt.Errorf("position %d must hold the sink task, got %d", n-1, perm[n-1])
	}
	for v := 0; v < n; v++ {
		for _, u := range g.Predecessors(v) {
			if position[u] >= position[v] {
				return fmt.Errorf("task %d appears before its predecessor %d", v, u)
			}
		}
	}
	return nil
}
