package ga

import (
	"testing"

	"rcpsp/perm"
	"rcpsp/precedence"
)

func TestSwapMutateProducesAdmissibleChildren(t *testing.T) {
	for _, g := range []*precedence.Graph{diamondGraph(t), wideGraph(t)} {
		rng := perm.NewRand(11)
		p := perm.Sample(g, rng)

		for i := 0; i < 100; i++ {
			p = SwapMutate(p, g, rng, 8)
			if err := perm.IsAdmissible(g, p); err != nil {
				t.Fatalf("iteration %d: mutated list not admissible: %v (list=%v)", i, err, p)
			}
		}
	}
}

func TestSwapMutateOnTinyGraphReturnsInputUnchanged(t *testing.T) {
	g, err := precedence.Build(3, [][2]int{{0, 1}, {1, 2}})
	if err != nil {
		t.Fatalf("unexpected error building graph: %v", err)
	}
	p := []int{0, 1, 2}
	got := SwapMutate(p, g, perm.NewRand(1), 8)
	if len(got) != len(p) {
		t.Fatalf("length changed: %v -> %v", p, got)
	}
	for i := range p {
		if got[i] != p[i] {
			t.Fatalf("expected no swap on a 3-task graph, got %v", got)
		}
	}
}

func TestSwapMutateDoesNotAliasInput(t *testing.T) {
	g := wideGraph(t)
	p := perm.NaturalOrder(g)
	original := append([]int(nil), p...)

	_ = SwapMutate(p, g, perm.NewRand(3), 8)
	for i := range p {
		if p[i] != original[i] {
			t.Fatalf("SwapMutate mutated its input in place: %v -> %v", original, p)
		}
	}
}
