package ga

import (
	"math/rand/v2"
	"testing"

	"rcpsp/perm"
	"rcpsp/precedence"
)

// diamondGraph mirrors perm's own fixture: 0 -> {1,2} -> 3.
func diamondGraph(t *testing.T) *precedence.Graph {
	t.Helper()
	g, err := precedence.Build(4, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}})
	if err != nil {
		t.Fatalf("unexpected error building graph: %v", err)
	}
	return g
}

// wideGraph gives crossover and mutation more room to disagree with each
// other than the diamond does: 0 -> {1,2,3} -> {4,5} -> 6.
func wideGraph(t *testing.T) *precedence.Graph {
	t.Helper()
	g, err := precedence.Build(7, [][2]int{
		{0, 1}, {0, 2}, {0, 3},
		{1, 4}, {2, 4}, {2, 5}, {3, 5},
		{4, 6}, {5, 6},
	})
	if err != nil {
		t.Fatalf("unexpected error building graph: %v", err)
	}
	return g
}

func TestPOXProducesAdmissibleChildren(t *testing.T) {
	for _, g := range []*precedence.Graph{diamondGraph(t), wideGraph(t)} {
		rng := perm.NewRand(7)
		p1 := perm.Sample(g, rng)
		p2 := perm.Sample(g, rng)

		for i := 0; i < 100; i++ {
			c1, c2 := POX(p1, p2, rng)
			if err := perm.IsAdmissible(g, c1); err != nil {
				t.Fatalf("iteration %d: c1 not admissible: %v (c1=%v, p1=%v, p2=%v)", i, err, c1, p1, p2)
			}
			if err := perm.IsAdmissible(g, c2); err != nil {
				t.Fatalf("iteration %d: c2 not admissible: %v (c2=%v, p1=%v, p2=%v)", i, err, c2, p1, p2)
			}
			p1, p2 = c1, c2
		}
	}
}

func TestPOXOnIdenticalParentsReturnsSameOrder(t *testing.T) {
	g := wideGraph(t)
	p := perm.NaturalOrder(g)
	rng := rand.New(rand.NewPCG(1, 2))
	c1, c2 := POX(p, p, rng)
	if err := perm.IsAdmissible(g, c1); err != nil {
		t.Fatalf("c1 not admissible: %v", err)
	}
	if err := perm.IsAdmissible(g, c2); err != nil {
		t.Fatalf("c2 not admissible: %v", err)
	}
	for i := range p {
		if c1[i] != p[i] || c2[i] != p[i] {
			t.Fatalf("identical parents %v produced children %v and %v", p, c1, c2)
		}
	}
}
