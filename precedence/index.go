// Package precedence builds and queries the DAG implied by a project's
// precedence pairs: forward/backward adjacency, in-degree, and transitive
// reachability, with a Kahn topological pass used to detect cycles and
// fix a canonical processing order.
package precedence

import (
	"fmt"
	"math/big"
)

// Graph is the read-only precedence index for a fixed set of n task ids
// in [0, n). It is built once by Build and never mutated afterwards.
type Graph struct {
	n         int
	forward   [][]int // forward[u] = successors of u, sorted
	reverse   [][]int // reverse[v] = predecessors of v, sorted
	inDegree  []int
	topoOrder []int    // one valid topological order, source first, sink last
	reach     []*big.Int // reach[u] has bit v set iff v is reachable from u (u -> ... -> v)
}

// Build constructs a Graph from n task ids and a set of directed edges
// (u, v) meaning u precedes v. It fails if the edges contain a cycle, or
// if task 0 (the source) does not precede every other task, or task n-1
// (the sink) is not preceded by every other task.
func Build(n int, edges [][2]int) (*Graph, error) {
	forward := make([][]int, n)
	reverse := make([][]int, n)
	inDegree := make([]int, n)

	seen := make(map[[2]int]bool, len(edges))
	for _, e := range edges {
		u, v := e[0], e[1]
		if u == v {
			return nil, fmt.Errorf("self-loop at task %d", u)
		}
		if seen[e] {
			continue
		}
		seen[e] = true
		forward[u] = append(forward[u], v)
		reverse[v] = append(reverse[v], u)
		inDegree[v]++
	}

	source, sink := 0, n-1
	// The source and sink invariants (source precedes every task, every
	// task precedes the sink) are enforced structurally: if they don't
	// already hold from the caller's edge set, we require they hold, we
	// don't silently add edges to make it so.
	if err := requireEdgeOrImplied(forward, source, n); err != nil {
		return nil, fmt.Errorf("source invariant violated: %w", err)
	}
	if err := requireReverseOrImplied(reverse, sink, n); err != nil {
		return nil, fmt.Errorf("sink invariant violated: %w", err)
	}

	topoOrder, err := kahn(n, forward, append([]int(nil), inDegree...))
	if err != nil {
		return nil, err
	}

	g := &Graph{
		n:         n,
		forward:   forward,
		reverse:   reverse,
		inDegree:  inDegree,
		topoOrder: topoOrder,
	}
	g.reach = g.transitiveClosure()
	return g, nil
}

// requireEdgeOrImplied checks that every task other than source is
// reachable from source via the forward adjacency (directly or
// transitively); it defers the actual reachability computation to a
// cheap BFS since the transitive closure isn't built yet.
func requireEdgeOrImplied(forward [][]int, source, n int) error {
	if n == 1 {
		return nil
	}
	visited := bfsReachable(forward, source, n)
	for v := 0; v < n; v++ {
		if v == source {
			continue
		}
		if !visited[v] {
			return fmt.Errorf("task %d is not reachable from the source", v)
		}
	}
	return nil
}

func requireReverseOrImplied(reverse [][]int, sink, n int) error {
	if n == 1 {
		return nil
	}
	visited := bfsReachable(reverse, sink, n)
	for u := 0; u < n; u++ {
		if u == sink {
			continue
		}
		if !visited[u] {
			return fmt.Errorf("task %d cannot reach the sink", u)
		}
	}
	return nil
}

func bfsReachable(adj [][]int, start, n int) []bool {
	visited := make([]bool, n)
	visited[start] = true
	queue := []int{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if !visited[v] {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}
	return visited
}

// kahn returns a topological order of [0, n), failing if the edge set
// contains a cycle. indegree is consumed (mutated) by this call.
func kahn(n int, forward [][]int, indegree []int) ([]int, error) {
	ready := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if indegree[i] == 0 {
			ready = append(ready, i)
		}
	}
	order := make([]int, 0, n)
	for len(ready) > 0 {
		u := ready[len(ready)-1]
		ready = ready[:len(ready)-1]
		order = append(order, u)
		for _, v := range forward[u] {
			indegree[v]--
			if indegree[v] == 0 {
				ready = append(ready, v)
			}
		}
	}
	if len(order) != n {
		return nil, fmt.Errorf("precedence graph contains a cycle")
	}
	return order, nil
}

// transitiveClosure computes, for every task, the set of tasks reachable
// from it, processing tasks in reverse topological order so each node's
// closure is the union of its direct successors' already-computed
// closures (each node visited once).
func (g *Graph) transitiveClosure() []*big.Int {
	reach := make([]*big.Int, g.n)
	for i := range reach {
		reach[i] = new(big.Int)
	}
	for i := len(g.topoOrder) - 1; i >= 0; i-- {
		u := g.topoOrder[i]
		for _, v := range g.forward[u] {
			reach[u].SetBit(reach[u], v, 1)
			reach[u].Or(reach[u], reach[v])
		}
	}
	return reach
}

// N reports the number of tasks in the graph.
func (g *Graph) N() int { return g.n }

// Successors returns the direct successors of i.
func (g *Graph) Successors(i int) []int { return g.forward[i] }

// Predecessors returns the direct predecessors of i.
func (g *Graph) Predecessors(i int) []int { return g.reverse[i] }

// InDegree returns the number of direct predecessors of i.
func (g *Graph) InDegree(i int) int { return g.inDegree[i] }

// TopoOrder returns a fixed valid topological order computed at build
// time (source first, sink last). Callers must not mutate it.
func (g *Graph) TopoOrder() []int { return g.topoOrder }

// IsSuccessor reports whether v is reachable from u, i.e. u must finish
// before v can start, directly or transitively.
func (g *Graph) IsSuccessor(u, v int) bool {
	return g.reach[u].Bit(v) == 1
}

// IsPredecessor reports whether u is a transitive predecessor of v.
func (g *Graph) IsPredecessor(u, v int) bool {
	return g.reach[u].Bit(v) == 1
}
