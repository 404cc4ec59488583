package fastgraph

import "slices"

// tarjan holds the state of one strongly connected components search.
type tarjan[N comparable] struct {
	next    func(N) []N
	index   int
	stack   []N
	onStack map[N]bool
	indices map[N]int
	lowLink map[N]int
	sccs    [][]N
}

// Cycles returns the groups of nodes that reach each other, one slice per
// group with more than one node or with a self edge. Groups come out in
// reverse topological order, each sorted ascending.
func (g *Graph[N]) Cycles() [][]N {
	t := &tarjan[N]{
		next: func(n N) []N {
			var succ []N
			for m := range g.Neighbors(n, Outgoing) {
				succ = append(succ, m)
			}
			return succ
		},
		onStack: make(map[N]bool),
		indices: make(map[N]int),
		lowLink: make(map[N]int),
	}
	for _, n := range g.Nodes() {
		if _, seen := t.indices[n]; !seen {
			t.connect(n)
		}
	}

	var cycles [][]N
	for _, scc := range t.sccs {
		if len(scc) > 1 || g.Count(scc[0], scc[0]) > 0 {
			cycles = append(cycles, slices.Sorted(slices.Values(scc)))
		}
	}
	return cycles
}

func (t *tarjan[N]) connect(n N) {
	t.indices[n] = t.index
	t.lowLink[n] = t.index
	t.index++
	t.stack = append(t.stack, n)
	t.onStack[n] = true

	for _, m := range t.next(n) {
		if _, seen := t.indices[m]; !seen {
			t.connect(m)
			t.lowLink[n] = min(t.lowLink[n], t.lowLink[m])
		} else if t.onStack[m] {
			t.lowLink[n] = min(t.lowLink[n], t.indices[m])
		}
	}

	if t.lowLink[n] != t.indices[n] {
		return
	}
	var scc []N
	for {
		top := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.onStack[top] = false
		scc = append(scc, top)
		if top == n {
			break
		}
	}
	t.sccs = append(t.sccs, scc)
}
