// Package fastgraph is a small directed graph keyed by comparable node
// values, with per-edge reference counts.
package fastgraph

import (
	"cmp"
	"iter"
	"slices"
)

// Direction represents the direction of an edge seen from one endpoint.
type Direction int

const (
	Incoming Direction = iota
	Outgoing
)

type EdgeKey[N comparable] struct {
	From N
	To   N
}

// Graph is a directed graph. Adding an edge that already exists bumps its
// count instead of duplicating it.
type Graph[N cmp.Ordered] struct {
	out    map[N][]N
	in     map[N][]N
	counts map[EdgeKey[N]]int
}

func New[N cmp.Ordered]() *Graph[N] {
	return &Graph[N]{
		out:    make(map[N][]N),
		in:     make(map[N][]N),
		counts: make(map[EdgeKey[N]]int),
	}
}

// AddNode adds a node with no edges, if it is not present yet.
func (g *Graph[N]) AddNode(n N) {
	if _, ok := g.out[n]; !ok {
		g.out[n] = nil
	}
}

// AddEdge records one reference from from to to.
func (g *Graph[N]) AddEdge(from, to N) {
	g.AddNode(from)
	g.AddNode(to)
	key := EdgeKey[N]{From: from, To: to}
	if g.counts[key] == 0 {
		g.out[from] = append(g.out[from], to)
		g.in[to] = append(g.in[to], from)
	}
	g.counts[key]++
}

// Count returns how many times the edge was added.
func (g *Graph[N]) Count(from, to N) int {
	return g.counts[EdgeKey[N]{From: from, To: to}]
}

// Len reports the number of nodes.
func (g *Graph[N]) Len() int {
	return len(g.out)
}

// Nodes returns the nodes in ascending order.
func (g *Graph[N]) Nodes() []N {
	nodes := make([]N, 0, len(g.out))
	for n := range g.out {
		nodes = append(nodes, n)
	}
	slices.Sort(nodes)
	return nodes
}

// Neighbors iterates over the neighbors of node in the given direction, in
// ascending order.
func (g *Graph[N]) Neighbors(node N, direction Direction) iter.Seq[N] {
	edges := g.out[node]
	if direction == Incoming {
		edges = g.in[node]
	}
	sorted := slices.Sorted(slices.Values(edges))
	return func(yield func(N) bool) {
		for _, n := range sorted {
			if !yield(n) {
				return
			}
		}
	}
}

// Order returns every node such that each appears after the nodes it has
// edges to, where possible. Nodes on a cycle are emitted in ascending order
// once nothing else can be placed.
func (g *Graph[N]) Order() []N {
	pending := make(map[N]int, len(g.out))
	for n, succ := range g.out {
		pending[n] = len(succ)
		if slices.Contains(succ, n) {
			pending[n]--
		}
	}

	order := make([]N, 0, len(g.out))
	placed := make(map[N]bool, len(g.out))
	place := func(n N) {
		placed[n] = true
		order = append(order, n)
		for _, from := range g.in[n] {
			if from != n {
				pending[from]--
			}
		}
	}

	nodes := g.Nodes()
	for len(order) < len(nodes) {
		progress := false
		for _, n := range nodes {
			if !placed[n] && pending[n] <= 0 {
				place(n)
				progress = true
			}
		}
		if progress {
			continue
		}
		// Break a cycle at its smallest node.
		for _, n := range nodes {
			if !placed[n] {
				place(n)
				break
			}
		}
	}
	return order
}
