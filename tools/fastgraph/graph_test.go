package fastgraph_test

import (
	"slices"
	"testing"

	"github.com/t14raptor/go-jack/tools/fastgraph"
)

func TestAddEdgeCounts(t *testing.T) {
	g := fastgraph.New[string]()
	g.AddEdge("Main", "Game")
	g.AddEdge("Main", "Game")
	g.AddEdge("Main", "Output")
	g.AddNode("Lonely")

	if g.Len() != 4 {
		t.Errorf("Len() = %d; want 4", g.Len())
	}
	if g.Count("Main", "Game") != 2 || g.Count("Game", "Main") != 0 {
		t.Errorf("counts: Main->Game %d, Game->Main %d", g.Count("Main", "Game"), g.Count("Game", "Main"))
	}
	if got := slices.Collect(g.Neighbors("Main", fastgraph.Outgoing)); !slices.Equal(got, []string{"Game", "Output"}) {
		t.Errorf("outgoing = %v", got)
	}
	if got := slices.Collect(g.Neighbors("Game", fastgraph.Incoming)); !slices.Equal(got, []string{"Main"}) {
		t.Errorf("incoming = %v", got)
	}
	if got := g.Nodes(); !slices.Equal(got, []string{"Game", "Lonely", "Main", "Output"}) {
		t.Errorf("Nodes() = %v", got)
	}
}

func TestOrder(t *testing.T) {
	g := fastgraph.New[string]()
	g.AddEdge("Main", "Game")
	g.AddEdge("Game", "Ball")
	g.AddEdge("Game", "Bat")
	g.AddEdge("Bat", "Bat")

	want := []string{"Ball", "Bat", "Game", "Main"}
	if got := g.Order(); !slices.Equal(got, want) {
		t.Errorf("Order() = %v; want %v", got, want)
	}
}

func TestOrderBreaksCycles(t *testing.T) {
	g := fastgraph.New[string]()
	g.AddEdge("A", "B")
	g.AddEdge("B", "A")
	g.AddEdge("C", "A")

	want := []string{"A", "B", "C"}
	if got := g.Order(); !slices.Equal(got, want) {
		t.Errorf("Order() = %v; want %v", got, want)
	}
}

func TestCycles(t *testing.T) {
	g := fastgraph.New[string]()
	g.AddEdge("Main", "Game")
	g.AddEdge("Game", "Ball")
	g.AddEdge("Ball", "Game")
	g.AddEdge("Bat", "Bat")
	g.AddEdge("Game", "Output")

	got := g.Cycles()
	want := [][]string{{"Ball", "Game"}, {"Bat"}}
	if !slices.EqualFunc(got, want, slices.Equal) {
		t.Errorf("Cycles() = %v; want %v", got, want)
	}

	acyclic := fastgraph.New[string]()
	acyclic.AddEdge("Main", "Game")
	if got := acyclic.Cycles(); len(got) != 0 {
		t.Errorf("Cycles() on an acyclic graph = %v", got)
	}
}
