package cycles_test

import (
	"fmt"
	"strings"

	"github.com/veligo/cyclegraph/cycles"
	"github.com/veligo/cyclegraph/digraph"
)

// ExampleEnumerate lists the elementary cycles of a diamond with a back
// edge. Graph structure:
//
//	  a
//	 / \
//	b   c
//	 \ /
//	  d ──▶ a
//
// Two cycles exist: a→b→d→a and a→c→d→a.
func ExampleEnumerate() {
	g := digraph.New()
	// AddEdgeByLabel creates missing nodes on first use.
	_ = g.AddEdgeByLabel("a", "b")
	_ = g.AddEdgeByLabel("a", "c")
	_ = g.AddEdgeByLabel("b", "d")
	_ = g.AddEdgeByLabel("c", "d")
	_ = g.AddEdgeByLabel("d", "a")

	res, err := cycles.Enumerate(g, 100)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("found:", res.Count, "truncated:", res.Truncated)
	for _, cycle := range res.Cycles {
		labels, _ := g.Labels(cycle)
		fmt.Println(strings.Join(labels, " -> "))
	}

	// Output:
	// found: 2 truncated: false
	// a -> b -> d
	// a -> c -> d
}

// ExampleEnumerate_capped samples two cycles from a graph that holds six,
// and reads the truncation flag.
func ExampleEnumerate_capped() {
	g := digraph.New()
	// A bidirectional square: a↔b↔c↔d↔a — six elementary cycles in total.
	for _, e := range [][2]string{
		{"a", "b"}, {"b", "a"},
		{"b", "c"}, {"c", "b"},
		{"c", "d"}, {"d", "c"},
		{"d", "a"}, {"a", "d"},
	} {
		_ = g.AddEdgeByLabel(e[0], e[1])
	}

	res, _ := cycles.Enumerate(g, 2)

	fmt.Println("found:", res.Count, "truncated:", res.Truncated)

	// Output:
	// found: 2 truncated: true
}
