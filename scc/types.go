// Package scc defines the result record and sentinel errors for SCC analysis.
package scc

import "errors"

// ErrGraphNil is returned when a nil digraph.Reader is passed to Analyze or
// HasCycles.
var ErrGraphNil = errors.New("scc: graph is nil")

// unvisited marks a node whose discovery index has not been assigned yet.
const unvisited = -1

// Result captures one SCC analysis. It is a plain value record: the analysis
// retains no reference to it, and the caller owns it entirely.
type Result struct {
	// Components lists the strongly connected components in completion
	// (stack-pop) order — a reverse topological order of the condensation.
	// Node order inside a component is Tarjan's pop order. Components
	// partition the node set exactly: every node, including isolated ones,
	// appears in exactly one component.
	Components [][]int

	// HasCycles is true iff some component has more than one node. Note:
	// a self-loop forms a singleton component, so a lone self-loop does NOT
	// set this flag. Use the package-level HasCycles for a check that also
	// catches length-1 cycles.
	HasCycles bool

	// CycleCount is the number of non-trivial components (size > 1).
	CycleCount int
}
