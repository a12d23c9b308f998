// Package cyclegraph is an in-memory toolkit for cycle analysis on directed
// graphs — from a cheap "does any cycle exist?" answer to a full listing of
// every elementary circuit, capped to stay safe on dense inputs.
//
// What is cyclegraph?
//
//	A small, deterministic library organized into three subpackages:
//		• digraph/ — dense, index-based directed graph container plus the
//		  minimal read contract (Reader) the analyses consume
//		• scc/     — strongly connected components via Tarjan's algorithm,
//		  single pass, O(V+E), iterative (no native recursion)
//		• cycles/  — elementary-cycle enumeration via Johnson's algorithm,
//		  bounded by a caller-supplied cap, iterative as well
//
// Why choose cyclegraph?
//
//   - Predictable – fixed node ordering plus stable adjacency order means
//     every run of every analysis yields identical results
//   - Safe on hostile inputs – explicit heap-allocated work stacks instead of
//     native recursion, and a hard cap on enumeration, keep long paths and
//     dense graphs from exhausting the process
//   - Pure Go – no cgo, results are plain value records owned by the caller
//
// Quick ASCII example:
//
//	    A──▶B
//	    ▲   │
//	    └───┘
//
//	a two-node ring: one SCC of size 2, one elementary cycle [A B].
//
// The analyses never mutate the graph and hold no state between calls, so
// concurrent read-only analyses of the same graph are safe without locks.
//
//	go get github.com/veligo/cyclegraph
package cyclegraph
