// Package scc computes strongly connected components of a directed graph
// using Tarjan's algorithm, and derives cheap cycle-presence answers from
// the component structure.
//
// What:
//
//   - Analyze: one depth-first pass over a digraph.Reader producing the full
//     SCC partition, a HasCycles flag, and the count of non-trivial (size>1)
//     components. The traversal runs on an explicit heap-allocated frame
//     stack, so arbitrarily long paths cannot exhaust the call stack.
//   - HasCycles: convenience boolean check; unlike Result.HasCycles it also
//     detects self-loops (length-1 cycles) via a direct adjacency scan.
//
// Why:
//
//   - Answer "does any cycle exist?" in O(V+E) before paying for full
//     enumeration (see the cycles package).
//   - Partition dependency graphs into mutually reachable clusters for
//     condensation, scheduling, or reporting.
//
// Complexity:
//
//   - Analyze:   Time O(V+E), Memory O(V).
//   - HasCycles: Time O(V+E), Memory O(V).
//
// Errors:
//
//   - ErrGraphNil: the provided digraph.Reader is nil.
//
// Determinism: DFS roots are chosen in increasing index order and successor
// lists are visited in the order the Reader yields them, so results are
// identical across repeated calls on an unmodified graph.
package scc
