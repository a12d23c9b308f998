// Package cycles enumerates the elementary (simple) cycles of a directed
// graph using Johnson's algorithm, bounded by a caller-supplied cap.
//
// What:
//
//   - Enumerate(g, maxCycles): lists every elementary cycle of g as a slice
//     of node indices [v0, v1, ..., vk] — consecutive nodes are joined by
//     directed edges, an edge leads from vk back to v0, and no node repeats.
//     Enumeration stops the instant the running count reaches maxCycles,
//     which is the only runtime bound on combinatorially dense graphs.
//   - Self-loops are reported as cycles of length 1.
//
// Why:
//
//   - Dependency diagnostics: show users the exact circular chains, not
//     just that one exists (use the scc package for the cheap boolean).
//   - Dense graphs hold exponentially many cycles; the cap turns an
//     unbounded enumeration into a predictable, truncation-flagged sample.
//
// How:
//
//   - One search round per start node s in increasing index order, restricted
//     to nodes with index ≥ s (cycles through smaller indices were already
//     found in earlier rounds).
//   - Within a round, nodes are blocked on entry to keep paths elementary;
//     fruitless nodes stay blocked and register themselves as dependents of
//     their successors, to be transitively unblocked the moment any of those
//     successors yields a cycle again.
//   - Both the circuit search and the transitive unblock run on explicit
//     heap-allocated stacks — long simple paths cannot exhaust the native
//     call stack.
//
// Complexity:
//
//   - Time O((V+E)·(C+1)) up to the cap (C = cycles reported); worst case
//     exponential in V without a cap, which is why maxCycles is mandatory.
//   - Memory O(V+E) per call; no state is retained between calls.
//
// Errors:
//
//   - ErrGraphNil: the provided digraph.Reader is nil.
//   - ErrNegativeLimit: maxCycles is negative.
//
// Truncation: Result.Truncated preserves the conservative "count ≥ cap"
// convention — it is set whenever the cap was reached, even if the cap
// happened to equal the exact total number of cycles. See Result.Truncated.
package cycles
