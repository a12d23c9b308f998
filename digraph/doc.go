// Package digraph provides a dense, index-based directed graph container and
// the minimal read contract consumed by the analysis packages (scc, cycles).
//
// What:
//
//   - Reader: the read-only contract every analysis depends on —
//     NodeCount() and Successors(v), nothing more.
//   - Graph: an adjacency-list implementation of Reader with label
//     bookkeeping (label ⇄ dense index), insertion-ordered successor lists,
//     and support for self-loops and parallel edges.
//
// Why:
//
//   - Decouple algorithms from storage: any structure that can report a node
//     count and per-node successor indices plugs into scc and cycles.
//   - Deterministic analyses need a deterministic edge order; Graph preserves
//     AddEdge call order per source node.
//
// Complexity:
//
//   - AddNode / IndexOf / Label: O(1) amortized.
//   - AddEdge: O(1) amortized.
//   - Successors: O(1) (returns the internal slice; callers must not mutate).
//
// Errors:
//
//   - ErrIndexOutOfRange: a node index falls outside [0, NodeCount).
//   - ErrNodeNotFound: a label does not name any node.
//
// Graph is not safe for concurrent mutation. Once construction is finished it
// is safe for any number of concurrent readers, including parallel analyses.
package digraph
