// Package digraph defines the Reader contract and the sentinel errors shared
// by the container and its callers.
package digraph

import "errors"

var (
	// ErrIndexOutOfRange indicates a node index outside [0, NodeCount).
	ErrIndexOutOfRange = errors.New("digraph: node index out of range")

	// ErrNodeNotFound indicates that a label does not name any node.
	ErrNodeNotFound = errors.New("digraph: node not found")
)

// Reader is the read-only view of a directed graph that the analysis
// packages consume. Implementations must be deterministic: repeated calls to
// Successors with the same index must yield the same sequence, in the same
// order, for the duration of one analysis. Returned slices must be treated
// as read-only by callers.
type Reader interface {
	// NodeCount reports the total number of nodes; valid indices are
	// [0, NodeCount).
	NodeCount() int

	// Successors returns the outgoing edge targets of node v, in a stable
	// iteration order. Indices outside the valid range yield nil.
	Successors(v int) []int
}
